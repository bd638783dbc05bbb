//go:generate mockgen -source=$GOFILE -destination ../../testdata/mock/domain/$GOPACKAGE/$GOFILE
package repository

import (
	"context"

	"github.com/sobadon/ts20/domain/model/broadcast"
	"github.com/sobadon/ts20/domain/model/date"
	"github.com/sobadon/ts20/domain/model/history"
)

type Catalog interface {
	// 20:00 の回だけに絞った検索結果を返す
	// 返されるエラー
	// - errutil.ErrRemoteUnavailable
	Search(ctx context.Context) ([]broadcast.Entry, error)

	// entry.SourceURL を entry.TargetPath へダウンロードする
	// 失敗時に部分ファイルを残さない
	// 返されるエラー
	// - errutil.ErrDownloadFailed
	Download(ctx context.Context, entry broadcast.Entry) error
}

type Archive interface {
	// date に一致するアーカイブ済みファイルを探す
	FindLocal(d date.Date) (path string, ok bool, err error)

	// アーカイブディレクトリ以下の全ファイルの合計サイズ
	TotalSize() (int64, error)

	// 日付順のアーカイブ一覧
	List() ([]broadcast.Artifact, error)

	// 全アーティファクトを削除して削除件数を返す
	Purge() (int, error)
}

type FetchHistory interface {
	Save(ctx context.Context, fetch history.Fetch) error
	LoadRecent(ctx context.Context, limit int) ([]history.Fetch, error)
}

// ローカルファイルを既定のプレイヤーで開く（ベストエフォート）
type Player interface {
	Play(ctx context.Context, path string) error
}

// 通知手段（デスクトップ通知・syslog など）はこの裏に隠す
// core はどの通知機構にも依存しない
type Notifier interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}
