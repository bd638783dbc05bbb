package broadcast

import (
	"fmt"
	"path/filepath"

	"github.com/sobadon/ts20/domain/model/date"
)

// 20:00 の回だけが Entry になる
const EditionTime = "20:00"

// 検索結果 1 件を正規化したもの
type Entry struct {
	Date date.Date

	// 必ず "20:00"
	Time string

	// "+02:00" のようなオフセット表記
	Timezone string

	// h264xl バリアントの URL
	SourceURL string

	// Date だけから決まる（何度導出しても同じパスになる）
	TargetPath string
}

// アーカイブディレクトリ内の 1 ファイル
type Artifact struct {
	Path      string
	Date      date.Date
	SizeBytes int64
}

// <dir>/<prefix>.<YYYY-MM-DD>.mp4
func TargetPath(dir string, prefix string, d date.Date) string {
	return filepath.Join(dir, fmt.Sprintf("%s.%s.mp4", prefix, d.Format()))
}
