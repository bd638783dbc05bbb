package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/ts20/domain/model/broadcast"
	"github.com/sobadon/ts20/domain/model/date"
	"github.com/sobadon/ts20/domain/model/fetcher"
	"github.com/sobadon/ts20/domain/model/history"
	"github.com/sobadon/ts20/domain/repository"
	"github.com/sobadon/ts20/internal/errutil"
)

type ucFetcher struct {
	archive      repository.Archive
	catalog      repository.Catalog
	fetchHistory repository.FetchHistory
	player       repository.Player
	notifier     repository.Notifier
}

func NewFetcher(
	archive repository.Archive,
	catalog repository.Catalog,
	fetchHistory repository.FetchHistory,
	player repository.Player,
	notifier repository.Notifier,
) *ucFetcher {
	return &ucFetcher{
		archive:      archive,
		catalog:      catalog,
		fetchHistory: fetchHistory,
		player:       player,
		notifier:     notifier,
	}
}

// 指定日の 20 時の回をローカル優先で解決して再生する
// ローカルヒット時はネットワークに一切出ない
// リトライはどこにもない（1 回失敗したらその呼び出しは終わり）
func (f *ucFetcher) FetchAndPlay(ctx context.Context, config fetcher.Config, d date.Date) (string, error) {
	path, ok, err := f.archive.FindLocal(d)
	if err != nil {
		return "", err
	}
	if ok {
		log.Ctx(ctx).Info().Msgf("found local artifact (path = %s)", path)
		f.notifier.Info(fmt.Sprintf("playing cached edition of %s", d.Format()))
		f.play(ctx, path)
		return path, nil
	}

	entries, err := f.catalog.Search(ctx)
	if err != nil {
		return "", err
	}

	entry, ok := findEntryByDate(entries, d)
	if !ok {
		return "", errors.Wrapf(errutil.ErrNotAvailable, "date = %s", d.Format())
	}

	f.checkStorage(ctx, config)

	err = f.catalog.Download(ctx, entry)
	if err != nil {
		return "", err
	}

	f.saveHistory(ctx, entry.Date, entry.SourceURL, entry.TargetPath)

	f.notifier.Info(fmt.Sprintf("playing edition of %s", d.Format()))
	f.play(ctx, entry.TargetPath)
	return entry.TargetPath, nil
}

// 再生失敗は fetch の失敗にはしない
func (f *ucFetcher) play(ctx context.Context, path string) {
	err := f.player.Play(ctx, path)
	if err != nil {
		log.Ctx(ctx).Warn().Msgf("failed to launch player: %+v", err)
	}
}

// 閾値超過は警告するだけで fetch は止めない
func (f *ucFetcher) checkStorage(ctx context.Context, config fetcher.Config) {
	totalSize, err := f.archive.TotalSize()
	if err != nil {
		log.Ctx(ctx).Warn().Msgf("failed to compute archive size: %+v", err)
		return
	}

	advisory, exceeded := storageAdvisory(totalSize, config.StorageThresholdBytes)
	if exceeded {
		f.notifier.Warn(advisory)
	}
}

// 履歴保存の失敗も fetch の失敗にはしない
func (f *ucFetcher) saveHistory(ctx context.Context, d date.Date, sourceURL string, path string) {
	var sizeBytes int64
	artifacts, err := f.archive.List()
	if err == nil {
		for _, artifact := range artifacts {
			if artifact.Date.Equal(d) {
				sizeBytes = artifact.SizeBytes
			}
		}
	}

	fetch := history.NewFetch(d, sourceURL, path, sizeBytes, time.Now())
	err = f.fetchHistory.Save(ctx, fetch)
	if err != nil {
		log.Ctx(ctx).Warn().Msgf("failed to save fetch history: %+v", err)
	}
}

func findEntryByDate(entries []broadcast.Entry, d date.Date) (broadcast.Entry, bool) {
	for _, entry := range entries {
		if entry.Date.Equal(d) {
			return entry, true
		}
	}
	return broadcast.Entry{}, false
}
