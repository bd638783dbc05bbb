package fetch

import (
	"context"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/sobadon/ts20/domain/model/date"
	"github.com/sobadon/ts20/domain/model/fetcher"
	"github.com/sobadon/ts20/infrastructures/archive"
	"github.com/sobadon/ts20/infrastructures/notify"
	"github.com/sobadon/ts20/infrastructures/player"
	"github.com/sobadon/ts20/infrastructures/sqlite"
	"github.com/sobadon/ts20/infrastructures/tagesschau"
	"github.com/sobadon/ts20/internal/logutil"
	"github.com/sobadon/ts20/usecase"
	"github.com/spf13/cobra"
)

var (
	log = logutil.NewLogger()
)

func Command() *cobra.Command {
	var dateStr string

	rootCmd := &cobra.Command{
		Use:   "fetch",
		Short: "fetch (or reuse cached) 20:00 edition and play it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(dateStr)
		},
	}
	rootCmd.Flags().StringVar(&dateStr, "date", "", "edition date (YYYY-MM-DD, default: resolved from current time)")
	return rootCmd
}

func run(dateStr string) error {
	log.Info().Msg("start")

	var config config
	err := env.Parse(&config, env.Options{
		Prefix: "TS20_",
		OnSet: func(tag string, value interface{}, isDefault bool) {
			log.Info().Msgf("Set %s to %v (default? %v)\n", tag, value, isDefault)
		},
	})
	if err != nil {
		return err
	}

	// --date 未指定なら 20 時の切り替わりを考慮して日付を決める
	var targetDate date.Date
	if dateStr == "" {
		targetDate = date.ResolveSearchDate(time.Now())
	} else {
		targetDate, err = date.Parse(dateStr)
		if err != nil {
			return err
		}
	}

	db, err := sqlite.NewDB(config.SqlitePath)
	if err != nil {
		return err
	}
	defer db.Close()

	err = sqlite.Setup(db)
	if err != nil {
		return err
	}

	infraArchive := archive.New(config.ArchiveDir, config.ArchivePrefix)
	infraCatalog := tagesschau.New(config.ArchiveDir, config.ArchivePrefix, config.SearchTimeout, config.DownloadTimeout)
	infraFetchHistory := sqlite.New(db)
	infraPlayer := player.New()
	infraNotifier := notify.New(log)
	ucFetcher := usecase.NewFetcher(infraArchive, infraCatalog, infraFetchHistory, infraPlayer, infraNotifier)

	fetcherConfig := fetcher.Config{
		StorageThresholdBytes: config.StorageThresholdBytes,
	}

	ctx := log.With().Str("date", targetDate.Format()).Logger().WithContext(context.Background())
	path, err := ucFetcher.FetchAndPlay(ctx, fetcherConfig, targetDate)
	if err != nil {
		return err
	}

	log.Info().Msgf("done (path = %s)", path)
	return nil
}
