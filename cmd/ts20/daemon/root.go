package daemon

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	zlog "github.com/rs/zerolog/log"
	"github.com/sobadon/ts20/domain/model/date"
	"github.com/sobadon/ts20/domain/model/fetcher"
	"github.com/sobadon/ts20/infrastructures/archive"
	"github.com/sobadon/ts20/infrastructures/notify"
	"github.com/sobadon/ts20/infrastructures/player"
	"github.com/sobadon/ts20/infrastructures/sqlite"
	"github.com/sobadon/ts20/infrastructures/tagesschau"
	"github.com/sobadon/ts20/internal/errutil"
	"github.com/sobadon/ts20/internal/logutil"
	"github.com/sobadon/ts20/internal/timeutil"
	"github.com/sobadon/ts20/usecase"
	"github.com/spf13/cobra"
)

var (
	log = logutil.NewLogger()
)

func Command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "daemon",
		Short: "fetch the 20:00 edition every evening",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
	return rootCmd
}

func run() error {
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

	db, err := sqlite.NewDB(config.SqlitePath)
	if err != nil {
		return err
	}

	err = sqlite.Setup(db)
	if err != nil {
		return err
	}
	log.Info().Msg("setup done")

	infraArchive := archive.New(config.ArchiveDir, config.ArchivePrefix)
	infraCatalog := tagesschau.New(config.ArchiveDir, config.ArchivePrefix, config.SearchTimeout, config.DownloadTimeout)
	infraFetchHistory := sqlite.New(db)
	infraPlayer := player.New()
	infraNotifier := notify.New(log)
	ucFetcher := usecase.NewFetcher(infraArchive, infraCatalog, infraFetchHistory, infraPlayer, infraNotifier)

	fetcherConfig := fetcher.Config{
		StorageThresholdBytes: config.StorageThresholdBytes,
	}

	ctx := context.Background()
	scheduler := gocron.NewScheduler(timeutil.LocationBerlin())

	jobFetch := func(ctx context.Context, job gocron.Job) {
		targetDate := date.ResolveSearchDate(time.Now())
		ctx = logutil.NewLogger().With().
			Int("job_count", job.RunCount()).
			Str("job", "fetch").
			Str("date", targetDate.Format()).
			Logger().WithContext(ctx)
		zlog.Ctx(ctx).Info().Msg("job start")
		_, err := ucFetcher.FetchAndPlay(ctx, fetcherConfig, targetDate)
		if err != nil {
			zlog.Ctx(ctx).Error().Msgf("%+v", err)
		}
	}
	_, err = scheduler.Every(1).Day().At(config.FetchAt).DoWithJobDetails(jobFetch, ctx)
	if err != nil {
		return errors.Wrap(errutil.ErrScheduler, err.Error())
	}

	scheduler.StartAsync()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info().Msg("Interrupt")
	defer db.Close()

	return nil
}
