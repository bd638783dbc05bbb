package history

import (
	"context"

	"github.com/caarlos0/env/v6"
	"github.com/sobadon/ts20/infrastructures/sqlite"
	"github.com/sobadon/ts20/internal/logutil"
	"github.com/spf13/cobra"
)

var (
	log = logutil.NewLogger()
)

type config struct {
	SqlitePath string `env:"SQLITE_PATH" envDefault:"db.sqlite3"`
}

func Command() *cobra.Command {
	var limit int

	rootCmd := &cobra.Command{
		Use:   "history",
		Short: "show recent fetches",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(limit)
		},
	}
	rootCmd.Flags().IntVar(&limit, "limit", 20, "number of records to show")
	return rootCmd
}

func run(limit int) error {
	var config config
	err := env.Parse(&config, env.Options{Prefix: "TS20_"})
	if err != nil {
		return err
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

	infraFetchHistory := sqlite.New(db)
	fetches, err := infraFetchHistory.LoadRecent(context.Background(), limit)
	if err != nil {
		return err
	}

	for _, fetch := range fetches {
		log.Info().Msgf("%s\t%d bytes\t%s\t(fetched at %s)", fetch.Date.Format(), fetch.SizeBytes, fetch.Path, fetch.FetchedAt.Format("2006-01-02 15:04:05"))
	}

	return nil
}
