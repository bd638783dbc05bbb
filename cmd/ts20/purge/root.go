package purge

import (
	"github.com/caarlos0/env/v6"
	"github.com/sobadon/ts20/infrastructures/archive"
	"github.com/sobadon/ts20/internal/logutil"
	"github.com/spf13/cobra"
)

var (
	log = logutil.NewLogger()
)

type config struct {
	ArchiveDir    string `env:"ARCHIVE_DIR" envDefault:"./archive"`
	ArchivePrefix string `env:"ARCHIVE_PREFIX" envDefault:"tagesschau"`
}

func Command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "purge",
		Short: "delete all archived editions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
	return rootCmd
}

func run() error {
	var config config
	err := env.Parse(&config, env.Options{Prefix: "TS20_"})
	if err != nil {
		return err
	}

	infraArchive := archive.New(config.ArchiveDir, config.ArchivePrefix)
	count, err := infraArchive.Purge()
	if err != nil {
		return err
	}

	log.Info().Msgf("purged %d artifacts", count)
	return nil
}
