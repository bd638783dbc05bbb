package list

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
		Use:   "list",
		Short: "list archived editions",
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
	artifacts, err := infraArchive.List()
	if err != nil {
		return err
	}

	for _, artifact := range artifacts {
		log.Info().Msgf("%s\t%d bytes\t%s", artifact.Date.Format(), artifact.SizeBytes, artifact.Path)
	}

	totalSize, err := infraArchive.TotalSize()
	if err != nil {
		return err
	}
	log.Info().Msgf("total: %d artifacts, %.1f GB", len(artifacts), float64(totalSize)/(1024*1024*1024))

	return nil
}
