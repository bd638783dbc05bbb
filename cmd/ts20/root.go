package main

import (
	"log"
	"os"

	"github.com/sobadon/ts20/cmd/ts20/daemon"
	"github.com/sobadon/ts20/cmd/ts20/fetch"
	"github.com/sobadon/ts20/cmd/ts20/history"
	"github.com/sobadon/ts20/cmd/ts20/list"
	"github.com/sobadon/ts20/cmd/ts20/purge"
	"github.com/sobadon/ts20/cmd/ts20/version"
	"github.com/sobadon/ts20/internal/errutil"
	"github.com/spf13/cobra"
)

func main() {
	execute()
}

func execute() {
	var rootCmd = &cobra.Command{
		Use:   "ts20",
		Short: "fetch tagesschau 20:00 edition",
	}

	rootCmd.AddCommand(fetch.Command())
	rootCmd.AddCommand(daemon.Command())
	rootCmd.AddCommand(list.Command())
	rootCmd.AddCommand(history.Command())
	rootCmd.AddCommand(purge.Command())
	rootCmd.AddCommand(version.Command())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("%+v", err)
		os.Exit(errutil.ExitCode(err))
	}
}
