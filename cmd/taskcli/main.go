// Package main implements the taskcli terminal client.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "taskcli",
	Short:         "Task manager terminal client",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var serverFlag string

func init() {
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "server address (default from session file, then localhost:8080)")
}
