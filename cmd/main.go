package main

import (
	"os"
)

func main() {
	rootCmd := buildRootCommand()
	rootCmd.AddCommand(buildSaveCommand())
	rootCmd.AddCommand(buildLoadCommand())
	rootCmd.AddCommand(buildTouchCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
