package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"mapkeep/pkg/store"
)

func buildTouchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "touch [name]",
		Short: "Create a placeholder map file",
		Long: `Creates an empty placeholder map with the given name, useful for trying
out the save and load flows without real map content.

Examples:
  mapkeep touch test
  mapkeep touch test_000`,
		Args: cobra.ExactArgs(1),
		RunE: runTouch,
	}
}

func runTouch(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig("")
	if err != nil {
		return err
	}

	s, err := store.Open(cfg.Directory, cfg.Extension, "touch")
	if err != nil {
		return err
	}
	defer s.Close()

	name := filepath.Base(args[0])
	if !strings.HasSuffix(name, cfg.Extension) {
		name += cfg.Extension
	}

	if err := store.CreatePlaceholder(s.PathFor(name)); err != nil {
		return err
	}

	fmt.Printf("Created %s\n", s.PathFor(name))
	return nil
}
