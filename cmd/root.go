package main

import (
	"github.com/spf13/cobra"
)

var (
	configPath string
	mapDir     string
	verbose    bool
)

func buildRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mapkeep",
		Short: "Resolve map file names for saving and loading",
		Long: `mapkeep manages a directory of map files with sequential naming.

Commands:
  save   Interactively resolve a name for new content
  load   Interactively resolve the name of an existing map
  touch  Create a placeholder map file

Naming:
  test      plain name, becomes test.map
  test_     next free slot in the test sequence (test_000.map, test_001.map, ...)
  test_005  an explicit sequence member
  7         pick entry 7 from the directory listing

Examples:
  # Save, resolving conflicts interactively
  mapkeep save

  # Load the newest member of the test sequence
  echo "test_" | mapkeep load

  # Use a different map directory
  mapkeep save --dir ~/maps

Safety:
  The tool never touches files outside the managed directory. Replaced and
  deleted maps are moved to .mapkeep/trash/ instead of being removed, and
  every rename is recorded in .mapkeep/journal/.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.mapkeep.yaml)")
	cmd.PersistentFlags().StringVar(&mapDir, "dir", "", "Map directory (overrides config)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	return cmd
}
