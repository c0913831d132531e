package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"mapkeep/pkg/naming"
	"mapkeep/pkg/store"
)

func buildSaveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Interactively resolve a name and save a map",
		Long: `Asks for a file name, resolves it against the map directory and saves a
map under the resolved name.

When the name is already taken a menu offers to replace the file, move it
into its sequence, pick the next sequence slot, enter a different name,
delete the file, or abort.

Examples:
  mapkeep save
  mapkeep save ~/maps
  echo "test_" | mapkeep save   # next free test_NNN.map, no prompt needed`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSave,
	}
}

func runSave(_ *cobra.Command, args []string) error {
	path, err := resolveName("save", firstArg(args), naming.Save)
	if errors.Is(err, naming.ErrDeleted) {
		fmt.Println("Existing file moved to trash, nothing saved.")
		return nil
	}
	if err != nil {
		return err
	}

	if err := store.CreatePlaceholder(path); err != nil {
		return err
	}

	fmt.Printf("Saved %s\n", path)
	return nil
}
