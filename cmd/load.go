package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mapkeep/pkg/naming"
)

func buildLoadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Interactively resolve the name of an existing map",
		Long: `Asks for a file name and resolves it to an existing map. The resolved
path is printed to stdout, so it can feed another tool:

  game --map "$(echo 'test_' | mapkeep load)"

A trailing underscore picks the newest member of the sequence; a number
picks the entry with that index from the listing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runLoad,
	}
}

func runLoad(_ *cobra.Command, args []string) error {
	path, err := resolveName("load", firstArg(args), naming.Load)
	if err != nil {
		return err
	}

	fmt.Println(path)
	return nil
}
