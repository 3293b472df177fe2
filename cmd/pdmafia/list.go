package main

import (
	"fmt"
	"os"

	"github.com/lobziq/pdmafiadatabase/store"
	"github.com/spf13/cobra"
)

func listCmd(flags *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:       "list settings|games",
		Short:     "List stored settings or games",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"settings", "games"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "table" && format != "json" {
				return fmt.Errorf("invalid format %q (must be table or json)", format)
			}

			e, cleanup, err := setup(flags)
			if err != nil {
				return err
			}
			defer cleanup()

			switch args[0] {
			case "settings":
				result, err := e.store.ListSettings()
				if err != nil {
					return fmt.Errorf("failed to list settings: %w", err)
				}
				defer printReadErrors(result.Errors)
				if format == "json" {
					return printJSON(os.Stdout, "settings", result.Items)
				}
				printSettingsTable(os.Stdout, result.Items)
			case "games":
				result, err := e.store.ListGames()
				if err != nil {
					return fmt.Errorf("failed to list games: %w", err)
				}
				defer printReadErrors(result.Errors)
				if format == "json" {
					return printJSON(os.Stdout, "games", result.Items)
				}
				printGamesTable(os.Stdout, result.Items)
			default:
				return fmt.Errorf("unknown record kind %q (must be settings or games)", args[0])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")
	return cmd
}

// printReadErrors reports records that could not be read.
func printReadErrors(errs []store.ReadError) {
	if len(errs) == 0 {
		return
	}
	fmt.Fprintf(os.Stderr, "\nWarning: %d record(s) could not be read:\n", len(errs))
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "  - %s\n", e.Error())
	}
}
