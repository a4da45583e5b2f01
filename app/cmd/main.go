package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/ribgsilva/notes/app/cmd/notes"
	"github.com/ribgsilva/notes/app/cmd/schema"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "notes",
	Short: "Create and search notes from the terminal",
	Long: `notes keeps a list of notes (title, subtitle, content and a color)
in the configured storage. Use "notes shell" for the interactive screens.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading .env: %w", err)
		}
		return nil
	},
}

func main() {
	rootCmd.AddCommand(schema.Command())
	rootCmd.AddCommand(notes.Commands()...)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
