// Package cli is the terminal front end: a cobra command tree wrapping
// the interactive menu loop, plus direct subcommands for studying a
// theme, showing statistics, and serving the web front end. All study
// logic lives in the core packages; this package only renders and reads
// input.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "recallbox",
	Short: "A spaced-repetition trainer for YAML flashcards",
	Long: `Recallbox drills question/answer cards grouped into themes.
Each theme gets a deterministic daily pool of cards; answering a card
correctly on consecutive days validates it. Without a subcommand the
interactive menu opens.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp(cmd.Context())
		if err != nil {
			return err
		}
		saveOnInterrupt(app)
		return mainMenu(cmd.Context(), app)
	},
}

// Execute runs the CLI.
func Execute() {
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// saveOnInterrupt persists the store when the process receives SIGINT
// or SIGTERM mid-session, then exits. At most the in-progress
// unanswered card is lost.
func saveOnInterrupt(a *app) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ch
		if err := a.save(context.Background()); err != nil {
			fmt.Fprintln(os.Stderr, "save failed:", err)
			os.Exit(1)
		}
		fmt.Println("\nSaved. Bye!")
		os.Exit(0)
	}()
}
