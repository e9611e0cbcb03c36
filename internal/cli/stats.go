package cli

import (
	"fmt"

	"github.com/mseguin/recallbox/internal/stats"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show validation progress per theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp(cmd.Context())
		if err != nil {
			return err
		}

		overall := stats.ForDeck(app.cards, app.store)
		fmt.Printf("Overall: %d/%d (%d%%)\n\n", overall.Validated, overall.Total, overall.Percent)
		for _, line := range stats.AllThemes(app.cards, app.store) {
			fmt.Printf("%-20s %d/%d (%d%%) 🔥%d\n",
				line.Theme, line.Validated, line.Total, line.Percent, line.FlameStreak)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
