package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mseguin/recallbox/internal/deck"
	"github.com/spf13/cobra"
)

var studyCmd = &cobra.Command{
	Use:   "study [theme]",
	Short: "Start a study session",
	Long: `Start a study session.
With a theme argument, study that theme directly.
Without one, open the theme chooser.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := loadApp(ctx)
		if err != nil {
			return err
		}
		saveOnInterrupt(app)
		reader := bufio.NewReader(os.Stdin)

		if len(args) == 0 {
			err = studyMenu(ctx, app, reader)
		} else {
			theme := strings.Join(args, " ")
			if _, ok := deck.Themes(app.cards)[theme]; !ok {
				return fmt.Errorf("unknown theme %q", theme)
			}
			err = runSession(ctx, app, reader, theme)
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return saveAndFarewell(ctx, app)
	},
}

func init() {
	rootCmd.AddCommand(studyCmd)
}
