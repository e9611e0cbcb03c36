package cli

import (
	"os/signal"
	"syscall"

	"github.com/mseguin/recallbox/internal/web"
	"github.com/spf13/cobra"
)

var webAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the page-based web front end",
	Long: `Serve the web front end on a local address. The pages drive the
same session engine and progress store as the terminal menu, so both
front ends can be mixed within one day.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(),
			syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		app, err := loadApp(ctx)
		if err != nil {
			return err
		}

		addr := app.cfg.Server.Addr
		if webAddr != "" {
			addr = webAddr
		}

		srv, err := web.New(addr, app.cards, app.store, app.repo,
			app.selector, app.streak, app.logger)
		if err != nil {
			return err
		}
		return srv.ListenAndServe(ctx)
	},
}

func init() {
	rootCmd.AddCommand(webCmd)
	webCmd.Flags().StringVarP(&webAddr, "addr", "a", "", "listen address (overrides config)")
}
