package gridlegend

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gridlegend/gridlegend/internal/server"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultListen = ":8080"

var flagListen string

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the legend as JSON over HTTP",
		Long: `Serves the legend for the chart front-end:

  GET /api/legend                 full snapshot
  GET /api/categories             category lists by class
  GET /api/colors[/:category]     color table or one color
  GET /api/labels/:locale[/:key]  label table or one label
  GET /api/regions                regions in display order
  GET /health

Responses carry the registry fingerprint as ETag.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr := pickString(flagListen, optStrPtr(os.Getenv("GRIDLEGEND_LISTEN")), app.fc.Listen)
			if addr == "" {
				addr = defaultListen
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.NewApp(app.reg, log.StandardLogger())
			fmt.Fprintln(cmd.ErrOrStderr(), "Serving legend on", addr)
			log.WithFields(log.Fields{"addr": addr, "fingerprint": app.reg.Fingerprint()}).Info("listening")
			return server.Serve(ctx, srv, addr)
		},
	}
	cmd.Flags().StringVar(&flagListen, "listen", "", "listen address (default "+defaultListen+")")
	rootCmd.AddCommand(cmd)
}
