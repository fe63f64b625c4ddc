package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/KaramelBytes/reelviz-cli/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveAddr      string
	serveMinWeight int
	serveFrom      int
	serveTo        int
)

var serveCmd = &cobra.Command{
	Use:   "serve [file]",
	Short: "Serve the linked chord diagram and poster gallery locally",
	Long: `serve starts a local page with the co-star chord diagram next to a
poster gallery. Clicking a ribbon narrows the gallery to that pair's films;
clicking a poster re-scopes the diagram to that film's cast. Clicking the
same item again clears the selection.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(args)
		if err != nil {
			return err
		}
		c, err := currentConfig()
		if err != nil {
			return err
		}
		addr := c.ListenAddr
		if serveAddr != "" {
			addr = serveAddr
		}
		minWeight := c.MinEdgeWeight
		if cmd.Flags().Changed("min-weight") {
			minWeight = serveMinWeight
		}
		h := server.NewHandler(t, server.Options{
			Size:          c.Size(),
			Theme:         c.Theme(),
			Chord:         c.ChordOptions(),
			MinEdgeWeight: minWeight,
			FromYear:      serveFrom,
			ToYear:        serveTo,
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.Run(ctx, addr, h.Router())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, 127.0.0.1:8080)")
	serveCmd.Flags().IntVar(&serveMinWeight, "min-weight", 1, "initial minimum shared films per pair (overrides config)")
	serveCmd.Flags().IntVar(&serveFrom, "from", 0, "initial first release year (0 = open)")
	serveCmd.Flags().IntVar(&serveTo, "to", 0, "initial last release year (0 = open)")
}
