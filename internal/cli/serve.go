package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/mdtoc/internal/api"
	"github.com/dgallion1/mdtoc/internal/parser"
)

func newServeCommand(opts *globalOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve [root]",
		Short: "Serve the outline and rendered documents over HTTP",
		Long: `Start a preview server for the documentation root. The outline is
recomputed on every request, so edits show up without a restart.`,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "docs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts, args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			log := newLogger(cfg, cmd.ErrOrStderr())

			src, err := newSource(cfg)
			if err != nil {
				return err
			}
			gen := newGenerator(cfg, src, log, true, false)
			srv := api.NewServer(gen, os.DirFS(cfg.Root), parser.NewMarkdownParser(), log, cfg)

			httpServer := &http.Server{
				Addr:         ":" + cfg.Port,
				Handler:      srv,
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 60 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			ctx := cmd.Context()
			go func() {
				<-ctx.Done()
				log.Info("shutting down...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				httpServer.Shutdown(shutdownCtx)
			}()

			log.Info("starting mdtoc preview server", "port", cfg.Port, "root", cfg.Root)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return commandError(err, serveFailedCode, "serve failed")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (env PORT, default 8090)")
	return cmd
}
