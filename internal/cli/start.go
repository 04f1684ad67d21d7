package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/botwatch-dev/botwatch/internal/config"
	"github.com/botwatch-dev/botwatch/internal/data/db"
	"github.com/botwatch-dev/botwatch/internal/obs"
	obsotel "github.com/botwatch-dev/botwatch/internal/obs/otel"
	"github.com/botwatch-dev/botwatch/internal/server"
)

// NewStartCmd returns the start command, which runs the API server in the
// foreground until SIGINT/SIGTERM.
func NewStartCmd(version string) *cobra.Command {
	var (
		port      int
		host      string
		noBrowser bool
	)

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the botwatch API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(resolveBaseDir())
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cmd.Flags().Visit(func(f *pflag.Flag) {
				switch f.Name {
				case "port":
					cfg.Port = port
				case "host":
					cfg.Host = host
				}
			})

			if err := obs.SetupLogger(cfg); err != nil {
				return fmt.Errorf("failed to set up logging: %w", err)
			}

			store, err := db.NewStore(cfg.BaseDir)
			if err != nil {
				return fmt.Errorf("failed to open store: %w", err)
			}
			defer store.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			meterSetup, err := obsotel.NewMeterSetup(ctx, meterConfig(cfg))
			if err != nil {
				return fmt.Errorf("failed to set up metrics: %w", err)
			}

			watcher, err := config.NewWatcher(cfg)
			if err != nil {
				logrus.Warnf("Config watcher unavailable: %v", err)
				watcher = nil
			} else {
				watcher.AddCallback(obs.ApplyLogLevel)
			}

			srv := server.NewServer(cfg, store,
				server.WithVersion(version),
				server.WithHost(cfg.Host),
				server.WithOpenBrowser(!noBrowser),
				server.WithMeterSetup(meterSetup),
				server.WithWatcher(watcher),
			)

			serverError := make(chan error, 1)
			go func() {
				serverError <- srv.Start(cfg.Port)
			}()

			select {
			case <-ctx.Done():
				logrus.Info("Shutting down...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			case err := <-serverError:
				return err
			}
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides config)")
	cmd.Flags().StringVar(&host, "host", "", "bind host (overrides config)")
	cmd.Flags().BoolVar(&noBrowser, "no-browser", false, "do not open the dashboard in a browser")

	return cmd
}

func meterConfig(cfg *config.Config) *obsotel.Config {
	mc := obsotel.DefaultConfig()
	mc.Enabled = cfg.Otel.Enabled
	mc.Stdout = cfg.Otel.Stdout
	mc.OTLPEndpoint = cfg.Otel.OTLPEndpoint
	if cfg.Otel.ExportIntervalSeconds > 0 {
		mc.ExportInterval = time.Duration(cfg.Otel.ExportIntervalSeconds) * time.Second
	}
	return mc
}
