package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/desertthunder/spotify-mcp/internal/auth"
	"github.com/desertthunder/spotify-mcp/internal/server"
	"github.com/desertthunder/spotify-mcp/internal/services"
	"github.com/desertthunder/spotify-mcp/internal/shared"
	"github.com/desertthunder/spotify-mcp/internal/tools"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 10 * time.Second

func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the MCP server and OAuth callback endpoint",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Port to listen on; overrides the configured port",
			},
		},
		Action: r.Serve,
	}
}

// Serve wires the authorization flow, the API client and the MCP tool surface
// into one HTTP server and blocks until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd.String("config"))
	if port := cmd.Int("port"); port > 0 {
		config.Server.Port = int(port)
	}

	store := auth.NewTokenStore()
	flow := auth.NewFlow(auth.FlowOpts{
		Credentials: config.Credentials.Spotify,
		Store:       store,
		Shortener:   auth.NewShortener(config.Shortener),
		Logger:      r.logger,
	})

	// One process, one session. The store stays keyed so multi-session
	// deployments only need to mint keys per client.
	sessionKey := shared.GenerateID()

	client := services.NewClient(services.ClientOpts{
		Store:      store,
		SessionKey: sessionKey,
		Logger:     r.logger,
	})

	mcpServer := tools.NewServer(tools.RegistryOpts{
		Client: client,
		Flow:   flow,
		Logger: r.logger,
	})

	app := server.NewApp(server.AppOpts{
		Config:     config,
		Logger:     r.logger,
		Flow:       flow,
		MCP:        mcpServer,
		SessionKey: sessionKey,
	})

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("starting server", "addr", config.Addr())
		errCh <- app.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		r.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.Shutdown(shutdownCtx)
	}
}

// loadConfig reads the config at path, falling back to the runner's config
// when the file is absent or malformed. Environment variables win either way.
func (r *Runner) loadConfig(path string) *shared.Config {
	config := r.config
	if loaded, err := shared.LoadConfig(path); err == nil {
		config = loaded
	} else {
		r.logger.Debug("using default config", "path", path, "error", err)
	}
	config.ApplyEnv()
	return config
}
