package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/desertthunder/spotify-mcp/internal/auth"
	"github.com/desertthunder/spotify-mcp/internal/shared"
	"github.com/urfave/cli/v3"
)

func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Spotify authorization helpers",
		Commands: []*cli.Command{
			{
				Name:  "link",
				Usage: "Print the Spotify authorization URL",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
					&cli.BoolFlag{
						Name:  "open",
						Usage: "Open the authorization URL in the default browser",
					},
				},
				Action: r.AuthLink,
			},
			{
				Name:  "status",
				Usage: "Check authentication state of a running server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Address of the running server",
						Value: "http://localhost:3000",
					},
				},
				Action: r.AuthStatus,
			},
		},
	}
}

// AuthLink builds an authorization URL against the configured credentials.
//
// The URL printed here carries a fresh state nonce from this process, so the
// callback that consumes it must be served by this process too. Against a
// separately running server use the get-auth-link MCP tool instead.
func (r *Runner) AuthLink(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd.String("config"))

	if config.Credentials.Spotify.ClientID == "" || config.Credentials.Spotify.ClientSecret == "" {
		return fmt.Errorf("%w: spotify client credentials are not configured", shared.ErrMissingCredentials)
	}

	flow := auth.NewFlow(auth.FlowOpts{
		Credentials: config.Credentials.Spotify,
		Shortener:   auth.NewShortener(config.Shortener),
		Logger:      r.logger,
	})

	link := flow.AuthLink(ctx)
	if err := r.writePlain("%s\n", link); err != nil {
		return err
	}

	if cmd.Bool("open") {
		if err := shared.OpenBrowser(link); err != nil {
			r.logger.Warnf("failed to open browser: %v", err)
		}
	}

	return nil
}

// AuthStatus checks current authentication state by calling the /health endpoint.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	addr := cmd.String("addr")
	r.logger.Info("checking auth status", "addr", addr)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: service unavailable: %v", shared.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", shared.ErrServiceUnavailable, resp.StatusCode)
	}

	var health struct {
		Status        string `json:"status"`
		Authenticated bool   `json:"authenticated"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return fmt.Errorf("failed to decode health response: %w", err)
	}

	if err := r.writePlain("✓ Service is healthy\n"); err != nil {
		return err
	}
	if err := r.writePlain("Status: %s\n", health.Status); err != nil {
		return err
	}
	if health.Authenticated {
		return r.writePlain("Authentication: ✓ Authenticated\n")
	}
	return r.writePlain("Authentication: ✗ Not authenticated\n")
}
