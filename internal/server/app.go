package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotify-mcp/internal/auth"
	"github.com/desertthunder/spotify-mcp/internal/shared"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// App assembles the HTTP surface: the OAuth callback, the health endpoint,
// and the streamable MCP transport, behind a single router.
type App struct {
	config     *shared.Config
	logger     *log.Logger
	httpServer *http.Server
}

// AppOpts contains configuration options for creating an [App].
type AppOpts struct {
	Config     *shared.Config
	Logger     *log.Logger
	Flow       *auth.Flow
	MCP        *mcpserver.MCPServer
	SessionKey string
}

// NewApp wires the router and handlers for the given dependencies.
func NewApp(opts AppOpts) *App {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	router := NewBasicRouter()
	router.Use(Logging(opts.Logger))
	router.Handler(NewCallbackHandler(opts.Flow, opts.SessionKey, opts.Logger))
	router.Handler(NewHealthHandler(opts.Flow, opts.SessionKey))

	// Stateless mode: each MCP request is self-contained, matching the
	// single-tenant deployment where one process serves one account.
	streamable := mcpserver.NewStreamableHTTPServer(opts.MCP, mcpserver.WithStateLess(true))
	router.Handle(http.MethodPost, "/mcp", streamable)

	httpServer := &http.Server{
		Addr:              opts.Config.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &App{
		config:     opts.Config,
		logger:     opts.Logger,
		httpServer: httpServer,
	}
}

// Start runs the HTTP server until it is shut down or fails.
func (a *App) Start() error {
	a.logger.Info("spotify MCP server listening", "addr", a.config.Addr())
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (a *App) Shutdown(ctx context.Context) error {
	return a.httpServer.Shutdown(ctx)
}
