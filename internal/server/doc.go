// Package server provides HTTP routing, middleware, and the web surface the
// MCP server rides on.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first),
// following the standard Go pattern. The [BasicRouter] implementation uses
// [http.ServeMux] internally with method-scoped patterns.
//
// # OAuth Callback
//
// [CallbackHandler] receives the provider redirect carrying the authorization
// code and state nonce and hands both to the auth flow. The response is a
// fixed success or failure page; the handler never retries.
//
// # MCP Transport
//
// The streamable HTTP transport from github.com/mark3labs/mcp-go is mounted
// at POST /mcp alongside the callback, so one listener serves both the MCP
// client and the provider redirect.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib
// handler interface and adds routes, allowing handlers to register multiple
// routes and encapsulate route definitions within the implementation.
package server
