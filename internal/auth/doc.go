// Package auth implements the session and token lifecycle for the Spotify
// authorization-code flow.
//
// # Token Store
//
// [TokenStore] is an in-memory map from session key to access token with a
// fixed one-hour TTL. Expired records are evicted lazily the first time a read
// observes them. There is no logout or revocation path; expiry is the only
// eviction trigger.
//
// # Authorization Flow
//
// [Flow] owns all mutation of the token store. [Flow.AuthLink] assembles the
// provider authorization URL (scopes, state nonce, redirect URI) and attempts
// a cosmetic shorten via [Shortener]; [Flow.ReceiveToken] completes the
// code-for-token exchange on the OAuth callback.
//
// State nonces are single-use: each issued nonce is recorded in-flight and
// consumed on its first callback, so a callback carrying an unknown or reused
// state is rejected.
//
// # Error Handling
//
// ReceiveToken reports failure as a boolean rather than an error: the callback
// endpoint only needs to pick between a fixed success and failure page, and no
// failure in the flow is recoverable by the caller. Shortening failures are
// swallowed entirely and logged at warn level.
package auth
