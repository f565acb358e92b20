// Package services implements the Spotify Web API surface: a single
// authenticated [Client] dispatcher, one method per remote capability, and
// the slimmed projections their results pass through.
//
// # Request Dispatch
//
// [Client.Request] is the only place that knows the API base URL and the
// bearer-token mechanics. Every domain operation routes through it. The
// dispatcher:
//   - rejects calls for sessions without a live token before any network I/O
//   - waits on a client-side rate limiter
//   - attaches the Authorization header and JSON content type
//   - normalizes non-2xx responses into [*APIError] values carrying the
//     provider's error message when present
//
// # Error Handling
//
// [APIError.Unwrap] maps upstream statuses onto sentinels from the shared
// package so callers branch with errors.Is:
//   - 401 → [shared.ErrTokenExpired] : reauthorization needed
//   - 403 → [shared.ErrPermissionDenied] : e.g. modifying another user's playlist
//   - 404 → [shared.ErrResourceNotFound]
//   - anything else → [shared.ErrAPIRequest]
//
// A 204 is success, not an error: the playback-state operations translate it
// into a [PlaybackSummary] whose Status says nothing is playing.
//
// No operation retries; a failure surfaces immediately to the caller.
//
// # Slimming
//
// Raw responses are projected by the Slim* functions before they leave this
// package, so consumers only ever see the stable summary shapes.
package services
