package auth

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotify-mcp/internal/shared"
	"golang.org/x/oauth2"
)

const (
	spotifyAuthURL  = "https://accounts.spotify.com/authorize"
	spotifyTokenURL = "https://accounts.spotify.com/api/token"

	stateLength     = 16
	exchangeTimeout = 10 * time.Second

	// StateTTL bounds how long an issued state nonce stays redeemable. Links
	// that sit unclicked past this window need a fresh one.
	StateTTL = 10 * time.Minute
)

// scopes is the full set of permissions requested on every authorization link.
var scopes = []string{
	// Spotify Connect
	"user-read-playback-state",
	"user-modify-playback-state",
	"user-read-currently-playing",

	// Playlists
	"playlist-read-private",
	"playlist-read-collaborative",
	"playlist-modify-private",
	"playlist-modify-public",

	// Follow
	"user-follow-modify",
	"user-follow-read",

	// Listening history
	"user-read-playback-position",
	"user-top-read",
	"user-read-recently-played",

	// Library
	"user-library-modify",
	"user-library-read",

	// Users
	"user-read-email",
	"user-read-private",
}

// Flow drives the OAuth2 authorization-code flow: it builds authorization
// links, verifies the state nonce returned on the callback, and exchanges
// authorization codes for access tokens stored in a [TokenStore].
type Flow struct {
	config     *oauth2.Config
	store      *TokenStore
	shortener  *Shortener
	httpClient *http.Client
	logger     *log.Logger

	mu      sync.Mutex
	pending map[string]time.Time
	now     func() time.Time
}

// FlowOpts contains configuration options for creating a [Flow].
type FlowOpts struct {
	Credentials shared.SpotifyConfig
	Store       *TokenStore
	Shortener   *Shortener
	Logger      *log.Logger
	HTTPClient  *http.Client

	// Endpoint overrides the Spotify accounts endpoints, for tests.
	Endpoint *oauth2.Endpoint
}

// NewFlow creates a Flow for the given Spotify credentials.
//
// Missing credentials do not fail construction; the exchange fails against the
// real provider instead.
func NewFlow(opts FlowOpts) *Flow {
	endpoint := oauth2.Endpoint{
		AuthURL:  spotifyAuthURL,
		TokenURL: spotifyTokenURL,
		// Spotify requires HTTP Basic credentials on the token endpoint.
		AuthStyle: oauth2.AuthStyleInHeader,
	}
	if opts.Endpoint != nil {
		endpoint = *opts.Endpoint
		endpoint.AuthStyle = oauth2.AuthStyleInHeader
	}

	if opts.Store == nil {
		opts.Store = NewTokenStore()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: exchangeTimeout}
	}

	config := &oauth2.Config{
		ClientID:     opts.Credentials.ClientID,
		ClientSecret: opts.Credentials.ClientSecret,
		RedirectURL:  opts.Credentials.RedirectURI,
		Scopes:       scopes,
		Endpoint:     endpoint,
	}

	return &Flow{
		config:     config,
		store:      opts.Store,
		shortener:  opts.Shortener,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		pending:    make(map[string]time.Time),
		now:        time.Now,
	}
}

// Store returns the token store the flow writes into.
func (f *Flow) Store() *TokenStore {
	return f.store
}

// AuthLink builds an authorization URL carrying the full scope list and a
// fresh state nonce, then attempts to shorten it.
//
// Shortening is cosmetic: any shortener failure degrades silently to the
// canonical long URL and never surfaces to the caller.
func (f *Flow) AuthLink(ctx context.Context) string {
	state := shared.RandomState(stateLength)

	f.mu.Lock()
	for s, issued := range f.pending {
		if f.now().Sub(issued) > StateTTL {
			delete(f.pending, s)
		}
	}
	f.pending[state] = f.now()
	f.mu.Unlock()

	link := f.config.AuthCodeURL(state)

	if f.shortener != nil {
		short, err := f.shortener.Shorten(ctx, link)
		if err != nil {
			f.logger.Warn("url shortening failed, using long url", "err", err)
			return link
		}
		return short
	}

	return link
}

// ReceiveToken completes the authorization-code flow for a session: it
// verifies the callback state against an issued nonce, exchanges the code at
// the token endpoint, and stores the resulting access token.
//
// Any failure (unknown state, non-2xx exchange, transport error) returns
// false and leaves the session's authentication state unchanged.
func (f *Flow) ReceiveToken(ctx context.Context, sessionKey, code, state string) bool {
	if !f.consumeState(state) {
		f.logger.Warn("rejected callback with unknown state", "state", state)
		return false
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, f.httpClient)
	token, err := f.config.Exchange(ctx, code)
	if err != nil {
		f.logger.Error("token exchange failed", "err", err)
		return false
	}

	f.store.Set(sessionKey, token.AccessToken)
	f.logger.Info("session authenticated", "session", sessionKey)
	return true
}

// Authenticated reports whether the session holds a live token.
func (f *Flow) Authenticated(sessionKey string) bool {
	return f.store.Authenticated(sessionKey)
}

// consumeState checks a callback state nonce against the issued set and
// removes it. Each nonce is good for exactly one callback within [StateTTL]
// of issuance.
func (f *Flow) consumeState(state string) bool {
	if state == "" {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	issued, ok := f.pending[state]
	if !ok {
		return false
	}
	delete(f.pending, state)
	return f.now().Sub(issued) <= StateTTL
}
