package nostrum

import (
	"net/http"

	"github.com/bfolkens/nostrum/api"
	"github.com/bfolkens/nostrum/rate"
)

// Client is a rate-limit-aware Discord REST client. All facades share
// one HTTP client and one rate-limit bucket store, so limits observed by
// any operation throttle every other operation on the same route.
//
// Clients are independent of each other: two Clients keep separate
// bucket state, and nothing is stored in package globals.
type Client struct {
	httpClient *http.Client
	limiter    rate.Limiter

	messages *api.Messages
	channels *api.Channels
	users    *api.Users
}

func NewClient(token string, opts ...ConfigOption) *Client {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := &http.Client{}
	httpClient.Transport = cfg.transport
	httpClient.Timeout = cfg.timeout

	return &Client{
		httpClient: httpClient,
		limiter:    cfg.limiter,
		messages:   api.NewMessagesApi(token, httpClient, cfg.limiter, cfg.logger),
		channels:   api.NewChannelsApi(token, httpClient, cfg.limiter, cfg.logger),
		users:      api.NewUsersApi(token, httpClient, cfg.limiter, cfg.logger),
	}
}

func (c *Client) Messages() *api.Messages {
	return c.messages
}

func (c *Client) Channels() *api.Channels {
	return c.channels
}

func (c *Client) Users() *api.Users {
	return c.users
}

// RateLimiter returns the limiter shared by all facades.
func (c *Client) RateLimiter() rate.Limiter {
	return c.limiter
}
