// Package kbrpc is a client for the kb_Msuite JSON-RPC 1.1 service.
//
// Each service method takes one parameter record from package params and
// returns one result record. Requests use the KBase envelope
// {id, method, version, params} with the auth token sent verbatim in the
// Authorization header.
package kbrpc

import "time"

// DefaultServiceURL is where a locally started msuite server listens.
const DefaultServiceURL = "http://localhost:5000/rpc"

// Default client settings.
const (
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = 1 * time.Second
)

// Config holds all configuration for the client.
type Config struct {
	// URL is the JSON-RPC endpoint.
	URL string

	// Token is the authentication token.
	Token string

	// Timeout is the HTTP client timeout for each request.
	Timeout time.Duration

	// MaxRetries is the maximum number of retry attempts for failed requests.
	MaxRetries int

	// RetryDelay is the initial delay between retries (exponential backoff applied).
	RetryDelay time.Duration
}

// DefaultConfig returns a Config pointing at DefaultServiceURL.
func DefaultConfig() Config {
	return Config{
		URL:        DefaultServiceURL,
		Timeout:    DefaultTimeout,
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
	}
}

// WithURL returns a copy of the config with the specified endpoint.
func (c Config) WithURL(url string) Config {
	c.URL = url
	return c
}

// WithToken returns a copy of the config with the specified token.
func (c Config) WithToken(token string) Config {
	c.Token = token
	return c
}

// WithTimeout returns a copy of the config with the specified timeout.
func (c Config) WithTimeout(timeout time.Duration) Config {
	c.Timeout = timeout
	return c
}

// WithRetries returns a copy of the config with the specified retry settings.
func (c Config) WithRetries(maxRetries int, retryDelay time.Duration) Config {
	c.MaxRetries = maxRetries
	c.RetryDelay = retryDelay
	return c
}
