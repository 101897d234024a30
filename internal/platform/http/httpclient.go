// Package http builds HTTP clients for outbound API calls.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient returns a client configured for external API calls.
// http.DefaultClient has no timeout, so outbound requests always go through
// a client built here. The transport keeps a pool of idle connections to
// avoid re-dialing the quote source on every fetch.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
