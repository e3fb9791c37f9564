package httpclient

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 10 * time.Second

// NewTransport builds the resty client shared by every provider adapter.
// The caller owns it and must call CloseTransport when done.
func NewTransport(timeout time.Duration, userAgent string) *resty.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	client := resty.New().SetTimeout(timeout)
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}
	return client
}

func CloseTransport(client *resty.Client) {
	if client == nil {
		return
	}
	client.GetClient().CloseIdleConnections()
}
