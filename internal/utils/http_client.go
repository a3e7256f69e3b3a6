package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps [resty.Client] so outbound adapters share one way of
// building clients. All resty methods are available on it directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client whose requests are resolved against baseURL,
// carry headers and are bounded by timeout. A zero timeout leaves requests
// unbounded.
//
//	client := utils.NewHTTPClient("http://127.0.0.1:8200", 5*time.Second,
//	    map[string]string{"X-Vault-Token": token})
//	resp, err := client.R().Get("/v1/sys/health")
func NewHTTPClient(baseURL string, timeout time.Duration, headers map[string]string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeaders(headers)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
