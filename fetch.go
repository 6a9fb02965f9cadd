package pagecache

import (
	"context"
	"io"
	"net/http"

	"github.com/hashicorp/go-cleanhttp"
)

// NewHTTPFetcher returns a FetchFunc that GETs a URL and returns its body as
// text. The status code is not inspected. A nil client uses a pooled client
// from go-cleanhttp.
func NewHTTPFetcher(client *http.Client) FetchFunc {
	if client == nil {
		client = cleanhttp.DefaultPooledClient()
	}
	return func(ctx context.Context, url string) (string, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return "", err
		}
		resp, err := client.Do(req)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", err
		}
		return string(body), nil
	}
}
