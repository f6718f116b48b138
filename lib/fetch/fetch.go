// Package fetch is the plain HTTP transport for roster pages. Athletic
// sites commonly sit behind Cloudflare bot protection, so the client
// transport carries the bypass wrapper and a desktop browser
// user-agent.
package fetch

import (
	"context"
	"time"

	"rosterharvest/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:106.0) Gecko/20100101 Firefox/106.0"

type Client struct {
	http *resty.Client
}

func NewClient() *Client {
	client := resty.New()
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", userAgent)
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "lib/fetch")

	return &Client{http: client}
}

// Fetch retrieves one URL. Non-success statuses are returned to the
// caller, not treated as errors; the orchestrator decides what a 404
// means.
func (c *Client) Fetch(ctx context.Context, url string) (int, []byte, error) {
	res, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return 0, nil, err
	}
	return res.StatusCode(), res.Body(), nil
}
