package api

import (
	"bytes"
	"context"
	"net/url"
	"strings"
	"worldcup-scoreboard/internal/config"

	"github.com/valyala/fasthttp"
)

// htmlMarker is what the flag service answers with, status 200, when it has
// no image for the requested key.
var htmlMarker = []byte("<!DOCTYPE html>")

type FlagClient struct {
	baseURL string
	client  *fasthttp.Client
}

func NewFlagClient(cfg *config.Config) *FlagClient {
	return &FlagClient{
		baseURL: strings.TrimRight(cfg.FlagBaseURL, "/"),
		client:  newHTTPClient(),
	}
}

func (c *FlagClient) URLFor(key string) string {
	return c.baseURL + "/" + url.PathEscape(key)
}

// ResolveFlag probes the flag service with the country code and switches to
// the team display name when the probe comes back as an HTML page. On a
// transport error the country source is returned together with the error.
func (c *FlagClient) ResolveFlag(ctx context.Context, name, country string) (string, error) {
	byCountry := c.URLFor(country)

	status, body, err := get(ctx, c.client, byCountry)
	if err != nil {
		return byCountry, err
	}

	if status == fasthttp.StatusOK && bytes.Contains(body, htmlMarker) {
		return c.URLFor(name), nil
	}
	return byCountry, nil
}
