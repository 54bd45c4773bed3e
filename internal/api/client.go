package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"worldcup-scoreboard/internal/constants"

	"github.com/valyala/fasthttp"
)

var ErrMalformedResponse = errors.New("malformed upstream response")

type APIError struct {
	URL    string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream %s returned status %d: %s", e.URL, e.Status, e.Body)
}

func newHTTPClient() *fasthttp.Client {
	return &fasthttp.Client{
		Name:                "worldcup-scoreboard",
		MaxConnsPerHost:     constants.UpstreamMaxConnsPerHost,
		ReadTimeout:         constants.ExternalAPITimeout,
		WriteTimeout:        constants.ExternalAPITimeout,
		MaxIdleConnDuration: constants.UpstreamIdleConnTTL,
	}
}

// get issues a GET, following redirects, and returns the final status and a
// copy of the final body.
func get(ctx context.Context, client *fasthttp.Client, url string) (int, []byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json, */*")

	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}

	if deadline, ok := ctx.Deadline(); ok {
		timeout := time.Until(deadline)
		if timeout <= 0 {
			return 0, nil, context.DeadlineExceeded
		}
		req.SetTimeout(timeout)
	}

	if err := client.DoRedirects(req, resp, constants.UpstreamMaxRedirects); err != nil {
		return 0, nil, err
	}

	body := append([]byte(nil), resp.Body()...)
	return resp.StatusCode(), body, nil
}

func doRequest[T any](ctx context.Context, client *fasthttp.Client, url string) (*T, error) {
	status, body, err := get(ctx, client, url)
	if err != nil {
		return nil, err
	}

	if status != fasthttp.StatusOK {
		if len(body) > constants.UpstreamErrorBodyLimit {
			body = body[:constants.UpstreamErrorBodyLimit]
		}
		return nil, &APIError{URL: url, Status: status, Body: strings.TrimSpace(string(body))}
	}

	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w from %s: %v", ErrMalformedResponse, url, err)
	}
	return &result, nil
}
