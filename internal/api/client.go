package api

import (
	"context"
	"encoding/json"
	"fmt"

	"nba-bot/internal/constants"
	"nba-bot/internal/domain"

	"github.com/valyala/fasthttp"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// HTTPClient is the transport shared by every upstream fetcher.
type HTTPClient struct {
	client  *fasthttp.Client
	headers map[string]string
}

func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		client: &fasthttp.Client{
			MaxConnsPerHost:     constants.UpstreamMaxConns,
			ReadTimeout:         constants.UpstreamReadTimeout,
			WriteTimeout:        constants.UpstreamWriteTimeout,
			MaxIdleConnDuration: constants.UpstreamIdleTimeout,
		},
		headers: map[string]string{
			"Accept":     "application/json, text/plain, */*",
			"Referer":    "https://www.nba.com/",
			"Origin":     "https://www.nba.com",
			"User-Agent": userAgent,
		},
	}
}

// Get returns the (decompressed) body of a GET request. Anything but a 200 is an error.
func (c *HTTPClient) Get(ctx context.Context, url string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	return c.do(ctx, req)
}

// PostJSON sends payload as a JSON body and returns the response body.
func (c *HTTPClient) PostJSON(ctx context.Context, url string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request for %s: %w", url, err)
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(body)
	return c.do(ctx, req)
}

func (c *HTTPClient) do(ctx context.Context, req *fasthttp.Request) ([]byte, error) {
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	method, url := string(req.Header.Method()), req.URI().String()

	deadline, ok := ctx.Deadline()
	if ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, fmt.Errorf("%w: %s %s: %w", domain.ErrUpstream, method, url, err)
		}
	} else {
		if err := c.client.Do(req, resp); err != nil {
			return nil, fmt.Errorf("%w: %s %s: %w", domain.ErrUpstream, method, url, err)
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("%w: %s %s: status %d", domain.ErrUpstream, method, url, resp.StatusCode())
	}

	body, err := resp.BodyUncompressed()
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", domain.ErrDecode, method, url, err)
	}

	// resp is released on return
	return append([]byte(nil), body...), nil
}

func doRequest[T any](ctx context.Context, client *HTTPClient, url string) (*T, error) {
	body, err := client.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrDecode, url, err)
	}
	return &result, nil
}
