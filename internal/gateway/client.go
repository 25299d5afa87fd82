package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"remotesms/internal/domain"
)

// HTTP is a gateway client.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for the gateway at base. A nil hc uses
// http.DefaultClient.
func NewHTTP(base string, hc *http.Client) *HTTP {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

// SendMessage enqueues env for env.To.
func (c *HTTP) SendMessage(ctx context.Context, env domain.Envelope) error {
	return c.post(ctx, msgPath(env.To), env, nil)
}

// FetchMessages returns up to limit queued envelopes for addr without
// removing them. A limit of zero or less returns all of them.
func (c *HTTP) FetchMessages(ctx context.Context, addr domain.Address, limit int) ([]domain.Envelope, error) {
	u := c.Base + msgPath(addr)
	if limit > 0 {
		u += "?limit=" + strconv.Itoa(limit)
	}
	var envs []domain.Envelope
	if err := c.getJSON(ctx, u, &envs); err != nil {
		return nil, err
	}
	return envs, nil
}

// AckMessages drops the first count envelopes queued for addr.
func (c *HTTP) AckMessages(ctx context.Context, addr domain.Address, count int) error {
	return c.post(ctx, msgPath(addr)+"/ack", ackRequest{Count: count}, nil)
}

// Healthy reports whether the gateway answers its health check.
func (c *HTTP) Healthy(ctx context.Context) error {
	return c.getJSON(ctx, c.Base+"/healthz", nil)
}

func msgPath(addr domain.Address) string {
	return "/msg/" + url.PathEscape(addr.String())
}

func (c *HTTP) post(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	u := c.Base + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("gateway POST %s: %s", u, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *HTTP) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("gateway GET %s: %s", u, resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

var _ domain.GatewayClient = (*HTTP)(nil)
