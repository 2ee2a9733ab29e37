// Package twilio sends text messages and places text-to-speech voice calls
// through the Twilio REST API using the official SDK.
//
// Every call takes a context so callers can bound it with a deadline, and
// outbound requests are rate limited to stay within the account's
// throughput.
package twilio

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	sdk "github.com/twilio/twilio-go"
	sdkclient "github.com/twilio/twilio-go/client"
	api "github.com/twilio/twilio-go/rest/api/v2010"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public Twilio REST host.
const DefaultBaseURL = "https://api.twilio.com"

const defaultTimeout = 30 * time.Second

// ErrChannel is returned when the provider rejects a request or cannot be reached.
var ErrChannel = errors.New("channel error")

// Client sends SMS messages and voice calls through one Twilio account.
type Client struct {
	accountSID string
	authToken  string
	from       string   // sender phone number
	endpoint   *url.URL // replaces the SDK's API host when set
	httpClient *http.Client
	limiter    *rate.Limiter
	rest       *sdk.RestClient
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL sends requests to another scheme and host. The SDK keeps
// building the resource paths.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u == "" {
			return
		}
		if parsed, err := url.Parse(u); err == nil && parsed.Host != "" {
			c.endpoint = parsed
		}
	}
}

// WithHTTPClient replaces the HTTP client the SDK sends requests with.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRate limits outbound requests to perSecond; non-positive means unlimited.
func WithRate(perSecond float64) Option {
	return func(c *Client) {
		if perSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		} else {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
		}
	}
}

// NewClient creates a new Twilio client for the given account.
func NewClient(accountSID, authToken, from string, opts ...Option) *Client {
	c := &Client{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		httpClient: &http.Client{Timeout: defaultTimeout},
		limiter:    rate.NewLimiter(rate.Inf, 1),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.rest = c.newRestClient()

	return c
}

func (c *Client) newRestClient() *sdk.RestClient {
	hc := *c.httpClient
	if c.endpoint != nil {
		base := hc.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		hc.Transport = endpointTransport{target: c.endpoint, base: base}
	}

	tc := &sdkclient.Client{
		Credentials: sdkclient.NewCredentials(c.accountSID, c.authToken),
		HTTPClient:  &hc,
	}
	tc.SetAccountSid(c.accountSID)

	return sdk.NewRestClientWithParams(sdk.ClientParams{Client: tc})
}

// SendSMS sends body to the phone number and returns the message SID.
func (c *Client) SendSMS(ctx context.Context, to, body string) (string, error) {
	params := &api.CreateMessageParams{}
	params.SetTo(to).SetFrom(c.from).SetBody(body)

	return c.create(ctx, func() (*string, error) {
		msg, err := c.rest.Api.CreateMessage(params)
		if err != nil {
			return nil, err
		}
		return msg.Sid, nil
	})
}

// PlaceCall calls the phone number, reads script aloud and returns the call SID.
func (c *Client) PlaceCall(ctx context.Context, to, script string) (string, error) {
	twiml, err := sayTwiML(script)
	if err != nil {
		return "", fmt.Errorf("%w: build twiml: %v", ErrChannel, err)
	}

	params := &api.CreateCallParams{}
	params.SetTo(to).SetFrom(c.from).SetTwiml(twiml)

	return c.create(ctx, func() (*string, error) {
		call, err := c.rest.Api.CreateCall(params)
		if err != nil {
			return nil, err
		}
		return call.Sid, nil
	})
}

// create runs one SDK request. The SDK does not take a context, so the
// request runs in its own goroutine and is abandoned when ctx ends; the
// HTTP client timeout bounds it from there.
func (c *Client) create(ctx context.Context, do func() (*string, error)) (string, error) {
	if c.from == "" {
		return "", fmt.Errorf("%w: sender phone number not configured", ErrChannel)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: rate limit wait: %v", ErrChannel, err)
	}

	type result struct {
		sid *string
		err error
	}
	done := make(chan result, 1)

	go func() {
		sid, err := do()
		done <- result{sid: sid, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %v", ErrChannel, ctx.Err())
	case res := <-done:
		if res.err != nil {
			return "", channelError(res.err)
		}
		if res.sid == nil || *res.sid == "" {
			return "", fmt.Errorf("%w: response has no sid", ErrChannel)
		}
		return *res.sid, nil
	}
}

func channelError(err error) error {
	var restErr *sdkclient.TwilioRestError
	if errors.As(err, &restErr) {
		return fmt.Errorf("%w: twilio API error %d (status %d): %s", ErrChannel, restErr.Code, restErr.Status, restErr.Message)
	}

	return fmt.Errorf("%w: %v", ErrChannel, err)
}

// endpointTransport rewrites the scheme and host of every request.
type endpointTransport struct {
	target *url.URL
	base   http.RoundTripper
}

func (t endpointTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.URL.Scheme = t.target.Scheme
	r.URL.Host = t.target.Host
	r.Host = t.target.Host

	return t.base.RoundTrip(r)
}

// sayTwiML wraps the script in a single <Say> verb.
func sayTwiML(script string) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(`<Response><Say voice="alice" language="en-US">`)
	if err := xml.EscapeText(&buf, []byte(script)); err != nil {
		return "", err
	}
	buf.WriteString(`</Say></Response>`)

	return buf.String(), nil
}
