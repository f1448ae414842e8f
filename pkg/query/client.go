package query

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultEndpointTemplate is the upstream whois lookup API, with one %s verb
// for the URL-escaped domain.
const DefaultEndpointTemplate = "https://api.whoiscx.com/whois/?domain=%s"

// DomainQueryResult holds the key fields of one completed whois check.
type DomainQueryResult struct {
	Domain       string `json:"domain"`
	DomainSuffix string `json:"domain_suffix"`
	IsRegistered bool   `json:"is_registered"`
	QueryTime    string `json:"query_time,omitempty"`
}

// Lookuper performs one whois availability check per domain.
// This abstraction allows stub implementations in tests and alternative
// lookup backends behind the same orchestration.
type Lookuper interface {
	Lookup(ctx context.Context, domain string) (*DomainQueryResult, error)
}

// ClientPolicy configures a WhoisAPIClient. Fields are read at call time and
// must not be mutated concurrently with an in-flight lookup.
type ClientPolicy struct {
	// Timeout bounds one upstream request.
	Timeout time.Duration
	// MaxRetries is the number of additional attempts after the first.
	MaxRetries int
	// RetryDelay is slept between rate-limited attempts.
	RetryDelay time.Duration
	// RespectRateLimit enables the rate-limit retry heuristic.
	RespectRateLimit bool
}

// DefaultClientPolicy mirrors the upstream service's documented ceiling:
// one retry after a two second pause.
func DefaultClientPolicy() ClientPolicy {
	return ClientPolicy{
		Timeout:          10 * time.Second,
		MaxRetries:       1,
		RetryDelay:       2 * time.Second,
		RespectRateLimit: true,
	}
}

func (p ClientPolicy) clamped() ClientPolicy {
	if p.Timeout <= 0 {
		p.Timeout = 10 * time.Second
	}
	if p.MaxRetries < 0 {
		p.MaxRetries = 0
	}
	if p.RetryDelay < 0 {
		p.RetryDelay = 0
	}
	return p
}

// WhoisAPIClient queries the whoiscx HTTP lookup API.
type WhoisAPIClient struct {
	EndpointTemplate string
	Policy           ClientPolicy
	httpClient       *http.Client
}

// NewWhoisAPIClient builds a client with a tuned shared transport.
func NewWhoisAPIClient(policy ClientPolicy) *WhoisAPIClient {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   15 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		ForceAttemptHTTP2:   true,
	}
	return &WhoisAPIClient{
		EndpointTemplate: DefaultEndpointTemplate,
		Policy:           policy.clamped(),
		httpClient:       &http.Client{Transport: transport},
	}
}

// whoisEnvelope is the upstream response shape. IsAvailable is a pointer so
// that an absent indicator is distinguishable from zero.
type whoisEnvelope struct {
	Status int           `json:"status"`
	Data   *whoisPayload `json:"data"`
	Error  string        `json:"error"`
}

type whoisPayload struct {
	Domain       string `json:"domain"`
	DomainSuffix string `json:"domain_suffix"`
	IsAvailable  *int   `json:"is_available"`
	QueryTime    string `json:"query_time"`
}

// rateLimitTokens flag error messages worth retrying. The upstream reports
// throttling in both Chinese and English.
var rateLimitTokens = []string{"频次", "rate", "limit", "超限"}

func isRateLimited(message string) bool {
	normalized := strings.ToLower(message)
	for _, token := range rateLimitTokens {
		if strings.Contains(normalized, token) {
			return true
		}
	}
	return false
}

// shouldRetry decides, for a failed attempt, between retry-after-delay and
// terminal failure. Pure so the retry policy is testable without transport.
func shouldRetry(policy ClientPolicy, attempt int, message string) bool {
	return policy.RespectRateLimit && attempt < policy.MaxRetries && isRateLimited(message)
}

// Lookup checks one domain, retrying rate-limited responses per the policy.
// Network failures and non-JSON bodies are terminal immediately.
func (c *WhoisAPIClient) Lookup(ctx context.Context, domain string) (*DomainQueryResult, error) {
	policy := c.Policy.clamped()

	lastMessage := "unknown reason"
	for attempt := 0; attempt <= policy.MaxRetries; attempt++ {
		envelope, err := c.performRequest(ctx, domain, policy.Timeout)
		if err != nil {
			return nil, err
		}

		if envelope.Status == 1 {
			return resultFromPayload(domain, envelope.Data)
		}

		message := envelope.Error
		if message == "" {
			message = fmt.Sprintf("status %d with no error detail", envelope.Status)
		}
		lastMessage = message

		if shouldRetry(policy, attempt, message) {
			if err := sleepContext(ctx, policy.RetryDelay); err != nil {
				return nil, &LookupError{Domain: domain, Reason: "canceled during rate-limit backoff", Err: err}
			}
			continue
		}
		return nil, &LookupError{Domain: domain, Reason: "service returned error: " + message}
	}

	return nil, &LookupError{Domain: domain, Reason: "service returned error: " + lastMessage}
}

func (c *WhoisAPIClient) performRequest(ctx context.Context, domain string, timeout time.Duration) (*whoisEnvelope, error) {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	endpoint := fmt.Sprintf(c.EndpointTemplate, url.QueryEscape(domain))
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &LookupError{Domain: domain, Reason: fmt.Sprintf("cannot build request: %v", err), Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &LookupError{Domain: domain, Reason: fmt.Sprintf("request failed: %v", err), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &LookupError{Domain: domain, Reason: fmt.Sprintf("cannot read response: %v", err), Err: err}
	}

	var envelope whoisEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &LookupError{Domain: domain, Reason: "service returned non-JSON data", Err: err}
	}
	return &envelope, nil
}

// resultFromPayload maps a success envelope onto a result, falling back to
// the queried domain and its last dot-separated segment when the service
// omits them. A missing availability indicator is a malformed response, not
// an availability verdict.
func resultFromPayload(domain string, data *whoisPayload) (*DomainQueryResult, error) {
	if data == nil || data.IsAvailable == nil {
		return nil, &LookupError{Domain: domain, Reason: "response missing availability indicator"}
	}

	resolved := data.Domain
	if resolved == "" {
		resolved = domain
	}
	suffix := data.DomainSuffix
	if suffix == "" {
		parts := strings.Split(domain, ".")
		suffix = parts[len(parts)-1]
	}

	return &DomainQueryResult{
		Domain:       resolved,
		DomainSuffix: suffix,
		IsRegistered: *data.IsAvailable == 0,
		QueryTime:    data.QueryTime,
	}, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
