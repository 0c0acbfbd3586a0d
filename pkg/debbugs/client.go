package debbugs

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/beevik/etree"
	"github.com/godebbugs/debbugs/pkg/logging"
	"github.com/godebbugs/debbugs/pkg/soap"
)

// DefaultEndpoint is the SOAP endpoint of the Debian bug tracking system.
const DefaultEndpoint = "https://bugs.debian.org/cgi-bin/soap.cgi"

const defaultTimeout = 30 * time.Second

// Convenience aliases so callers rarely need to import pkg/soap directly.
type (
	// BugID identifies a bug record.
	BugID = soap.BugID
	// BugReport is the status record of one bug.
	BugReport = soap.BugReport
	// BugLog is one correspondence entry from a bug's message log.
	BugLog = soap.BugLog
	// SearchQuery selects bugs by any combination of criteria.
	SearchQuery = soap.SearchQuery
)

// Config holds construction options for a Client. The zero value targets the
// Debian instance with sane timeouts.
type Config struct {
	// Endpoint is the SOAP endpoint URL. Defaults to DefaultEndpoint.
	Endpoint string

	// ActionNamespace, when set, prefixes the SOAPAction header value as
	// "<namespace>#<operation>". Some deployments require the qualified form;
	// the default is the bare operation name.
	ActionNamespace string

	// Timeout bounds each HTTP call. Ignored when HTTPClient is set.
	// Defaults to 30 seconds.
	Timeout time.Duration

	// HTTPClient overrides the HTTP client used for requests.
	HTTPClient *http.Client
}

// Client talks to one Debbugs instance. Methods are safe for concurrent use;
// each call is one independent HTTP request with no ordering guarantee
// relative to others.
type Client struct {
	endpoint        string
	actionNamespace string
	httpClient      *http.Client

	log      *slog.Logger
	loggerMu sync.RWMutex
}

// NewClient creates a client for a Debbugs instance. A nil config targets
// the Debian instance.
func NewClient(cfg *Config) *Client {
	if cfg == nil {
		cfg = &Config{}
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		endpoint:        endpoint,
		actionNamespace: cfg.ActionNamespace,
		httpClient:      httpClient,
		log:             logging.Nop(),
	}
}

// SetLogger sets the operational logger for the client.
func (c *Client) SetLogger(log *slog.Logger) {
	c.loggerMu.Lock()
	defer c.loggerMu.Unlock()
	if log != nil {
		c.log = log
	} else {
		c.log = logging.Nop()
	}
}

func (c *Client) logger() *slog.Logger {
	c.loggerMu.RLock()
	defer c.loggerMu.RUnlock()
	return c.log
}

// action returns the SOAPAction header value for an operation.
func (c *Client) action(op string) string {
	if c.actionNamespace == "" {
		return op
	}
	return c.actionNamespace + "#" + op
}

// send serializes the request document, posts it, and returns the response
// text. An HTTP error status is decoded into a *FaultError; transport errors
// pass through unmodified.
func (c *Client) send(ctx context.Context, doc *etree.Document, op string) (string, error) {
	body, err := doc.WriteToBytes()
	if err != nil {
		return "", err
	}

	log := c.logger()
	log.Debug("sending soap request", "operation", op, "endpoint", c.endpoint)
	log.Debug("soap request body", "body", string(body))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "text/xml")
	req.Header.Set("SOAPAction", c.action(op))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	log.Debug("soap response", "operation", op, "status", resp.StatusCode, "body", string(text))

	if resp.StatusCode >= 400 {
		fault, ferr := soap.ParseFault(string(text))
		if ferr != nil {
			return "", &StatusError{StatusCode: resp.StatusCode, Err: ferr}
		}
		return "", &FaultError{Fault: fault}
	}

	return string(text), nil
}

// NewestBugs returns the IDs of the most recently filed bugs, newest first.
func (c *Client) NewestBugs(ctx context.Context, amount int) ([]BugID, error) {
	text, err := c.send(ctx, soap.NewestBugsRequest(amount), "newest_bugs")
	if err != nil {
		return nil, err
	}
	return soap.ParseNewestBugsResponse(text)
}

// GetBugs returns the IDs of the bugs matching a search query.
func (c *Client) GetBugs(ctx context.Context, query *SearchQuery) ([]BugID, error) {
	text, err := c.send(ctx, soap.GetBugsRequest(query), "get_bugs")
	if err != nil {
		return nil, err
	}
	return soap.ParseGetBugsResponse(text)
}

// GetStatus returns the status records of the given bugs, keyed by bug ID.
func (c *Client) GetStatus(ctx context.Context, ids []BugID) (map[BugID]*BugReport, error) {
	text, err := c.send(ctx, soap.GetStatusRequest(ids), "get_status")
	if err != nil {
		return nil, err
	}
	return soap.ParseGetStatusResponse(text)
}

// GetBugLog returns all correspondence recorded for one bug, in order.
func (c *Client) GetBugLog(ctx context.Context, id BugID) ([]BugLog, error) {
	text, err := c.send(ctx, soap.GetBugLogRequest(id), "get_bug_log")
	if err != nil {
		return nil, err
	}
	return soap.ParseGetBugLogResponse(text)
}

// GetUsertag returns the bugs a user has tagged, keyed by tag name. With no
// tags given, all of the user's tags are returned.
func (c *Client) GetUsertag(ctx context.Context, email string, tags ...string) (map[string][]BugID, error) {
	text, err := c.send(ctx, soap.GetUsertagRequest(email, tags...), "get_usertag")
	if err != nil {
		return nil, err
	}
	return soap.ParseGetUsertagResponse(text)
}
