// Package zapix is a client for the Zabbix JSON-RPC API. It speaks
// JSON-RPC 2.0 over HTTP POST against <server>/api_jsonrpc.php and keeps
// the auth token, request id counter and detected server version of one
// session. A Client is meant for single-threaded use; wrap calls with
// your own locking if you need to share one.
package zapix

import (
	"fmt"
	"strings"
	"time"

	"github.com/blang/semver/v4"
	"github.com/pquerna/ffjson/ffjson"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

const (
	// DefaultServer is used when NewClient is given an empty server URL.
	DefaultServer = "http://localhost/zabbix"

	endpointSuffix   = "/api_jsonrpc.php"
	contentType      = "application/json-rpc"
	defaultUserAgent = "go/zapix"
)

// Client holds one session against one Zabbix server.
type Client struct {
	url       string
	client    *fasthttp.Client
	timeout   time.Duration
	userAgent string
	log       zerolog.Logger

	useAuthenticate bool
	detectVersion   bool

	auth        string
	useAPIToken bool
	id          uint64
	version     semver.Version
	hasVersion  bool
}

// An Option adjusts a Client under construction.
type Option func(*Client)

// WithHTTPClient installs a pre-configured fasthttp client, for example
// one with TLS settings or its own read/write timeouts.
func WithHTTPClient(hc *fasthttp.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithTimeout bounds every request round-trip. Zero means no deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLegacyAuth makes Login use the old (Zabbix 1.8) user.authenticate
// call instead of user.login.
func WithLegacyAuth() Option {
	return func(c *Client) { c.useAuthenticate = true }
}

// WithoutVersionDetection skips the apiinfo.version call on login. The
// pre-5.4 user.login field name is then used.
func WithoutVersionDetection() Option {
	return func(c *Client) { c.detectVersion = false }
}

// WithLogger installs a logger for this client only.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithUserAgent overrides the User-Agent header sent on every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient returns a client for the Zabbix frontend at server, given as
// the base URI of the web interface. A trailing slash and a missing
// /api_jsonrpc.php suffix are both tolerated.
func NewClient(server string, opts ...Option) *Client {
	if server == "" {
		server = DefaultServer
	}
	c := &Client{
		url:           endpointURL(server),
		client:        &fasthttp.Client{},
		userAgent:     defaultUserAgent,
		log:           defaultLogger,
		detectVersion: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log.Info().Str("endpoint", c.url).Msg("JSON-RPC server endpoint")
	return c
}

// endpointURL normalizes a frontend base URI to the RPC endpoint.
func endpointURL(server string) string {
	if strings.HasSuffix(server, endpointSuffix) {
		return server
	}
	return strings.TrimRight(server, "/") + endpointSuffix
}

// Do performs one JSON-RPC round-trip and returns the result member of
// the response as decoded JSON. A slice params value carries positional
// arguments, a map or struct carries named ones; nil sends an empty
// mapping. A server-reported error comes back as *APIError, anything
// below the JSON-RPC layer as *ProtocolError. The request id advances
// exactly once per attempt, whether or not a usable response came back.
func (c *Client) Do(method string, params interface{}) (interface{}, error) {
	if params == nil {
		params = struct{}{}
	}
	env := clientRequest{
		Version: Version,
		Method:  method,
		Params:  params,
		ID:      c.id,
	}
	// apiinfo.version and user.checkAuthentication must succeed before
	// authentication, everything else carries the token.
	if c.auth != "" && method != methodAPIVersion && method != methodCheckAuth {
		env.Auth = c.auth
	}

	body, err := ffjson.Marshal(&env)
	if err != nil {
		return nil, &ProtocolError{Message: "encoding request for " + method, Err: err}
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(c.url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType(contentType)
	req.Header.SetUserAgent(c.userAgent)
	req.Header.Set(fasthttp.HeaderCacheControl, "no-cache")
	req.SetBody(body)
	ffjson.Pool(body)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	c.log.Debug().Str("method", method).Uint64("id", env.ID).Msg("sending request")

	if c.timeout > 0 {
		err = c.client.DoTimeout(req, resp, c.timeout)
	} else {
		err = c.client.Do(req, resp)
	}

	// One id per attempt, advanced before the response is judged.
	c.id++

	if err != nil {
		return nil, &ProtocolError{Message: "posting request", Err: err}
	}

	status := resp.StatusCode()
	c.log.Debug().Int("status", status).Msg("response received")

	// NOTE: a 412 here means a request header is not in the server's
	// list of allowed headers.
	if status < fasthttp.StatusOK || status >= fasthttp.StatusMultipleChoices {
		return nil, &ProtocolError{Message: fmt.Sprintf("unexpected HTTP status %d", status)}
	}
	if len(resp.Body()) == 0 {
		return nil, &ProtocolError{Message: "received empty response"}
	}

	var renv clientResponse
	if err := ffjson.Unmarshal(resp.Body(), &renv); err != nil {
		return nil, &ProtocolError{Message: "unable to parse response body", Err: err}
	}

	if renv.Error != nil {
		// Some errors don't contain the data member: workaround for ZBX-9340.
		if renv.Error.Data == nil {
			renv.Error.Data = NoData
		}
		return nil, renv.Error
	}
	return renv.Result, nil
}
