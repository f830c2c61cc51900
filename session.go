package zapix

import (
	"errors"
	"fmt"

	"github.com/blang/semver/v4"
)

const (
	methodAPIVersion = "apiinfo.version"
	methodCheckAuth  = "user.checkAuthentication"
)

// loginFieldVersion is the first server version whose user.login call
// takes a "username" member instead of "user".
var loginFieldVersion = semver.MustParse("5.4.0")

// APIVersion asks the server for its API version. The call works without
// authentication.
func (c *Client) APIVersion() (string, error) {
	res, err := c.Do(methodAPIVersion, nil)
	if err != nil {
		return "", err
	}
	s, ok := res.(string)
	if !ok {
		return "", &ProtocolError{Message: fmt.Sprintf("unexpected apiinfo.version result of type %T", res)}
	}
	return s, nil
}

// Version returns the server API version detected during login, empty
// until one has been resolved.
func (c *Client) Version() string {
	if !c.hasVersion {
		return ""
	}
	return c.version.String()
}

func (c *Client) detectServerVersion() error {
	if !c.detectVersion || c.hasVersion {
		return nil
	}
	raw, err := c.APIVersion()
	if err != nil {
		return err
	}
	v, err := semver.ParseTolerant(raw)
	if err != nil {
		return &ProtocolError{Message: "parsing server version " + raw, Err: err}
	}
	c.version = v
	c.hasVersion = true
	c.log.Info().Str("version", v.String()).Msg("detected API version")
	return nil
}

// Login authenticates with a user name and password and stores the
// issued token for further calls. Servers from 5.4.0 on take the user
// name in the "username" member, older ones in "user"; with legacy auth
// configured the old user.authenticate call is used instead.
func (c *Client) Login(user, password string) error {
	if err := c.detectServerVersion(); err != nil {
		return err
	}

	// A held token would be submitted on the login request itself and a
	// stale one makes the server reject it. Drop it before trying.
	c.auth = ""
	c.useAPIToken = false

	var (
		res interface{}
		err error
	)
	switch {
	case c.useAuthenticate:
		res, err = c.Invoke("user", "authenticate", nil, Params{"user": user, "password": password})
	case c.hasVersion && c.version.GE(loginFieldVersion):
		res, err = c.Invoke("user", "login", nil, Params{"username": user, "password": password})
	default:
		res, err = c.Invoke("user", "login", nil, Params{"user": user, "password": password})
	}
	if err != nil {
		return err
	}
	token, ok := res.(string)
	if !ok {
		return &ProtocolError{Message: fmt.Sprintf("unexpected login result of type %T", res)}
	}
	c.auth = token
	return nil
}

// LoginWithToken switches the client to a pre-issued API token. No login
// call is made, and neither Session nor the authentication queries will
// go to the server for a token session.
func (c *Client) LoginWithToken(token string) error {
	if err := c.detectServerVersion(); err != nil {
		return err
	}
	c.auth = token
	c.useAPIToken = true
	return nil
}

// Logout invalidates the credentials session and clears the held token.
func (c *Client) Logout() error {
	if _, err := c.Do("user.logout", nil); err != nil {
		return err
	}
	c.auth = ""
	c.useAPIToken = false
	return nil
}

// CheckAuthentication asks the server whether the held session is still
// valid and returns its verdict as is. A token session short-circuits to
// true: user.checkAuthentication does not accept API tokens.
func (c *Client) CheckAuthentication() (interface{}, error) {
	if c.useAPIToken {
		return true, nil
	}
	return c.Do(methodCheckAuth, Params{"sessionid": c.auth})
}

// IsAuthenticated reports whether the held session is valid. A server
// rejection comes back as plain false; transport failures are returned
// unchanged. A token session short-circuits to true without a call.
func (c *Client) IsAuthenticated() (bool, error) {
	if c.useAPIToken {
		return true, nil
	}
	if _, err := c.Do(methodCheckAuth, Params{"sessionid": c.auth}); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Session runs fn against the client and guarantees a logout on the way
// out when the client authenticated with credentials. A nil, *APIError
// or *ProtocolError return from fn triggers the logout; the error is
// considered handled once the logout succeeded and is not returned. Any
// other error skips the logout and propagates. Token sessions are never
// logged out.
func (c *Client) Session(fn func(*Client) error) error {
	err := fn(c)
	if err != nil && !isClientError(err) {
		return err
	}
	if c.useAPIToken || c.auth == "" {
		return err
	}
	if lerr := c.Logout(); lerr != nil {
		if err != nil {
			return err
		}
		return lerr
	}
	return nil
}

// isClientError reports whether err belongs to this package's taxonomy
// of request failures.
func isClientError(err error) bool {
	var apiErr *APIError
	var protoErr *ProtocolError
	return errors.As(err, &apiErr) || errors.As(err, &protoErr)
}

// ConfImport imports a configuration dump, a convenience wrapper for
// configuration.import.
func (c *Client) ConfImport(format, source string, rules Params) (interface{}, error) {
	return c.Invoke("configuration", "import", nil, Params{
		"format": format,
		"source": source,
		"rules":  rules,
	})
}
