package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"
)

const (
	minSecretLength = 32
	signSeparator   = "|"
)

// Option adjusts the attributes of written cookies.
type Option func(*http.Cookie)

// WithPath sets the cookie path.
func WithPath(path string) Option { return func(c *http.Cookie) { c.Path = path } }

// WithDomain sets the cookie domain.
func WithDomain(domain string) Option { return func(c *http.Cookie) { c.Domain = domain } }

// WithMaxAge sets the lifetime in seconds. Zero makes a session cookie.
func WithMaxAge(seconds int) Option { return func(c *http.Cookie) { c.MaxAge = seconds } }

// WithSecure restricts the cookie to HTTPS.
func WithSecure(secure bool) Option { return func(c *http.Cookie) { c.Secure = secure } }

// WithHTTPOnly hides the cookie from scripts. Enabled by default.
func WithHTTPOnly(httpOnly bool) Option { return func(c *http.Cookie) { c.HttpOnly = httpOnly } }

func WithSameSite(mode http.SameSite) Option { return func(c *http.Cookie) { c.SameSite = mode } }

// Manager writes and reads cookies with shared attributes. Signed cookies
// carry an HMAC-SHA256 tag: the first secret signs, every secret verifies.
type Manager struct {
	keys     [][]byte
	template http.Cookie
}

// New creates a Manager. At least one non-blank secret is required and each
// must be 32 characters or longer.
func New(secrets []string, opts ...Option) (*Manager, error) {
	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	keys := make([][]byte, 0, len(secrets))
	for i, s := range secrets {
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret #%d is %d chars long, want %d or more", ErrSecretTooShort, i, len(s), minSecretLength)
		}
		keys = append(keys, []byte(s))
	}

	m := &Manager{
		keys: keys,
		template: http.Cookie{
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
	}
	for _, opt := range opts {
		opt(&m.template)
	}
	return m, nil
}

func (m *Manager) cookie(name, value string, opts []Option) *http.Cookie {
	c := m.template
	c.Name = name
	c.Value = value
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

// Set writes a plain cookie.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) {
	http.SetCookie(w, m.cookie(name, value, opts))
}

// Get reads a plain cookie. A missing cookie yields ErrCookieNotFound.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	switch {
	case errors.Is(err, http.ErrNoCookie):
		return "", ErrCookieNotFound
	case err != nil:
		return "", err
	}
	return c.Value, nil
}

// Delete expires a cookie written with the manager's attributes.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	c := m.cookie(name, "", nil)
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	http.SetCookie(w, c)
}

// SetSigned writes value together with its signature.
func (m *Manager) SetSigned(w http.ResponseWriter, name, value string, opts ...Option) {
	payload := base64.URLEncoding.EncodeToString([]byte(value))
	m.Set(w, name, payload+signSeparator+tag(m.keys[0], value), opts...)
}

// GetSigned reads a signed cookie and returns the value once any configured
// secret verifies it.
func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	raw, err := m.Get(r, name)
	if err != nil {
		return "", err
	}

	payload, sig, ok := strings.Cut(raw, signSeparator)
	if !ok {
		return "", ErrInvalidFormat
	}
	decoded, err := base64.URLEncoding.DecodeString(payload)
	if err != nil {
		return "", ErrInvalidFormat
	}

	value := string(decoded)
	for _, key := range m.keys {
		if subtle.ConstantTimeCompare([]byte(sig), []byte(tag(key, value))) == 1 {
			return value, nil
		}
	}
	return "", ErrInvalidSignature
}

func tag(key []byte, value string) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(value))
	return base64.URLEncoding.EncodeToString(mac.Sum(nil))
}
