package cookie

import (
	"net/http"
	"strings"
)

// Config is the environment form of the manager attributes.
// Secrets is comma separated and its first entry signs new cookies.
type Config struct {
	Secrets  string        `env:"COOKIE_SECRETS"`
	Path     string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string        `env:"COOKIE_DOMAIN"`
	MaxAge   int           `env:"COOKIE_MAX_AGE" envDefault:"0"`
	Secure   bool          `env:"COOKIE_SECURE" envDefault:"false"`
	SameSite http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"` // lax
}

// SecretList returns the trimmed, non-blank entries of Secrets.
func (c Config) SecretList() []string {
	var out []string
	for s := range strings.SplitSeq(c.Secrets, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// options converts the set fields of c. Zero values leave the defaults alone.
func (c Config) options() []Option {
	var opts []Option
	if c.Path != "" {
		opts = append(opts, WithPath(c.Path))
	}
	if c.Domain != "" {
		opts = append(opts, WithDomain(c.Domain))
	}
	if c.MaxAge != 0 {
		opts = append(opts, WithMaxAge(c.MaxAge))
	}
	if c.Secure {
		opts = append(opts, WithSecure(true))
	}
	if c.SameSite != 0 {
		opts = append(opts, WithSameSite(c.SameSite))
	}
	return opts
}

// NewFromConfig creates a Manager from cfg. Explicit opts win over cfg.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	return New(cfg.SecretList(), append(cfg.options(), opts...)...)
}
