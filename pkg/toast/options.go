package toast

import (
	"log/slog"
	"time"
)

const (
	DefaultEnterDuration   = 300 * time.Millisecond
	DefaultDisplayDuration = 3 * time.Second
	DefaultExitDuration    = 300 * time.Millisecond
)

// Config holds the env-driven center settings.
type Config struct {
	EnterDuration   time.Duration `env:"TOAST_ENTER_DURATION" envDefault:"300ms"` // EnterDuration is the length of the slide-in animation.
	DisplayDuration time.Duration `env:"TOAST_DISPLAY_DURATION" envDefault:"3s"`  // DisplayDuration is how long a toast stays before it starts leaving, measured from creation.
	ExitDuration    time.Duration `env:"TOAST_EXIT_DURATION" envDefault:"300ms"`  // ExitDuration is the length of the slide-out animation.
	MaxVisible      int           `env:"TOAST_MAX_VISIBLE" envDefault:"0"`        // MaxVisible caps toasts that are not already leaving; 0 means unlimited.
	MaxSessions     int           `env:"TOAST_MAX_SESSIONS" envDefault:"10000"`   // MaxSessions bounds the number of live centers in a Registry.
}

// WithDefaults returns cfg with unset or invalid values replaced by the
// defaults a Center falls back to, so other consumers of the durations
// (such as the CSS animations) agree with the center's timers.
func (cfg Config) WithDefaults() Config {
	if cfg.EnterDuration <= 0 {
		cfg.EnterDuration = DefaultEnterDuration
	}
	if cfg.DisplayDuration <= 0 {
		cfg.DisplayDuration = DefaultDisplayDuration
	}
	if cfg.ExitDuration <= 0 {
		cfg.ExitDuration = DefaultExitDuration
	}
	cfg.MaxVisible = max(cfg.MaxVisible, 0)
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	return cfg
}

// Option configures a Center.
type Option func(*Center)

// WithClock sets the clock used for lifecycle timers.
func WithClock(clock Clock) Option {
	if clock == nil {
		panic("toast.WithClock: nil clock")
	}
	return func(c *Center) { c.clock = clock }
}

// WithObserver sets the callback receiving container and toast events.
func WithObserver(obs Observer) Option {
	return func(c *Center) { c.observer = obs }
}

// WithLogger sets the logger for the Center.
func WithLogger(l *slog.Logger) Option {
	return func(c *Center) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithEnterDuration sets the slide-in duration.
func WithEnterDuration(d time.Duration) Option {
	if d < 0 {
		panic("toast.WithEnterDuration: duration must be >= 0")
	}
	return func(c *Center) { c.enter = d }
}

// WithDisplayDuration sets how long a toast stays on screen before it starts leaving.
func WithDisplayDuration(d time.Duration) Option {
	if d <= 0 {
		panic("toast.WithDisplayDuration: duration must be > 0")
	}
	return func(c *Center) { c.display = d }
}

// WithExitDuration sets the slide-out duration.
func WithExitDuration(d time.Duration) Option {
	if d < 0 {
		panic("toast.WithExitDuration: duration must be >= 0")
	}
	return func(c *Center) { c.exit = d }
}

// WithMaxVisible caps the number of toasts that are not already leaving.
// When a new toast would exceed the cap, the oldest one starts leaving early.
// Zero disables the cap.
func WithMaxVisible(n int) Option {
	if n < 0 {
		panic("toast.WithMaxVisible: limit must be >= 0")
	}
	return func(c *Center) { c.maxVisible = n }
}

// WithIDGenerator overrides the toast ID source.
func WithIDGenerator(fn func() string) Option {
	if fn == nil {
		panic("toast.WithIDGenerator: nil generator")
	}
	return func(c *Center) { c.newID = fn }
}

// ConfigOptions converts non-zero config values into options.
func ConfigOptions(cfg Config) []Option {
	opts := make([]Option, 0, 4)
	if cfg.EnterDuration > 0 {
		opts = append(opts, WithEnterDuration(cfg.EnterDuration))
	}
	if cfg.DisplayDuration > 0 {
		opts = append(opts, WithDisplayDuration(cfg.DisplayDuration))
	}
	if cfg.ExitDuration > 0 {
		opts = append(opts, WithExitDuration(cfg.ExitDuration))
	}
	if cfg.MaxVisible > 0 {
		opts = append(opts, WithMaxVisible(cfg.MaxVisible))
	}
	return opts
}
