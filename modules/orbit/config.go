package orbit

// Config holds the listing page settings.
type Config struct {
	Title         string `env:"ORBIT_TITLE" envDefault:"Find Your School"`
	SessionCookie string `env:"ORBIT_SESSION_COOKIE" envDefault:"orbit_session"`
	MaxFavorites  int    `env:"ORBIT_MAX_FAVORITE_SESSIONS" envDefault:"10000"` // bounds the sessions whose favorites are kept
}

// DefaultConfig returns the configuration used when no env is loaded.
func DefaultConfig() Config {
	return Config{
		Title:         "Find Your School",
		SessionCookie: "orbit_session",
		MaxFavorites:  10000,
	}
}
