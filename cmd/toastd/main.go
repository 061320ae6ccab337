// Command toastd serves the school listing page with server-driven toast
// notifications.
package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/studentorbit/toastkit/modules/orbit"
	"github.com/studentorbit/toastkit/pkg/broadcast"
	"github.com/studentorbit/toastkit/pkg/config"
	"github.com/studentorbit/toastkit/pkg/cookie"
	"github.com/studentorbit/toastkit/pkg/httpserver"
	"github.com/studentorbit/toastkit/pkg/logger"
	"github.com/studentorbit/toastkit/pkg/toast"
	"github.com/studentorbit/toastkit/pkg/toast/view"
)

type appConfig struct {
	Name         string `env:"APP_NAME" envDefault:"toastd"`
	Env          string `env:"APP_ENV" envDefault:"development"`
	StreamBuffer int    `env:"TOAST_STREAM_BUFFER" envDefault:"64"` // per-subscriber event buffer
}

func main() {
	var app appConfig
	config.MustLoad(&app)

	log := logger.New(
		logger.WithEnvironment(app.Env, app.Name),
		logger.WithContextValue("request_id", middleware.RequestIDKey),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), app, log); err != nil {
		log.Error("Server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, app appConfig, log *slog.Logger) error {
	var (
		httpCfg   httpserver.Config
		toastCfg  toast.Config
		redisCfg  broadcast.RedisConfig
		cookieCfg cookie.Config
		orbitCfg  orbit.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&httpCfg) },
		func() error { return config.Load(&toastCfg) },
		func() error { return config.Load(&redisCfg) },
		func() error { return config.Load(&cookieCfg) },
		func() error { return config.Load(&orbitCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	// Timers and CSS animations read the same durations.
	toastCfg = toastCfg.WithDefaults()

	if cookieCfg.Secrets == "" {
		cookieCfg.Secrets = strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
		log.Warn("COOKIE_SECRETS is not set, using a random secret; sessions will not survive a restart")
	}
	cookies, err := cookie.NewFromConfig(cookieCfg)
	if err != nil {
		return err
	}

	var (
		events broadcast.Broadcaster[toast.Event]
		checks []func(context.Context) error
	)
	if redisCfg.URL != "" {
		client, err := broadcast.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer client.Close()

		events = broadcast.NewRedisBroadcaster[toast.Event](client,
			broadcast.WithChannelPrefix(redisCfg.ChannelPrefix),
			broadcast.WithBufferSize(app.StreamBuffer),
			broadcast.WithRedisLogger(log),
		)
		checks = append(checks, broadcast.Healthcheck(client))
		log.Info("Toast events are published through Redis", slog.String("prefix", redisCfg.ChannelPrefix))
	} else {
		events = broadcast.NewMemoryBroadcaster[toast.Event](app.StreamBuffer)
	}
	defer events.Close()

	registry := toast.NewRegistry(events,
		toast.WithCenterOptions(toast.ConfigOptions(toastCfg)...),
		toast.WithMaxSessions(toastCfg.MaxSessions),
		toast.WithRegistryLogger(log),
	)
	defer registry.Close()

	module := orbit.New(orbitCfg, registry, cookies,
		orbit.WithLogger(log),
		orbit.WithRenderer(view.NewRenderer(toastCfg.EnterDuration, toastCfg.ExitDuration)),
	)

	r := chi.NewRouter()
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, checks...))
	r.Mount("/", module.Handle())

	srv := httpserver.New(httpCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, r)
}
