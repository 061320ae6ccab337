package orbit

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/studentorbit/toastkit/handler"
	"github.com/studentorbit/toastkit/pkg/binder"
	"github.com/studentorbit/toastkit/pkg/cookie"
	"github.com/studentorbit/toastkit/pkg/toast"
	"github.com/studentorbit/toastkit/pkg/toast/view"
)

// StreamPath is where the page opens its toast stream.
const StreamPath = "/toasts/stream"

// Module serves the school listing page and its notification center.
type Module struct {
	cfg       Config
	registry  *toast.Registry
	cookies   *cookie.Manager
	catalog   *Catalog
	favorites *Favorites
	view      *view.Renderer
	logger    *slog.Logger

	errorHandler handler.ErrorHandler
}

// Option configures a Module.
type Option func(*Module)

// WithLogger sets the logger for the Module.
func WithLogger(l *slog.Logger) Option {
	return func(m *Module) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithCatalog replaces the default school listing.
func WithCatalog(c *Catalog) Option {
	return func(m *Module) {
		if c != nil {
			m.catalog = c
		}
	}
}

// WithRenderer sets the toast renderer. Its timings should match the registry's centers.
func WithRenderer(v *view.Renderer) Option {
	return func(m *Module) {
		if v != nil {
			m.view = v
		}
	}
}

// New creates the module. Every page session gets its own center from registry.
//
//	m := orbit.New(cfg, registry, cookies, orbit.WithLogger(log))
//	r.Mount("/", m.Handle())
func New(cfg Config, registry *toast.Registry, cookies *cookie.Manager, opts ...Option) *Module {
	if registry == nil {
		panic("orbit.New: nil registry")
	}
	if cookies == nil {
		panic("orbit.New: nil cookie manager")
	}

	m := &Module{
		cfg:      cfg,
		registry: registry,
		cookies:  cookies,
		catalog:  DefaultCatalog(),
		view:     view.DefaultRenderer(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.cfg.SessionCookie == "" {
		m.cfg.SessionCookie = DefaultConfig().SessionCookie
	}
	m.favorites = NewFavorites(max(m.cfg.MaxFavorites, 1))
	m.errorHandler = handler.NewErrorHandler(m.logger, handler.ErrorHandlerConfig{
		ErrorToast: m.errorToast,
	})

	return m
}

// Handle returns the module router.
func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		requestLogger(m.logger),
		middleware.Recoverer,
		sessionMiddleware(m.cookies, m.cfg.SessionCookie),
	)

	r.Get("/", handler.Wrap(m.page,
		handler.WithErrorHandler(m.errorHandler),
	))

	r.Get(StreamPath, handler.Wrap(m.stream,
		handler.WithErrorHandler(m.errorHandler),
	))

	r.Post("/toasts", handler.Wrap(m.notify,
		handler.WithBinders(
			binder.JSON(),
			binder.Form(),
		),
		handler.WithErrorHandler(m.errorHandler),
	))

	r.Post("/favorites/{schoolID}", handler.Wrap(m.toggleFavorite,
		handler.WithBinders(binder.Path(chi.URLParam)),
		handler.WithErrorHandler(m.errorHandler),
	))

	r.Get("/search", handler.Wrap(m.search,
		handler.WithBinders(
			binder.Query(),
			binder.Signals(),
		),
		handler.WithErrorHandler(m.errorHandler),
	))

	r.Route("/schools/{schoolID}", func(r chi.Router) {
		r.Post("/apply", handler.Wrap(m.schoolAction(MsgOpeningApply),
			handler.WithBinders(binder.Path(chi.URLParam)),
			handler.WithErrorHandler(m.errorHandler),
		))
		r.Post("/details", handler.Wrap(m.schoolAction(MsgLoadingDetails),
			handler.WithBinders(binder.Path(chi.URLParam)),
			handler.WithErrorHandler(m.errorHandler),
		))
	})

	return r
}

// center returns the notification center of the request's page session.
func (m *Module) center(ctx handler.Context) (*toast.Center, error) {
	id := SessionID(ctx)
	if id == "" {
		return nil, errNoSession
	}
	c, err := m.registry.Get(id)
	if err != nil {
		return nil, handler.NewHTTPErrorWrap(http.StatusServiceUnavailable, "center_closed", err)
	}
	return c, nil
}

// errorToast surfaces request errors of DataStar clients in their own container.
func (m *Module) errorToast(ctx handler.Context, params handler.ErrorToastParams) error {
	c, err := m.center(ctx)
	if err != nil {
		return err
	}
	kind, err := toast.ParseKind(params.Type)
	if err != nil {
		kind = toast.KindError
	}
	_, err = c.Notify(ctx, params.Message, kind)
	return err
}
