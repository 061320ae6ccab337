package orbit

import (
	"errors"
	"net/http"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/studentorbit/toastkit/handler"
	"github.com/studentorbit/toastkit/pkg/toast"
	"github.com/studentorbit/toastkit/pkg/toast/view"
)

// NotifyRequest is the body of POST /toasts.
type NotifyRequest struct {
	Message string `json:"message" form:"message"`
	Kind    string `json:"kind" form:"kind"`
}

// SchoolRequest identifies a school from the URL.
type SchoolRequest struct {
	SchoolID string `path:"schoolID"`
}

// SearchRequest carries the search box value, either as ?q= or as the q signal.
type SearchRequest struct {
	Query string `query:"q" json:"q"`
}

func (m *Module) page(ctx handler.Context, _ struct{}) handler.Response {
	sessionID := SessionID(ctx)

	var snapshot toast.Snapshot
	if c, ok := m.registry.Lookup(sessionID); ok {
		snapshot = c.Snapshot()
	}

	schools := m.catalog.All()
	cards := make([]view.SchoolCard, 0, len(schools))
	for _, s := range schools {
		cards = append(cards, m.card(sessionID, s))
	}

	return handler.Templ(m.view.Page(view.PageData{
		Title:     m.cfg.Title,
		StreamURL: StreamPath,
		Schools:   cards,
		Snapshot:  snapshot,
	}))
}

func (m *Module) notify(ctx handler.Context, req NotifyRequest) handler.Response {
	kind, err := toast.ParseKind(strings.TrimSpace(req.Kind))
	if err != nil {
		return handler.Error(handler.NewHTTPErrorWrap(http.StatusBadRequest, "unknown_kind", err))
	}

	c, err := m.center(ctx)
	if err != nil {
		return handler.Error(err)
	}

	n, err := c.Notify(ctx, req.Message, kind)
	if err != nil {
		return handler.Error(notifyError(err))
	}

	return handler.JSON(n, handler.WithJSONStatus(http.StatusAccepted))
}

func (m *Module) toggleFavorite(ctx handler.Context, req SchoolRequest) handler.Response {
	school, ok := m.catalog.Lookup(req.SchoolID)
	if !ok {
		return handler.Error(errSchoolNotFound)
	}

	c, err := m.center(ctx)
	if err != nil {
		return handler.Error(err)
	}

	sessionID := SessionID(ctx)
	added := m.favorites.Toggle(sessionID, school.ID)
	if added {
		_, err = c.Success(ctx, MsgFavoriteAdded)
	} else {
		_, err = c.Info(ctx, MsgFavoriteRemoved)
	}
	if err != nil {
		// The request fails as a whole, so the flag goes back.
		m.favorites.Set(sessionID, school.ID, !added)
		return handler.Error(notifyError(err))
	}

	return handler.Templ(m.view.FavoriteButton(m.card(sessionID, school)))
}

func (m *Module) search(ctx handler.Context, req SearchRequest) handler.Response {
	query := cases.Lower(language.Und).String(strings.TrimSpace(req.Query))
	if query == "" {
		return handler.Empty()
	}

	c, err := m.center(ctx)
	if err != nil {
		return handler.Error(err)
	}
	if _, err := c.Info(ctx, searchMessage(query)); err != nil {
		return handler.Error(notifyError(err))
	}

	return handler.Empty()
}

// schoolAction acknowledges a school card button with an info toast.
func (m *Module) schoolAction(message string) handler.HandlerFunc[SchoolRequest] {
	return func(ctx handler.Context, req SchoolRequest) handler.Response {
		if _, ok := m.catalog.Lookup(req.SchoolID); !ok {
			return handler.Error(errSchoolNotFound)
		}

		c, err := m.center(ctx)
		if err != nil {
			return handler.Error(err)
		}
		if _, err := c.Info(ctx, message); err != nil {
			return handler.Error(notifyError(err))
		}

		return handler.Empty()
	}
}

func (m *Module) card(sessionID string, s School) view.SchoolCard {
	return view.SchoolCard{
		ID:       s.ID,
		Name:     s.Name,
		City:     s.City,
		Favorite: m.favorites.IsFavorite(sessionID, s.ID),
	}
}

func notifyError(err error) error {
	switch {
	case errors.Is(err, toast.ErrUnknownKind):
		return handler.NewHTTPErrorWrap(http.StatusBadRequest, "unknown_kind", err)
	case errors.Is(err, toast.ErrEmptyMessage):
		return handler.NewHTTPErrorWrap(http.StatusBadRequest, "empty_message", err)
	case errors.Is(err, toast.ErrCenterClosed):
		return handler.NewHTTPErrorWrap(http.StatusServiceUnavailable, "center_closed", err)
	default:
		return err
	}
}
