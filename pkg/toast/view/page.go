package view

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"github.com/studentorbit/toastkit/pkg/toast"
)

// DatastarScript is the client bundle loaded by Page.
const DatastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

// SchoolCard is one entry of the listing page.
type SchoolCard struct {
	ID       string
	Name     string
	City     string
	Favorite bool
}

// PageData feeds Page.
type PageData struct {
	Title     string
	StreamURL string
	Schools   []SchoolCard
	Snapshot  toast.Snapshot
}

// Page renders the listing page. On load it opens the toast stream, and the
// current container, if any, is rendered in place.
func (v *Renderer) Page(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ctx = templ.InitializeContext(ctx)

		if _, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title><script type="module" src="%s"></script>`,
			templ.EscapeString(data.Title), DatastarScript); err != nil {
			return err
		}
		if err := v.Styles().Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `</head><body data-signals="{q: ''}" data-on-load="@get('%s')"><header><h1>%s</h1>`+
			`<input id="search" type="search" placeholder="Search schools" data-bind-q data-on-input__debounce.500ms="@get('/search')"></header>`,
			templ.EscapeString(data.StreamURL), templ.EscapeString(data.Title)); err != nil {
			return err
		}

		if err := v.Root(data.Snapshot).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main class="schools">`); err != nil {
			return err
		}

		for _, s := range data.Schools {
			if err := v.schoolCard(s).Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

// FavoriteButton renders the heart toggle of one school.
func (v *Renderer) FavoriteButton(s SchoolCard) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		icon, label := "♡", "Add to favorites"
		if s.Favorite {
			icon, label = "♥", "Remove from favorites"
		}
		_, err := fmt.Fprintf(w, `<button id="%s" class="favorite-btn" aria-pressed="%t" aria-label="%s" data-on-click="@post('/favorites/%s')">%s</button>`,
			templ.EscapeString(FavoriteButtonID(s.ID)),
			s.Favorite,
			label,
			templ.EscapeString(url.PathEscape(s.ID)),
			icon,
		)
		return err
	})
}

// FavoriteButtonID returns the DOM id of a school's favorite button.
func FavoriteButtonID(schoolID string) string {
	return "fav-" + schoolID
}

func (v *Renderer) schoolCard(s SchoolCard) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		id := templ.EscapeString(url.PathEscape(s.ID))
		if _, err := fmt.Fprintf(w, `<article class="school-card"><h2>%s</h2><p>%s</p>`,
			templ.EscapeString(s.Name), templ.EscapeString(s.City)); err != nil {
			return err
		}
		if err := v.FavoriteButton(s).Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<button class="btn-apply" data-on-click="@post('/schools/%s/apply')">Apply</button>`+
			`<button class="btn-details" data-on-click="@post('/schools/%s/details')">Details</button></article>`, id, id)
		return err
	})
}
