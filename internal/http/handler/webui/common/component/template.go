package component

import (
	"context"
	"html/template"
	"io"
	"time"

	"github.com/a-h/templ"
	"github.com/bornholm/todo/internal/core/model"
	"github.com/bornholm/todo/internal/markdown"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// NewTemplate returns an empty template set knowing every helper
// available to page templates.
func NewTemplate(name string) *template.Template {
	return template.New(name).Funcs(templateFuncs(context.Background()))
}

// FromTemplate returns a component executing the named template with the given data.
// Helpers depending on the request (urls, current path) are bound to the
// rendering context.
func FromTemplate(tmpl *template.Template, name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		bound, err := tmpl.Clone()
		if err != nil {
			return errors.WithStack(err)
		}

		bound = bound.Funcs(templateFuncs(ctx))

		if err := bound.ExecuteTemplate(w, name, data); err != nil {
			return errors.Wrapf(err, "could not execute template '%s'", name)
		}

		return nil
	})
}

func templateFuncs(ctx context.Context) template.FuncMap {
	return template.FuncMap{
		"url": func(paths ...string) string {
			return string(BaseURL(ctx, paths...))
		},
		"todoURL": func(todoID model.TodoID, action ...string) string {
			return string(TodoURL(ctx, todoID, action...))
		},
		"isCurrentPath": func(paths ...string) bool {
			return MatchPath(ctx, paths...)
		},
		"humanTime": func(value any) string {
			t, ok := asTime(value)
			if !ok {
				return ""
			}
			return humanize.Time(t)
		},
		"isoTime": func(value any) string {
			t, ok := asTime(value)
			if !ok {
				return ""
			}
			return t.Format(time.RFC3339)
		},
		"markdown": markdown.ToHTML,
		"userString": model.UserString,
	}
}

func asTime(value any) (time.Time, bool) {
	switch t := value.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, true
	default:
		return time.Time{}, false
	}
}
