package component

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"
	"github.com/bornholm/todo/internal/core/model"
	"github.com/pkg/errors"
)

//go:embed templates/*.gohtml
var templates embed.FS

var layoutTemplate = template.Must(NewTemplate("layout").ParseFS(templates, "templates/*.gohtml"))

type LinkItem struct {
	URL   templ.SafeURL
	Label string
}

type NavbarVModel struct {
	User model.User
}

type PageVModel struct {
	Title  string
	Navbar NavbarVModel
}

type layoutData struct {
	PageVModel
	Body template.HTML
}

// Page wraps the given body component with the common page layout.
func Page(vmodel PageVModel, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buff bytes.Buffer

		if err := body.Render(ctx, &buff); err != nil {
			return errors.WithStack(err)
		}

		data := layoutData{
			PageVModel: vmodel,
			Body:       template.HTML(buff.String()),
		}

		return FromTemplate(layoutTemplate, "layout", data).Render(ctx, w)
	})
}
