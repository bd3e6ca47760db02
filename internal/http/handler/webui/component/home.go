package component

import (
	"embed"
	"html/template"

	"github.com/a-h/templ"
	commonComp "github.com/bornholm/todo/internal/http/handler/webui/common/component"
)

//go:embed templates/*.gohtml
var templates embed.FS

var pageTemplates = template.Must(commonComp.NewTemplate("webui").ParseFS(templates, "templates/*.gohtml"))

type HomePageVModel struct {
	Navbar commonComp.NavbarVModel
}

func HomePage(vmodel HomePageVModel) templ.Component {
	page := commonComp.PageVModel{
		Navbar: vmodel.Navbar,
	}

	return commonComp.Page(page, commonComp.FromTemplate(pageTemplates, "home", vmodel))
}
