package component

import (
	"embed"
	"html/template"

	"github.com/a-h/templ"
	commonComp "github.com/bornholm/todo/internal/http/handler/webui/common/component"
)

//go:embed templates/*.gohtml
var templates embed.FS

var pageTemplates = template.Must(commonComp.NewTemplate("session").ParseFS(templates, "templates/*.gohtml"))

type LoginPageVModel struct {
	Navbar   commonComp.NavbarVModel
	Username string
	Message  string
}

func LoginPage(vmodel LoginPageVModel) templ.Component {
	page := commonComp.PageVModel{
		Title:  "Login",
		Navbar: vmodel.Navbar,
	}

	return commonComp.Page(page, commonComp.FromTemplate(pageTemplates, "login", vmodel))
}

type SignupPageVModel struct {
	Navbar   commonComp.NavbarVModel
	Username string
	Message  string
	Errors   map[string]string
}

func SignupPage(vmodel SignupPageVModel) templ.Component {
	page := commonComp.PageVModel{
		Title:  "Sign up",
		Navbar: vmodel.Navbar,
	}

	return commonComp.Page(page, commonComp.FromTemplate(pageTemplates, "signup", vmodel))
}
