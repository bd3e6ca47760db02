package component

import (
	"embed"
	"html/template"

	"github.com/a-h/templ"
	"github.com/bornholm/todo/internal/core/model"
	commonComp "github.com/bornholm/todo/internal/http/handler/webui/common/component"
)

//go:embed templates/*.gohtml
var templates embed.FS

var pageTemplates = template.Must(commonComp.NewTemplate("todo").ParseFS(templates, "templates/*.gohtml"))

type ListPageVModel struct {
	Navbar commonComp.NavbarVModel
	Todos  []model.Todo
}

func ListPage(vmodel ListPageVModel) templ.Component {
	page := commonComp.PageVModel{
		Title:  "Current",
		Navbar: vmodel.Navbar,
	}

	return commonComp.Page(page, commonComp.FromTemplate(pageTemplates, "list", vmodel))
}

type CompletedPageVModel struct {
	Navbar commonComp.NavbarVModel
	Todos  []model.Todo
}

func CompletedPage(vmodel CompletedPageVModel) templ.Component {
	page := commonComp.PageVModel{
		Title:  "Completed",
		Navbar: vmodel.Navbar,
	}

	return commonComp.Page(page, commonComp.FromTemplate(pageTemplates, "completed", vmodel))
}

type FormPageVModel struct {
	Navbar commonComp.NavbarVModel
	Form   TodoForm
	// Todo is the stored record in edit mode, nil otherwise
	Todo model.Todo
}

func FormPage(vmodel FormPageVModel) templ.Component {
	title := "Create"
	if vmodel.Form.IsEdit() {
		title = "Edit"
	}

	page := commonComp.PageVModel{
		Title:  title,
		Navbar: vmodel.Navbar,
	}

	return commonComp.Page(page, commonComp.FromTemplate(pageTemplates, "form", vmodel))
}
