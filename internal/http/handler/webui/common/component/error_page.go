package component

import "github.com/a-h/templ"

type ErrorPageVModel struct {
	Message string
	Links   []LinkItem
	Navbar  NavbarVModel
}

func ErrorPage(vmodel ErrorPageVModel) templ.Component {
	page := PageVModel{
		Title:  vmodel.Message,
		Navbar: vmodel.Navbar,
	}

	return Page(page, FromTemplate(layoutTemplate, "error", vmodel))
}
