package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"finitefield.org/landing-web/internal/icons"
	"finitefield.org/landing-web/internal/modal"
)

// ModalRootID is the container open dialogs are rendered or swapped into.
const ModalRootID = "modal-root"

// modalLink opens a dialog. Without JavaScript it navigates to the page rendered
// with the dialog open; with htmx it swaps the fragment into the modal root; on an
// exported page modal.js clones the dialog's template.
func modalLink(v *View, name modal.Name, cls string, children ...g.Node) g.Node {
	href := v.Links.Modal[name]
	if v.Static {
		href = "#" + string(name)
	}
	frag := v.Links.Fragment[name]
	return A(
		Class(cls),
		Href(href),
		Data("modal-open", string(name)),
		g.If(frag != "", g.Group{
			g.Attr("hx-get", frag),
			g.Attr("hx-target", "#"+ModalRootID),
			g.Attr("hx-swap", "innerHTML"),
		}),
		g.Group(children),
	)
}

// dialog is the shared dialog frame: backdrop, header with close control, body
// and an optional footer. Every close control points at the closed page so the
// dialog also works without JavaScript.
func dialog(v *View, name modal.Name, small bool, title string, body g.Node, footer g.Node) g.Node {
	cls := "modal"
	if small {
		cls += " modal--small"
	}
	titleID := "modal-" + string(name) + "-title"
	closeLabel := v.UI.T("modal.close")
	return Div(
		Class(cls),
		Data("modal", string(name)),
		Role("dialog"),
		Aria("modal", "true"),
		Aria("labelledby", titleID),
		A(
			Class("modal__backdrop"),
			Href(v.Links.Close),
			Data("modal-close", modal.Backdrop.String()),
			Aria("hidden", "true"),
			TabIndex("-1"),
		),
		Div(
			Class("modal__dialog"),
			Div(
				Class("modal__header"),
				H2(ID(titleID), g.Text(title)),
				A(
					Class("modal__close"),
					Href(v.Links.Close),
					Data("modal-close", modal.CloseButton.String()),
					Aria("label", closeLabel),
					Icon(icons.Close, "", ""),
				),
			),
			Div(Class("modal__body"), body),
			g.If(footer != nil, Div(Class("modal__footer"), footer)),
		),
	)
}

// ChatModal is the chat entry point placeholder.
func ChatModal(v *View) g.Node {
	if !v.HasChat() {
		return nil
	}
	var contact g.Node
	if c := v.Content.ContactInfo; c != nil && c.Email != "" {
		contact = P(A(Class("btn btn--primary btn--block"), Href(mailto(c.Email, v.UI.T("modal.chat.title"))),
			Icon(icons.Mail, "", ""), g.Text(c.Email)))
	}
	return dialog(v, modal.Chat, true, v.UI.T("modal.chat.title"),
		g.Group{
			P(g.Text(v.UI.T("modal.chat.body"))),
			contact,
		},
		nil,
	)
}

// ProjectModal shows the project brief.
func ProjectModal(v *View) g.Node {
	if !v.HasBrief() {
		return nil
	}
	title := v.Content.Brief.Title
	if title == "" {
		title = v.Content.CompanyInfo.Name
	}
	return dialog(v, modal.Project, false, title,
		g.Raw(v.Brief),
		A(
			Class("btn btn--primary btn--block"),
			Href(v.Links.Close),
			Data("modal-close", modal.CloseButton.String()),
			g.Text(v.UI.T("modal.close")),
		),
	)
}

// ModalDialog returns the renderer for name, nil when the site does not offer it.
func ModalDialog(v *View, name modal.Name) g.Node {
	switch name {
	case modal.Chat:
		return ChatModal(v)
	case modal.Project:
		return ProjectModal(v)
	}
	return nil
}

// ModalRoot holds the dialog rendered open for this request. Exported pages carry
// every dialog as a template instead.
func ModalRoot(v *View) g.Node {
	var open g.Node
	if v.Open != nil && v.Open.IsOpen() {
		open = ModalDialog(v, v.Open.Name())
	}
	var templates []g.Node
	if v.Static {
		for _, name := range modal.Names() {
			if d := ModalDialog(v, name); d != nil {
				templates = append(templates, g.El("template", Data("modal-template", string(name)), d))
			}
		}
	}
	return g.Group{
		Div(ID(ModalRootID), open),
		g.Group(templates),
	}
}

// FloatingChatButton is the fixed shortcut to the chat dialog.
func FloatingChatButton(v *View) g.Node {
	if !v.HasChat() {
		return nil
	}
	label := v.UI.T("modal.chat.open")
	return modalLink(v, modal.Chat, "fab", Aria("label", label), Icon(icons.MessageCircle, "", ""))
}
