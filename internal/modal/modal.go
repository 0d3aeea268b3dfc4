// Package modal models the page's overlay dialogs: their open/closed state and the
// document scroll lock they hold while open.
package modal

import (
	"errors"
	"strings"
)

// Name identifies one of the page's dialogs.
type Name string

const (
	Chat    Name = "chat"
	Project Name = "project"
)

// ErrUnknownModal is returned by ParseName for names that are not dialogs.
var ErrUnknownModal = errors.New("modal: unknown modal")

// Names lists every dialog.
func Names() []Name { return []Name{Chat, Project} }

// ParseName validates a dialog name taken from a request.
func ParseName(s string) (Name, error) {
	switch Name(strings.ToLower(strings.TrimSpace(s))) {
	case Chat:
		return Chat, nil
	case Project:
		return Project, nil
	}
	return "", ErrUnknownModal
}

// CloseReason records which control dismissed a dialog.
type CloseReason int

const (
	Backdrop CloseReason = iota + 1
	CloseButton
	Escape
)

func (r CloseReason) String() string {
	switch r {
	case Backdrop:
		return "backdrop"
	case CloseButton:
		return "close-button"
	case Escape:
		return "escape"
	}
	return "unknown"
}

// EscapeKey is the key name that dismisses an open dialog.
const EscapeKey = "Escape"

// Controller is a single dialog. It starts closed.
type Controller struct {
	name    Name
	doc     *Document
	open    bool
	release func()
	last    CloseReason
}

// NewController binds a dialog to the document whose scrolling it suspends.
func NewController(name Name, doc *Document) *Controller {
	if doc == nil {
		doc = NewDocument("")
	}
	return &Controller{name: name, doc: doc}
}

// Name returns the dialog name.
func (c *Controller) Name() Name { return c.name }

// IsOpen reports the current state.
func (c *Controller) IsOpen() bool { return c.open }

// LastCloseReason returns how the dialog was last dismissed (zero if never).
func (c *Controller) LastCloseReason() CloseReason { return c.last }

// Open shows the dialog and locks document scrolling. Opening an open dialog is a no-op.
func (c *Controller) Open() {
	if c.open {
		return
	}
	c.open = true
	c.release = c.doc.Lock()
}

// Close hides the dialog and restores the scroll state it overrode. Closing a
// closed dialog is a no-op.
func (c *Controller) Close(reason CloseReason) {
	if !c.open {
		return
	}
	c.open = false
	c.last = reason
	c.Release()
}

// HandleKey closes the dialog on Escape while open and reports whether it did.
func (c *Controller) HandleKey(key string) bool {
	if !c.open || key != EscapeKey {
		return false
	}
	c.Close(Escape)
	return true
}

// Release drops the scroll lock without recording a close; it is what unmounting
// the dialog does. Safe to call repeatedly.
func (c *Controller) Release() {
	if c.release != nil {
		c.release()
		c.release = nil
	}
	c.open = false
}
