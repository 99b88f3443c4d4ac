package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// DialogKind selects the icon of a message dialog.
type DialogKind int

const (
	Information DialogKind = iota
	Warning
	Critical
)

func (k DialogKind) String() string {
	switch k {
	case Warning:
		return "warning"
	case Critical:
		return "critical"
	default:
		return "information"
	}
}

func (k DialogKind) icon() fyne.Resource {
	switch k {
	case Warning:
		return theme.WarningIcon()
	case Critical:
		return theme.ErrorIcon()
	default:
		return theme.InfoIcon()
	}
}

// ShowDialog shows a modal message over the window and returns it.
func (e *Engine) ShowDialog(title, message string, kind DialogKind) dialog.Dialog {
	body := container.NewBorder(nil, nil, widget.NewIcon(kind.icon()), nil, widget.NewLabel(message))
	d := dialog.NewCustom(title, "OK", body, e.window)
	e.log.Debug(component, "dialog shown", map[string]interface{}{
		"title": title,
		"kind":  kind.String(),
	})
	d.Show()
	return d
}

// ShowError reports err in a dialog over the window.
func (e *Engine) ShowError(err error) {
	e.log.Error(component, err, nil)
	dialog.ShowError(err, e.window)
}
