package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"gwen/internal/gui/widgets"
	"gwen/internal/layout"
)

type renderer struct {
	reg    *layout.Registry
	aligns map[int]fyne.TextAlign
}

// render turns a compiled layout into its fyne object tree.
func (r *renderer) render(l *layout.Layout) fyne.CanvasObject {
	if l.Tabbed() {
		return r.tabs(l.Tabs)
	}
	return r.grid(l.Root)
}

func (r *renderer) grid(g *layout.Grid) fyne.CanvasObject {
	cells := make([]layout.Placement, 0, len(g.Cells))
	objs := make([]fyne.CanvasObject, 0, len(g.Cells))
	for _, c := range g.Cells {
		cells = append(cells, c.Placement)
		switch {
		case c.Group != nil:
			objs = append(objs, widget.NewCard(c.Group.Title, "", r.grid(c.Group.Grid)))
		case c.Tabs != nil:
			objs = append(objs, r.tabs(c.Tabs.Pages))
		default:
			objs = append(objs, r.cell(c.Widget))
		}
	}
	return container.New(NewSpanGrid(cells, theme.Padding()), objs...)
}

func (r *renderer) tabs(pages []layout.Tab) *container.AppTabs {
	items := make([]*container.TabItem, 0, len(pages))
	for _, p := range pages {
		items = append(items, container.NewTabItem(p.Name, r.grid(p.Grid)))
	}
	return container.NewAppTabs(items...)
}

// cell stacks the widget's caption, if any, above its control.
func (r *renderer) cell(i int) fyne.CanvasObject {
	var obj fyne.CanvasObject
	if w, ok := r.reg.At(i).Value.(widgets.Widget); ok {
		obj = w.CanvasObject()
	} else {
		obj = widget.NewLabel("")
	}

	caption := r.reg.Caption(i)
	if caption == nil {
		return obj
	}
	align, ok := r.aligns[i]
	if !ok {
		align = fyne.TextAlignCenter
	}
	label := widget.NewLabelWithStyle(caption.Text, align, fyne.TextStyle{})
	return container.NewBorder(label, nil, nil, nil, obj)
}
