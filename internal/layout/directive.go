package layout

import "fmt"

// Kind identifies a layout directive.
type Kind int

const (
	EndRow Kind = iota + 1
	EndColumn
	NewRow
	NewColumn
	BeginTab
	StartGroup
	EndGroup
)

func (k Kind) String() string {
	switch k {
	case EndRow:
		return "end row"
	case EndColumn:
		return "end column"
	case NewRow:
		return "new row"
	case NewColumn:
		return "new column"
	case BeginTab:
		return "begin tab"
	case StartGroup:
		return "start group"
	case EndGroup:
		return "end group"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Directive is one recorded layout call.
//
// Count is only meaningful for EndRow and EndColumn and is never supplied by
// the caller: it is the number of widgets added since the previous strip
// directive. Name carries the tab or group title. Size is the optional
// explicit footprint of an EndGroup.
type Directive struct {
	Kind  Kind
	Count int
	Name  string
	Size  *Span
}

func (d Directive) String() string {
	switch d.Kind {
	case EndRow, EndColumn:
		return fmt.Sprintf("%s(%d)", d.Kind, d.Count)
	case BeginTab, StartGroup:
		return fmt.Sprintf("%s(%q)", d.Kind, d.Name)
	case EndGroup:
		if d.Size != nil {
			return fmt.Sprintf("%s(%dx%d)", d.Kind, d.Size.Rows, d.Size.Cols)
		}
		return d.Kind.String()
	default:
		return d.Kind.String()
	}
}
