package layout

// Span is the number of grid rows and columns a placement occupies.
type Span struct {
	Rows int
	Cols int
}

// One is the default 1x1 span.
var One = Span{Rows: 1, Cols: 1}

func (s Span) normalized() Span {
	if s.Rows < 1 {
		s.Rows = 1
	}
	if s.Cols < 1 {
		s.Cols = 1
	}
	return s
}

// ValueHolder supplies the current value of a control, a string or a bool.
type ValueHolder interface {
	Value() (any, error)
}

// Entry describes one widget added to the registry. An empty ID means the
// widget cannot be looked up.
type Entry struct {
	ID    string
	Span  Span
	Value ValueHolder
}

// Caption is the optional text stacked above a widget in its grid slot.
type Caption struct {
	ID   string
	Text string
}

// Registry is the ordered list of widgets and their parallel captions.
// Registry order is the only ordering the compiler consumes.
//
// IDs are not required to be unique. Find returns the first match, so
// callers that reuse an ID get the earliest widget.
type Registry struct {
	entries  []Entry
	captions []*Caption
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends an entry and its caption (nil for none) and returns the entry's index.
func (r *Registry) Add(entry Entry, caption *Caption) int {
	entry.Span = entry.Span.normalized()
	r.entries = append(r.entries, entry)
	r.captions = append(r.captions, caption)
	return len(r.entries) - 1
}

func (r *Registry) Len() int {
	return len(r.entries)
}

// At returns the entry at index i.
func (r *Registry) At(i int) Entry {
	return r.entries[i]
}

// Caption returns the caption at index i, or nil.
func (r *Registry) Caption(i int) *Caption {
	if i < 0 || i >= len(r.captions) {
		return nil
	}
	return r.captions[i]
}

// Entries returns a copy of the registered entries in order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Find returns the first entry whose ID matches. An empty id never matches.
func (r *Registry) Find(id string) (Entry, bool) {
	i, ok := r.Index(id)
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Index returns the position of the first entry with the given ID.
func (r *Registry) Index(id string) (int, bool) {
	if id == "" {
		return -1, false
	}
	for i, e := range r.entries {
		if e.ID == id {
			return i, true
		}
	}
	return -1, false
}

// FindCaption returns the first caption with the given ID.
func (r *Registry) FindCaption(id string) (*Caption, bool) {
	if id == "" {
		return nil, false
	}
	for _, c := range r.captions {
		if c != nil && c.ID == id {
			return c, true
		}
	}
	return nil, false
}
