package layout

// Stream is the ordered list of directives recorded during the build phase.
type Stream struct {
	directives []Directive
}

func NewStream() *Stream {
	return &Stream{}
}

func (s *Stream) EndRow(count int) {
	s.append(Directive{Kind: EndRow, Count: count})
}

func (s *Stream) EndColumn(count int) {
	s.append(Directive{Kind: EndColumn, Count: count})
}

func (s *Stream) NewRow() {
	s.append(Directive{Kind: NewRow})
}

func (s *Stream) NewColumn() {
	s.append(Directive{Kind: NewColumn})
}

func (s *Stream) BeginTab(name string) {
	s.append(Directive{Kind: BeginTab, Name: name})
}

func (s *Stream) StartGroup(name string) {
	s.append(Directive{Kind: StartGroup, Name: name})
}

// EndGroup closes the open group. A nil size sizes the group to its contents.
func (s *Stream) EndGroup(size *Span) {
	d := Directive{Kind: EndGroup}
	if size != nil {
		sz := size.normalized()
		d.Size = &sz
	}
	s.append(d)
}

func (s *Stream) Len() int {
	return len(s.directives)
}

// Directives returns a copy of the recorded directives.
func (s *Stream) Directives() []Directive {
	out := make([]Directive, len(s.directives))
	copy(out, s.directives)
	return out
}

func (s *Stream) append(d Directive) {
	s.directives = append(s.directives, d)
}

// Builder records widgets and directives together. It carries the number of
// widgets added since the last EndRow or EndColumn so that each strip
// directive claims exactly those widgets.
type Builder struct {
	reg     *Registry
	stream  *Stream
	pending int
}

func NewBuilder() *Builder {
	return &Builder{
		reg:    NewRegistry(),
		stream: NewStream(),
	}
}

// Add registers a widget and returns its registry index.
func (b *Builder) Add(entry Entry, caption *Caption) int {
	b.pending++
	return b.reg.Add(entry, caption)
}

// Pending is the number of widgets the next strip directive will claim.
func (b *Builder) Pending() int {
	return b.pending
}

// EndRow lays the pending widgets out left to right. With nothing pending it
// records a no-op strip.
func (b *Builder) EndRow() {
	b.stream.EndRow(b.pending)
	b.pending = 0
}

// EndColumn lays the pending widgets out top to bottom.
func (b *Builder) EndColumn() {
	b.stream.EndColumn(b.pending)
	b.pending = 0
}

func (b *Builder) NewRow() {
	b.stream.NewRow()
}

func (b *Builder) NewColumn() {
	b.stream.NewColumn()
}

func (b *Builder) BeginTab(name string) {
	b.stream.BeginTab(name)
}

func (b *Builder) StartGroup(name string) {
	b.stream.StartGroup(name)
}

func (b *Builder) EndGroup(size *Span) {
	b.stream.EndGroup(size)
}

func (b *Builder) Registry() *Registry {
	return b.reg
}

func (b *Builder) Stream() *Stream {
	return b.stream
}

// Compile runs the layout compiler over everything recorded so far.
func (b *Builder) Compile(opts Options) (*Layout, error) {
	return Compile(b.reg, b.stream, opts)
}
