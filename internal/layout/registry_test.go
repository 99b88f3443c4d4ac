package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_FindOnEmpty(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"", "A", "anything"} {
		_, ok := r.Find(id)
		assert.False(t, ok, id)
	}
}

func TestRegistry_FindReturnsFirstMatch(t *testing.T) {
	r := NewRegistry()
	r.Add(Entry{ID: "dup", Span: Span{Rows: 1, Cols: 1}}, nil)
	r.Add(Entry{ID: "dup", Span: Span{Rows: 2, Cols: 2}}, nil)

	e, ok := r.Find("dup")
	require.True(t, ok)
	assert.Equal(t, One, e.Span)

	i, ok := r.Index("dup")
	require.True(t, ok)
	assert.Equal(t, 0, i)
}

func TestRegistry_EmptyIDNeverMatches(t *testing.T) {
	r := NewRegistry()
	r.Add(Entry{}, nil)
	_, ok := r.Find("")
	assert.False(t, ok)
}

func TestRegistry_NormalizesSpanAndKeepsCaptions(t *testing.T) {
	r := NewRegistry()
	r.Add(Entry{ID: "A"}, &Caption{ID: "A", Text: "Height"})
	r.Add(Entry{ID: "B", Span: Span{Rows: 3, Cols: -1}}, nil)

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, One, r.At(0).Span)
	assert.Equal(t, Span{Rows: 3, Cols: 1}, r.At(1).Span)
	assert.Equal(t, "Height", r.Caption(0).Text)
	assert.Nil(t, r.Caption(1))
	assert.Nil(t, r.Caption(7))

	c, ok := r.FindCaption("A")
	require.True(t, ok)
	assert.Equal(t, "Height", c.Text)
	_, ok = r.FindCaption("B")
	assert.False(t, ok)
}
