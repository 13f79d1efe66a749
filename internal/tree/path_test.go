package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		input   string
		want    []string
		wantErr bool
	}{
		{"AA|BB|CC", []string{"AA", "BB", "CC"}, false},
		{"AA", []string{"AA"}, false},
		{"com.ngc|seaside|core", []string{"com.ngc", "seaside", "core"}, false},
		{"a b|c", []string{"a b", "c"}, false},
		{"größe|ß", []string{"größe", "ß"}, false},

		{"", nil, true},
		{"|", nil, true},
		{"AA||BB", nil, true},
		{"|AA", nil, true},
		{"AA|", nil, true},
		{"a|\xff", nil, true},
		{"\xc3|b", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParsePath(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedPath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Segments())
			assert.Equal(t, len(tt.want), p.Len())
		})
	}
}

func TestNewPath(t *testing.T) {
	p, err := NewPath("a", "b")
	require.NoError(t, err)
	assert.Equal(t, "a|b", p.String())

	_, err = NewPath()
	assert.ErrorIs(t, err, ErrMalformedPath)

	_, err = NewPath("a", "")
	assert.ErrorIs(t, err, ErrMalformedPath)

	_, err = NewPath("a|b")
	assert.ErrorIs(t, err, ErrMalformedPath)

	_, err = NewPath("a", "b\xfe")
	assert.ErrorIs(t, err, ErrMalformedPath)

	assert.Panics(t, func() { MustPath() })
}

func TestPath_SegmentsIsCopy(t *testing.T) {
	p := MustPath("a", "b")
	segs := p.Segments()
	segs[0] = "z"
	assert.Equal(t, "a|b", p.String())

	src := []string{"x", "y"}
	q := MustPath(src...)
	src[0] = "changed"
	assert.Equal(t, "x|y", q.String())
}

func TestPath_RoundTrip(t *testing.T) {
	paths := []Path{
		MustPath("root"),
		MustPath("root", "c1"),
		MustPath("root", "c2", "c2b", "c2b2"),
		MustPath("com.ngc.seaside", "gradle plugins", "v1.0"),
	}
	for _, p := range paths {
		t.Run(p.String(), func(t *testing.T) {
			q, err := ParsePath(p.String())
			require.NoError(t, err)
			assert.True(t, q.Equal(p))
			assert.Equal(t, 0, q.Compare(p))
		})
	}
}

// universe returns every path over {a, b} up to three segments.
func universe() []Path {
	var out []Path
	var build func(prefix []string)
	build = func(prefix []string) {
		if len(prefix) > 0 {
			out = append(out, MustPath(prefix...))
		}
		if len(prefix) == 3 {
			return
		}
		for _, s := range []string{"a", "b"} {
			build(append(append([]string(nil), prefix...), s))
		}
	}
	build(nil)
	return out
}

func prefixEqual(p, q Path) bool {
	ps, qs := p.Segments(), q.Segments()
	for i := range qs {
		if ps[i] != qs[i] {
			return false
		}
	}
	return true
}

func TestPath_Relations(t *testing.T) {
	for _, p := range universe() {
		for _, q := range universe() {
			wantLeaf := p.Len() == q.Len()+1 && prefixEqual(p, q)
			wantDesc := p.Len() > q.Len() && prefixEqual(p, q)

			assert.Equal(t, wantLeaf, p.IsLeafOf(q), "%s IsLeafOf %s", p, q)
			assert.Equal(t, wantDesc, p.IsDescendantOf(q), "%s IsDescendantOf %s", p, q)
			if p.IsLeafOf(q) {
				assert.True(t, p.IsDescendantOf(q), "leaf implies descendant: %s %s", p, q)
			}
		}
	}
}

func TestPath_Relations_Examples(t *testing.T) {
	root := MustParsePath("root")
	c1 := MustParsePath("root|c1")
	c1a := MustParsePath("root|c1|c1a")
	other := MustParsePath("other|c1")

	assert.True(t, c1.IsLeafOf(root))
	assert.False(t, c1a.IsLeafOf(root))
	assert.True(t, c1a.IsDescendantOf(root))
	assert.False(t, root.IsDescendantOf(root))
	assert.False(t, root.IsLeafOf(root))
	assert.False(t, other.IsDescendantOf(root))
	assert.False(t, root.IsDescendantOf(c1))
}

func TestPath_Navigation(t *testing.T) {
	p := MustParsePath("a|b|c")

	assert.Equal(t, "c", p.Last())

	parent, ok := p.Parent()
	require.True(t, ok)
	assert.Equal(t, "a|b", parent.String())

	_, ok = MustPath("a").Parent()
	assert.False(t, ok)

	child, err := parent.Child("d")
	require.NoError(t, err)
	assert.Equal(t, "a|b|d", child.String())
	// Child must not alias the parent's backing array.
	assert.Equal(t, "a|b|c", p.String())

	_, err = parent.Child("")
	assert.ErrorIs(t, err, ErrMalformedPath)

	var got []string
	for _, a := range p.Ancestors() {
		got = append(got, a.String())
	}
	assert.Equal(t, []string{"a", "a|b"}, got)
	assert.Empty(t, MustPath("a").Ancestors())
}

func TestPath_Compare(t *testing.T) {
	assert.Negative(t, MustParsePath("a").Compare(MustParsePath("a|b")))
	assert.Positive(t, MustParsePath("a|b").Compare(MustParsePath("a")))
	assert.Negative(t, MustParsePath("a|b").Compare(MustParsePath("a|c")))
	assert.Positive(t, MustParsePath("b").Compare(MustParsePath("a|z")))
	assert.Zero(t, MustParsePath("a|b").Compare(MustPath("a", "b")))
}

func TestPath_Zero(t *testing.T) {
	var p Path
	assert.True(t, p.IsZero())
	assert.Equal(t, "", p.String())
	assert.Equal(t, "", p.Last())
	_, err := p.Child("x")
	assert.ErrorIs(t, err, ErrMalformedPath)
}
