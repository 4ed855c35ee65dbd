package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"punctuation to spaces", "Go, SQL & AWS!", "go  sql   aws "},
		{"already clean", "python sql", "python sql"},
		{"mixed case", "PyThOn", "python"},
		{"digits kept", "k8s v1.2", "k8s v1 2"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeOnlyLowercaseWordChars(t *testing.T) {
	out := Normalize("Héllo, Wörld! (C++/C#) — 100%")
	for _, r := range out {
		ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' || r == '\t' || r == '\n'
		assert.Truef(t, ok, "unexpected rune %q in %q", r, out)
	}
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("Python, SQL, AWS and python")
	assert.Equal(t, map[string]struct{}{
		"python": {}, "sql": {}, "aws": {}, "and": {},
	}, tokens)
}

func TestTokenizeEmpty(t *testing.T) {
	tokens := Tokenize("")
	require.NotNil(t, tokens)
	assert.Empty(t, tokens)

	tokens = Tokenize("!!! ???")
	require.NotNil(t, tokens)
	assert.Empty(t, tokens)
}

func TestIntersectSortedAndNonNil(t *testing.T) {
	a := Tokenize("sql python go")
	b := Tokenize("Python, SQL, AWS")

	matched := intersect(a, b)
	assert.Equal(t, []string{"python", "sql"}, matched)

	empty := intersect(Tokenize(""), b)
	require.NotNil(t, empty)
	assert.Empty(t, empty)
}
