package template

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestRubyQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: `'plain'`},
		{in: "", want: `''`},
		{in: "it's", want: `'it\'s'`},
		{in: `back\slash`, want: `'back\\slash'`},
		{in: `#{system("rm")}`, want: `'#{system("rm")}'`},
		{in: `\'`, want: `'\\\''`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, rubyQuote(tt.in))
		})
	}
}

func TestTruncRunes(t *testing.T) {
	assert.Equal(t, "abc", truncRunes(5, "abc"))
	assert.Equal(t, "ab", truncRunes(2, "abc"))
	assert.Empty(t, truncRunes(0, "abc"))
	assert.Equal(t, "abc", truncRunes(-1, "abc"))

	long := strings.Repeat("ü", 100)
	got := truncRunes(80, long)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 80, utf8.RuneCountInString(got))
}
