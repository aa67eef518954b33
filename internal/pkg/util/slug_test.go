package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World!!", "hello-world"},
		{"  My First Post  ", "my-first-post"},
		{"Go 1.24 发布了", "go-1-24"},
		{"already-a-slug", "already-a-slug"},
		{"---", ""},
		{"", ""},
		{"CamelCase Title", "camelcase-title"},
		{"a   b", "a-b"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Slugify(c.in), "Slugify(%q)", c.in)
	}
}

func TestEscapeSearch(t *testing.T) {
	require.Equal(t, `c\+\+`, EscapeSearch("c++"))
	require.Equal(t, `\(a\|b\)`, EscapeSearch(" (a|b) "))
	require.Equal(t, "plain", EscapeSearch("plain"))
}
