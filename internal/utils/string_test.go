package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstRunes(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
		ok   bool
	}{
		{"apple", 1, "a", true},
		{"apple", 2, "ap", true},
		{"a", 2, "a", false},
		{"", 1, "", false},
		{"éclair", 2, "éc", true},
		{"日本語", 1, "日", true},
	}

	for _, tt := range tests {
		got, ok := FirstRunes(tt.in, tt.n)
		assert.Equal(t, tt.want, got, "FirstRunes(%q, %d)", tt.in, tt.n)
		assert.Equal(t, tt.ok, ok, "FirstRunes(%q, %d) ok", tt.in, tt.n)
	}
}

func TestFormatWithCommas(t *testing.T) {
	assert.Equal(t, "0", FormatWithCommas(0))
	assert.Equal(t, "999", FormatWithCommas(999))
	assert.Equal(t, "1,000", FormatWithCommas(1000))
	assert.Equal(t, "1,234,567", FormatWithCommas(1234567))
	assert.Equal(t, "-12,345", FormatWithCommas(-12345))
}

func TestWordFilter(t *testing.T) {
	f := NewWordFilter(4)
	assert.True(t, f.ShouldInclude("apple"))
	assert.True(t, f.ShouldInclude("Apple"))
	assert.False(t, f.ShouldInclude("apple"))
}

func TestExtractCoercesValues(t *testing.T) {
	data := map[string]any{
		"n":    int64(12),
		"s":    "7",
		"b":    "true",
		"bad":  "nope",
		"name": "bucket",
	}

	n, ok := ExtractInt(data, "n")
	assert.True(t, ok)
	assert.Equal(t, 12, n)

	s, ok := ExtractInt(data, "s")
	assert.True(t, ok)
	assert.Equal(t, 7, s)

	_, ok = ExtractInt(data, "bad")
	assert.False(t, ok)

	_, ok = ExtractInt(data, "missing")
	assert.False(t, ok)

	b, ok := ExtractBool(data, "b")
	assert.True(t, ok)
	assert.True(t, b)

	name, ok := ExtractString(data, "name")
	assert.True(t, ok)
	assert.Equal(t, "bucket", name)
}

func TestTrimWord(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  apple\r", "apple"},
		{"\uFEFFapple", "apple"},
		{"\uFEFF  apple \uFEFF", "apple"},
		{"app\uFEFFle", "app\uFEFFle"},
		{"\uFEFF", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TrimWord(tt.in), "TrimWord(%q)", tt.in)
	}
	assert.True(t, IsBlank(" \uFEFF\t"))
	assert.False(t, IsBlank(" a "))
}
