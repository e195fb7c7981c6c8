package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fruit = []string{"apple", "apply", "ape", "banana"}

func TestBuildBuckets(t *testing.T) {
	ix := Build(fruit)

	tests := []struct {
		key  string
		want []string
	}{
		{"a", []string{"apple", "apply", "ape"}},
		{"ap", []string{"apple", "apply", "ape"}},
		{"b", []string{"banana"}},
		{"ba", []string{"banana"}},
	}
	for _, tt := range tests {
		got, ok := ix.Bucket(tt.key)
		require.True(t, ok, "bucket %q should exist", tt.key)
		assert.Equal(t, tt.want, got, "bucket %q", tt.key)
	}

	_, ok := ix.Bucket("z")
	assert.False(t, ok)
	assert.Equal(t, 4, ix.BucketCount())
	assert.Equal(t, 4, ix.Len())
}

func TestBuildDropsBlankLinesAndTrims(t *testing.T) {
	ix := Build([]string{"apple", "", "  ", " ape\t"})
	assert.Equal(t, []string{"apple", "ape"}, ix.Words())
}

func TestBuildDropsRepeats(t *testing.T) {
	ix := Build([]string{"apple", "ape", "apple", "Apple"})
	assert.Equal(t, []string{"apple", "ape", "Apple"}, ix.Words())

	bucket, _ := ix.Bucket("ap")
	assert.Equal(t, []string{"apple", "ape"}, bucket)
}

func TestSingleCharacterWordsOnlyInFirstBucket(t *testing.T) {
	ix := Build([]string{"a", "ab"})

	one, ok := ix.Bucket("a")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "ab"}, one)

	two, ok := ix.Bucket("ab")
	require.True(t, ok)
	assert.Equal(t, []string{"ab"}, two)
	assert.Equal(t, 2, ix.BucketCount())
}

func TestEveryWordReachable(t *testing.T) {
	words := []string{"apple", "a", "banana", "éclair", "日本", "x1", "Zebra"}
	ix := Build(words)

	for _, w := range ix.Words() {
		k1, k2 := Keys(w)
		b1, ok := ix.Bucket(k1)
		require.True(t, ok, "1-char bucket for %q", w)
		assert.Contains(t, b1, w)
		if k2 != "" {
			b2, ok := ix.Bucket(k2)
			require.True(t, ok, "2-char bucket for %q", w)
			assert.Contains(t, b2, w)
		}
	}
}

func TestTwoCharBucketsCoverLongWords(t *testing.T) {
	words := []string{"apple", "a", "apply", "b", "banana", "bandana", "cab"}
	ix := Build(words)

	var union []string
	seen := map[string]bool{}
	for _, w := range ix.Words() {
		_, k2 := Keys(w)
		if k2 == "" || seen[k2] {
			continue
		}
		seen[k2] = true
		bucket, _ := ix.Bucket(k2)
		union = append(union, bucket...)
	}
	assert.ElementsMatch(t, []string{"apple", "apply", "banana", "bandana", "cab"}, union)
}

func TestBuildIsIdempotent(t *testing.T) {
	a := Build(fruit)
	b := Build(fruit)
	assert.Equal(t, a.Words(), b.Words())
	assert.Equal(t, a.buckets, b.buckets)
}

func TestBuildEmpty(t *testing.T) {
	for _, in := range [][]string{nil, {}, {"", "   "}} {
		ix := Build(in)
		assert.Equal(t, 0, ix.Len())
		assert.Equal(t, 0, ix.BucketCount())
		assert.NotNil(t, ix.Words())
	}
}

func TestKeys(t *testing.T) {
	tests := []struct {
		in, k1, k2 string
	}{
		{"", "", ""},
		{"a", "a", ""},
		{"ap", "a", "ap"},
		{"apple", "a", "ap"},
		{"éclair", "é", "éc"},
	}
	for _, tt := range tests {
		k1, k2 := Keys(tt.in)
		assert.Equal(t, tt.k1, k1, "Keys(%q) k1", tt.in)
		assert.Equal(t, tt.k2, k2, "Keys(%q) k2", tt.in)
	}
}

func TestWordsReturnsCopy(t *testing.T) {
	ix := Build(fruit)
	words := ix.Words()
	words[0] = "changed"
	assert.Equal(t, "apple", ix.Words()[0])
}
