package utils

// WordFilter drops repeated words while keeping the first occurrence.
// Comparison is exact; "Apple" and "apple" are different words.
type WordFilter struct {
	seenWords map[string]struct{}
}

// NewWordFilter creates an empty filter sized for roughly n words.
func NewWordFilter(n int) *WordFilter {
	return &WordFilter{
		seenWords: make(map[string]struct{}, n),
	}
}

// ShouldInclude reports whether word has not been seen yet and records it.
// Returns false for duplicates.
func (f *WordFilter) ShouldInclude(word string) bool {
	if _, seen := f.seenWords[word]; seen {
		return false
	}
	f.seenWords[word] = struct{}{}
	return true
}
