package lineedit

// PrefixLength returns len(prefix) when text starts with prefix, and 0
// otherwise. An empty prefix never matches.
func PrefixLength(text, prefix string) int {
	if prefix == "" || len(prefix) > len(text) {
		return 0
	}
	for i := 0; i < len(prefix); i++ {
		if text[i] != prefix[i] {
			return 0
		}
	}
	return len(prefix)
}
