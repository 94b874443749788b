package candidates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flowave-io/termline/internal/encoding/jsonx"
)

// readWordFile parses a word list. A .json file holds an array of strings;
// anything else is whitespace-separated words with '#' line comments.
func readWordFile(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read word file: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		var words []string
		if err := jsonx.Unmarshal(b, &words); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return words, nil
	}
	var words []string
	for _, ln := range strings.Split(string(b), "\n") {
		if i := strings.Index(ln, "#"); i >= 0 {
			ln = ln[:i]
		}
		words = append(words, strings.Fields(ln)...)
	}
	return words, nil
}
