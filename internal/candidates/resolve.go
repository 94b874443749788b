package candidates

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Resolve collects the words of every spec in declaration order, dropping
// blanks and repeats. A failing source does not stop the others: its error is
// collected and the words gathered so far are still returned.
func Resolve(ctx context.Context, specs []Spec, cacheDir string) ([]string, error) {
	var errs *multierror.Error
	seen := map[string]struct{}{}
	var out []string
	for _, s := range specs {
		words, err := s.Load(ctx, cacheDir)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("candidates %q: %w", s.Name, err))
			continue
		}
		for _, w := range words {
			w = strings.TrimSpace(w)
			if w == "" {
				continue
			}
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	return out, errs.ErrorOrNil()
}

// Load returns the words of a single source. Remote sources are downloaded
// into cacheDir once and reused afterwards.
func (s Spec) Load(ctx context.Context, cacheDir string) ([]string, error) {
	switch s.Kind() {
	case "words":
		return s.Words, nil
	case "file":
		return readWordFile(s.path(s.File))
	case "source":
		path, err := fetch(ctx, s.Source, s.BaseDir, cacheDir)
		if err != nil {
			return nil, err
		}
		return readWordFile(path)
	case "terraform_module":
		return terraformSymbols(s.path(s.TerraformModule))
	}
	return nil, fmt.Errorf("no source configured")
}
