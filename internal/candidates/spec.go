// Package candidates resolves the word lists offered by TAB completion from
// inline lists, word files, remote sources and Terraform modules.
package candidates

import (
	"path/filepath"
)

// Spec describes one candidate source. Exactly one of Words, File, Source and
// TerraformModule is set.
type Spec struct {
	Name            string
	Words           []string
	File            string
	Source          string
	TerraformModule string
	// BaseDir anchors relative paths, normally the config file's directory.
	BaseDir string
}

// Kind names the populated field, or "" when none is.
func (s Spec) Kind() string {
	switch {
	case s.Words != nil:
		return "words"
	case s.File != "":
		return "file"
	case s.Source != "":
		return "source"
	case s.TerraformModule != "":
		return "terraform_module"
	}
	return ""
}

// Set counts the populated source fields.
func (s Spec) Set() int {
	n := 0
	if s.Words != nil {
		n++
	}
	for _, v := range []string{s.File, s.Source, s.TerraformModule} {
		if v != "" {
			n++
		}
	}
	return n
}

func (s Spec) path(p string) string {
	if p == "" || filepath.IsAbs(p) || s.BaseDir == "" {
		return p
	}
	return filepath.Join(s.BaseDir, p)
}

// LocalPaths returns the files and directories this source reads from disk,
// for change watching.
func LocalPaths(specs []Spec) []string {
	var out []string
	for _, s := range specs {
		switch s.Kind() {
		case "file":
			out = append(out, s.path(s.File))
		case "terraform_module":
			out = append(out, s.path(s.TerraformModule))
		}
	}
	return out
}
