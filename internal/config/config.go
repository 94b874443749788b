// Package config loads termline settings from an optional HCL file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/inconshreveable/log15"

	"github.com/flowave-io/termline/internal/candidates"
	"github.com/flowave-io/termline/internal/lineedit"
)

// MaxCapacity bounds the configurable line length.
const MaxCapacity = 4096

// DemoWords is the candidate list used when no config file names one.
var DemoWords = []string{
	"kitten", "compuer", "noob",
	"kitchen", "mesabloo", "physics",
	"java", "music", "photon",
	"memory", "programming", "minecraft",
}

type Config struct {
	// Path is the absolute path of the loaded file, empty for defaults.
	Path            string
	RequiredVersion string
	Prompt          string
	Capacity        int
	LogFile         string
	LogLevel        string
	CacheDir        string
	Watch           bool
	Candidates      []candidates.Spec
}

type fileConfig struct {
	RequiredVersion *string          `hcl:"required_version,optional"`
	Prompt          *string          `hcl:"prompt,optional"`
	Capacity        *int             `hcl:"capacity,optional"`
	LogFile         *string          `hcl:"log_file,optional"`
	LogLevel        *string          `hcl:"log_level,optional"`
	CacheDir        *string          `hcl:"cache_dir,optional"`
	Watch           *bool            `hcl:"watch,optional"`
	Candidates      []candidateBlock `hcl:"candidates,block"`
}

type candidateBlock struct {
	Name            string   `hcl:"name,label"`
	Words           []string `hcl:"words,optional"`
	File            string   `hcl:"file,optional"`
	Source          string   `hcl:"source,optional"`
	TerraformModule string   `hcl:"terraform_module,optional"`
}

// Default returns the settings used without a config file.
func Default() *Config {
	words := make([]string, len(DemoWords))
	copy(words, DemoWords)
	return &Config{
		Prompt:     ">>>",
		Capacity:   lineedit.DefaultCapacity,
		LogLevel:   "info",
		CacheDir:   defaultCacheDir(),
		Watch:      true,
		Candidates: []candidates.Spec{{Name: "demo", Words: words}},
	}
}

func defaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "termline")
	}
	return filepath.Join(os.TempDir(), "termline")
}

// Load reads path on top of the defaults. An empty path yields Default().
// Relative paths inside the file resolve against its directory.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	f, diags := hclparse.NewParser().ParseHCLFile(abs)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %s", path, diags.Error())
	}
	var fc fileConfig
	if diags := gohcl.DecodeBody(f.Body, evalContext(), &fc); diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %s", path, diags.Error())
	}

	cfg.Path = abs
	dir := filepath.Dir(abs)
	rel := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	if fc.RequiredVersion != nil {
		cfg.RequiredVersion = *fc.RequiredVersion
	}
	if fc.Prompt != nil {
		cfg.Prompt = *fc.Prompt
	}
	if fc.Capacity != nil {
		cfg.Capacity = *fc.Capacity
	}
	if fc.LogFile != nil {
		cfg.LogFile = rel(*fc.LogFile)
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.CacheDir != nil {
		cfg.CacheDir = rel(*fc.CacheDir)
	}
	if fc.Watch != nil {
		cfg.Watch = *fc.Watch
	}
	if len(fc.Candidates) > 0 {
		cfg.Candidates = make([]candidates.Spec, 0, len(fc.Candidates))
		for _, b := range fc.Candidates {
			cfg.Candidates = append(cfg.Candidates, candidates.Spec{
				Name:            b.Name,
				Words:           b.Words,
				File:            b.File,
				Source:          b.Source,
				TerraformModule: b.TerraformModule,
				BaseDir:         dir,
			})
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every problem in c at once.
func (c *Config) Validate() error {
	var errs *multierror.Error
	if c.Capacity < 1 || c.Capacity > MaxCapacity {
		errs = multierror.Append(errs, fmt.Errorf("capacity %d out of range [1, %d]", c.Capacity, MaxCapacity))
	}
	if _, err := log15.LvlFromString(c.LogLevel); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("log_level %q: %w", c.LogLevel, err))
	}
	if c.RequiredVersion != "" {
		if err := CheckRequiredVersion(c.RequiredVersion); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	seen := map[string]struct{}{}
	for _, s := range c.Candidates {
		if n := s.Set(); n != 1 {
			errs = multierror.Append(errs, fmt.Errorf("candidates %q: exactly one of words, file, source, terraform_module must be set (got %d)", s.Name, n))
		}
		if _, dup := seen[s.Name]; dup {
			errs = multierror.Append(errs, fmt.Errorf("candidates %q declared more than once", s.Name))
		}
		seen[s.Name] = struct{}{}
	}
	return errs.ErrorOrNil()
}
