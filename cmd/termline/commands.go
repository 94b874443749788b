package main

import (
	"context"
	"fmt"
	"os"

	docopt "github.com/flynn/go-docopt"
	"golang.org/x/term"

	"github.com/flowave-io/termline/internal/candidates"
	"github.com/flowave-io/termline/internal/cli"
	"github.com/flowave-io/termline/internal/config"
	"github.com/flowave-io/termline/internal/encoding/jsonx"
	"github.com/flowave-io/termline/pkg/log"
)

func init() {
	register("run", runEditor, `
usage: termline run [options]

Read lines at an interactive prompt. TAB completes the word before the
cursor, up and down arrows recall earlier lines, exit or quit leaves.

Options:
        -c, --config=<file>  HCL settings file
        -p, --prompt=<text>  prompt shown before each line
        --log=<file>         write diagnostics to file instead of stderr
        --no-watch           do not reload candidates when sources change
`)
	register("words", runWords, `
usage: termline words [options]

Print the completion candidates, one per line.

Options:
        -c, --config=<file>  HCL settings file
        --json               print a JSON array instead
`)
	register("version", runVersion, `
usage: termline version

Show the termline version.
`)
}

// loadConfig reads the settings and sets up logging. interactive marks
// commands that draw on the terminal stderr points at.
func loadConfig(args *docopt.Args, interactive bool) (*config.Config, error) {
	cfg, err := config.Load(args.String["--config"])
	if err != nil {
		return nil, err
	}
	if p := args.String["--log"]; p != "" {
		cfg.LogFile = p
	}
	if err := log.Configure(cfg.LogFile, cfg.LogLevel, interactive); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runEditor(args *docopt.Args) error {
	cfg, err := loadConfig(args, term.IsTerminal(int(os.Stderr.Fd())))
	if err != nil {
		return err
	}
	if p := args.String["--prompt"]; p != "" {
		cfg.Prompt = p
	}
	if args.Bool["--no-watch"] {
		cfg.Watch = false
	}
	log.Debug("starting", "version", config.Version, "config", cfg.Path, "capacity", cfg.Capacity)
	return cli.RunConsole(context.Background(), cfg)
}

func runWords(args *docopt.Args) error {
	cfg, err := loadConfig(args, false)
	if err != nil {
		return err
	}
	words, err := candidates.Resolve(context.Background(), cfg.Candidates, cfg.CacheDir)
	if err != nil {
		log.Warn("some candidate sources failed", "err", err)
	}
	if args.Bool["--json"] {
		if words == nil {
			words = []string{}
		}
		b, err := jsonx.Marshal(words)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(b))
		return nil
	}
	for _, w := range words {
		fmt.Fprintln(os.Stdout, w)
	}
	return nil
}

func runVersion(_ *docopt.Args) error {
	fmt.Println("termline", config.Version)
	return nil
}
