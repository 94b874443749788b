package main

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	docopt "github.com/flynn/go-docopt"

	"github.com/flowave-io/termline/internal/config"
	"github.com/flowave-io/termline/pkg/log"
)

func main() {
	usage := `
usage: termline [<command>] [<args>...]

Commands:
        help     show usage for a specific command
        run      edit lines with TAB completion and history (default)
        words    print the resolved completion candidates
        version  show the termline version

See 'termline help <command>' for more information on a specific command.
`[1:]
	args, _ := docopt.Parse(usage, nil, true, config.Version, true)

	cmd := args.String["<command>"]
	cmdArgs, _ := args.All["<args>"].([]string)

	if cmd == "" {
		cmd = "run"
	}
	if cmd == "help" {
		if len(cmdArgs) == 0 {
			fmt.Println(usage)
			return
		}
		cmd = cmdArgs[0]
		cmdArgs = []string{"--help"}
	}

	if err := runCommand(cmd, cmdArgs); err != nil {
		log.Error("command failed", "command", cmd, "err", err)
		os.Exit(1)
	}
}

type command struct {
	usage string
	f     func(args *docopt.Args) error
}

var commands = make(map[string]*command)

func register(cmd string, f func(args *docopt.Args) error, usage string) *command {
	c := &command{usage: strings.TrimLeftFunc(usage, unicode.IsSpace), f: f}
	commands[cmd] = c
	return c
}

func runCommand(name string, args []string) error {
	argv := make([]string, 1, 1+len(args))
	argv[0] = name
	argv = append(argv, args...)

	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%s is not a termline command. See 'termline help'", name)
	}
	parsedArgs, err := docopt.Parse(cmd.usage, argv, true, "", false)
	if err != nil {
		return err
	}
	return cmd.f(parsedArgs)
}
