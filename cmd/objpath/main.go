package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// CLI is the command line of objpath.
type CLI struct {
	Config  string `help:"TOML config file with [output] defaults" env:"OBJPATH_CONFIG"`
	Format  string `short:"f" help:"Output format: json, yaml or text"`
	Color   string `help:"Colour text output: auto, always or never"`
	Verbose bool   `short:"v" help:"Log debug information to stderr"`

	Get   GetCmd   `cmd:"" help:"Print the value at a path"`
	Info  InfoCmd  `cmd:"" help:"Print the parent, name, value and existence of a path"`
	Parse ParseCmd `cmd:"" help:"Print the steps of a path"`
}

// run executes the command line and returns the process exit code:
// 0 on success, 2 when get finds nothing, 1 on any other error.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("objpath"),
		kong.Description("Look up values in JSON and YAML documents by path."),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	settings, err := loadSettings(cli.Config, cli.Format, cli.Color)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	appCtx := &Context{
		Settings: settings,
		Stdin:    stdin,
		Stdout:   stdout,
		Log:      newLogger(stderr, cli.Verbose),
	}
	if err := kctx.Run(appCtx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, ErrNotFound) {
			return 2
		}
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
