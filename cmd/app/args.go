package app

import (
	"fmt"
	"os"

	"github.com/akamensky/argparse"
)

const DefaultConfigPath = "hobbes.config.yaml"

// Flags shared by all hobbes executables.
type Args struct {
	Debug     *bool
	ShowLogs  *bool
	TraceLogs *bool
	Config    *string
}

// Adds common flags to the parser.
// Executable specific flags must be added before calling ParseArgs.
func RegisterArgs(parser *argparse.Parser) *Args {
	return &Args{
		Debug: parser.Flag("d", "debug", &argparse.Options{
			Help: "Enable debug mode",
		}),
		ShowLogs: parser.Flag("l", "show-logs", &argparse.Options{
			Help: "Show logs in terminal",
		}),
		TraceLogs: parser.Flag("t", "trace-logs", &argparse.Options{
			Help: "Enable trace logs",
		}),
		Config: parser.String("c", "config", &argparse.Options{
			Default: DefaultConfigPath,
			Help:    "Path to the YAML config file",
		}),
	}
}

func ParseArgs(parser *argparse.Parser) {
	if err := parser.Parse(os.Args); err != nil {
		fmt.Println(parser.Usage(err))
		os.Exit(1)
	}
}
