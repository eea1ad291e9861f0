// Package cmd implements the xlog_decode command-line tool's
// subcommands: decode, clean, help, and version.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/xlogdecode/xlog-decode/errors"
)

func commands() []struct {
	name     string
	callback func(ctx context.Context, args []string) error
	help     string
} {
	return []struct {
		name     string
		callback func(ctx context.Context, args []string) error
		help     string
	}{
		{"decode", Decode, `Decode decodes one or more .xlog/.mmap3 files, or every such file under a directory, into plaintext "_.log" files alongside the input.`},
		{"clean", Clean, `Clean removes previously decoded "_.log" output files under a directory.`},
		{"help", Help, `Help prints usage information.`},
		{"version", Version, `Version prints the tool's version.`},
	}
}

// Run dispatches args[0] to the matching subcommand's callback.
func Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		PrintUsage()
		return errors.E(errors.Invalid, "no subcommand given")
	}
	switch args[0] {
	case "--help":
		return Help(ctx, args[1:])
	case "--version":
		return Version(ctx, args[1:])
	}
	for _, c := range commands() {
		if c.name == args[0] {
			return c.callback(ctx, args[1:])
		}
	}
	PrintUsage()
	return errors.E(errors.Invalid, "unknown subcommand", args[0])
}

// PrintUsage writes the tool's top-level usage summary to stderr.
func PrintUsage() {
	fmt.Fprintln(os.Stderr, "Usage: xlog_decode <command> [arguments]")
	fmt.Fprintln(os.Stderr, "Commands:")
	for _, c := range commands() {
		fmt.Fprintf(os.Stderr, "  %-10s %s\n", c.name, c.help)
	}
}
