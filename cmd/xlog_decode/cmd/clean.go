package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/xlogdecode/xlog-decode/errors"
	"github.com/xlogdecode/xlog-decode/xlogfs"
)

// Clean implements the "clean" subcommand: remove previously decoded
// "_.log" output files under a directory. Its default recursion
// matches decode's: a directory passed to clean is swept the same way
// decode would have swept it to produce those files.
func Clean(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("clean", pflag.ContinueOnError)
	noRecursive := fs.Bool("no-recursive", false, "do not descend into subdirectories")
	if err := fs.Parse(args); err != nil {
		return errors.E(errors.Invalid, "parsing clean flags", err)
	}
	targets := fs.Args()
	if len(targets) == 0 {
		return errors.E(errors.Invalid, "clean requires at least one directory argument")
	}

	for _, target := range targets {
		matches, err := xlogfs.FindDecodedOutputs(ctx, target, !*noRecursive)
		if err != nil {
			return errors.E("clean", target, err)
		}
		for _, m := range matches {
			if err := xlogfs.RemoveFile(m); err != nil {
				return err
			}
			fmt.Printf("removed %s\n", m)
		}
		fmt.Printf("removed %d file(s) under %s\n", len(matches), target)
	}
	return nil
}
