package cmd

import "context"

// Help implements the "help" subcommand and the --help flag.
func Help(ctx context.Context, args []string) error {
	PrintUsage()
	return nil
}
