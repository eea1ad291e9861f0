package cmd

import (
	"context"
	"fmt"
)

// version is set at build time via -ldflags; it defaults to the
// tool's last released version for a build that didn't override it.
var version = "1.0.0"

// Version implements the "version" subcommand and the --version flag.
func Version(ctx context.Context, args []string) error {
	fmt.Println("xlog_decode version", version)
	fmt.Println("Licensed under the Apache License, Version 2.0.")
	return nil
}
