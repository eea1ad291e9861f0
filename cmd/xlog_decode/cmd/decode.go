package cmd

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spf13/pflag"

	"github.com/xlogdecode/xlog-decode/errors"
	"github.com/xlogdecode/xlog-decode/log"
	"github.com/xlogdecode/xlog-decode/xlogfs"
)

// Decode implements the "decode" subcommand: decode a file, or every
// recognized file under a directory, to plaintext.
func Decode(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("decode", pflag.ContinueOnError)
	noRecursive := fs.Bool("no-recursive", false, "when decoding a directory, do not descend into subdirectories")
	keepErrors := fs.Bool("keep-errors", false, "stop at the first malformed frame instead of resyncing past it")
	if err := fs.Parse(args); err != nil {
		return errors.E(errors.Invalid, "parsing decode flags", err)
	}
	targets := fs.Args()
	if len(targets) == 0 {
		return errors.E(errors.Invalid, "decode requires at least one file or directory argument")
	}

	for _, target := range targets {
		if err := decodeTarget(ctx, target, !*noRecursive, *keepErrors); err != nil {
			return err
		}
	}
	return nil
}

func decodeTarget(ctx context.Context, target string, recursive, keepErrors bool) error {
	info, err := os.Stat(target)
	if err != nil {
		return errors.E(errors.NotExist, "decode", target, err)
	}

	if !info.IsDir() {
		if xlogfs.DetermineType(target) == xlogfs.Other {
			log.Outputf(log.GetOutputter(), log.Error, "%s does not have a recognized xlog extension (.xlog, .mmap3); decoding anyway", target)
		}
		return decodeOneReport(target, keepErrors)
	}

	var (
		mu                sync.Mutex
		total, withErrors int
	)
	err = xlogfs.Walk(ctx, target, xlogfs.WalkOptions{Recursive: recursive}, func(path string) error {
		res, err := decodeOne(path, keepErrors)
		if err != nil {
			return err
		}
		mu.Lock()
		defer mu.Unlock()
		total++
		if res.HadErrors {
			withErrors++
		}
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Printf("decoded %d file(s) under %s (%d with recovered errors)\n", total, target, withErrors)
	return nil
}

func decodeOneReport(path string, keepErrors bool) error {
	_, err := decodeOne(path, keepErrors)
	return err
}

// decodeOne decodes a single file and prints one report line. keepErrors
// disables the block decoder's error-skipping recovery path: the decode
// stops at the first malformed frame instead of resyncing past it.
func decodeOne(path string, keepErrors bool) (xlogfs.DecodeResult, error) {
	start := time.Now()
	res, err := xlogfs.DecodeFile(path, !keepErrors)
	if err != nil {
		return res, errors.E("decoding", path, err)
	}
	elapsed := time.Since(start)
	status := "ok"
	if res.HadErrors {
		status = "recovered with errors"
	}
	fmt.Printf("%s -> %s: %d bytes -> %d bytes, %s, in %s\n", path, res.OutputPath, res.InputSize, res.OutputSize, status, elapsed)
	return res, nil
}
