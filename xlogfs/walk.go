package xlogfs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"golang.org/x/sync/errgroup"

	"github.com/xlogdecode/xlog-decode/errors"
)

// parallelism bounds how many files a directory walk decodes
// concurrently.
const parallelism = 16

// WalkOptions controls Walk's traversal.
type WalkOptions struct {
	// Recursive descends into subdirectories when true. When false,
	// only the immediate contents of root are visited.
	Recursive bool
	// Pattern, if non-empty, is a github.com/gobwas/glob pattern a
	// file's path must match to be visited. An empty Pattern visits
	// every file whose extension DetermineType recognizes.
	Pattern string
}

// Walk lists every file under root matching opts, then calls callback
// for each, respecting ctx cancellation and bounding concurrency at
// parallelism. It returns the first error any callback invocation
// returned, wrapped with errors.Once semantics so concurrent failures
// don't race.
func Walk(ctx context.Context, root string, opts WalkOptions, callback func(path string) error) error {
	paths, err := list(root, opts)
	if err != nil {
		return errors.E(errors.NotExist, "listing", root, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, parallelism)
	var once errors.Once
	for _, p := range paths {
		p := p
		if err := gctx.Err(); err != nil {
			once.Set(err)
			break
		}
		sem <- struct{}{}
		g.Go(func() error {
			defer func() { <-sem }()
			once.Set(callback(p))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		once.Set(err)
	}
	return once.Err()
}

func list(root string, opts WalkOptions) ([]string, error) {
	var matcher glob.Glob
	if opts.Pattern != "" {
		m, err := glob.Compile(opts.Pattern)
		if err != nil {
			return nil, errors.E(errors.Invalid, "compiling pattern", opts.Pattern, err)
		}
		matcher = m
	}

	var paths []string
	walkFn := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if !opts.Recursive && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if matcher != nil {
			if matcher.Match(path) {
				paths = append(paths, path)
			}
			return nil
		}
		if DetermineType(path) != Other {
			paths = append(paths, path)
		}
		return nil
	}

	if !opts.Recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			full := filepath.Join(root, e.Name())
			info, err := e.Info()
			if err != nil {
				return nil, err
			}
			if err := walkFn(full, fs.FileInfoToDirEntry(info), nil); err != nil && err != filepath.SkipDir {
				return nil, err
			}
		}
		return paths, nil
	}

	if err := filepath.WalkDir(root, walkFn); err != nil {
		return nil, err
	}
	return paths, nil
}
