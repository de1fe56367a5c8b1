// Where: cli/internal/scaffold/copy.go
// What: Glob-driven file copy into a destination tree.
// Why: Materialize template files without shelling out or walking by hand.
package scaffold

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidArgument reports a bad Copy invocation: no source patterns or an
// empty destination. It is raised before any filesystem access.
var ErrInvalidArgument = errors.New("invalid argument")

// CopyOptions tunes a Copy call. The zero value globs relative to the
// process working directory, keeps the base filename as-is, and preserves
// the relative directory structure of every match under the destination.
type CopyOptions struct {
	// Cwd roots glob expansion and destination resolution when non-empty.
	Cwd string
	// Rename rewrites the base filename of each match. Directory segments
	// are never renamed.
	Rename func(name string) string
	// Flatten drops the relative directory of each match, placing every
	// file directly under the destination.
	Flatten bool
}

// Copy expands the source patterns and copies every matched file under
// destination, creating parent directories as needed and overwriting
// existing files. All per-file copies run concurrently; Copy returns once
// every copy has settled and reports the first failure, if any. Copies
// already started when one fails are not rolled back. Zero glob matches is
// a successful no-op. Two patterns matching the same destination path are a
// documented race: last writer wins.
func Copy(sources []string, destination string, opts CopyOptions) error {
	patterns := make([]string, 0, len(sources))
	for _, pattern := range sources {
		if trimmed := strings.TrimSpace(pattern); trimmed != "" {
			patterns = append(patterns, trimmed)
		}
	}
	if len(patterns) == 0 {
		return fmt.Errorf("%w: at least one source pattern is required", ErrInvalidArgument)
	}
	if strings.TrimSpace(destination) == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidArgument)
	}

	root := opts.Cwd
	if root == "" {
		root = "."
	}

	var matches []string
	for _, pattern := range patterns {
		found, err := doublestar.Glob(os.DirFS(root), pattern, doublestar.WithFilesOnly())
		if err != nil {
			return err
		}
		matches = append(matches, found...)
	}

	destRoot := destination
	if opts.Cwd != "" && !filepath.IsAbs(destRoot) {
		destRoot = filepath.Join(opts.Cwd, destRoot)
	}

	var group errgroup.Group
	for _, match := range matches {
		group.Go(func() error {
			return copyFile(root, match, destRoot, opts)
		})
	}
	return group.Wait()
}

// CopyOne copies the matches of a single pattern; see Copy.
func CopyOne(source, destination string, opts CopyOptions) error {
	return Copy([]string{source}, destination, opts)
}

// copyFile places one matched file (slash-separated, relative to root) under
// destRoot. Filesystem errors propagate unchanged.
func copyFile(root, match, destRoot string, opts CopyOptions) error {
	rel := filepath.FromSlash(match)
	dir, base := filepath.Split(rel)
	if opts.Rename != nil {
		base = opts.Rename(base)
	}

	dest := filepath.Join(destRoot, base)
	if !opts.Flatten {
		dest = filepath.Join(destRoot, dir, base)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	src, err := os.Open(filepath.Join(root, rel))
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
