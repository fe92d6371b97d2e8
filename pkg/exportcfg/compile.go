// SPDX-License-Identifier: MPL-2.0

package exportcfg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Options carries the per-invocation settings that accompany a filtered
// configuration into command compilation. It is built fresh from CLI
// flags or wizard answers for every run and never persisted.
type Options struct {
	// OutputPath is the local directory the archive is written to.
	OutputPath string
	// KeepArchive leaves the archive on the remote instance after download.
	KeepArchive bool
	// Timeout is the job timeout in seconds, forwarded to the external
	// tool as advisory data. Must be >= 1.
	Timeout int
	// ZipOnly skips extraction of the downloaded archive. Accepted for
	// surface compatibility only: compilation always emits --zip-only
	// regardless, so the field has no effect at this layer.
	ZipOnly bool
	// NoDownload compiles and prints the invocation without running it.
	NoDownload bool
	// Instance selects a named credential profile, when set.
	Instance string
	// Debug enables trace logging here and in the external tool.
	Debug bool
}

// ErrArchiveNotFound is the sentinel error wrapped by ArchiveNotFoundError.
var ErrArchiveNotFound = errors.New("archive not found")

// ArchiveNotFoundError is returned by CompileImportArgs when the archive
// path does not exist.
type ArchiveNotFoundError struct {
	Path string
}

func (e *ArchiveNotFoundError) Error() string {
	return fmt.Sprintf("archive %q not found", e.Path)
}

func (e *ArchiveNotFoundError) Unwrap() error { return ErrArchiveNotFound }

// CompileExportArgs compiles a filtered dataUnits tree and the invocation
// options into the ordered argument list for a `job export` run of the
// external tool. It is a pure compilation step: no I/O, no process
// handling.
//
// Site data units are compiled as the union across every selected site:
// the external job API accepts one data-unit set applied to all sites in
// the invocation, so heterogeneous per-site selections widen to their
// union rather than compiling per-site flag sets.
func CompileExportArgs(filtered UnitTree, opts Options) []string {
	args := []string{"job", "export",
		"--output", absolutePath(opts.OutputPath),
		"--timeout", strconv.Itoa(opts.Timeout),
	}
	if opts.KeepArchive {
		args = append(args, "--keep-archive")
	}
	// The archive is always retrieved unextracted by this layer.
	args = append(args, "--zip-only")

	if global := enabledIn(filtered, GroupGlobalData); len(global) > 0 {
		args = append(args, "--global-data", strings.Join(orderByCatalog(global, globalDataKeys), ","))
	}

	if sites, ok := filtered[GroupSites].(map[string]any); ok && len(sites) > 0 {
		args = append(args, "--site", strings.Join(sortedKeys(sites), ","))

		union := map[string]bool{}
		for _, selection := range sites {
			units, ok := selection.(map[string]any)
			if !ok {
				// Boolean shorthand: the site rides on the tool's default
				// data-unit set and contributes nothing to the union.
				continue
			}
			for key := range units {
				union[key] = true
			}
		}
		if len(union) > 0 {
			args = append(args, "--site-data", strings.Join(orderByCatalog(union, siteDataKeys), ","))
		}
	}

	if lists := enabledIn(filtered, GroupInventoryLists); len(lists) > 0 {
		args = append(args, "--inventory-list", strings.Join(sortedSet(lists), ","))
	}

	// The external tool exposes no customer-list flag; customer_lists
	// selections travel only inside uploaded configuration files.

	return args
}

// CompileImportArgs compiles the argument list for a `job import` run.
// The archive must exist locally before compilation proceeds.
func CompileImportArgs(archivePath string, opts Options) ([]string, error) {
	if _, err := os.Stat(archivePath); err != nil {
		return nil, &ArchiveNotFoundError{Path: archivePath}
	}

	args := []string{"job", "import", archivePath,
		"--timeout", strconv.Itoa(opts.Timeout),
	}
	if opts.KeepArchive {
		args = append(args, "--keep-archive")
	}
	return args, nil
}

// enabledIn collects the keys of a flat group in the filtered tree.
func enabledIn(filtered UnitTree, group string) map[string]bool {
	keys := map[string]bool{}
	if units, ok := filtered[group].(map[string]any); ok {
		for key := range units {
			keys[key] = true
		}
	}
	return keys
}

// orderByCatalog orders the members of set by their catalog position;
// identifiers outside the catalog (never produced by a validated
// configuration) sort last, lexicographically.
func orderByCatalog(set map[string]bool, catalog []string) []string {
	ordered := make([]string, 0, len(set))
	for _, key := range catalog {
		if set[key] {
			ordered = append(ordered, key)
			delete(set, key)
		}
	}
	return append(ordered, sortedSet(set)...)
}

func sortedSet(set map[string]bool) []string {
	tree := map[string]any{}
	for key := range set {
		tree[key] = true
	}
	return sortedKeys(tree)
}

func absolutePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
