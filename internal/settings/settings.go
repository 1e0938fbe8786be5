// Package settings provides line-oriented mutation of a project settings file.
//
// Overview:
//   - Responsibility: Locate the registration anchor and splice entries into
//     the settings document
//   - Key Types: Document, an ordered sequence of lines backed by one file
//   - Concurrency Model: Single-user, no locking; concurrent invocations of
//     the tool race on the read-modify-write cycle and are unsupported
//   - Error Semantics: Anchor lookup failures and file I/O errors are returned
//   - Performance Notes: Whole-file reads and rewrites, no streaming
//
// The settings file is treated as opaque text. Correctness of registration
// depends entirely on the anchor line staying present verbatim. The document
// is isolated behind this package so a structured-config approach could
// replace the textual splice without changing the generator's contract.
package settings

import (
	"os"
	"strings"

	"github.com/forgebyte/forge/internal/errs"
)

// Document is a settings file loaded fully into memory as ordered lines.
type Document struct {
	path  string
	lines []string
}

// Load reads the settings file at path into a Document.
//
// Parameters:
//   - path: Settings file path
//
// Returns:
//   - *Document: Loaded document
//   - error: IO_FAILURE when the file cannot be read
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrapf(errs.CodeIOFailure, "settings.Load", err, "failed to read settings file %s", path)
	}

	return &Document{
		path:  path,
		lines: strings.Split(string(data), "\n"),
	}, nil
}

// Path returns the file path backing the document.
func (d *Document) Path() string {
	return d.path
}

// Lines returns a copy of the document's lines.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// AnchorIndex returns the index of the anchor line, matched by exact string
// equality against the whole line.
//
// Parameters:
//   - anchor: Literal anchor line, e.g. "LOCAL_APPS = ["
//
// Returns:
//   - int: Line index of the anchor
//   - error: ANCHOR_NOT_FOUND when no line equals the anchor
func (d *Document) AnchorIndex(anchor string) (int, error) {
	for i, line := range d.lines {
		if line == anchor {
			return i, nil
		}
	}
	return -1, errs.Newf(errs.CodeAnchorNotFound, "anchor line %q not found in %s", anchor, d.path)
}

// Mentions reports whether any line of the document contains name as a
// substring. This is the duplicate-registration guard: a soft heuristic,
// not a structural guarantee. A module name that is a substring of another
// module's path produces a false positive.
func (d *Document) Mentions(name string) bool {
	for _, line := range d.lines {
		if strings.Contains(line, name) {
			return true
		}
	}
	return false
}

// InsertAfter inserts a line immediately after index.
func (d *Document) InsertAfter(index int, line string) {
	lines := make([]string, 0, len(d.lines)+1)
	lines = append(lines, d.lines[:index+1]...)
	lines = append(lines, line)
	lines = append(lines, d.lines[index+1:]...)
	d.lines = lines
}

// Save rewrites the settings file in full, line-joined.
//
// Returns:
//   - error: IO_FAILURE when the file cannot be written
func (d *Document) Save() error {
	content := strings.Join(d.lines, "\n")
	if err := os.WriteFile(d.path, []byte(content), 0644); err != nil {
		return errs.Wrapf(errs.CodeIOFailure, "settings.Save", err, "failed to write settings file %s", d.path)
	}
	return nil
}
