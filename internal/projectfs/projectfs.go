// Package projectfs provides rooted file system operations for scaffolding.
//
// Overview:
//   - Responsibility: Create directories and files relative to a project root
//   - Key Types: ProjectFS rooted file system helper
//   - Concurrency Model: Sequential file operations, no internal locking
//   - Error Semantics: File system errors wrapped with the relative path
//   - Performance Notes: Thin wrappers over the os package
//
// Usage:
//
//	fs := projectfs.New(".")
//	err := fs.CreateDirectory("modules/billing")
//	err := fs.WriteFile("modules/billing/apps.py", content, 0644)
package projectfs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/forgebyte/forge/internal/ui"
)

// ProjectFS provides file system operations rooted at a project directory.
// All paths passed to its methods are interpreted relative to the root.
type ProjectFS struct {
	rootDir string
	verbose bool
}

// New creates a new project file system rooted at rootDir.
//
// Parameters:
//   - rootDir: Root directory for all operations
//
// Returns:
//   - *ProjectFS: Project file system instance
func New(rootDir string) *ProjectFS {
	return &ProjectFS{rootDir: rootDir}
}

// SetVerbose enables or disables per-operation debug tracing.
func (p *ProjectFS) SetVerbose(enabled bool) {
	p.verbose = enabled
}

// Root returns the root directory of the project file system.
func (p *ProjectFS) Root() string {
	return p.rootDir
}

// Abs returns the absolute path for a project-relative path.
func (p *ProjectFS) Abs(path string) string {
	return filepath.Join(p.rootDir, path)
}

// CreateDirectory creates a directory (and any missing parents) if it
// doesn't exist yet.
//
// Parameters:
//   - path: Directory path relative to root
//
// Returns:
//   - error: File system error if any
func (p *ProjectFS) CreateDirectory(path string) error {
	fullPath := p.Abs(path)

	if _, err := os.Stat(fullPath); err == nil {
		if p.verbose {
			ui.Debug("directory already exists: %s", path)
		}
		return nil
	}

	if err := os.MkdirAll(fullPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}

	if p.verbose {
		ui.Debug("created directory: %s", path)
	}

	return nil
}

// WriteFile writes content to a file, creating parent directories as needed.
//
// Parameters:
//   - path: File path relative to root
//   - content: File content
//   - mode: File permissions
//
// Returns:
//   - error: File system error if any
func (p *ProjectFS) WriteFile(path, content string, mode fs.FileMode) error {
	fullPath := p.Abs(path)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory for %s: %w", path, err)
	}

	if err := os.WriteFile(fullPath, []byte(content), mode); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	if p.verbose {
		ui.Debug("wrote file: %s", path)
	}

	return nil
}

// ReadFile reads a file fully into memory.
//
// Parameters:
//   - path: File path relative to root
//
// Returns:
//   - string: File content
//   - error: File system error if any
func (p *ProjectFS) ReadFile(path string) (string, error) {
	content, err := os.ReadFile(p.Abs(path))
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(content), nil
}

// FileExists checks if a regular file exists at the given path.
func (p *ProjectFS) FileExists(path string) (bool, error) {
	info, err := os.Stat(p.Abs(path))
	if err == nil {
		return !info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// DirectoryExists checks if a directory exists at the given path.
func (p *ProjectFS) DirectoryExists(path string) (bool, error) {
	info, err := os.Stat(p.Abs(path))
	if err == nil {
		return info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// ListDirectories lists the names of the immediate subdirectories of path.
//
// Parameters:
//   - path: Directory path relative to root
//
// Returns:
//   - []string: Sorted subdirectory names
//   - error: File system error if any
func (p *ProjectFS) ListDirectories(path string) ([]string, error) {
	entries, err := os.ReadDir(p.Abs(path))
	if err != nil {
		return nil, fmt.Errorf("failed to list directories in %s: %w", path, err)
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}

	return dirs, nil
}
