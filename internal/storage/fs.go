package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/starford/docscheck/internal/apperr"
)

// FS implements Provider backed by the local file system.
type FS struct {
	root string // absolute path to the project root
}

// NewFS creates a new FS provider rooted at the given directory.
// The directory must already exist.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: root is not a directory: %s", abs)
	}
	return &FS{root: abs}, nil
}

// Root returns the absolute project root.
func (f *FS) Root() string {
	return f.root
}

// safePath resolves a relative path against the project root and rejects
// any result that escapes it.
func (f *FS) safePath(rel string) (string, error) {
	if rel == "" {
		return f.root, nil
	}
	cleaned := filepath.Clean(rel)
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("storage: absolute paths not allowed: %s", rel)
	}
	abs := filepath.Join(f.root, cleaned)
	if !strings.HasPrefix(abs, f.root+string(os.PathSeparator)) && abs != f.root {
		return "", fmt.Errorf("storage: path escapes project root: %s", rel)
	}
	return abs, nil
}

// Discover expands every pattern against the root and keeps existing regular files.
// Patterns use forward slashes and may contain ** to match any number of directories.
func (f *FS) Discover(patterns []string) ([]string, error) {
	dir := os.DirFS(f.root)
	seen := make(map[string]struct{})
	var out []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(dir, path.Clean(filepath.ToSlash(pattern)))
		if err != nil {
			return nil, fmt.Errorf("storage: glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			rel := filepath.FromSlash(m)
			if _, ok := seen[rel]; ok {
				continue
			}
			// Stat follows symlinks, so a link to a regular file counts.
			info, err := os.Stat(filepath.Join(f.root, rel))
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			seen[rel] = struct{}{}
			out = append(out, rel)
		}
	}
	slices.SortFunc(out, comparePaths)
	return out, nil
}

// comparePaths orders paths segment by segment, so "Docs/guide/intro.md"
// sorts before "Docs/guide.md" and a parent directory before its children.
func comparePaths(a, b string) int {
	as := strings.Split(a, string(filepath.Separator))
	bs := strings.Split(b, string(filepath.Separator))
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := strings.Compare(as[i], bs[i]); c != 0 {
			return c
		}
	}
	return len(as) - len(bs)
}

// Read opens, fully reads and closes the file at path.
// Content that is not valid UTF-8 is rejected with apperr.ErrInvalidEncoding.
func (f *FS) Read(rel string) (string, error) {
	abs, err := f.safePath(rel)
	if err != nil {
		return "", err
	}
	file, err := os.Open(abs)
	if err != nil {
		return "", fmt.Errorf("storage: open %s: %w", rel, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("storage: stat %s: %w", rel, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("storage: read %s: %w", rel, apperr.ErrNotRegularFile)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("storage: read %s: %w", rel, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("storage: read %s: %w", rel, apperr.ErrInvalidEncoding)
	}
	return string(data), nil
}

// Resolve maps target, as written in the document doc, to an absolute path.
// A target starting with "/" is rooted at the project root; anything else is
// relative to the directory holding doc. The result may lie outside the root.
//
// Rooted targets are not cleaned: "/nodir/../README.md" keeps its segments
// so Exists fails when nodir is missing.
func (f *FS) Resolve(doc, target string) string {
	if strings.HasPrefix(target, "/") {
		return f.root + string(os.PathSeparator) + filepath.FromSlash(strings.TrimLeft(target, "/"))
	}
	base := filepath.Join(f.root, filepath.Dir(doc))
	return filepath.Join(base, filepath.FromSlash(target))
}

// Exists reports whether abs names an existing file or directory.
func (f *FS) Exists(abs string) bool {
	_, err := os.Stat(abs)
	return err == nil
}
