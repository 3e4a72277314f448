// Package storage defines the project file-system abstraction the checker reads through.
package storage

// Provider is the interface for project file operations.
type Provider interface {
	// Root returns the absolute project root.
	Root() string
	// Discover returns the regular files matching any of patterns, relative to root,
	// deduplicated and sorted.
	Discover(patterns []string) ([]string, error)
	// Read returns the UTF-8 text of the file at path (relative to root).
	Read(path string) (string, error)
	// Resolve maps a normalized link target found in doc to an absolute path.
	Resolve(doc, target string) string
	// Exists reports whether an absolute path exists.
	Exists(abs string) bool
}
