package htmlstore

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/projects/internal/clierr"
	"github.com/idilsaglam/projects/internal/dom"
)

// HTML-backed page source. The page is only ever read: switches made at
// runtime live in memory and are gone when the process exits.

const pageFileName = "projects.html"

//go:embed default.html
var defaultPage []byte

// DefaultPath is projects.html in the working directory.
func DefaultPath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, pageFileName), nil
}

// Load parses the page at path. An empty path loads projects.html from the
// working directory when present, and the built-in page otherwise.
func Load(path string) (*dom.Document, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		if _, err := os.Stat(p); err != nil {
			return Default()
		}
		path = p
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, clierr.Newf(clierr.PageNotFound, "page not found: %s", path).
				WithDetails(map[string]any{"path": path})
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	doc, err := dom.Parse(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return doc, nil
}

// Default parses the built-in page.
func Default() (*dom.Document, error) {
	return dom.Parse(bytes.NewReader(defaultPage))
}
