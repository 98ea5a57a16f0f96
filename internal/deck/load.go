package deck

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPattern matches slide files of a directory deck
const DefaultPattern = "**/*.md"

// LoadOptions controls deck discovery
type LoadOptions struct {
	Pattern string // glob for directory decks, relative to the directory
}

// Load reads a deck from a markdown file or a directory of markdown files
func Load(p string, opts LoadOptions) (*Deck, error) {
	info, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open deck: %w", err)
	}
	if !info.IsDir() {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read deck: %w", err)
		}
		return Parse(p, data)
	}
	return loadDir(p, opts)
}

// loadDir builds a deck from every matching file, in path order. Files
// whose name starts with "_" are not slides; _title.md and _author.md
// provide deck metadata.
func loadDir(dir string, opts LoadOptions) (*Deck, error) {
	pattern := opts.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}

	fsys := os.DirFS(dir)
	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("invalid slide pattern %q: %w", pattern, err)
	}
	sort.Strings(matches)

	d := &Deck{Path: dir}
	for _, rel := range matches {
		if strings.HasPrefix(path.Base(rel), "_") {
			continue
		}
		data, err := fs.ReadFile(fsys, rel)
		if err != nil {
			return nil, fmt.Errorf("failed to read slide %s: %w", rel, err)
		}

		meta, rest := splitFrontMatter(data)
		if d.Meta == (Meta{}) {
			d.Meta = meta
		}
		source := filepath.Join(dir, filepath.FromSlash(rel))
		for _, body := range splitSlides(rest) {
			d.Slides = append(d.Slides, newSlide(len(d.Slides)+1, body, source))
		}
	}
	if len(d.Slides) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoSlides)
	}

	d.Title = firstNonEmpty(readOptional(fsys, "_title.md"), d.Meta.Title, d.Slides[0].Title)
	d.Author = firstNonEmpty(readOptional(fsys, "_author.md"), d.Meta.Author)
	return d, nil
}

func readOptional(fsys fs.FS, name string) string {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
