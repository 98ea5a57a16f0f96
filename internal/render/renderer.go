// Package render turns slide markdown into terminal output.
package render

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pitchdeck/internal/deck"
)

const (
	defaultWidth     = 80
	defaultCacheSize = 64
)

// Options configures a Renderer
type Options struct {
	Style     string // glamour style name or path; "auto" detects the background
	Width     int    // word wrap column
	CacheSize int
	Logger    *zap.Logger
}

type cacheKey struct {
	index int
	width int
}

// Renderer renders slides with glamour and caches the output per width.
// It is safe for concurrent use so slides can be preloaded in the background.
type Renderer struct {
	mu     sync.Mutex
	style  string
	width  int
	gen    uint64
	term   *glamour.TermRenderer
	cache  *lru.Cache[cacheKey, string]
	logger *zap.Logger
}

// New creates a renderer
func New(opts Options) (*Renderer, error) {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = defaultCacheSize
	}
	if opts.Style == "" {
		opts.Style = "auto"
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	cache, err := lru.New[cacheKey, string](opts.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create render cache: %w", err)
	}
	term, err := newTerm(opts.Style, opts.Width)
	if err != nil {
		return nil, err
	}

	return &Renderer{
		style:  opts.Style,
		width:  opts.Width,
		term:   term,
		cache:  cache,
		logger: opts.Logger.Named("render"),
	}, nil
}

func newTerm(style string, width int) (*glamour.TermRenderer, error) {
	styleOpt := glamour.WithStylePath(style)
	if style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}
	term, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer (style %q): %w", style, err)
	}
	return term, nil
}

// Width returns the current word wrap column
func (r *Renderer) Width() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width
}

// SetWidth rebuilds the markdown renderer for a new wrap column
func (r *Renderer) SetWidth(width int) error {
	if width <= 0 {
		width = defaultWidth
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if width == r.width {
		return nil
	}

	term, err := newTerm(r.style, width)
	if err != nil {
		return err
	}
	r.term = term
	r.width = width
	r.gen++
	r.cache.Purge()
	r.logger.Debug("renderer resized", zap.Int("width", width))
	return nil
}

// Purge drops every cached slide, e.g. after the deck was reloaded
func (r *Renderer) Purge() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
	r.cache.Purge()
}

// Generation identifies the cache contents. It advances on every purge.
func (r *Renderer) Generation() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gen
}

// Cached reports whether slide i is cached at the current width
func (r *Renderer) Cached(i int) bool {
	r.mu.Lock()
	width := r.width
	r.mu.Unlock()
	return r.cache.Contains(cacheKey{index: i, width: width})
}

// Render returns the terminal rendering of a slide
func (r *Renderer) Render(s deck.Slide) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.render(s)
}

func (r *Renderer) render(s deck.Slide) (string, error) {
	key := cacheKey{index: s.Index, width: r.width}
	if out, ok := r.cache.Get(key); ok {
		return out, nil
	}

	out, err := r.term.Render(s.Body)
	if err != nil {
		return "", fmt.Errorf("failed to render slide %d: %w", s.Index, err)
	}
	out = strings.TrimRight(out, "\n ")
	r.cache.Add(key, out)
	return out, nil
}

// Preload renders a slide into the cache, logging failures. gen is the
// Generation read when the slide was taken from its deck; a slide from
// before a purge is stale and skipped.
func (r *Renderer) Preload(s deck.Slide, gen uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		r.logger.Debug("skipped stale preload", zap.Int("slide", s.Index))
		return
	}
	if _, err := r.render(s); err != nil {
		r.logger.Warn("preload failed", zap.Int("slide", s.Index), zap.Error(err))
		return
	}
	r.logger.Debug("preloaded slide", zap.Int("slide", s.Index))
}

// RenderAll renders every slide in parallel, each worker with its own
// markdown renderer. onDone, if set, is called once per finished slide.
func (r *Renderer) RenderAll(ctx context.Context, slides []deck.Slide, workers int, onDone func()) ([]string, error) {
	if workers <= 0 {
		workers = 1
	}
	r.mu.Lock()
	style, width := r.style, r.width
	r.mu.Unlock()

	out := make([]string, len(slides))
	jobs := make(chan int)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for i := range slides {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			term, err := newTerm(style, width)
			if err != nil {
				return err
			}
			for i := range jobs {
				rendered, err := term.Render(slides[i].Body)
				if err != nil {
					return fmt.Errorf("failed to render slide %d: %w", slides[i].Index, err)
				}
				out[i] = strings.TrimRight(rendered, "\n ")
				if onDone != nil {
					onDone()
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
