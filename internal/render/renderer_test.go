package render

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitchdeck/internal/deck"
)

func testSlides() []deck.Slide {
	return []deck.Slide{
		{Index: 1, Title: "Intro", Body: "# Intro\n\nHello investors"},
		{Index: 2, Title: "Market", Body: "## Market\n\n- big\n- growing"},
		{Index: 3, Title: "Ask", Body: "## Ask\n\nWe are raising"},
	}
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(Options{Style: "notty", Width: 60})
	require.NoError(t, err)
	return r
}

func TestRender(t *testing.T) {
	r := newTestRenderer(t)
	slide := testSlides()[0]

	out, err := r.Render(slide)
	require.NoError(t, err)
	assert.Contains(t, out, "Intro")
	assert.Contains(t, out, "Hello investors")
	assert.True(t, r.Cached(1))
	assert.False(t, r.Cached(2))
}

func TestRender_CachedPerWidth(t *testing.T) {
	r := newTestRenderer(t)
	slide := testSlides()[1]

	first, err := r.Render(slide)
	require.NoError(t, err)

	require.NoError(t, r.SetWidth(40))
	assert.Equal(t, 40, r.Width())
	assert.False(t, r.Cached(2), "resize purges the cache")

	again, err := r.Render(slide)
	require.NoError(t, err)
	assert.Contains(t, again, "growing")
	assert.Contains(t, first, "growing")
}

func TestSetWidth_SameWidthKeepsCache(t *testing.T) {
	r := newTestRenderer(t)
	r.Preload(testSlides()[2], r.Generation())
	require.True(t, r.Cached(3))

	require.NoError(t, r.SetWidth(60))
	assert.True(t, r.Cached(3))

	r.Purge()
	assert.False(t, r.Cached(3))
}

func TestRenderAll(t *testing.T) {
	r := newTestRenderer(t)
	slides := testSlides()

	var done atomic.Int32
	out, err := r.RenderAll(context.Background(), slides, 2, func() { done.Add(1) })
	require.NoError(t, err)

	require.Len(t, out, 3)
	assert.Contains(t, out[0], "Hello investors")
	assert.Contains(t, out[1], "growing")
	assert.Contains(t, out[2], "We are raising")
	assert.EqualValues(t, 3, done.Load())
}

func TestRenderAll_Cancelled(t *testing.T) {
	r := newTestRenderer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.RenderAll(ctx, testSlides(), 1, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNew_UnknownStyle(t *testing.T) {
	_, err := New(Options{Style: "/definitely/not/a/style.json"})
	require.Error(t, err)
}

func TestPreload_StaleGenerationSkipped(t *testing.T) {
	r := newTestRenderer(t)
	gen := r.Generation()

	r.Purge()
	assert.NotEqual(t, gen, r.Generation())

	r.Preload(testSlides()[0], gen)
	assert.False(t, r.Cached(1), "slide taken before the purge must not be cached")

	r.Preload(testSlides()[0], r.Generation())
	assert.True(t, r.Cached(1))
}

func TestSetWidth_AdvancesGeneration(t *testing.T) {
	r := newTestRenderer(t)
	gen := r.Generation()

	require.NoError(t, r.SetWidth(50))
	assert.Equal(t, gen+1, r.Generation())
}
