package pagination

import "fmt"

// Counter renders "current / total"
type Counter struct {
	styles Styles
}

func (c *Counter) Name() string { return "counter" }

func (c *Counter) Render(v View) string {
	return c.styles.Active.Render(fmt.Sprintf("%d / %d", v.Current, v.Total))
}

// MarkerAt always fails: the counter has no per-slide markers
func (c *Counter) MarkerAt(View, int) (int, bool) {
	return 0, false
}
