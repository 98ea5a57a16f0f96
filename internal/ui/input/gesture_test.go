package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitchdeck/internal/navigation"
)

func TestSwipeDetector(t *testing.T) {
	d := SwipeDetector{Threshold: 50}

	tests := []struct {
		name   string
		dx, dy float64
		want   navigation.Direction
		ok     bool
	}{
		{"left swipe goes forward", 60, 10, navigation.DirectionNext, true},
		{"right swipe goes back", -60, 10, navigation.DirectionPrevious, true},
		{"too short", 40, 0, "", false},
		{"exactly threshold", 50, 0, "", false},
		{"mostly vertical", 80, 90, "", false},
		{"diagonal tie", 70, -70, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, ok := d.Detect(tt.dx, tt.dy)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, dir)
		})
	}
}

func TestSwipeDetector_DefaultThreshold(t *testing.T) {
	var d SwipeDetector
	_, ok := d.Detect(45, 0)
	assert.False(t, ok)
	dir, ok := d.Detect(55, 0)
	require.True(t, ok)
	assert.Equal(t, navigation.DirectionNext, dir)
}

func TestClickZone(t *testing.T) {
	tests := []struct {
		x, width int
		want     navigation.Direction
		ok       bool
	}{
		{0, 100, navigation.DirectionPrevious, true},
		{29, 100, navigation.DirectionPrevious, true},
		{30, 100, "", false},
		{50, 100, "", false},
		{70, 100, "", false},
		{71, 100, navigation.DirectionNext, true},
		{99, 100, navigation.DirectionNext, true},
		{100, 100, "", false},
		{-1, 100, "", false},
		{0, 0, "", false},
	}
	for _, tt := range tests {
		dir, ok := ClickZone(tt.x, tt.width)
		assert.Equal(t, tt.ok, ok, "x=%d", tt.x)
		assert.Equal(t, tt.want, dir, "x=%d", tt.x)
	}
}

func TestWheelCoalescer_OnlyLatestPushSettles(t *testing.T) {
	w := &WheelCoalescer{Delay: time.Millisecond}

	var cmds []func() WheelSettledMsg
	for _, delta := range []int{1, 1, 1} {
		cmd := w.Push(delta)
		require.NotNil(t, cmd)
		cmds = append(cmds, func() WheelSettledMsg { return cmd().(WheelSettledMsg) })
	}

	steps := 0
	for _, run := range cmds {
		if dir, ok := w.Settle(run()); ok {
			steps++
			assert.Equal(t, navigation.DirectionNext, dir)
		}
	}
	assert.Equal(t, 1, steps, "a burst moves exactly one slide")
}

func TestWheelCoalescer_DirectionFromLastDelta(t *testing.T) {
	w := &WheelCoalescer{Delay: time.Millisecond}
	w.Push(1)
	cmd := w.Push(-3)

	dir, ok := w.Settle(cmd().(WheelSettledMsg))
	require.True(t, ok)
	assert.Equal(t, navigation.DirectionPrevious, dir)
}

func TestWheelCoalescer_ZeroDeltaIgnored(t *testing.T) {
	w := &WheelCoalescer{}
	assert.Nil(t, w.Push(0))
}
