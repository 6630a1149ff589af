package view

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayout(t *testing.T) {
	l := NewLayout(35, 20)
	assert.Equal(t, DefWindowWidth, l.Width)
	assert.Equal(t, DefWindowHeight, l.Height)

	big := NewLayout(100, 10)
	assert.Equal(t, 1000+10+50+10, big.Width)
	assert.Equal(t, 1000, big.Height)
}

func TestButtonRect(t *testing.T) {
	l := NewLayout(35, 20)
	assert.Equal(t, image.Rect(710, 10, 760, 60), l.ButtonRect(ButtonIncrement))
	assert.Equal(t, image.Rect(710, 70, 760, 120), l.ButtonRect(ButtonAuto))
	assert.Equal(t, image.Rect(710, 130, 760, 180), l.ButtonRect(ButtonClear))
	assert.True(t, l.ButtonRect(ButtonNone).Empty())
}

func TestButtonAt(t *testing.T) {
	l := NewLayout(35, 20)
	cases := []struct {
		x, y int
		want Button
	}{
		{710, 10, ButtonIncrement},
		{759, 59, ButtonIncrement},
		{760, 30, ButtonNone},
		{730, 65, ButtonNone},
		{730, 100, ButtonAuto},
		{740, 179, ButtonClear},
		{740, 180, ButtonNone},
		{100, 100, ButtonNone},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, l.ButtonAt(c.x, c.y), "pixel (%d,%d)", c.x, c.y)
	}
}

func TestCellAt(t *testing.T) {
	l := NewLayout(35, 20)
	cases := []struct {
		px, py int
		x, y   int
		ok     bool
	}{
		{0, 0, 0, 0, true},
		{19, 19, 0, 0, true},
		{20, 19, 1, 0, true},
		{699, 699, 34, 34, true},
		{700, 10, 0, 0, false},
		{10, 700, 0, 0, false},
		{-1, 5, 0, 0, false},
	}
	for _, c := range cases {
		x, y, ok := l.CellAt(c.px, c.py)
		require.Equal(t, c.ok, ok, "pixel (%d,%d)", c.px, c.py)
		if ok {
			assert.Equal(t, [2]int{c.x, c.y}, [2]int{x, y}, "pixel (%d,%d)", c.px, c.py)
		}
	}
}

func TestCellRect_RoundTrip(t *testing.T) {
	l := NewLayout(7, 13)
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			r := l.CellRect(x, y)
			for _, p := range []image.Point{r.Min, r.Max.Sub(image.Pt(1, 1))} {
				cx, cy, ok := l.CellAt(p.X, p.Y)
				require.True(t, ok)
				require.Equal(t, [2]int{x, y}, [2]int{cx, cy})
			}
		}
	}
}

func TestButtonLabel(t *testing.T) {
	assert.Equal(t, "i++", ButtonIncrement.Label())
	assert.Equal(t, "auto", ButtonAuto.Label())
	assert.Equal(t, "clear", ButtonClear.Label())
	assert.Empty(t, ButtonNone.Label())
}
