package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Intersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"partial overlap", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"corner touching", Rect{X: 10, Y: 10, Width: 10, Height: 10}, false},
		{"edge touching on x", Rect{X: 10, Y: 0, Width: 10, Height: 10}, false},
		{"edge touching on y", Rect{X: 0, Y: 10, Width: 10, Height: 10}, false},
		{"contained", Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"identical", a, true},
		{"far away", Rect{X: 100, Y: 100, Width: 10, Height: 10}, false},
		{"negative coords", Rect{X: -5, Y: -5, Width: 6, Height: 6}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Intersects(tt.b))
			assert.Equal(t, a.Intersects(tt.b), tt.b.Intersects(a), "overlap must be symmetric")
		})
	}
}

func TestRect_IntersectsZeroSized(t *testing.T) {
	a := Rect{X: 5, Y: 5}
	b := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	assert.True(t, a.Intersects(b))
	assert.False(t, a.Intersects(a))
}
