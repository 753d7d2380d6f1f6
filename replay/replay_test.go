package replay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlayerTicksInOrder(t *testing.T) {
	p := NewPlayer([]string{"a", "b", "c"}, 100*time.Millisecond)
	start := time.Unix(0, 0)

	_, ok := p.Current()
	assert.False(t, ok)

	assert.True(t, p.Tick(start))
	cur, ok := p.Current()
	assert.True(t, ok)
	assert.Equal(t, "a", cur)

	assert.False(t, p.Tick(start.Add(50*time.Millisecond)))
	cur, _ = p.Current()
	assert.Equal(t, "a", cur)

	assert.True(t, p.Tick(start.Add(100*time.Millisecond)))
	cur, _ = p.Current()
	assert.Equal(t, "b", cur)

	// a long gap still advances only one item
	assert.True(t, p.Tick(start.Add(10*time.Second)))
	cur, _ = p.Current()
	assert.Equal(t, "c", cur)
	assert.True(t, p.Done())

	assert.False(t, p.Tick(start.Add(time.Hour)))
	assert.Equal(t, 2, p.Index())
}

func TestPlayerPause(t *testing.T) {
	p := NewPlayer([]int{1, 2, 3}, time.Millisecond)
	now := time.Unix(0, 0)
	p.Tick(now)
	p.Toggle()
	assert.True(t, p.Paused())
	assert.False(t, p.Tick(now.Add(time.Second)))

	assert.True(t, p.StepForward())
	cur, _ := p.Current()
	assert.Equal(t, 2, cur)

	p.Toggle()
	assert.False(t, p.Paused())
	assert.True(t, p.Tick(now.Add(2*time.Second)))
	cur, _ = p.Current()
	assert.Equal(t, 3, cur)
	assert.False(t, p.StepForward())
}

func TestPlayerEmpty(t *testing.T) {
	p := NewPlayer[int](nil, time.Millisecond)
	assert.True(t, p.Done())
	assert.False(t, p.Tick(time.Now()))
	_, ok := p.Current()
	assert.False(t, ok)
}

func TestPlayerReset(t *testing.T) {
	p := NewPlayer([]int{1, 2}, 0)
	now := time.Now()
	p.Tick(now)
	p.Tick(now)
	assert.True(t, p.Done())
	p.Reset()
	assert.Equal(t, -1, p.Index())
	assert.False(t, p.Done())
	assert.Equal(t, 2, p.Len())
}
