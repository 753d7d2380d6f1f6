// Package replay paces a recorded sequence for on-screen animation.
// The caller's frame loop drives it through Tick; nothing here sleeps.
package replay

import "time"

type Player[T any] struct {
	items   []T
	idx     int
	delay   time.Duration
	last    time.Time
	paused  bool
	started bool
}

func NewPlayer[T any](items []T, delay time.Duration) *Player[T] {
	return &Player[T]{items: items, idx: -1, delay: delay}
}

// Tick shows the next item once delay has passed since the previous one.
// The first item is shown on the first Tick. It reports whether the current
// item changed.
func (p *Player[T]) Tick(now time.Time) bool {
	if p.paused || p.Done() {
		return false
	}
	if p.started && now.Sub(p.last) < p.delay {
		return false
	}
	p.started = true
	p.last = now
	p.idx++
	return true
}

// StepForward advances one item regardless of the delay.
func (p *Player[T]) StepForward() bool {
	if p.Done() {
		return false
	}
	p.idx++
	p.started = true
	return true
}

func (p *Player[T]) Pause() { p.paused = true }

// Resume continues playback; the next item is shown on the next Tick.
func (p *Player[T]) Resume() {
	p.paused = false
	p.started = false
}

func (p *Player[T]) Toggle() {
	if p.paused {
		p.Resume()
	} else {
		p.Pause()
	}
}

func (p *Player[T]) Paused() bool { return p.paused }

func (p *Player[T]) Reset() {
	p.idx = -1
	p.started = false
	p.paused = false
}

// Current returns the item on screen; ok is false before the first Tick or
// when there is nothing to replay.
func (p *Player[T]) Current() (item T, ok bool) {
	if p.idx < 0 || p.idx >= len(p.items) {
		return *new(T), false
	}
	return p.items[p.idx], true
}

func (p *Player[T]) Index() int { return p.idx }

func (p *Player[T]) Len() int { return len(p.items) }

// Done reports whether the last item is on screen.
func (p *Player[T]) Done() bool {
	return p.idx >= len(p.items)-1
}
