package components

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

type ScoredItem[T any] struct {
	Item  T
	Score int
}

// ListComponent is a scrollable list with a selection. Items holds the
// entries currently shown; Filter narrows them down from the full set.
type ListComponent[T any] struct {
	VisibleStart int
	Items        []T
	Selection    int
	all          []T
}

func NewListComponent[T any](items []T) *ListComponent[T] {
	return &ListComponent[T]{Items: items, all: items}
}

// Filter keeps the items whose repr fuzzy matches input, closest first.
// An empty input restores every item in its original order.
func (l *ListComponent[T]) Filter(input string, repr func(T) string) {
	l.Selection = 0
	l.VisibleStart = 0
	if input == "" {
		l.Items = l.all
		return
	}

	var scored []ScoredItem[T]
	for _, item := range l.all {
		rank := fuzzy.RankMatchNormalizedFold(input, repr(item))
		if rank < 0 {
			continue
		}
		scored = append(scored, ScoredItem[T]{Item: item, Score: rank})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score < scored[j].Score
	})

	l.Items = make([]T, 0, len(scored))
	for _, s := range scored {
		l.Items = append(l.Items, s.Item)
	}
}

// Selected returns the selected item; ok is false when the list is empty.
func (l *ListComponent[T]) Selected() (item T, ok bool) {
	if l.Selection < 0 || l.Selection >= len(l.Items) {
		return *new(T), false
	}
	return l.Items[l.Selection], true
}

func (l *ListComponent[T]) NextItem() {
	l.Selection++
	if l.Selection >= len(l.Items) {
		l.Selection = len(l.Items) - 1
	}
	if l.Selection < 0 {
		l.Selection = 0
	}
}

func (l *ListComponent[T]) PrevItem() {
	l.Selection--
	if l.Selection < 0 {
		l.Selection = 0
	}

	if l.Selection < l.VisibleStart {
		l.VisibleStart--
		if l.VisibleStart < 0 {
			l.VisibleStart = 0
		}
	}
}

// Scroll moves the view and the selection by n items together, so the
// selection stays on the same visible row.
func (l *ListComponent[T]) Scroll(n int) {
	last := max(len(l.Items)-1, 0)
	l.VisibleStart = min(max(l.VisibleStart+n, 0), last)
	l.Selection = min(max(l.Selection+n, 0), last)
}

func (l *ListComponent[T]) VisibleView(maxLine int) []T {
	if maxLine <= 0 {
		return nil
	}
	jump := max(maxLine/3, 1)
	for l.Selection < l.VisibleStart && l.VisibleStart > 0 {
		l.VisibleStart -= jump
		if l.VisibleStart < 0 {
			l.VisibleStart = 0
		}
	}

	for l.Selection >= l.VisibleStart+maxLine && l.VisibleStart < len(l.Items) {
		l.VisibleStart += jump
		if l.VisibleStart >= len(l.Items) {
			l.VisibleStart = len(l.Items)
		}
	}

	if len(l.Items) > l.VisibleStart+maxLine {
		return l.Items[l.VisibleStart : l.VisibleStart+maxLine]
	}
	if l.VisibleStart > len(l.Items) {
		l.VisibleStart = len(l.Items)
	}
	return l.Items[l.VisibleStart:]
}
