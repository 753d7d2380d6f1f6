package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserInputInsertAndMove(t *testing.T) {
	in := NewUserInputComponent(0)
	for _, c := range []byte("(a+b)") {
		assert.NoError(t, in.InsertCharAtBuffer(c))
	}
	assert.Equal(t, "(a+b)", in.String())
	assert.Equal(t, 5, in.Idx)

	in.CursorLeft(10)
	assert.Equal(t, 0, in.Idx)
	in.InsertCharAtBuffer('[')
	assert.Equal(t, "[(a+b)", in.String())
	assert.Equal(t, 1, in.Idx)

	in.EndOfTheLine()
	in.CursorRight(3)
	assert.Equal(t, 6, in.Idx)
}

func TestUserInputDelete(t *testing.T) {
	in := NewUserInputComponent(0)
	in.InsertBytes([]byte("push value"))

	in.DeleteCharBackward()
	assert.Equal(t, "push valu", in.String())

	in.DeleteWordBackward()
	assert.Equal(t, "push ", in.String())
	assert.Equal(t, 5, in.Idx)

	in.BeginningOfTheLine()
	in.DeleteCharForward()
	assert.Equal(t, "ush ", in.String())

	in.DeleteWordForward()
	assert.Equal(t, " ", in.String())

	in.DeleteCharBackward()
	assert.Equal(t, " ", in.String(), "backspace at start is a no-op")
}

func TestUserInputKillLineAndTake(t *testing.T) {
	in := NewUserInputComponent(0)
	in.InsertBytes([]byte("{[()]}"))
	in.CursorLeft(3)
	in.KillLine()
	assert.Equal(t, "{[(", in.String())

	assert.Equal(t, "{[(", in.Take())
	assert.Equal(t, "", in.String())
	assert.Equal(t, 0, in.Idx)
}

func TestUserInputMaxLen(t *testing.T) {
	in := NewUserInputComponent(4)
	in.InsertBytes([]byte("abcdef"))
	assert.Equal(t, "abcd", in.String())
	in.InsertCharAtBuffer('x')
	assert.Equal(t, "abcd", in.String())
}

func TestUserInputWordMotion(t *testing.T) {
	in := NewUserInputComponent(0)
	in.InsertBytes([]byte("(a+bc)"))
	in.PreviousWord()
	assert.Equal(t, 3, in.Idx)
	in.BeginningOfTheLine()
	in.NextWordStart()
	assert.Equal(t, 2, in.Idx)
}

func TestListFilter(t *testing.T) {
	l := NewListComponent([]string{"(a+b)*[c-d]", "{[()]}", "(a+b]", "(()"})
	id := func(s string) string { return s }

	l.Filter("{", id)
	assert.Equal(t, []string{"{[()]}"}, l.Items)

	l.Filter("zzz", id)
	assert.Empty(t, l.Items)
	_, ok := l.Selected()
	assert.False(t, ok)

	l.Filter("", id)
	assert.Len(t, l.Items, 4)
	sel, ok := l.Selected()
	assert.True(t, ok)
	assert.Equal(t, "(a+b)*[c-d]", sel)
}

func TestListSelection(t *testing.T) {
	l := NewListComponent([]int{1, 2, 3})
	l.PrevItem()
	assert.Equal(t, 0, l.Selection)
	l.NextItem()
	l.NextItem()
	l.NextItem()
	assert.Equal(t, 2, l.Selection)
	sel, _ := l.Selected()
	assert.Equal(t, 3, sel)

	l = NewListComponent([]int{9})
	l.NextItem()
	assert.Equal(t, 0, l.Selection)
}

func TestListScroll(t *testing.T) {
	l := NewListComponent([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	l.Scroll(-1)
	assert.Equal(t, 0, l.VisibleStart)
	assert.Equal(t, 0, l.Selection)

	l.Scroll(4)
	assert.Equal(t, 4, l.VisibleStart)
	assert.Equal(t, 4, l.Selection)
	assert.Equal(t, []int{4, 5, 6}, l.VisibleView(3))

	l.Scroll(20)
	assert.Equal(t, 9, l.VisibleStart)
	assert.Equal(t, 9, l.Selection)
	sel, ok := l.Selected()
	assert.True(t, ok)
	assert.Equal(t, 9, sel)

	empty := NewListComponent([]int(nil))
	empty.Scroll(3)
	assert.Equal(t, 0, empty.VisibleStart)
	_, ok = empty.Selected()
	assert.False(t, ok)
}

func TestListVisibleView(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	l := NewListComponent(items)
	assert.Equal(t, []int{0, 1, 2}, l.VisibleView(3))

	l.Selection = 5
	view := l.VisibleView(3)
	assert.Contains(t, view, 5)
	assert.Len(t, view, 3)

	l.Selection = 0
	view = l.VisibleView(3)
	assert.Contains(t, view, 0)

	assert.Nil(t, l.VisibleView(0))
}
