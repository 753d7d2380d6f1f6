package components

import (
	"bytes"

	"github.com/amirrezaask/stackviz/byteutils"
	"golang.design/x/clipboard"
)

// UserInputComponent is a single line text box. Idx is the cursor, a byte
// offset in [0, len(UserInput)].
type UserInputComponent struct {
	UserInput []byte
	Idx       int
	// MaxLen limits the input length, zero means unlimited.
	MaxLen int
}

func NewUserInputComponent(maxLen int) *UserInputComponent {
	return &UserInputComponent{MaxLen: maxLen}
}

func (f *UserInputComponent) SetNewUserInput(bs []byte) {
	f.UserInput = bs
	f.clampIdx()
}

func (f *UserInputComponent) clampIdx() {
	if f.Idx > len(f.UserInput) {
		f.Idx = len(f.UserInput)
	} else if f.Idx < 0 {
		f.Idx = 0
	}
}

func (f *UserInputComponent) String() string {
	return string(f.UserInput)
}

func (f *UserInputComponent) InsertCharAtBuffer(char byte) error {
	return f.InsertBytes([]byte{char})
}

// InsertBytes inserts bs at the cursor, truncating to MaxLen.
func (f *UserInputComponent) InsertBytes(bs []byte) error {
	if f.MaxLen > 0 {
		room := f.MaxLen - len(f.UserInput)
		if room <= 0 {
			return nil
		}
		if len(bs) > room {
			bs = bs[:room]
		}
	}
	f.clampIdx()
	newInput := make([]byte, 0, len(f.UserInput)+len(bs))
	newInput = append(newInput, f.UserInput[:f.Idx]...)
	newInput = append(newInput, bs...)
	newInput = append(newInput, f.UserInput[f.Idx:]...)
	f.Idx += len(bs)
	f.SetNewUserInput(newInput)
	return nil
}

func (f *UserInputComponent) CursorRight(n int) error {
	f.Idx += n
	f.clampIdx()
	return nil
}

func (f *UserInputComponent) CursorLeft(n int) error {
	f.Idx -= n
	f.clampIdx()
	return nil
}

func (f *UserInputComponent) BeginningOfTheLine() error {
	f.Idx = 0
	return nil
}

func (f *UserInputComponent) EndOfTheLine() error {
	f.Idx = len(f.UserInput)
	return nil
}

func (f *UserInputComponent) NextWordStart() error {
	f.Idx = byteutils.NextWordEnd(f.UserInput, f.Idx)
	return nil
}

func (f *UserInputComponent) PreviousWord() error {
	f.Idx = byteutils.PreviousWordStart(f.UserInput, f.Idx)
	return nil
}

func (f *UserInputComponent) DeleteCharBackward() error {
	if f.Idx <= 0 {
		return nil
	}
	f.removeRange(f.Idx-1, f.Idx)
	return nil
}

func (f *UserInputComponent) DeleteCharForward() error {
	if f.Idx >= len(f.UserInput) {
		return nil
	}
	f.removeRange(f.Idx, f.Idx+1)
	return nil
}

func (f *UserInputComponent) DeleteWordBackward() error {
	f.removeRange(byteutils.PreviousWordStart(f.UserInput, f.Idx), f.Idx)
	return nil
}

func (f *UserInputComponent) DeleteWordForward() error {
	f.removeRange(f.Idx, byteutils.NextWordEnd(f.UserInput, f.Idx))
	return nil
}

func (f *UserInputComponent) KillLine() error {
	f.removeRange(f.Idx, len(f.UserInput))
	return nil
}

// removeRange deletes [start, end) and leaves the cursor at start.
func (f *UserInputComponent) removeRange(start, end int) {
	if start >= end {
		return
	}
	newInput := make([]byte, 0, len(f.UserInput)-(end-start))
	newInput = append(newInput, f.UserInput[:start]...)
	newInput = append(newInput, f.UserInput[end:]...)
	f.Idx = start
	f.SetNewUserInput(newInput)
}

func (f *UserInputComponent) Clear() {
	f.Idx = 0
	f.SetNewUserInput(nil)
}

// Take returns the current input and clears the box.
func (f *UserInputComponent) Take() string {
	s := string(f.UserInput)
	f.Clear()
	return s
}

// Paste inserts the first line of the clipboard text at the cursor.
func (f *UserInputComponent) Paste() error {
	content := getClipboardContent()
	if i := bytes.IndexAny(content, "\r\n"); i >= 0 {
		content = content[:i]
	}
	return f.InsertBytes(content)
}

func (f *UserInputComponent) Copy() error {
	writeToClipboard(f.UserInput)
	return nil
}

var clipboardReady bool

// InitClipboard must succeed before Paste and Copy do anything.
func InitClipboard() error {
	if err := clipboard.Init(); err != nil {
		return err
	}
	clipboardReady = true
	return nil
}

func getClipboardContent() []byte {
	if !clipboardReady {
		return nil
	}
	return clipboard.Read(clipboard.FmtText)
}

func writeToClipboard(bs []byte) {
	if !clipboardReady {
		return
	}
	clipboard.Write(clipboard.FmtText, bytes.Clone(bs))
}
