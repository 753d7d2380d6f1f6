package byteutils

import "unicode"

func isWordByte(b byte) bool {
	return unicode.IsLetter(rune(b)) || unicode.IsDigit(rune(b)) || b == '_'
}

// PreviousWordStart returns the index where the word before idx starts,
// skipping any non word bytes directly before idx.
func PreviousWordStart(bs []byte, idx int) int {
	if idx > len(bs) {
		idx = len(bs)
	}
	i := idx
	for i > 0 && !isWordByte(bs[i-1]) {
		i--
	}
	for i > 0 && isWordByte(bs[i-1]) {
		i--
	}
	return i
}

// NextWordEnd returns the index right after the word at or after idx.
func NextWordEnd(bs []byte, idx int) int {
	if idx < 0 {
		idx = 0
	}
	i := idx
	for i < len(bs) && !isWordByte(bs[i]) {
		i++
	}
	for i < len(bs) && isWordByte(bs[i]) {
		i++
	}
	return i
}
