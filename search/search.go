// Package search locates separators inside a window of stream content.
//
// Every function returns offsets relative to the window it was given, never
// slices into it, because the backing buffer may be mutated or reallocated
// between calls. When a separator occurs more than once the lowest offset
// wins, whatever strategy is used.
package search

import "bytes"

// WindowThreshold is the window length at which Index switches from the naive
// scan to Boyer–Moore. Below it, building the skip table costs more than the
// scan it saves.
const WindowThreshold = 1024

// IndexByte returns the offset of the first c in window, or -1.
func IndexByte(window []byte, c byte) int {
	return bytes.IndexByte(window, c)
}

// Index returns the offset of the first occurrence of sep in window, or -1.
// An empty sep matches at offset 0.
func Index(window, sep []byte) int {
	switch {
	case len(sep) == 0:
		return 0
	case len(sep) == 1:
		return IndexByte(window, sep[0])
	case len(window) < WindowThreshold:
		return Naive(window, sep)
	default:
		return BoyerMoore(window, sep)
	}
}

// Naive is the O(n·m) scan used for small windows.
func Naive(window, sep []byte) int {
	n, m := len(window), len(sep)
	if m == 0 {
		return 0
	}
	for i := 0; i+m <= n; i++ {
		j := 0
		for j < m && window[i+j] == sep[j] {
			j++
		}
		if j == m {
			return i
		}
	}
	return -1
}

// BoyerMoore searches with a 256-entry bad-character skip table built once
// per call from sep.
func BoyerMoore(window, sep []byte) int {
	n, m := len(window), len(sep)
	if m == 0 {
		return 0
	}
	if m > n {
		return -1
	}

	var skip [256]int
	for i := range skip {
		skip[i] = m
	}
	for i := 0; i < m-1; i++ {
		skip[sep[i]] = m - 1 - i
	}

	// i is the window index aligned with the last byte of sep.
	for i := m - 1; i < n; i += skip[window[i]] {
		j, k := m-1, i
		for j >= 0 && window[k] == sep[j] {
			j--
			k--
		}
		if j < 0 {
			return k + 1
		}
	}
	return -1
}

// Line returns the exclusive end offset of the chunk terminated by sep: just
// past the first occurrence, or len(window) when sep does not occur. An empty
// sep never terminates a chunk; use Paragraph for blank-line scanning.
func Line(window, sep []byte) int {
	if len(sep) == 0 {
		return len(window)
	}
	i := Index(window, sep)
	if i < 0 {
		return len(window)
	}
	return i + len(sep)
}

var blankLine = []byte("\n\n")

// Paragraph scans window in paragraph mode. Leading newlines are skipped, then
// the chunk runs up to and including the first blank line, or to the end of
// the window when there is none. It returns the chunk's start and exclusive
// end. ok is false only when the window holds nothing but newlines, in which
// case start and end both equal len(window).
func Paragraph(window []byte) (start, end int, ok bool) {
	for start < len(window) && window[start] == '\n' {
		start++
	}
	if start == len(window) {
		return start, start, false
	}
	if i := Index(window[start:], blankLine); i >= 0 {
		return start, start + i + len(blankLine), true
	}
	return start, len(window), true
}
