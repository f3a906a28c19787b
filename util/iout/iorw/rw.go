package iorw

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

var ErrBadIndex = errors.New("bad index")

// Bytes read/writer with rune aware reads. Indexes are byte offsets.
type RW struct {
	buf []byte
}

func NewRW(b []byte) *RW {
	return &RW{buf: b}
}

func NewStringRW(s string) *RW {
	return NewRW([]byte(s))
}

func (rw *RW) Len() int {
	return len(rw.buf)
}

// Result is not a copy.
func (rw *RW) Bytes() []byte {
	return rw.buf
}

func (rw *RW) String() string {
	return string(rw.buf)
}

//----------

func (rw *RW) ReadRuneAt(i int) (ru rune, size int, err error) {
	if i < 0 || i > len(rw.buf) {
		return 0, 0, fmt.Errorf("%w: %v", ErrBadIndex, i)
	}
	ru, size = utf8.DecodeRune(rw.buf[i:])
	if size == 0 {
		return 0, 0, io.EOF
	}
	return ru, size, nil
}

func (rw *RW) ReadLastRuneAt(i int) (ru rune, size int, err error) {
	if i < 0 || i > len(rw.buf) {
		return 0, 0, fmt.Errorf("%w: %v", ErrBadIndex, i)
	}
	ru, size = utf8.DecodeLastRune(rw.buf[:i])
	if size == 0 {
		return 0, 0, io.EOF
	}
	return ru, size, nil
}

//----------

func (rw *RW) Insert(i int, p []byte) error {
	if i < 0 || i > len(rw.buf) {
		return fmt.Errorf("%w: %v", ErrBadIndex, i)
	}
	if !rw.IsRuneBoundary(i) {
		return fmt.Errorf("%w: %v is inside a rune", ErrBadIndex, i)
	}

	n := len(rw.buf) + len(p)
	if n > cap(rw.buf) {
		// grow capacity
		w := make([]byte, n, n+64)
		copy(w, rw.buf[:i])
		copy(w[i+len(p):], rw.buf[i:])
		copy(w[i:], p)
		rw.buf = w
	} else {
		rw.buf = rw.buf[0:n]
		copy(rw.buf[i+len(p):], rw.buf[i:])
		copy(rw.buf[i:], p)
	}
	return nil
}

func (rw *RW) Delete(i, le int) error {
	if le < 0 {
		return fmt.Errorf("bad len: %v", le)
	}
	if i < 0 || i+le > len(rw.buf) {
		return fmt.Errorf("%w: %v", ErrBadIndex, i)
	}
	if le == 0 {
		return nil
	}
	if !rw.IsRuneBoundary(i) || !rw.IsRuneBoundary(i+le) {
		return fmt.Errorf("%w: [%v,%v] splits a rune", ErrBadIndex, i, i+le)
	}

	copy(rw.buf[i:], rw.buf[i+le:])
	rw.buf = rw.buf[:len(rw.buf)-le]
	return nil
}

// Replaces all content.
func (rw *RW) SetBytes(b []byte) {
	rw.buf = append(rw.buf[:0], b...)
}

//----------

func (rw *RW) IsRuneBoundary(i int) bool {
	if i == 0 || i == len(rw.buf) {
		return true
	}
	if i < 0 || i > len(rw.buf) {
		return false
	}
	return utf8.RuneStart(rw.buf[i])
}

// Returns the closest rune boundary at or before i, clamped to [0,len].
func (rw *RW) AlignIndex(i int) int {
	if i <= 0 {
		return 0
	}
	if i >= len(rw.buf) {
		return len(rw.buf)
	}
	for ; i > 0 && !utf8.RuneStart(rw.buf[i]); i-- {
	}
	return i
}

// Iterate over the runes; fn returns false to stop.
func (rw *RW) Iter(fn func(i int, ru rune, size int) bool) {
	for i := 0; i < len(rw.buf); {
		ru, size := utf8.DecodeRune(rw.buf[i:])
		if !fn(i, ru, size) {
			return
		}
		i += size
	}
}
