// Package carousel implements wrap-around slide selection.
package carousel

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty           = errors.New("carousel has no slides")
	ErrIndexOutOfRange = errors.New("slide index out of range")
	ErrUnknownDir      = errors.New("unknown carousel direction")
)

type Direction int

const (
	Next Direction = iota + 1
	Prev
)

func (d Direction) String() string {
	switch d {
	case Next:
		return "next"
	case Prev:
		return "prev"
	}
	return "unknown"
}

// ParseDirection accepts "next" and "prev".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "next":
		return Next, nil
	case "prev":
		return Prev, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDir, s)
}

// Cycle moves index one step in dir around a ring of length slides.
// A length of zero or less yields 0; callers must not cycle empty rings.
func Cycle(index int, dir Direction, length int) int {
	if length <= 0 {
		return 0
	}
	index = Normalize(index, length)
	switch dir {
	case Next:
		return (index + 1) % length
	case Prev:
		return (index - 1 + length) % length
	}
	return index
}

// Normalize maps any integer onto [0, length).
func Normalize(index, length int) int {
	if length <= 0 {
		return 0
	}
	index %= length
	if index < 0 {
		index += length
	}
	return index
}

// Carousel tracks the active slide of a fixed-length sequence.
type Carousel struct {
	index  int
	length int
}

func New(length int) (*Carousel, error) {
	if length <= 0 {
		return nil, ErrEmpty
	}
	return &Carousel{length: length}, nil
}

func (c *Carousel) Index() int { return c.index }
func (c *Carousel) Len() int   { return c.length }

func (c *Carousel) Next() int {
	c.index = Cycle(c.index, Next, c.length)
	return c.index
}

func (c *Carousel) Prev() int {
	c.index = Cycle(c.index, Prev, c.length)
	return c.index
}

// GoTo jumps to slide i.
func (c *Carousel) GoTo(i int) error {
	if i < 0 || i >= c.length {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, c.length)
	}
	c.index = i
	return nil
}
