// Package domain provides the draw models shared by every analysis module.
package domain

import (
	"fmt"
	"slices"
)

// Game identifies which draw game a history belongs to
type Game string

const (
	// GameKeno is the 20-of-80 keno-style game
	GameKeno Game = "keno"
	// GamePositional is the 3-digit positional game (hundreds, tens, units)
	GamePositional Game = "positional"
)

// Keno game shape
const (
	KenoMinNumber          = 1
	KenoMaxNumber          = 80
	KenoDrawSize           = 20
	KenoMagnitudeThreshold = 40 // numbers above this are "high"
)

// Positional game shape
const (
	PositionalDigits = 3
	DigitBase        = 10
)

// Position indexes into a Triple
type Position int

const (
	PositionHundreds Position = iota
	PositionTens
	PositionUnits
)

// String returns the position name
func (p Position) String() string {
	switch p {
	case PositionHundreds:
		return "hundreds"
	case PositionTens:
		return "tens"
	case PositionUnits:
		return "units"
	default:
		return fmt.Sprintf("position(%d)", int(p))
	}
}

// KenoDraw is one keno draw: KenoDrawSize distinct numbers, sorted ascending
type KenoDraw []int

// Contains reports whether n was drawn
func (d KenoDraw) Contains(n int) bool {
	_, found := slices.BinarySearch(d, n)
	return found
}

// KenoHistory is a chronological sequence of keno draws, oldest first
type KenoHistory []KenoDraw

// Numbers flattens every drawn number across the history, in draw order
func (h KenoHistory) Numbers() []int {
	out := make([]int, 0, len(h)*KenoDrawSize)
	for _, draw := range h {
		out = append(out, draw...)
	}
	return out
}

// Latest returns the most recent draw, or nil for an empty history
func (h KenoHistory) Latest() KenoDraw {
	if len(h) == 0 {
		return nil
	}
	return h[len(h)-1]
}

// Tail returns the most recent n draws (the whole history if it is shorter)
func (h KenoHistory) Tail(n int) KenoHistory {
	if n <= 0 {
		return KenoHistory{}
	}
	if n >= len(h) {
		return h
	}
	return h[len(h)-n:]
}

// Triple is one positional draw: hundreds, tens and units digits
type Triple [PositionalDigits]int

// Digit returns the digit at position p
func (t Triple) Digit(p Position) int {
	return t[p]
}

// String renders the triple as a three-digit number, e.g. "307"
func (t Triple) String() string {
	return fmt.Sprintf("%d%d%d", t[PositionHundreds], t[PositionTens], t[PositionUnits])
}

// PositionalHistory is a chronological sequence of positional draws, oldest first
type PositionalHistory []Triple

// IsOdd reports whether n is odd
func IsOdd(n int) bool {
	return n%2 != 0
}

// IsHigh reports whether n lies above the magnitude threshold
func IsHigh(n, threshold int) bool {
	return n > threshold
}

// TailDigit returns the last decimal digit of n
func TailDigit(n int) int {
	return n % DigitBase
}
