package lister

import (
	"errors"
	"fmt"
)

// ErrFiltered is returned by moves attempted while a filter is active.
var ErrFiltered = errors.New("cannot move items while the list is filtered")

type InvalidPositionError struct {
	Pos any
}

func (e InvalidPositionError) Error() string {
	return fmt.Sprintf("invalid position: %v (%T)", e.Pos, e.Pos)
}

type IndexError struct {
	Index int
	Len   int
}

func (e IndexError) Error() string {
	return fmt.Sprintf("index %d out of range (list has %d items)", e.Index, e.Len)
}

type NotFoundError struct {
	What string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.What)
}

// UnanchoredSublistError reports a nested group with no preceding head element.
// Index is the offset of the group within the list being wrapped.
type UnanchoredSublistError struct {
	Index int
}

func (e UnanchoredSublistError) Error() string {
	return fmt.Sprintf("nested sublist at %d has no head item", e.Index)
}

type ConfigurationError struct {
	Reason string
}

func (e ConfigurationError) Error() string {
	return "lister configuration: " + e.Reason
}

// PermutationError is returned when a reorder function does not return a
// permutation of its input.
type PermutationError struct {
	Len  int
	Perm []int
}

func (e PermutationError) Error() string {
	return fmt.Sprintf("reorder returned %v, want a permutation of %d indexes", e.Perm, e.Len)
}

// RangeShapeError is returned when a range to reorder holds an item shallower
// than its first item.
type RangeShapeError struct {
	Index int
	Level int
	Base  int
}

func (e RangeShapeError) Error() string {
	return fmt.Sprintf("item %d at level %d is shallower than the range start (level %d)", e.Index, e.Level, e.Base)
}
