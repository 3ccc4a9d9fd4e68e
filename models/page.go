package models

import (
	"errors"
	"math"
)

var (
	ErrInvalidPage     = errors.New("page must be a non-negative integer")
	ErrInvalidPageSize = errors.New("size must be a positive integer")
	ErrPageOutOfRange  = errors.New("page offset is out of range")
)

// Page is a zero-based offset/limit window.
type Page struct {
	Index int64
	Size  int64
}

// NewPage validates the window bounds.
func NewPage(index, size int64) (Page, error) {
	if index < 0 {
		return Page{}, ErrInvalidPage
	}
	if size <= 0 {
		return Page{}, ErrInvalidPageSize
	}
	if index > math.MaxInt64/size {
		return Page{}, ErrPageOutOfRange
	}
	return Page{Index: index, Size: size}, nil
}

func (p Page) Skip() int64 {
	return p.Index * p.Size
}

func (p Page) Limit() int64 {
	return p.Size
}

// SortDirection follows the store's convention: 1 ascending, -1 descending.
type SortDirection int

const (
	SortAscending  SortDirection = 1
	SortDescending SortDirection = -1
)
