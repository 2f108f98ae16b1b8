package repository

import (
	"errors"
	"fmt"
)

var (
	ErrPageOutOfRange   = errors.New("page out of range")
	ErrPagesStale       = errors.New("pages are stale, split again")
	ErrUnknownFilterKey = errors.New("unknown filter key")
)

// PageOutOfRangeError is returned when a page index has no page.
type PageOutOfRangeError struct {
	Index int
	Pages int
}

func (e *PageOutOfRangeError) Error() string {
	return fmt.Sprintf("page %d out of range (%d pages)", e.Index, e.Pages)
}

func (e *PageOutOfRangeError) Unwrap() error { return ErrPageOutOfRange }
