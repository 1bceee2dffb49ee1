package catalog

import (
	"errors"
	"time"
)

// Copy status values stored by the catalog.
const (
	StatusAvailable   = "Available"
	StatusUnavailable = "Unavailable"
	StatusMaintenance = "Maintenance"
	StatusLoaned      = "Loaned"
	StatusReserved    = "Reserved"
)

var (
	// ErrNotFound is returned by a repository when the requested records are absent.
	ErrNotFound = errors.New("not found")
	// ErrUnresolvedBook is returned when a copy references a book that does not exist.
	ErrUnresolvedBook = errors.New("book reference not resolved")

	ErrBookNotFound   = errors.New("book not found")
	ErrCopiesNotFound = errors.New("book copies not found")
	ErrCopiesQuery    = errors.New("book copies query failed")
)

// Author is a read-only projection of an author record.
type Author struct {
	ID          string
	FirstName   string
	FamilyName  string
	DateOfBirth *time.Time
	DateOfDeath *time.Time
}

// Name returns "<family>, <first>", or an empty string when either part is missing.
func (a Author) Name() string {
	if a.FirstName == "" || a.FamilyName == "" {
		return ""
	}
	return a.FamilyName + ", " + a.FirstName
}

// Book is a book with its author already resolved to a display name.
type Book struct {
	ID         string
	Title      string
	AuthorName string
}

// Copy is the imprint/status projection of a book instance.
type Copy struct {
	Imprint string `json:"imprint"`
	Status  string `json:"status"`
}

// Instance is a book instance with its book resolved. Book is nil when the
// reference is dangling.
type Instance struct {
	ID      string
	Book    *Book
	Imprint string
	Status  string
}

// BookDetail is the merged view served for a single book.
type BookDetail struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Copies []Copy `json:"copies"`
}
