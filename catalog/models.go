package catalog

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// Status is the availability state of a book. The two literal values are
// what gets written to the catalog file and must round-trip unchanged, so
// they keep the exact strings used by existing catalog files.
type Status string

const (
	StatusAvailable  Status = "в наличии"
	StatusCheckedOut Status = "выдана"
)

// Valid reports whether s is one of the two allowed states.
func (s Status) Valid() bool {
	return s == StatusAvailable || s == StatusCheckedOut
}

// Book is one catalog record. Field names in the JSON encoding are part of
// the file format contract.
type Book struct {
	ID     uint64 `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	Status Status `json:"status"`
}

// NewBook builds a record with a freshly generated ID and the default
// available status. Title, author and year are stored as given; the catalog
// does not validate them.
func NewBook(title, author string, year int) (Book, error) {
	id, err := newID()
	if err != nil {
		return Book{}, err
	}
	return Book{
		ID:     id,
		Title:  title,
		Author: author,
		Year:   year,
		Status: StatusAvailable,
	}, nil
}

// newID draws 32 random bits from the OS entropy source. IDs are probabilistically
// unique; no collision check is performed against existing records. The field is
// 64 bits wide so that wider IDs found in a persisted file still load verbatim.
func newID() (uint64, error) {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return uint64(binary.BigEndian.Uint32(buf[:])), nil
}
