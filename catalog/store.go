package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kjk/common/atomicfile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Search fields accepted by Store.Search. Anything else yields no results.
const (
	FieldTitle  = "title"
	FieldAuthor = "author"
	FieldYear   = "year"
)

// Store owns the in-memory catalog and its backing file. It is not safe for
// concurrent use; the catalog is meant to be driven by one caller at a time.
type Store struct {
	path  string
	books []Book
	log   zerolog.Logger
}

// Open loads the catalog at path. A missing file is a fresh catalog. A file
// that exists but cannot be parsed is discarded with a warning and the store
// starts empty; corrupt state is never repaired or partially salvaged.
func Open(path string) *Store {
	return OpenWithLogger(path, log.Logger)
}

// OpenWithLogger is Open with an explicit logger, mainly for tests that want
// to run several independent stores in one process.
func OpenWithLogger(path string, logger zerolog.Logger) *Store {
	s := &Store{path: path, log: logger}
	s.books = s.load()
	return s
}

// load reads the backing file into records, trusting stored fields verbatim.
// A status outside the two enumerated values is accepted here and only
// rejected if an UpdateStatus later targets the record with another bad value.
func (s *Store) load() []Book {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("file", s.path).Msg("catalog file unreadable, starting empty")
		}
		return nil
	}
	var books []Book
	if err := json.Unmarshal(data, &books); err != nil {
		s.log.Warn().Err(err).Str("file", s.path).Msg("catalog file malformed, starting empty")
		return nil
	}
	return books
}

// Save rewrites the whole backing file from the in-memory collection. The
// write goes through a temp file and rename, so readers never observe a
// half-written catalog. On failure the in-memory collection is untouched.
func (s *Store) Save() error {
	books := s.books
	if books == nil {
		books = []Book{}
	}
	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	f, err := atomicfile.New(s.path)
	if err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}

// Add appends a new record and persists the catalog. On a save failure the
// record is still in memory and still returned; memory and disk then diverge
// until the next successful save.
func (s *Store) Add(title, author string, year int) (Book, error) {
	b, err := NewBook(title, author, year)
	if err != nil {
		return Book{}, err
	}
	s.books = append(s.books, b)
	if err := s.Save(); err != nil {
		s.log.Error().Err(err).Uint64("id", b.ID).Msg("book added in memory only")
		return b, err
	}
	return b, nil
}

// Remove deletes the record whose ID matches exactly and persists. ErrNotFound
// is returned without touching the file when no record matches.
func (s *Store) Remove(id uint64) error {
	for i, b := range s.books {
		if b.ID == id {
			s.books = append(s.books[:i], s.books[i+1:]...)
			return s.Save()
		}
	}
	return ErrNotFound
}

// Search scans the catalog in insertion order. Title and author match by
// case-insensitive substring. Year matches only when the query equals the
// year's decimal rendering exactly, so "5" does not find 2005 and "202" does
// not find 2020. An unrecognized field yields an empty result, not an error.
func (s *Store) Search(query, field string) []Book {
	var out []Book
	switch field {
	case FieldTitle:
		q := strings.ToLower(query)
		for _, b := range s.books {
			if strings.Contains(strings.ToLower(b.Title), q) {
				out = append(out, b)
			}
		}
	case FieldAuthor:
		q := strings.ToLower(query)
		for _, b := range s.books {
			if strings.Contains(strings.ToLower(b.Author), q) {
				out = append(out, b)
			}
		}
	case FieldYear:
		for _, b := range s.books {
			if query == strconv.Itoa(b.Year) {
				out = append(out, b)
			}
		}
	}
	return out
}

// UpdateStatus sets the status of the record with the given ID and persists.
// A value outside the two enumerated states is rejected before any record is
// scanned; a missing ID is reported without touching the file.
func (s *Store) UpdateStatus(id uint64, status Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	for i := range s.books {
		if s.books[i].ID == id {
			s.books[i].Status = status
			return s.Save()
		}
	}
	return ErrNotFound
}

// List returns a copy of the full catalog in insertion order.
func (s *Store) List() []Book {
	out := make([]Book, len(s.books))
	copy(out, s.books)
	return out
}

// Path returns the location of the backing file.
func (s *Store) Path() string { return s.path }
