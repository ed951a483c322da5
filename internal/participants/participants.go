package participants

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	kerrors "github.com/PolarWolf314/secretsanta/internal/errors"
)

// Required header columns.
const (
	ColumnName  = "name"
	ColumnEmail = "email"
)

// Participant is one person taking part in the exchange.
type Participant struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// String renders the participant the way it appears in an address header.
func (p Participant) String() string {
	return fmt.Sprintf("%s <%s>", p.Name, p.Email)
}

// Load reads participants from the CSV file at path, preserving file order.
//
// Returns ErrFileNotFound if the path does not exist and ErrFileUnreadable if
// it cannot be opened or read. See Parse for content errors.
func Load(path string) ([]Participant, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrFileUnreadable, path, err)
	}
	defer f.Close()

	people, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return people, nil
}

// Parse reads participants from CSV data whose first row is a header.
//
// The header must contain name and email columns (matched case-insensitively,
// surrounding whitespace ignored); other columns are ignored. Field values are
// passed through untouched, including empty ones.
//
// Returns ErrMissingColumn if the header lacks a required column and
// ErrMalformedRow if a row is too short to carry both fields or is not valid CSV.
func Parse(r io.Reader) ([]Participant, error) {
	reader := csv.NewReader(r)
	// Short rows are reported as ErrMalformedRow below rather than by the reader.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file, expected header with %q and %q", kerrors.ErrMissingColumn, ColumnName, ColumnEmail)
	}
	if err != nil {
		return nil, wrapReadError(err)
	}

	nameIdx, emailIdx := -1, -1
	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, "\ufeff")
		}
		switch strings.ToLower(strings.TrimSpace(col)) {
		case ColumnName:
			if nameIdx < 0 {
				nameIdx = i
			}
		case ColumnEmail:
			if emailIdx < 0 {
				emailIdx = i
			}
		}
	}
	if nameIdx < 0 {
		return nil, fmt.Errorf("%w: %q", kerrors.ErrMissingColumn, ColumnName)
	}
	if emailIdx < 0 {
		return nil, fmt.Errorf("%w: %q", kerrors.ErrMissingColumn, ColumnEmail)
	}
	width := max(nameIdx, emailIdx) + 1

	var people []Participant
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrapReadError(err)
		}

		if len(record) < width {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d has %d fields, need at least %d", kerrors.ErrMalformedRow, line, len(record), width)
		}

		people = append(people, Participant{
			Name:  record[nameIdx],
			Email: record[emailIdx],
		})
	}

	return people, nil
}

func wrapReadError(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Errorf("%w: %v", kerrors.ErrMalformedRow, parseErr)
	}
	return fmt.Errorf("%w: %v", kerrors.ErrFileUnreadable, err)
}
