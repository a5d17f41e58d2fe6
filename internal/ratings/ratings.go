// Package ratings loads player skill ratings from a delimited text file
// and resolves roster names against them. The file must carry a header
// row with the columns "name", "rank" and "true_skill" (any order, any
// case); the delimiter is configurable. Lookups are case-insensitive.
package ratings

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/teamsmith/teamsmith/internal/errors"
)

// Column names required in the ratings header.
const (
	ColumnName  = "name"
	ColumnRank  = "rank"
	ColumnSkill = "true_skill"
)

// Record is one rated player as read from the ratings file.
type Record struct {
	Name  string
	Rank  int
	Skill float64
}

// Source is an immutable, case-insensitively keyed ratings lookup.
type Source struct {
	path    string
	records map[string]Record
}

// Load reads a ratings file from disk. delimiter is the field separator
// (',' for CSV, '\t' for TSV).
func Load(path string, delimiter rune) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewRatingsError("cannot open ratings file", err).WithPath(path)
	}
	defer f.Close()

	src, err := Parse(f, delimiter)
	if err != nil {
		var re *errors.RatingsError
		if errors.As(err, &re) {
			re.WithPath(path)
		}
		return nil, err
	}
	src.path = path
	return src, nil
}

// Parse reads ratings from r. The first row is the header; every
// following row must parse under the header's column layout. Duplicate
// names keep the last record read.
func Parse(r io.Reader, delimiter rune) (*Source, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.NewRatingsError("ratings file is empty", errors.ErrRatingsMissingColumn)
	}
	if err != nil {
		return nil, errors.NewRatingsError("cannot read header row", err).WithLine(1)
	}

	nameCol, rankCol, skillCol := -1, -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case ColumnName:
			nameCol = i
		case ColumnRank:
			rankCol = i
		case ColumnSkill:
			skillCol = i
		}
	}
	for col, idx := range map[string]int{ColumnName: nameCol, ColumnRank: rankCol, ColumnSkill: skillCol} {
		if idx < 0 {
			return nil, errors.NewRatingsError(
				fmt.Sprintf("header has no %q column", col),
				errors.ErrRatingsMissingColumn,
			).WithLine(1)
		}
	}

	records := make(map[string]Record)
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewRatingsError("cannot read record", err).WithLine(line)
		}

		name := strings.TrimSpace(row[nameCol])
		if name == "" {
			return nil, errors.NewRatingsError("record has an empty name", nil).WithLine(line)
		}

		rank, err := strconv.Atoi(strings.TrimSpace(row[rankCol]))
		if err != nil {
			return nil, errors.NewRatingsError("invalid rank value", err).WithLine(line)
		}

		skill, err := strconv.ParseFloat(strings.TrimSpace(row[skillCol]), 64)
		if err != nil {
			return nil, errors.NewRatingsError("invalid skill value", err).WithLine(line)
		}

		records[strings.ToLower(name)] = Record{Name: name, Rank: rank, Skill: skill}
	}

	return &Source{records: records}, nil
}

// Lookup finds the record for a player name, ignoring case.
func (s *Source) Lookup(name string) (Record, bool) {
	rec, ok := s.records[strings.ToLower(strings.TrimSpace(name))]
	return rec, ok
}

// Len returns the number of rated players.
func (s *Source) Len() int {
	return len(s.records)
}

// Path returns the file the ratings were loaded from, or "" if the
// source was parsed from a reader.
func (s *Source) Path() string {
	return s.path
}
