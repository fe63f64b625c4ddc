package dataset

import (
	"fmt"
	"math"
	"strings"
)

// Record is one raw row as handed over by the loader: column name -> value.
// An empty string means missing.
type Record map[string]string

// Float is an optional number. Invalid values are excluded from aggregates.
type Float struct {
	V     float64
	Valid bool
}

// Some wraps a present value.
func Some(v float64) Float { return Float{V: v, Valid: true} }

// Movie is a typed, validated row.
type Movie struct {
	ID          string
	Title       string
	Year        Float
	Certificate string
	Runtime     Float
	Genres      []string
	Rating      Float
	MetaScore   Float
	Director    string
	Stars       []string
	Votes       Float
	Gross       Float
	Overview    string
	Poster      string

	text  map[string]string
	nums  map[string]Float
	flags map[string]bool
}

// Text returns the trimmed raw value of a column.
func (m *Movie) Text(col string) string { return m.text[col] }

// Number returns the coerced numeric value of a numeric column. Flags read
// as 0/1.
func (m *Movie) Number(col string) (float64, bool) {
	if f, ok := m.nums[col]; ok && f.Valid {
		return f.V, true
	}
	return 0, false
}

// Flag returns the value of a derived flag column.
func (m *Movie) Flag(col string) (value bool, ok bool) {
	value, ok = m.flags[col]
	return value, ok
}

// YearInt returns the release year as an int.
func (m *Movie) YearInt() (int, bool) {
	if !m.Year.Valid {
		return 0, false
	}
	return int(math.Round(m.Year.V)), true
}

// PrimaryGenre is the first token of the genre list.
func (m *Movie) PrimaryGenre() (string, bool) {
	if len(m.Genres) == 0 {
		return "", false
	}
	return m.Genres[0], true
}

// Table is the validated dataset: ordered columns plus typed rows.
type Table struct {
	Schema  Schema
	Columns []Column
	Movies  []*Movie

	byID map[string]*Movie
}

// Column looks up a column by name.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// FlagColumns lists the derived flag columns in order.
func (t *Table) FlagColumns() []Column {
	var out []Column
	for _, c := range t.Columns {
		if c.Kind == KindFlag {
			out = append(out, c)
		}
	}
	return out
}

// ByID returns the movie with the given id or nil.
func (t *Table) ByID(id string) *Movie {
	return t.byID[id]
}

// FromRecords validates raw records once and builds a Table. columns is the
// header order; derived flag columns are appended from the genre field when
// the input has none.
func FromRecords(records []Record, columns []string, schema Schema) (*Table, error) {
	if schema.Title == "" || !contains(columns, schema.Title) {
		return nil, &ColumnError{Role: "title", Column: schema.Title}
	}
	columns = append([]string(nil), columns...)
	derive := schema.Genre != "" && contains(columns, schema.Genre) && !hasFlagColumn(columns, schema)
	if derive {
		seen := map[string]bool{}
		for _, r := range records {
			for _, g := range SplitMultiValue(r[schema.Genre]) {
				name := schema.FlagPrefix + g
				if !seen[name] && !contains(columns, name) {
					seen[name] = true
					columns = append(columns, name)
				}
			}
		}
	}

	t := &Table{Schema: schema, byID: make(map[string]*Movie, len(records))}
	for _, name := range columns {
		t.Columns = append(t.Columns, Column{Name: name, Kind: inferKind(name, records, schema)})
	}
	for _, r := range records {
		m := buildMovie(r, t.Columns, schema, derive)
		m.ID = uniqueID(m, t.byID)
		t.byID[m.ID] = m
		t.Movies = append(t.Movies, m)
	}
	return t, nil
}

func inferKind(name string, records []Record, schema Schema) Kind {
	switch {
	case schema.Year != "" && name == schema.Year:
		return KindTemporal
	case schema.IsFlag(name):
		return KindFlag
	case schema.continuous(name):
		return KindContinuous
	case schema.textual(name):
		return KindCategorical
	}
	// Predominant parsed type wins.
	var numCnt, txtCnt int
	for _, r := range records {
		v := strings.TrimSpace(r[name])
		if v == "" {
			continue
		}
		if _, ok := ParseGroupedNumber(v); ok {
			numCnt++
		} else {
			txtCnt++
		}
	}
	if numCnt > 0 && numCnt >= txtCnt {
		return KindContinuous
	}
	return KindCategorical
}

func buildMovie(r Record, cols []Column, s Schema, derived bool) *Movie {
	m := &Movie{
		text:  make(map[string]string, len(cols)),
		nums:  make(map[string]Float),
		flags: make(map[string]bool),
	}
	genres := SplitMultiValue(r[s.Genre])
	for _, c := range cols {
		v := strings.TrimSpace(r[c.Name])
		m.text[c.Name] = v
		switch c.Kind {
		case KindFlag:
			b, ok := ParseFlag(v)
			if derived && v == "" {
				b, ok = contains(genres, s.FlagLabel(c.Name)), true
			}
			if ok {
				m.flags[c.Name] = b
				m.nums[c.Name] = Some(boolFloat(b))
			}
		case KindContinuous, KindTemporal:
			var f float64
			var ok bool
			if c.Name == s.Runtime {
				f, ok = ParseDuration(v)
			} else {
				f, ok = ParseGroupedNumber(v)
			}
			if ok {
				m.nums[c.Name] = Some(f)
			}
		}
	}

	m.Title = m.text[s.Title]
	m.Year = m.nums[s.Year]
	m.Certificate = m.text[s.Certificate]
	m.Runtime = m.nums[s.Runtime]
	m.Genres = genres
	m.Rating = m.nums[s.Rating]
	m.MetaScore = m.nums[s.MetaScore]
	m.Director = m.text[s.Director]
	m.Votes = m.nums[s.Votes]
	m.Gross = m.nums[s.Gross]
	m.Overview = m.text[s.Overview]
	m.Poster = m.text[s.Poster]
	for _, col := range s.Stars {
		name := strings.TrimSpace(r[col])
		if name != "" && !contains(m.Stars, name) {
			m.Stars = append(m.Stars, name)
		}
	}
	return m
}

// uniqueID keys movies by title, disambiguating remakes by year.
func uniqueID(m *Movie, taken map[string]*Movie) string {
	id := m.Title
	if _, dup := taken[id]; !dup {
		return id
	}
	if y, ok := m.YearInt(); ok {
		id = fmt.Sprintf("%s (%d)", m.Title, y)
	}
	base := id
	for n := 2; ; n++ {
		if _, dup := taken[id]; !dup {
			return id
		}
		id = fmt.Sprintf("%s #%d", base, n)
	}
}

func hasFlagColumn(columns []string, s Schema) bool {
	for _, c := range columns {
		if s.IsFlag(c) {
			return true
		}
	}
	return false
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}

func boolFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
