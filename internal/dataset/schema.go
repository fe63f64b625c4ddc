package dataset

import "strings"

// Kind is the semantic type of a column, decided once at load.
type Kind string

const (
	KindCategorical Kind = "categorical"
	KindContinuous  Kind = "continuous"
	KindTemporal    Kind = "temporal"
	KindFlag        Kind = "flag"
)

// Numeric reports whether values of this kind coerce to numbers.
func (k Kind) Numeric() bool {
	return k == KindContinuous || k == KindTemporal || k == KindFlag
}

// Column is one input column with its inferred kind.
type Column struct {
	Name string
	Kind Kind
}

// Schema maps dataset roles to column names. The zero value is not useful;
// start from DefaultSchema.
type Schema struct {
	Title       string   `mapstructure:"title_column" yaml:"title_column"`
	Year        string   `mapstructure:"year_column" yaml:"year_column"`
	Certificate string   `mapstructure:"certificate_column" yaml:"certificate_column"`
	Runtime     string   `mapstructure:"runtime_column" yaml:"runtime_column"`
	Genre       string   `mapstructure:"genre_column" yaml:"genre_column"`
	Rating      string   `mapstructure:"rating_column" yaml:"rating_column"`
	MetaScore   string   `mapstructure:"meta_column" yaml:"meta_column"`
	Director    string   `mapstructure:"director_column" yaml:"director_column"`
	Stars       []string `mapstructure:"star_columns" yaml:"star_columns"`
	Votes       string   `mapstructure:"votes_column" yaml:"votes_column"`
	Gross       string   `mapstructure:"gross_column" yaml:"gross_column"`
	Overview    string   `mapstructure:"overview_column" yaml:"overview_column"`
	Poster      string   `mapstructure:"poster_column" yaml:"poster_column"`
	// FlagPrefix marks derived boolean columns, e.g. "Genre_Drama".
	FlagPrefix string `mapstructure:"flag_prefix" yaml:"flag_prefix"`
}

// DefaultSchema matches the IMDB top-1000 export.
func DefaultSchema() Schema {
	return Schema{
		Title:       "Series_Title",
		Year:        "Released_Year",
		Certificate: "Certificate",
		Runtime:     "Runtime",
		Genre:       "Genre",
		Rating:      "IMDB_Rating",
		MetaScore:   "Meta_score",
		Director:    "Director",
		Stars:       []string{"Star1", "Star2", "Star3", "Star4"},
		Votes:       "No_of_Votes",
		Gross:       "Gross",
		Overview:    "Overview",
		Poster:      "Poster_Link",
		FlagPrefix:  "Genre_",
	}
}

// IsFlag reports whether name follows the derived flag naming convention.
func (s Schema) IsFlag(name string) bool {
	return s.FlagPrefix != "" && strings.HasPrefix(name, s.FlagPrefix) && len(name) > len(s.FlagPrefix)
}

// FlagLabel strips the flag prefix ("Genre_Drama" -> "Drama").
func (s Schema) FlagLabel(name string) string {
	if s.IsFlag(name) {
		return name[len(s.FlagPrefix):]
	}
	return name
}

func (s Schema) continuous(name string) bool {
	switch name {
	case "":
		return false
	case s.Runtime, s.Rating, s.MetaScore, s.Votes, s.Gross:
		return true
	}
	return false
}

func (s Schema) textual(name string) bool {
	switch name {
	case "":
		return false
	case s.Title, s.Certificate, s.Genre, s.Director, s.Overview, s.Poster:
		return true
	}
	for _, st := range s.Stars {
		if name == st {
			return true
		}
	}
	return false
}
