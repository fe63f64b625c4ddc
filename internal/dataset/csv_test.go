package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const movieCSV = `Poster_Link,Series_Title,Released_Year,Certificate,Runtime,Genre,IMDB_Rating,Overview,Meta_score,Director,Star1,Star2,Star3,Star4,No_of_Votes,Gross
p1,The Godfather,1972,A,175 min,"Crime, Drama",9.2,A family saga.,100,Francis Ford Coppola,Marlon Brando,Al Pacino,James Caan,Diane Keaton,1620367,"134,966,411"
p2,Heat,1995,A,170 min,"Action, Crime, Drama",8.2,Cops and robbers.,76,Michael Mann,Al Pacino,Robert De Niro,Val Kilmer,Al Pacino,577113,"67,436,818"
p3,Drishyam,2013,U,160 min,"Crime, Drama, Thriller",8.3,A cover-up.,,Jeethu Joseph,Mohanlal,Meena,Asha Sarath,Ansiba,30722,
p4,Drishyam,2015,UA,163 min,"Crime, Drama, Mystery",8.2,A remake.,,Nishikant Kamat,Ajay Devgn,Shriya Saran,Tabu,Rajat Kapoor,70367,"739,478"
p5,Apollo 13,PG,U,140 min,"Adventure, Drama, History",7.6,Houston.,77,Ron Howard,Tom Hanks,Bill Paxton,Kevin Bacon,Gary Sinise,269197,"173,837,933"
`

func TestReadCSV_TypesAndDerivedFlags(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(movieCSV), ',', DefaultSchema())
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(tbl.Movies) != 5 {
		t.Fatalf("movies = %d, want 5", len(tbl.Movies))
	}
	g := tbl.Movies[0]
	if g.ID != "The Godfather" || !g.Runtime.Valid || g.Runtime.V != 175 {
		t.Fatalf("godfather = %+v", g)
	}
	if g.Gross.V != 134966411 {
		t.Fatalf("gross = %v", g.Gross.V)
	}
	if y, ok := g.YearInt(); !ok || y != 1972 {
		t.Fatalf("year = %v, %v", y, ok)
	}
	heat := tbl.ByID("Heat")
	if heat == nil || len(heat.Stars) != 3 {
		t.Fatalf("heat stars should be deduplicated: %#v", heat)
	}
	if tbl.ByID("Drishyam") == nil || tbl.ByID("Drishyam (2015)") == nil {
		t.Fatalf("duplicate titles should be disambiguated by year")
	}
	if tbl.ByID("Drishyam").MetaScore.Valid {
		t.Fatalf("missing meta score should be absent")
	}
	apollo := tbl.ByID("Apollo 13")
	if apollo.Year.Valid {
		t.Fatalf("malformed year should be absent")
	}

	c, ok := tbl.Column("Released_Year")
	if !ok || c.Kind != KindTemporal {
		t.Fatalf("year column = %+v", c)
	}
	if c, _ := tbl.Column("Series_Title"); c.Kind != KindCategorical {
		t.Fatalf("title kind = %s", c.Kind)
	}
	flags := tbl.FlagColumns()
	if len(flags) != 7 || flags[0].Name != "Genre_Crime" || flags[1].Name != "Genre_Drama" {
		t.Fatalf("flags = %+v", flags)
	}
	if v, ok := heat.Flag("Genre_Action"); !ok || !v {
		t.Fatalf("heat should be an action movie")
	}
	if v, _ := g.Number("Genre_Action"); v != 0 {
		t.Fatalf("godfather action flag = %v", v)
	}
}

func TestReadCSV_MissingTitleColumn(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("a,b\n1,2\n"), ',', DefaultSchema())
	var ce *ColumnError
	if !errors.As(err, &ce) || ce.Role != "title" {
		t.Fatalf("expected title ColumnError, got %v", err)
	}
}

func TestReadCSV_Empty(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader(""), ',', DefaultSchema()); !errors.Is(err, ErrNoHeader) {
		t.Fatalf("expected ErrNoHeader, got %v", err)
	}
}

func TestLoadCSV_TSV(t *testing.T) {
	p := filepath.Join(t.TempDir(), "movies.tsv")
	body := "Series_Title\tReleased_Year\tGenre_Drama\nA\t2001\t1\nB\t2005\t0\n"
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	tbl, err := LoadCSV(p, DefaultSchema())
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(tbl.FlagColumns()) != 1 {
		t.Fatalf("precomputed flag columns should not be re-derived: %+v", tbl.Columns)
	}
	if v, ok := tbl.ByID("A").Flag("Genre_Drama"); !ok || !v {
		t.Fatalf("A drama flag = %v, %v", v, ok)
	}
}
