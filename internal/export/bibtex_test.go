package export

import (
	"strings"
	"testing"

	"github.com/bibtools/pid2bib/internal/reference"
)

func TestToBibTeX_Golden(t *testing.T) {
	ref := &reference.Reference{
		PMID:    "31726262",
		Title:   "A Study",
		Authors: []reference.Author{{LastName: "Smith", Initials: "J"}},
		Journal: "Nature",
		PubYear: "2019",
	}

	want := strings.Join([]string{
		"% 31726262",
		"@Article{pmid31726262,",
		`   title = "{A Study}",`,
		`   author = "Smith, J.",`,
		`   journal = "Nature",`,
		`   volume = "",`,
		`   number = "",`,
		`   pages = "",`,
		`   year = "2019",`,
		`   month = "",`,
		`   abstract = "{}",`,
		`   note = {[PubMed:\href{https://www.ncbi.nlm.nih.gov/pubmed/31726262}{31726262}]}`,
		"}",
		"",
	}, "\n")

	got := ToBibTeX(ref, "31726262")
	if got != want {
		t.Errorf("ToBibTeX() mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestToBibTeX_NoteWithDOI(t *testing.T) {
	ref := &reference.Reference{
		PMID:  "123",
		Title: "T",
		DOI:   "10.1000/xyz",
	}

	got := ToBibTeX(ref, "123")
	wantNote := `   note = {[DOI:\href{https://dx.doi.org/10.1000/xyz}{10.1000/xyz}] ` +
		`[PubMed:\href{https://www.ncbi.nlm.nih.gov/pubmed/123}{123}]}`
	if !strings.Contains(got, wantNote) {
		t.Errorf("ToBibTeX() note mismatch, got:\n%s\nwant line:\n%s", got, wantNote)
	}
}

func TestToBibTeX_JournalPrefersAbbreviation(t *testing.T) {
	tests := []struct {
		name      string
		journal   string
		journalAb string
		want      string
	}{
		{"abbreviation wins", "Nature communications", "Nat Commun", `   journal = "Nat Commun",`},
		{"fallback to full name", "Nature communications", "", `   journal = "Nature communications",`},
		{"both empty", "", "", `   journal = "",`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := &reference.Reference{Journal: tt.journal, JournalAb: tt.journalAb}
			got := ToBibTeX(ref, "1")
			if !strings.Contains(got, tt.want) {
				t.Errorf("ToBibTeX() should contain %q, got:\n%s", tt.want, got)
			}
		})
	}
}

func TestFormatPages(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{"both pages", "5176", "5186", "5176--5186"},
		{"start only", "5176", "", "5176"},
		{"neither", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := &reference.Reference{StartPage: tt.start, EndPage: tt.end}
			if got := formatPages(ref); got != tt.want {
				t.Errorf("formatPages() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatAuthors(t *testing.T) {
	tests := []struct {
		name    string
		authors []reference.Author
		want    string
	}{
		{"empty list yields empty string", nil, ""},
		{
			"single author",
			[]reference.Author{{LastName: "Smith", Initials: "J"}},
			"Smith, J.",
		},
		{
			"two authors",
			[]reference.Author{
				{LastName: "Smith", Initials: "J"},
				{LastName: "Doe", Initials: "JD"},
			},
			"Smith, J. and Doe, JD.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatAuthors(tt.authors); got != tt.want {
				t.Errorf("formatAuthors() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToBibTeX_EmptyAuthorsFieldStillEmitted(t *testing.T) {
	ref := &reference.Reference{Title: "T"}
	got := ToBibTeX(ref, "1")
	if !strings.Contains(got, `   author = "",`) {
		t.Errorf("ToBibTeX() must emit an empty author field, got:\n%s", got)
	}
}

func TestToBibTeX_ConditionalFields(t *testing.T) {
	bare := ToBibTeX(&reference.Reference{Title: "T"}, "1")
	if strings.Contains(bare, "issn = ") {
		t.Errorf("empty issn should be omitted, got:\n%s", bare)
	}
	if strings.Contains(bare, "copyright = ") {
		t.Errorf("empty copyright should be omitted, got:\n%s", bare)
	}

	full := ToBibTeX(&reference.Reference{
		Title:     "T",
		ISSN:      "2041-1723",
		Copyright: "Copyright 2019.",
	}, "1")
	if !strings.Contains(full, `   issn = "2041-1723",`) {
		t.Errorf("issn should be emitted when set, got:\n%s", full)
	}
	if !strings.Contains(full, `   copyright = "Copyright 2019.",`) {
		t.Errorf("copyright should be emitted when set, got:\n%s", full)
	}
}

func TestToBibTeX_EscapesUnicodeTitle(t *testing.T) {
	ref := &reference.Reference{Title: "Étude of café"}
	got := ToBibTeX(ref, "1")
	want := `   title = "{{\'{E}}tude of caf{\'{e}}}",`
	if !strings.Contains(got, want) {
		t.Errorf("ToBibTeX() should escape the title, got:\n%s\nwant line:\n%s", got, want)
	}
}

func TestToBibTeX_EscapesAuthorJoin(t *testing.T) {
	ref := &reference.Reference{
		Authors: []reference.Author{{LastName: "Muñoz", Initials: "K"}},
	}
	got := ToBibTeX(ref, "1")
	if !strings.Contains(got, `   author = "Mu{\~{n}}oz, K.",`) {
		t.Errorf("ToBibTeX() should escape author names, got:\n%s", got)
	}
}
