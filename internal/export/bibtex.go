// Package export renders references as BibTeX and derives output
// filenames.
package export

import (
	"fmt"
	"strings"

	"github.com/bibtools/pid2bib/internal/latex"
	"github.com/bibtools/pid2bib/internal/reference"
)

// Hyperlink targets for the note field cross-references.
const (
	noteTemplateDOI    = `[DOI:\href{https://dx.doi.org/%s}{%s}] `
	noteTemplatePubMed = `[PubMed:\href{https://www.ncbi.nlm.nih.gov/pubmed/%s}{%s}]`
)

// ToBibTeX renders a reference as a complete @Article entry. The entry
// key is always pmid-prefixed, even for records that reached us through
// the DOI path. Empty fields produce syntactically valid but sparse
// output; that is accepted behavior, not an error.
func ToBibTeX(ref *reference.Reference, pmid string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%% %s\n", pmid))
	b.WriteString(fmt.Sprintf("@Article{pmid%s,\n", pmid))

	b.WriteString(`   title = "{`)
	b.WriteString(latex.Escape(ref.Title))
	b.WriteString("}\",\n")

	// Authors are joined first and escaped as one string, so separator
	// text passes through the same table as the names.
	writeField(&b, "author", latex.Escape(formatAuthors(ref.Authors)))
	writeField(&b, "journal", latex.Escape(journalName(ref)))
	writeField(&b, "volume", ref.Volume)
	writeField(&b, "number", ref.Issue)
	writeField(&b, "pages", formatPages(ref))
	writeField(&b, "year", ref.PubYear)
	writeField(&b, "month", ref.PubMonth)

	if ref.ISSN != "" {
		writeField(&b, "issn", ref.ISSN)
	}
	if ref.Copyright != "" {
		writeField(&b, "copyright", latex.Escape(ref.Copyright))
	}

	b.WriteString(`   abstract = "{`)
	b.WriteString(latex.Escape(ref.Abstract))
	b.WriteString("}\",\n")

	b.WriteString("   note = {")
	b.WriteString(formatNote(ref.DOI, pmid))
	b.WriteString("}")
	b.WriteString("\n}\n")

	return b.String()
}

// writeField appends one quoted field line: `   name = "value",`.
func writeField(b *strings.Builder, name, value string) {
	b.WriteString("   ")
	b.WriteString(name)
	b.WriteString(` = "`)
	b.WriteString(value)
	b.WriteString("\",\n")
}

// formatAuthors joins authors as `Last, I. and Last, I.`; an empty
// author list yields the empty string, never an omitted field.
func formatAuthors(authors []reference.Author) string {
	if len(authors) == 0 {
		return ""
	}
	formatted := make([]string, len(authors))
	for i, a := range authors {
		formatted[i] = a.LastName + ", " + a.Initials + "."
	}
	return strings.Join(formatted, " and ")
}

// journalName prefers the ISO abbreviation, falling back to the full
// journal title.
func journalName(ref *reference.Reference) string {
	if ref.JournalAb != "" {
		return ref.JournalAb
	}
	return ref.Journal
}

// formatPages joins start and end pages with a double hyphen when both
// exist, otherwise returns the start page alone.
func formatPages(ref *reference.Reference) string {
	if ref.EndPage != "" {
		return ref.StartPage + "--" + ref.EndPage
	}
	return ref.StartPage
}

// formatNote builds the bracketed cross-reference string: the DOI
// hyperlink when a DOI exists, then the PubMed hyperlink, in that
// fixed order.
func formatNote(doi, pmid string) string {
	var b strings.Builder
	if doi != "" {
		b.WriteString(fmt.Sprintf(noteTemplateDOI, doi, doi))
	}
	b.WriteString(fmt.Sprintf(noteTemplatePubMed, pmid, pmid))
	return b.String()
}
