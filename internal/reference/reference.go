// Package reference defines the core bibliographic record types.
package reference

// Reference represents the citation metadata for one paper, keyed by
// the PubMed identifier it was requested with. Every field defaults to
// the empty string: absence in the source record is normal data
// sparsity, not an error. A Reference is built once by the extractor
// and is read-only afterwards.
type Reference struct {
	PMID string `json:"pmid"`

	Title     string   `json:"title"`
	Authors   []Author `json:"authors"` // citation order, never sorted
	Journal   string   `json:"journal"`
	JournalAb string   `json:"journal_ab"` // ISO abbreviation
	Volume    string   `json:"volume"`
	Issue     string   `json:"issue"`
	StartPage string   `json:"start_page"`
	EndPage   string   `json:"end_page"`
	DOI       string   `json:"doi"`
	PubYear   string   `json:"pub_year"`
	PubMonth  string   `json:"pub_month"`
	ISSN      string   `json:"issn"`
	Copyright string   `json:"copyright"`
	Abstract  string   `json:"abstract"`

	// ArticleURL is derived, never supplied: the DOI resolver URL when
	// DOI is non-empty, otherwise the PubMed landing page for PMID.
	ArticleURL string `json:"article_url"`
}
