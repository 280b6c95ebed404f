package pubmed

import (
	"encoding/xml"
	"fmt"

	"github.com/bibtools/pid2bib/internal/reference"
)

// URL templates for the derived article URL.
const (
	urlTemplateDOI    = "https://doi.org/%s"
	urlTemplatePubMed = "https://pubmed.ncbi.nlm.nih.gov/%s/"
)

// Extract parses a raw efetch XML document and builds the Reference for
// the given pmid. Optional elements that are absent resolve to empty
// strings; only an unparseable document or a document with zero
// PubmedArticle entries is an error.
func Extract(pmid string, rawXML []byte) (*reference.Reference, error) {
	var set articleSet
	if err := xml.Unmarshal(rawXML, &set); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if len(set.Articles) == 0 {
		return nil, ErrEmptyResult
	}
	entry := set.Articles[0]

	ref := &reference.Reference{PMID: pmid}

	for _, id := range entry.PubmedData.ArticleIDs {
		if id.IDType == "doi" {
			ref.DOI = id.Value
		}
	}
	if ref.DOI != "" {
		ref.ArticleURL = fmt.Sprintf(urlTemplateDOI, ref.DOI)
	} else {
		ref.ArticleURL = fmt.Sprintf(urlTemplatePubMed, pmid)
	}

	art := entry.MedlineCitation.Article
	ref.Title = art.Title

	if abs := art.Abstract; abs != nil {
		if len(abs.Texts) > 0 {
			ref.Abstract = abs.Texts[0]
		}
		ref.Copyright = abs.Copyright
	}

	if j := art.Journal; j != nil {
		ref.Journal = j.Title
		ref.ISSN = j.ISSN
		ref.JournalAb = j.ISOAbbrev
		ref.Volume = j.JournalIssue.Volume
		ref.Issue = j.JournalIssue.Issue
		ref.PubYear = j.JournalIssue.PubDate.Year
		ref.PubMonth = j.JournalIssue.PubDate.Month
	}

	ref.StartPage = art.Pagination.StartPage
	ref.EndPage = art.Pagination.EndPage

	for _, a := range art.Authors {
		out := reference.Author{
			LastName: a.LastName,
			ForeName: a.ForeName,
			Initials: a.Initials,
		}
		if len(a.Affiliations) > 0 {
			out.Institution = a.Affiliations[0].Affiliation
		}
		ref.Authors = append(ref.Authors, out)
	}

	return ref, nil
}
