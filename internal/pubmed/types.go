package pubmed

import "encoding/xml"

// articleSet mirrors the efetch XML document for db=pubmed. Only the
// elements the extractor consumes are declared; everything else is
// ignored by encoding/xml. Optional elements decode to zero values,
// which is exactly the defensive text-or-empty policy the extractor
// needs.
type articleSet struct {
	XMLName  xml.Name        `xml:"PubmedArticleSet"`
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	MedlineCitation medlineCitation `xml:"MedlineCitation"`
	PubmedData      pubmedData      `xml:"PubmedData"`
}

type pubmedData struct {
	ArticleIDs []articleID `xml:"ArticleIdList>ArticleId"`
}

type articleID struct {
	IDType string `xml:"IdType,attr"`
	Value  string `xml:",chardata"`
}

type medlineCitation struct {
	PMID    string  `xml:"PMID"`
	Article article `xml:"Article"`
}

type article struct {
	Title      string     `xml:"ArticleTitle"`
	Abstract   *abstract  `xml:"Abstract"`
	Journal    *journal   `xml:"Journal"`
	Pagination pagination `xml:"Pagination"`
	Authors    []author   `xml:"AuthorList>Author"`
}

type abstract struct {
	// Structured abstracts carry several AbstractText sections; the
	// extractor takes the first, matching the upstream record layout.
	Texts     []string `xml:"AbstractText"`
	Copyright string   `xml:"CopyrightInformation"`
}

type journal struct {
	Title        string       `xml:"Title"`
	ISSN         string       `xml:"ISSN"`
	ISOAbbrev    string       `xml:"ISOAbbreviation"`
	JournalIssue journalIssue `xml:"JournalIssue"`
}

type journalIssue struct {
	Volume  string  `xml:"Volume"`
	Issue   string  `xml:"Issue"`
	PubDate pubDate `xml:"PubDate"`
}

type pubDate struct {
	Year  string `xml:"Year"`
	Month string `xml:"Month"`
}

type pagination struct {
	StartPage string `xml:"StartPage"`
	EndPage   string `xml:"EndPage"`
}

type author struct {
	LastName     string           `xml:"LastName"`
	ForeName     string           `xml:"ForeName"`
	Initials     string           `xml:"Initials"`
	Affiliations []affiliationRef `xml:"AffiliationInfo"`
}

type affiliationRef struct {
	Affiliation string `xml:"Affiliation"`
}
