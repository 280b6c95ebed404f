package pubmed

import (
	"errors"
	"strings"
	"testing"
)

const fullArticleXML = `<?xml version="1.0" ?>
<PubmedArticleSet>
<PubmedArticle>
  <MedlineCitation>
    <PMID>31726262</PMID>
    <Article>
      <Journal>
        <ISSN>2041-1723</ISSN>
        <Title>Nature communications</Title>
        <ISOAbbreviation>Nat Commun</ISOAbbreviation>
        <JournalIssue>
          <Volume>10</Volume>
          <Issue>1</Issue>
          <PubDate>
            <Year>2019</Year>
            <Month>Nov</Month>
          </PubDate>
        </JournalIssue>
      </Journal>
      <ArticleTitle>A Study</ArticleTitle>
      <Pagination>
        <StartPage>5176</StartPage>
        <EndPage>5186</EndPage>
      </Pagination>
      <Abstract>
        <AbstractText>Some findings.</AbstractText>
        <CopyrightInformation>Copyright 2019 The Authors.</CopyrightInformation>
      </Abstract>
      <AuthorList>
        <Author>
          <LastName>Smith</LastName>
          <ForeName>Jane</ForeName>
          <Initials>J</Initials>
          <AffiliationInfo>
            <Affiliation>Department of Biology, Example University.</Affiliation>
          </AffiliationInfo>
        </Author>
        <Author>
          <LastName>Doe</LastName>
          <ForeName>John</ForeName>
          <Initials>JD</Initials>
        </Author>
      </AuthorList>
    </Article>
  </MedlineCitation>
  <PubmedData>
    <ArticleIdList>
      <ArticleId IdType="pubmed">31726262</ArticleId>
      <ArticleId IdType="doi">10.1038/s41467-019-13131-3</ArticleId>
    </ArticleIdList>
  </PubmedData>
</PubmedArticle>
</PubmedArticleSet>`

func TestExtract_FullRecord(t *testing.T) {
	ref, err := Extract("31726262", []byte(fullArticleXML))
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}

	if ref.PMID != "31726262" {
		t.Errorf("PMID = %q, want %q", ref.PMID, "31726262")
	}
	if ref.Title != "A Study" {
		t.Errorf("Title = %q, want %q", ref.Title, "A Study")
	}
	if ref.DOI != "10.1038/s41467-019-13131-3" {
		t.Errorf("DOI = %q, want %q", ref.DOI, "10.1038/s41467-019-13131-3")
	}
	if ref.ArticleURL != "https://doi.org/10.1038/s41467-019-13131-3" {
		t.Errorf("ArticleURL = %q, want DOI resolver form", ref.ArticleURL)
	}
	if ref.Journal != "Nature communications" {
		t.Errorf("Journal = %q", ref.Journal)
	}
	if ref.JournalAb != "Nat Commun" {
		t.Errorf("JournalAb = %q", ref.JournalAb)
	}
	if ref.ISSN != "2041-1723" {
		t.Errorf("ISSN = %q", ref.ISSN)
	}
	if ref.Volume != "10" || ref.Issue != "1" {
		t.Errorf("Volume/Issue = %q/%q", ref.Volume, ref.Issue)
	}
	if ref.PubYear != "2019" || ref.PubMonth != "Nov" {
		t.Errorf("PubYear/PubMonth = %q/%q", ref.PubYear, ref.PubMonth)
	}
	if ref.StartPage != "5176" || ref.EndPage != "5186" {
		t.Errorf("StartPage/EndPage = %q/%q", ref.StartPage, ref.EndPage)
	}
	if ref.Abstract != "Some findings." {
		t.Errorf("Abstract = %q", ref.Abstract)
	}
	if ref.Copyright != "Copyright 2019 The Authors." {
		t.Errorf("Copyright = %q", ref.Copyright)
	}

	if len(ref.Authors) != 2 {
		t.Fatalf("len(Authors) = %d, want 2", len(ref.Authors))
	}
	first := ref.Authors[0]
	if first.LastName != "Smith" || first.ForeName != "Jane" || first.Initials != "J" {
		t.Errorf("Authors[0] = %+v", first)
	}
	if first.Institution != "Department of Biology, Example University." {
		t.Errorf("Authors[0].Institution = %q", first.Institution)
	}
	second := ref.Authors[1]
	if second.LastName != "Doe" || second.Institution != "" {
		t.Errorf("Authors[1] = %+v", second)
	}
}

func TestExtract_NoDOIFallsBackToPubMedURL(t *testing.T) {
	xmlDoc := strings.Replace(fullArticleXML,
		`<ArticleId IdType="doi">10.1038/s41467-019-13131-3</ArticleId>`, "", 1)

	ref, err := Extract("31726262", []byte(xmlDoc))
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if ref.DOI != "" {
		t.Errorf("DOI = %q, want empty", ref.DOI)
	}
	if ref.ArticleURL != "https://pubmed.ncbi.nlm.nih.gov/31726262/" {
		t.Errorf("ArticleURL = %q, want PubMed landing form", ref.ArticleURL)
	}
}

func TestExtract_SparseRecord(t *testing.T) {
	xmlDoc := `<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation>
      <PMID>123</PMID>
      <Article>
        <ArticleTitle>Bare Bones</ArticleTitle>
      </Article>
    </MedlineCitation>
    <PubmedData>
      <ArticleIdList>
        <ArticleId IdType="pubmed">123</ArticleId>
      </ArticleIdList>
    </PubmedData>
  </PubmedArticle>
</PubmedArticleSet>`

	ref, err := Extract("123", []byte(xmlDoc))
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}

	// Every optional field resolves to empty, never to an error.
	if ref.Journal != "" || ref.JournalAb != "" || ref.ISSN != "" ||
		ref.Volume != "" || ref.Issue != "" || ref.PubYear != "" ||
		ref.PubMonth != "" || ref.StartPage != "" || ref.EndPage != "" ||
		ref.Abstract != "" || ref.Copyright != "" {
		t.Errorf("sparse record should extract empty optional fields, got %+v", ref)
	}
	if len(ref.Authors) != 0 {
		t.Errorf("len(Authors) = %d, want 0", len(ref.Authors))
	}
}

func TestExtract_MissingTitle(t *testing.T) {
	xmlDoc := `<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation><Article></Article></MedlineCitation>
  </PubmedArticle>
</PubmedArticleSet>`

	ref, err := Extract("1", []byte(xmlDoc))
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if ref.Title != "" {
		t.Errorf("Title = %q, want empty", ref.Title)
	}
}

func TestExtract_LastDOIWins(t *testing.T) {
	xmlDoc := `<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation><Article><ArticleTitle>T</ArticleTitle></Article></MedlineCitation>
    <PubmedData>
      <ArticleIdList>
        <ArticleId IdType="doi">10.1000/first</ArticleId>
        <ArticleId IdType="doi">10.1000/second</ArticleId>
      </ArticleIdList>
    </PubmedData>
  </PubmedArticle>
</PubmedArticleSet>`

	ref, err := Extract("1", []byte(xmlDoc))
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if ref.DOI != "10.1000/second" {
		t.Errorf("DOI = %q, want the last doi entry", ref.DOI)
	}
}

func TestExtract_EmptyResult(t *testing.T) {
	xmlDoc := `<PubmedArticleSet></PubmedArticleSet>`
	_, err := Extract("99999999", []byte(xmlDoc))
	if !errors.Is(err, ErrEmptyResult) {
		t.Errorf("Extract() error = %v, want ErrEmptyResult", err)
	}
}

func TestExtract_MalformedDocument(t *testing.T) {
	_, err := Extract("1", []byte("<PubmedArticleSet><unclosed"))
	if !errors.Is(err, ErrMalformedDocument) {
		t.Errorf("Extract() error = %v, want ErrMalformedDocument", err)
	}
}
