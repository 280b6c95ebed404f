// Package pdf extracts DOIs from local PDF files so a downloaded paper
// can be converted without typing its identifier.
package pdf

import (
	"errors"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNoDOI indicates no DOI pattern was found in the scanned pages.
var ErrNoDOI = errors.New("no DOI found in PDF")

// maxScanPages bounds the scan; the DOI is almost always on page one.
const maxScanPages = 3

// doiPattern matches 10.XXXX/... identifiers.
var doiPattern = regexp.MustCompile(`10\.\d{4,9}/[^\s<>"{}|\\^~\[\]` + "`" + `]+`)

// ExtractDOI scans the first pages of a PDF file for a DOI.
func ExtractDOI(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	maxPages := maxScanPages
	if r.NumPage() < maxPages {
		maxPages = r.NumPage()
	}

	for i := 1; i <= maxPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		if doi := FindDOI(text); doi != "" {
			return doi, nil
		}
	}

	return "", ErrNoDOI
}

// FindDOI returns the first valid DOI in free text, or "".
func FindDOI(text string) string {
	for _, match := range doiPattern.FindAllString(text, -1) {
		match = strings.TrimRight(match, ".,;:)")
		if isValidDOI(match) {
			return match
		}
	}
	return ""
}

// isValidDOI performs basic shape validation on a DOI candidate.
func isValidDOI(doi string) bool {
	if len(doi) < 10 {
		return false
	}
	if !strings.HasPrefix(doi, "10.") {
		return false
	}
	slashIdx := strings.Index(doi, "/")
	return slashIdx != -1 && slashIdx < len(doi)-1
}
