package export

import (
	"fmt"
	"regexp"
	"strings"
)

// titleLineRegex matches the rendered title line of a BibTeX entry.
var titleLineRegex = regexp.MustCompile(`title = (.*)\n`)

// fileNameReplacer drops the characters that break quoting in shells
// and BibTeX tooling and maps path separators to spaces. Other
// filesystem-unsafe characters (colon, backslash, control characters)
// are deliberately left alone; the documented character set is the
// contract.
var fileNameReplacer = strings.NewReplacer(
	"{", "",
	"}", "",
	"[", "",
	"]", "",
	`"`, "",
	"?", "",
	"/", " ",
)

// SanitizeFileName derives a file base name from free text, removing
// `{ } [ ] " ?`, replacing `/` with a space, and stripping exactly one
// trailing dot. The empty result is returned as-is rather than
// indexing past the end.
func SanitizeFileName(text string) string {
	result := fileNameReplacer.Replace(text)
	if strings.HasSuffix(result, ".") {
		return result[:len(result)-1]
	}
	return result
}

// TitleFromBibTeX scans rendered BibTeX text for the title line and
// returns the title with braces and the trailing comma removed. Used
// on the DOI path, where the entry is written verbatim and only the
// title is needed for the output filename.
func TitleFromBibTeX(bibtex string) (string, error) {
	m := titleLineRegex.FindStringSubmatch(bibtex)
	if m == nil {
		return "", fmt.Errorf("no title line in BibTeX entry")
	}
	title := strings.TrimRight(strings.TrimSpace(m[1]), ",")
	title = strings.NewReplacer("{", "", "}", "").Replace(title)
	return title, nil
}
