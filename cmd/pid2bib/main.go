// Package main provides the pid2bib CLI entry point.
package main

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// Failures are reported on stdout with the identifier they belong
	// to; the exit code stays 0 either way.
	_ = rootCmd.Execute()
}

var rootCmd = &cobra.Command{
	Use:   "pid2bib <paper-id>",
	Short: "Fetch a paper's bibliography and store it as a BibTeX file",
	Long: `pid2bib converts a scientific paper identifier into a BibTeX file
named after the paper title, written to the current path.

The identifier may be a PubMed id (1-8 digits), a DOI, or a local PDF
file to scan for a DOI.

Examples:
  pid2bib 31726262
  pid2bib 10.1021/acs.jced.5b00684
  pid2bib paper.pdf`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ArbitraryArgs,
	Run:           runRoot,
}

func init() {
	rootCmd.Version = Version
}

func runRoot(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		printUsage()
		return
	}
	paperID := strings.TrimSpace(args[0])

	switch {
	case isPDFPath(paperID):
		convertPDF(paperID)
	case strings.Contains(paperID, "/"):
		convertDOI(paperID)
	case isAllDigits(paperID):
		convertPMID(paperID)
	default:
		fmt.Println("Paper identifier not supported. Only pmid and DOI are allowed")
	}
}

func printUsage() {
	fmt.Println("Usage: pid2bib paperId")
	fmt.Println("e.g. pid2bib 31726262")
	fmt.Println("e.g. pid2bib 10.1021/acs.jced.5b00684")
	fmt.Println("will create a bibtex file named with the paper title in the current path")
}

// isPDFPath routes existing .pdf files before the DOI check, since
// file paths also contain slashes.
func isPDFPath(arg string) bool {
	if !strings.HasSuffix(strings.ToLower(arg), ".pdf") {
		return false
	}
	info, err := os.Stat(arg)
	return err == nil && !info.IsDir()
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
