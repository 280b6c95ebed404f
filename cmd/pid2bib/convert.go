package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bibtools/pid2bib/internal/cache"
	"github.com/bibtools/pid2bib/internal/config"
	"github.com/bibtools/pid2bib/internal/doiorg"
	"github.com/bibtools/pid2bib/internal/export"
	"github.com/bibtools/pid2bib/internal/pdf"
	"github.com/bibtools/pid2bib/internal/pubmed"
)

// PubMed identifiers are 1-8 digits and must not start with 0.
const maxPMIDLen = 8

// env assembles the per-invocation collaborators: configuration and,
// when enabled and available, the payload cache. Cache failures never
// fail a conversion.
type env struct {
	cfg   *config.Config
	cache *cache.DB
}

func newEnv() (*env, error) {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg}
	if cfg.CacheEnabled() {
		if path, err := cache.DefaultPath(); err == nil {
			if db, err := cache.Open(path); err == nil {
				e.cache = db
			}
		}
	}
	return e, nil
}

func (e *env) close() {
	if e.cache != nil {
		e.cache.Close()
	}
}

// cachedBody returns the cached payload for id, or "" on a miss.
func (e *env) cachedBody(id, kind string) string {
	if e.cache == nil {
		return ""
	}
	body, ok, err := e.cache.Get(id, kind)
	if err != nil || !ok {
		return ""
	}
	return body
}

// storeBody caches a payload; errors are ignored.
func (e *env) storeBody(id, kind, body string) {
	if e.cache == nil {
		return
	}
	_ = e.cache.Put(id, kind, body)
}

// writeEntry writes the BibTeX text to <outputDir>/<filename> and
// announces the file. Nothing is written when the caller failed
// earlier, so a failed conversion never leaves a partial file.
func (e *env) writeEntry(filename, content string) error {
	path := filename
	if e.cfg.OutputDir != "" {
		path = filepath.Join(e.cfg.OutputDir, filename)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	fmt.Printf("File %q was created.\n", filename)
	return nil
}

// convertPMID runs the PubMed path: efetch XML, extract, serialize.
func convertPMID(pmid string) {
	if len(pmid) < 1 || len(pmid) > maxPMIDLen {
		fmt.Println("Wrong identifier length, it must have 1 to 8 digits")
		return
	}
	if pmid[0] == '0' {
		fmt.Println("The identifier can not start with 0")
		return
	}

	e, err := newEnv()
	if err != nil {
		reportFailure(pmid, err)
		return
	}
	defer e.close()

	if err := e.runPMID(context.Background(), pmid); err != nil {
		reportFailure(pmid, err)
	}
}

func (e *env) runPMID(ctx context.Context, pmid string) error {
	body := e.cachedBody(pmid, cache.KindPubMedXML)
	fetched := false
	if body == "" {
		opts := []pubmed.ClientOption{pubmed.WithAPIKey(e.cfg.NCBIAPIKey)}
		if e.cfg.EutilsBaseURL != "" {
			opts = append(opts, pubmed.WithBaseURL(e.cfg.EutilsBaseURL))
		}
		raw, err := pubmed.NewClient(opts...).FetchXML(ctx, pmid)
		if err != nil {
			return err
		}
		body = string(raw)
		fetched = true
	}

	ref, err := pubmed.Extract(pmid, []byte(body))
	if err != nil {
		return err
	}
	if fetched {
		e.storeBody(pmid, cache.KindPubMedXML, body)
	}

	content := export.ToBibTeX(ref, pmid)
	filename := export.SanitizeFileName(ref.Title) + ".bib"
	return e.writeEntry(filename, content)
}

// convertDOI runs the DOI passthrough path: the entry arrives already
// rendered and is written verbatim; only the title is parsed out for
// the filename.
func convertDOI(doi string) {
	e, err := newEnv()
	if err != nil {
		reportFailure(doi, err)
		return
	}
	defer e.close()

	if err := e.runDOI(context.Background(), doi); err != nil {
		reportFailure(doi, err)
	}
}

func (e *env) runDOI(ctx context.Context, doi string) error {
	content := e.cachedBody(doi, cache.KindBibTeX)
	fetched := false
	if content == "" {
		var err error
		content, err = doiorg.NewClient().FetchBibTeX(ctx, doi)
		if err != nil {
			return err
		}
		fetched = true
	}

	title, err := export.TitleFromBibTeX(content)
	if err != nil {
		return err
	}
	if fetched {
		e.storeBody(doi, cache.KindBibTeX, content)
	}

	filename := export.SanitizeFileName(title) + ".bib"
	return e.writeEntry(filename, content)
}

// convertPDF scans a local PDF for a DOI, then continues on the DOI
// path.
func convertPDF(path string) {
	doi, err := pdf.ExtractDOI(path)
	if err != nil {
		reportFailure(path, err)
		return
	}
	fmt.Printf("Found DOI %s in %s\n", doi, path)
	convertDOI(doi)
}

// reportFailure prints the single human-readable failure message for a
// conversion, associating it with the requested identifier. Output
// goes to stdout; the exit code stays 0.
func reportFailure(id string, err error) {
	fmt.Printf("Error processing %s:\n %v\n", id, err)
}
