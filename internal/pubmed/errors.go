package pubmed

import "errors"

// Errors returned by the efetch client and the extractor.
var (
	// ErrMalformedDocument indicates the efetch payload could not be
	// parsed as XML.
	ErrMalformedDocument = errors.New("malformed pubmed document")

	// ErrEmptyResult indicates the document parsed but contains no
	// PubmedArticle entries (the identifier matched nothing).
	ErrEmptyResult = errors.New("empty result for the given pubmed id")

	// ErrNetworkError indicates a connectivity problem reaching the
	// E-utilities service.
	ErrNetworkError = errors.New("network error communicating with pubmed")
)
