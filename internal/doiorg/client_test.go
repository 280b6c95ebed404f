package doiorg

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleEntry = ` @article{Smith_2015, title={Vapor Pressure Measurements}, journal={Journal of Chemical Data}, year={2015} }`

func TestFetchBibTeX(t *testing.T) {
	var gotAccept, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotPath = r.URL.Path
		w.Write([]byte(sampleEntry))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	got, err := c.FetchBibTeX(context.Background(), "10.1021/acs.jced.5b00684")
	if err != nil {
		t.Fatalf("FetchBibTeX() error: %v", err)
	}

	if gotAccept != "application/x-bibtex" {
		t.Errorf("Accept = %q, want application/x-bibtex", gotAccept)
	}
	if gotPath != "/10.1021/acs.jced.5b00684" {
		t.Errorf("path = %q", gotPath)
	}
	if got != sampleEntry {
		t.Errorf("FetchBibTeX() = %q, want the entry verbatim", got)
	}
}

func TestFetchBibTeX_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.FetchBibTeX(context.Background(), "10.1000/missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("FetchBibTeX() error = %v, want ErrNotFound", err)
	}
}

func TestFetchBibTeX_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.FetchBibTeX(context.Background(), "10.1000/x")
	if !errors.Is(err, ErrNetworkError) {
		t.Errorf("FetchBibTeX() error = %v, want ErrNetworkError", err)
	}
}
