package pubmed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchXML_RequestShape(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte("<PubmedArticleSet></PubmedArticleSet>"))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	body, err := c.FetchXML(context.Background(), "31726262")
	if err != nil {
		t.Fatalf("FetchXML() error: %v", err)
	}

	if gotPath != "/efetch.fcgi" {
		t.Errorf("path = %q, want /efetch.fcgi", gotPath)
	}
	for key, want := range map[string]string{"db": "pubmed", "retmode": "xml", "id": "31726262"} {
		if got := gotQuery[key]; len(got) != 1 || got[0] != want {
			t.Errorf("query[%s] = %v, want %q", key, got, want)
		}
	}
	if _, present := gotQuery["api_key"]; present {
		t.Error("api_key should not be sent when no key is configured")
	}
	if string(body) != "<PubmedArticleSet></PubmedArticleSet>" {
		t.Errorf("body = %q", body)
	}
}

func TestFetchXML_APIKey(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("api_key")
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithAPIKey("secret"))
	if _, err := c.FetchXML(context.Background(), "1"); err != nil {
		t.Fatalf("FetchXML() error: %v", err)
	}
	if gotKey != "secret" {
		t.Errorf("api_key = %q, want %q", gotKey, "secret")
	}
}

func TestFetchXML_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.FetchXML(context.Background(), "1")
	if !errors.Is(err, ErrNetworkError) {
		t.Errorf("FetchXML() error = %v, want ErrNetworkError", err)
	}
}
