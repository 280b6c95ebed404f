package cache

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "sub", "cache.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPutAndGet(t *testing.T) {
	db := openTestDB(t)

	if err := db.Put("31726262", KindPubMedXML, "<PubmedArticleSet/>"); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	body, ok, err := db.Get("31726262", KindPubMedXML)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if !ok {
		t.Fatal("Get() ok = false after Put")
	}
	if body != "<PubmedArticleSet/>" {
		t.Errorf("Get() body = %q", body)
	}
}

func TestGetMiss(t *testing.T) {
	db := openTestDB(t)

	_, ok, err := db.Get("unknown", KindPubMedXML)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if ok {
		t.Error("Get() ok = true for a missing id")
	}
}

func TestKindsAreDistinct(t *testing.T) {
	db := openTestDB(t)

	if err := db.Put("10.1000/x", KindBibTeX, "@article{x}"); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	_, ok, err := db.Get("10.1000/x", KindPubMedXML)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if ok {
		t.Error("Get() should miss when the kind differs")
	}
}

func TestPutReplaces(t *testing.T) {
	db := openTestDB(t)

	if err := db.Put("1", KindPubMedXML, "old"); err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	if err := db.Put("1", KindPubMedXML, "new"); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	body, _, err := db.Get("1", KindPubMedXML)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if body != "new" {
		t.Errorf("Get() body = %q, want %q", body, "new")
	}
}
