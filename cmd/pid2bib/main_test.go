package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsAllDigits(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"31726262", true},
		{"1", true},
		{"", false},
		{"12a4", false},
		{"10.1021/acs.jced.5b00684", false},
		{"-123", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := isAllDigits(tt.input); got != tt.want {
				t.Errorf("isAllDigits(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsPDFPath(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "paper.pdf")
	if err := os.WriteFile(existing, []byte("%PDF-1.4"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		arg  string
		want bool
	}{
		{"existing pdf", existing, true},
		{"missing pdf", filepath.Join(dir, "absent.pdf"), false},
		{"doi is not a pdf", "10.1021/acs.jced.5b00684", false},
		{"plain pmid", "31726262", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isPDFPath(tt.arg); got != tt.want {
				t.Errorf("isPDFPath(%q) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}
}
