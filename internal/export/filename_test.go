package export

import "testing"

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain title", "A Study", "A Study"},
		{"slash becomes space", "Effects of A/B on C.", "Effects of A B on C"},
		{"braces removed", "The {best} method", "The best method"},
		{"brackets removed", "Review [updated]", "Review updated"},
		{"quotes removed", `The "gold" standard`, "The gold standard"},
		{"question mark removed", "Does it work?", "Does it work"},
		{"strips one trailing dot only", "Title..", "Title."},
		{"no trailing dot untouched", "Title", "Title"},
		{"interior dots kept", "E. coli growth", "E. coli growth"},
		{"lone dot", ".", ""},
		{"empty input", "", ""},
		{"all removable characters", `{}[]"?`, ""},
		{"colon deliberately kept", "Part 1: Methods", "Part 1: Methods"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFileName(tt.input); got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTitleFromBibTeX(t *testing.T) {
	tests := []struct {
		name   string
		bibtex string
		want   string
	}{
		{
			"plain entry",
			"@article{Smith_2015,\n title = {Vapor Pressure Measurements},\n year = {2015}\n}\n",
			"Vapor Pressure Measurements",
		},
		{
			"doubled braces",
			"@article{x,\n title = {{An Exact Title}},\n}\n",
			"An Exact Title",
		},
		{
			"no trailing comma",
			"@article{x,\n title = {Last Field}\n}\n",
			"Last Field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TitleFromBibTeX(tt.bibtex)
			if err != nil {
				t.Fatalf("TitleFromBibTeX() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("TitleFromBibTeX() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTitleFromBibTeX_NoTitle(t *testing.T) {
	_, err := TitleFromBibTeX("@article{x,\n year = {2015}\n}\n")
	if err == nil {
		t.Error("TitleFromBibTeX() should fail when no title line exists")
	}
}
