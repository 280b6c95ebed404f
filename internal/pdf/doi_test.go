package pdf

import "testing"

func TestFindDOI(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			"doi on its own",
			"doi: 10.1038/s41467-019-13131-3",
			"10.1038/s41467-019-13131-3",
		},
		{
			"doi inside prose",
			"available at https://doi.org/10.1021/acs.jced.5b00684 for download",
			"10.1021/acs.jced.5b00684",
		},
		{
			"trailing punctuation trimmed",
			"see 10.1016/j.cell.2020.01.001.",
			"10.1016/j.cell.2020.01.001",
		},
		{
			"first valid match wins",
			"10.1038/abcdefg then 10.1016/hijklmn",
			"10.1038/abcdefg",
		},
		{"no doi", "a paper without identifiers", ""},
		{"prefix alone is not a doi", "10.1038/ trailing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindDOI(tt.text); got != tt.want {
				t.Errorf("FindDOI(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsValidDOI(t *testing.T) {
	tests := []struct {
		doi  string
		want bool
	}{
		{"10.1038/s41467-019-13131-3", true},
		{"10.1021/acs.jced.5b00684", true},
		{"10.1038/", false},
		{"11.1038/abc", false},
		{"10.1/x", false},
	}

	for _, tt := range tests {
		t.Run(tt.doi, func(t *testing.T) {
			if got := isValidDOI(tt.doi); got != tt.want {
				t.Errorf("isValidDOI(%q) = %v, want %v", tt.doi, got, tt.want)
			}
		})
	}
}
