package reference

// Author represents one entry of a paper's author list. All fields are
// free text and default to empty; an author has no identity beyond its
// position in the list.
type Author struct {
	LastName    string `json:"last_name"`
	ForeName    string `json:"fore_name"`
	Initials    string `json:"initials"`
	Institution string `json:"institution"` // first affiliation, if any
}
