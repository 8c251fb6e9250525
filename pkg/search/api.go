package search

// Candidate represents a single GIF search result offered for selection.
// Candidates are ephemeral: they exist between a search response and the
// user picking one, and are never persisted as-is.
type Candidate struct {
	ID         string `json:"id" yaml:"id"`
	PreviewURL string `json:"preview_url" yaml:"preview_url"`
	FullURL    string `json:"full_url" yaml:"full_url"`
	Width      int    `json:"width,omitempty" yaml:"width,omitempty"`
	Height     int    `json:"height,omitempty" yaml:"height,omitempty"`
	Title      string `json:"title,omitempty" yaml:"title,omitempty"`
	Alt        string `json:"alt,omitempty" yaml:"alt,omitempty"`
}

// Parser turns a raw response body from the search endpoint into an
// ordered list of candidates. Implementations must not retain the raw
// slice. A custom Parser is the extension point for endpoints that do
// not speak the default response shape.
type Parser interface {
	Parse(raw []byte) ([]Candidate, error)
}

// ParserFunc adapts a plain function to the Parser interface.
type ParserFunc func(raw []byte) ([]Candidate, error)

// Parse implements Parser.
func (f ParserFunc) Parse(raw []byte) ([]Candidate, error) {
	return f(raw)
}
