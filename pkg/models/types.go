package models

// BlockData is the flat record the host editor persists for a gif
// block. An empty URL means no GIF has been selected yet.
type BlockData struct {
	URL    string `yaml:"url" json:"url"`
	Width  int    `yaml:"width,omitempty" json:"width,omitempty"`
	Height int    `yaml:"height,omitempty" json:"height,omitempty"`
	Title  string `yaml:"title,omitempty" json:"title,omitempty"`
	Alt    string `yaml:"alt,omitempty" json:"alt,omitempty"`
}

// HasGIF reports whether a GIF has been selected and persisted.
func (d BlockData) HasGIF() bool {
	return d.URL != ""
}
