package files

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gifblock/gifblock-cli/pkg/models"
)

// Block kinds a document can hold.
const (
	BlockKindText = "text"
	BlockKindGIF  = "gif"
)

// DocumentBlock is one serialized block of a document. Exactly one of
// Text or GIF is meaningful, selected by Kind.
type DocumentBlock struct {
	Kind string            `yaml:"kind"`
	Text string            `yaml:"text,omitempty"`
	GIF  *models.BlockData `yaml:"gif,omitempty"`
}

// Document is the demo editor's serialized form: an ordered list of
// blocks.
type Document struct {
	Blocks []DocumentBlock `yaml:"blocks"`
}

// ReadDocument loads .gifblock/document.yaml. A missing file yields an
// empty document.
func ReadDocument() (*Document, error) {
	content, err := os.ReadFile(filepath.Join(GifblockDir, DocumentFile))
	if os.IsNotExist(err) {
		return &Document{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return &doc, nil
}

// WriteDocument saves the document to .gifblock/document.yaml.
func WriteDocument(doc *Document) error {
	content, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	return WriteFile(filepath.Join(GifblockDir, DocumentFile), content)
}
