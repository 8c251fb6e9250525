package search

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// tenorEntry mirrors the entries of a Tenor-style "results" response as
// served by the usual proxy setups.
type tenorEntry struct {
	ID                 string                 `json:"id"`
	ContentDescription string                 `json:"content_description"`
	ContentType        string                 `json:"content_type"`
	MediaFormats       map[string]tenorFormat `json:"media_formats"`
}

type tenorFormat struct {
	URL  string `json:"url"`
	Dims []int  `json:"dims"`
}

// flatEntry mirrors one element of a bare-array response where every
// entry carries its own urls and metadata.
type flatEntry struct {
	ID      string `json:"id"`
	Preview string `json:"preview"`
	URL     string `json:"url"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Title   string `json:"title"`
	Alt     string `json:"alt"`
}

// DefaultParser understands the two response shapes the stock proxy
// setups produce: a Tenor-style object with a "results" array, and a
// bare array of flat entries. Anything else needs a custom Parser.
func DefaultParser() Parser {
	return ParserFunc(func(raw []byte) ([]Candidate, error) {
		var envelope struct {
			Results []tenorEntry `json:"results"`
		}
		if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Results != nil {
			return parseTenorResults(envelope.Results), nil
		}

		var entries []flatEntry
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("unrecognized response shape: %w", err)
		}
		return parseFlatResults(entries), nil
	})
}

func parseTenorResults(entries []tenorEntry) []Candidate {
	candidates := make([]Candidate, 0, len(entries))
	for _, entry := range entries {
		full := entry.MediaFormats["gif"]
		tiny := entry.MediaFormats["tinygif"]

		preview := tiny.URL
		if preview == "" {
			preview = full.URL
		}

		title := entry.ContentDescription
		if title == "" {
			title = entry.ContentType
		}
		alt := title
		if alt == "" {
			alt = "GIF"
		}

		candidate := Candidate{
			ID:         entry.ID,
			PreviewURL: preview,
			FullURL:    full.URL,
			Title:      title,
			Alt:        alt,
		}
		if len(full.Dims) >= 2 {
			candidate.Width = full.Dims[0]
			candidate.Height = full.Dims[1]
		}
		candidates = append(candidates, candidate)
	}
	return candidates
}

func parseFlatResults(entries []flatEntry) []Candidate {
	candidates := make([]Candidate, 0, len(entries))
	for _, entry := range entries {
		id := entry.ID
		if id == "" {
			id = uuid.NewString()
		}

		preview := entry.Preview
		if preview == "" {
			preview = entry.URL
		}

		alt := entry.Alt
		if alt == "" {
			alt = "GIF"
		}

		candidates = append(candidates, Candidate{
			ID:         id,
			PreviewURL: preview,
			FullURL:    entry.URL,
			Width:      entry.Width,
			Height:     entry.Height,
			Title:      entry.Title,
			Alt:        alt,
		})
	}
	return candidates
}
