package deck

import (
	"encoding/json"
	"fmt"
)

// The store persists the slide list as an opaque text blob; the structured
// ordered list exists only in memory. Encoding is versioned JSON so the
// schema can evolve without a table migration.

const blobVersion = 1

type slideBlob struct {
	Version int     `json:"v"`
	Slides  []Slide `json:"slides"`
}

// EncodeSlides serializes an ordered slide list into the storage blob.
func EncodeSlides(slides []Slide) (string, error) {
	if len(slides) == 0 {
		return "", fmt.Errorf("refusing to encode empty slide list")
	}
	data, err := json.Marshal(slideBlob{Version: blobVersion, Slides: slides})
	if err != nil {
		return "", fmt.Errorf("encode slides: %w", err)
	}
	return string(data), nil
}

// DecodeSlides restores the ordered slide list from a storage blob.
// Slides with missing or unknown layouts are coerced to the content layout
// so older blobs stay loadable.
func DecodeSlides(blob string) ([]Slide, error) {
	var sb slideBlob
	if err := json.Unmarshal([]byte(blob), &sb); err != nil {
		return nil, fmt.Errorf("decode slides: %w", err)
	}
	if len(sb.Slides) == 0 {
		return nil, fmt.Errorf("decode slides: blob holds no slides")
	}
	for i := range sb.Slides {
		if !ValidLayout(sb.Slides[i].Layout) {
			sb.Slides[i].Layout = LayoutContent
		}
	}
	return sb.Slides, nil
}
