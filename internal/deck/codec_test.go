package deck

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSlideBlobRoundTripPreservesOrder(t *testing.T) {
	slides := []Slide{
		NewSlide("One", "first", LayoutTitle),
		NewSlide("Two", "second", LayoutSplit),
		NewSlide("Three", "third", LayoutImage),
	}
	slides[2].ImageRef = "assets/slide_3.png"

	blob, err := EncodeSlides(slides)
	if err != nil {
		t.Fatalf("EncodeSlides failed: %v", err)
	}

	decoded, err := DecodeSlides(blob)
	if err != nil {
		t.Fatalf("DecodeSlides failed: %v", err)
	}

	if diff := cmp.Diff(slides, decoded); diff != "" {
		t.Errorf("Round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeEmptySlideListRejected(t *testing.T) {
	if _, err := EncodeSlides(nil); err == nil {
		t.Error("Expected error encoding empty slide list")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	for _, blob := range []string{"", "not json", `{"v":1,"slides":[]}`} {
		if _, err := DecodeSlides(blob); err == nil {
			t.Errorf("Expected error decoding %q", blob)
		}
	}
}

func TestDecodeCoercesUnknownLayout(t *testing.T) {
	blob := `{"v":1,"slides":[{"id":"s1","title":"T","content":"c","layout":"carousel"}]}`

	decoded, err := DecodeSlides(blob)
	if err != nil {
		t.Fatalf("DecodeSlides failed: %v", err)
	}
	if decoded[0].Layout != LayoutContent {
		t.Errorf("Expected unknown layout coerced to content, got %q", decoded[0].Layout)
	}
}

func TestBlobIsVersioned(t *testing.T) {
	blob, err := EncodeSlides([]Slide{NewSlide("T", "", LayoutContent)})
	if err != nil {
		t.Fatalf("EncodeSlides failed: %v", err)
	}
	if !strings.Contains(blob, `"v":1`) {
		t.Errorf("Blob missing version marker: %s", blob)
	}
}
