// Package generation is the AI gateway: it turns a natural-language topic
// into an ordered slide outline and slide prompts into images, using the
// Google GenAI API. Nothing here retries; a failed request is terminal for
// that user action.
package generation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"google.golang.org/genai"

	"deckforge/internal/deck"
	"deckforge/internal/logging"
)

// SlideDraft is one generated slide before it becomes a deck.Slide.
type SlideDraft struct {
	Title   string      `json:"title"`
	Content string      `json:"content"`
	Layout  deck.Layout `json:"layout"`
}

// ImageSize selects the aspect of a generated image.
type ImageSize string

const (
	ImageSquare ImageSize = "square"
	ImageWide   ImageSize = "wide"
	ImageTall   ImageSize = "tall"
)

// Generator produces slide content and images from natural-language prompts.
type Generator interface {
	// Outline generates an ordered slide outline for a topic.
	Outline(ctx context.Context, topic string, slideCount int) ([]SlideDraft, error)
	// Image generates an image for a prompt and returns a local file
	// reference usable as a slide ImageRef.
	Image(ctx context.Context, prompt string, size ImageSize) (string, error)
}

// Client is the Gemini-backed Generator.
type Client struct {
	client     *genai.Client
	textModel  string
	imageModel string
	assetsDir  string
}

// Option configures a Client.
type Option func(*Client)

// WithTextModel overrides the outline model.
func WithTextModel(model string) Option {
	return func(c *Client) { c.textModel = model }
}

// WithImageModel overrides the image model.
func WithImageModel(model string) Option {
	return func(c *Client) { c.imageModel = model }
}

// NewClient creates a Gemini generation client. Generated images are written
// under assetsDir.
func NewClient(ctx context.Context, apiKey, assetsDir string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("generation API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	c := &Client{
		client:     client,
		textModel:  "gemini-2.5-flash",
		imageModel: "imagen-3.0-generate-002",
		assetsDir:  assetsDir,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Outline asks the model for a structured slide outline and parses the JSON
// reply. The returned drafts are ordered; invalid layouts are coerced to the
// content layout.
func (c *Client) Outline(ctx context.Context, topic string, slideCount int) ([]SlideDraft, error) {
	timer := logging.StartTimer(logging.CategoryGeneration, "Outline")
	defer timer.StopWithThreshold(30 * time.Second)

	if slideCount < 1 {
		slideCount = 1
	}
	logging.Generation("Generating %d-slide outline for topic %q", slideCount, topic)

	prompt := outlinePrompt(topic, slideCount)
	resp, err := c.client.Models.GenerateContent(ctx,
		c.textModel,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		logging.GenerationError("Outline request failed: %v", err)
		return nil, fmt.Errorf("outline generation failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("outline generation returned no content")
	}

	drafts, err := ParseOutline(text)
	if err != nil {
		logging.GenerationError("Outline parse failed: %v", err)
		return nil, err
	}
	logging.Generation("Outline ready: %d slides", len(drafts))
	return drafts, nil
}

// Image generates an image, writes it under the assets dir, and returns the
// file path for use as a slide ImageRef.
func (c *Client) Image(ctx context.Context, prompt string, size ImageSize) (string, error) {
	timer := logging.StartTimer(logging.CategoryGeneration, "Image")
	defer timer.StopWithThreshold(60 * time.Second)

	logging.Generation("Generating %s image for prompt %q", size, prompt)

	resp, err := c.client.Models.GenerateImages(ctx,
		c.imageModel,
		prompt,
		&genai.GenerateImagesConfig{
			NumberOfImages: 1,
			AspectRatio:    aspectRatio(size),
		},
	)
	if err != nil {
		logging.GenerationError("Image request failed: %v", err)
		return "", fmt.Errorf("image generation failed: %w", err)
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return "", fmt.Errorf("image generation returned no images")
	}

	img := resp.GeneratedImages[0].Image
	ref, err := writeAsset(c.assetsDir, img.ImageBytes, img.MIMEType)
	if err != nil {
		return "", err
	}
	logging.Generation("Image written to %s", ref)
	return ref, nil
}

// aspectRatio maps an ImageSize to the API's aspect ratio strings.
func aspectRatio(size ImageSize) string {
	switch size {
	case ImageWide:
		return "16:9"
	case ImageTall:
		return "3:4"
	default:
		return "1:1"
	}
}

// writeAsset stores image bytes under dir and returns the file path.
func writeAsset(dir string, data []byte, mimeType string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("image generation returned empty bytes")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create assets dir: %w", err)
	}

	ext := ".png"
	if mimeType == "image/jpeg" {
		ext = ".jpg"
	}
	name := fmt.Sprintf("slide_%d%s", time.Now().UnixNano(), ext)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return path, nil
}

// SizeForLayout picks an image aspect suited to the slide layout.
func SizeForLayout(l deck.Layout) ImageSize {
	switch l {
	case deck.LayoutImage:
		return ImageWide
	case deck.LayoutSplit:
		return ImageTall
	default:
		return ImageSquare
	}
}
