package generation

import "fmt"

// outlinePrompt builds the instruction for structured slide generation.
// The model is asked for bare JSON; ParseOutline still strips fences in case
// it wraps the reply anyway.
func outlinePrompt(topic string, slideCount int) string {
	return fmt.Sprintf(`You are a presentation writer. Create a %d-slide presentation outline about: %s

Respond with ONLY a JSON array, no prose. Each element:
{
  "title": "slide title",
  "content": "markdown bullet points for the slide body",
  "layout": "one of: title, content, image, split"
}

Rules:
- The first slide uses the "title" layout and introduces the topic.
- The last slide is a conclusion or call to action.
- Use the "image" or "split" layout for slides that would benefit from a visual.
- Keep each slide's content under 80 words.`, slideCount, topic)
}

// imagePrompt builds the instruction for a slide illustration.
func imagePrompt(slideTitle, slideContent, theme string) string {
	p := fmt.Sprintf("A clean presentation illustration for a slide titled %q.", slideTitle)
	if slideContent != "" {
		p += fmt.Sprintf(" The slide covers: %s.", slideContent)
	}
	if theme != "" {
		p += fmt.Sprintf(" Visual style: %s.", theme)
	}
	p += " No embedded text or lettering."
	return p
}
