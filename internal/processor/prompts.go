package processor

import "strings"

var DefaultPrompts = []string{
	"Create a clean Pixar-style cartoon illustration of the pet in the uploaded photo.\n" +
		"Keep the full body, original pose, markings, proportions, and aspect ratio.\n" +
		"Use soft shading and vibrant but natural colors.\n" +
		"Remove the entire background and output a fully transparent PNG with clean edges.",
	"Transform the uploaded pet photo into a bright Pixar-inspired character.\n" +
		"Keep all body parts visible, maintain the pose, markings, and original aspect ratio.\n" +
		"Use glossy highlights and 3D depth while staying natural.\n" +
		"Return a transparent PNG with a perfect cut-out.",
}

// Prompts returns the requested prompts with blanks replaced by the defaults.
func Prompts(prompt1, prompt2 string) []string {
	prompts := []string{strings.TrimSpace(prompt1), strings.TrimSpace(prompt2)}
	for i, p := range prompts {
		if p == "" {
			prompts[i] = DefaultPrompts[i]
		}
	}

	return prompts
}
