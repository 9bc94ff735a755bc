package gptmodels

// GenerationOptions control sampling on the generation backend. Backends that
// do not expose a knob ignore it.
type GenerationOptions struct {
	Temperature float32
	TopP        float32
	TopK        int32
	MaxTokens   int32
}

// ScoringOptions favor consistency over creativity so that scoring is
// reproducible-ish across similar inputs.
func ScoringOptions() GenerationOptions {
	return GenerationOptions{
		Temperature: 0.2,
		TopP:        0.8,
		TopK:        40,
		MaxTokens:   4000,
	}
}

// QuestionOptions favor diversity.
func QuestionOptions() GenerationOptions {
	return GenerationOptions{
		Temperature: 0.8,
		TopP:        0.9,
		TopK:        40,
		MaxTokens:   4000,
	}
}
