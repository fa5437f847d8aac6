// Package gemini implements the generation interfaces using Google's
// Gemini API. It builds coaching prompts from templates, calls the model
// with retry and backoff, and returns the raw feedback text; score
// extraction is the scoring engine's concern.
package gemini
