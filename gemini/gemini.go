// Package gemini implements [wardrobe.Editor] for the Google Gemini API.
//
// It wraps the google.golang.org/genai SDK, translating between wardrobe's
// domain types and the Gemini API types. Requests ask for image output only
// and a single candidate; the response is converted into the tagged-variant
// model before any caller sees it.
package gemini

const defaultModel = "gemini-2.5-flash-image"
