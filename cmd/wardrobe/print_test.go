package main

import (
	"strings"
	"testing"

	"github.com/fwojciec/wardrobe"
	"github.com/stretchr/testify/assert"
)

func printed(events ...wardrobe.Event) string {
	var sb strings.Builder
	theme := wardrobe.DefaultTheme()
	theme.Accent, theme.Muted, theme.Success, theme.Warning = -1, -1, -1, -1
	p := newPrinter(&sb, theme)
	for _, e := range events {
		p.print(e)
	}
	return sb.String()
}

func TestPrinter(t *testing.T) {
	t.Parallel()

	out := printed(
		wardrobe.EventAssetsResolved{Assets: wardrobe.AssetSet{
			References: []string{"data/raw/dress.png", "data/raw/shoes.png"},
			Target:     "data/model/t.png",
		}},
		wardrobe.EventPromptLoaded{
			Path: "data/prompts/edit.md",
			Text: "# Garment Swap\n\nReplace the dress.",
		},
		wardrobe.EventSchedule{Temperatures: []float64{0.2, 0.24, 0.28}, TopP: 0.75},
		wardrobe.EventVariationStarted{Index: 1, Count: 3, Temperature: 0.2},
		wardrobe.EventModelText{Index: 1, Text: "adjusted the hemline"},
		wardrobe.EventImagesSaved{Index: 1, Paths: []string{"data/samples/look_v1.png"}},
		wardrobe.EventWarning{Message: "top-p 0.9 is outside the tuned interval [0.7, 0.85]"},
	)

	assert.Contains(t, out, "References:\n  - data/raw/dress.png\n  - data/raw/shoes.png\n")
	assert.Contains(t, out, "Target:\n  - data/model/t.png\n")
	assert.Contains(t, out, "Prompt: data/prompts/edit.md (Garment Swap, 5 words)\n")
	assert.Contains(t, out, "Temperature schedule: 0.2, 0.24, 0.28 (top-p 0.75)\n")
	assert.Contains(t, out, "Variation 1/3 at temperature 0.2\n")
	assert.Contains(t, out, "  model: adjusted the hemline\n")
	assert.Contains(t, out, "  saved data/samples/look_v1.png\n")
	assert.Contains(t, out, "  warning: top-p 0.9 is outside the tuned interval [0.7, 0.85]\n")
}

func TestPrinter_ConfigBuiltShowsOutputFile(t *testing.T) {
	t.Parallel()

	out := printed(wardrobe.EventConfigBuilt{
		Index:  1,
		Config: wardrobe.RequestConfig{OutputFile: "look_v1_1700000000_a1b2c3d4.png"},
	})
	assert.Contains(t, out, "  output: look_v1_1700000000_a1b2c3d4.png\n")
}

func TestPrinter_PromptWithoutHeading(t *testing.T) {
	t.Parallel()

	out := printed(wardrobe.EventPromptLoaded{
		Path: "data/prompts/edit.md",
		Text: "Replace the dress.",
	})
	assert.Contains(t, out, "Prompt: data/prompts/edit.md (3 words)\n")
}
