package markdown_test

import (
	"testing"

	"github.com/fwojciec/wardrobe/markdown"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		source    string
		wantTitle string
		wantWords int
	}{
		{
			name:      "heading and body",
			source:    "# Two Reference Edit\n\nReplace the dress with the reference garment.",
			wantTitle: "Two Reference Edit",
			wantWords: 10,
		},
		{
			name:      "no heading",
			source:    "Replace the dress.",
			wantTitle: "",
			wantWords: 3,
		},
		{
			name:      "first heading wins",
			source:    "# First\n\n## Second\n\nbody",
			wantTitle: "First",
			wantWords: 3,
		},
		{
			name:      "setext heading",
			source:    "Garment Swap\n============\n\nbody",
			wantTitle: "Garment Swap",
			wantWords: 3,
		},
		{
			name:      "punctuation does not count as words",
			source:    "# T\n\none -- two ... three!",
			wantTitle: "T",
			wantWords: 4,
		},
		{
			name:      "empty document",
			source:    "",
			wantTitle: "",
			wantWords: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := markdown.Summarize(tt.source)
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.Equal(t, tt.wantWords, got.Words)
		})
	}
}
