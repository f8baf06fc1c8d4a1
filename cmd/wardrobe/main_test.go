package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/wardrobe"
	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid argument", fmt.Errorf("bad plan: %w", wardrobe.ErrInvalidArgument), 2},
		{"not found", fmt.Errorf("no target: %w", wardrobe.ErrNotFound), 3},
		{"transport", fmt.Errorf("no candidates: %w", wardrobe.ErrTransport), 4},
		{"persistence", fmt.Errorf("nothing to save: %w", wardrobe.ErrPersistence), 5},
		{"unclassified", errors.New("boom"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
