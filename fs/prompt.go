package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/wardrobe"
)

// LoadPrompt reads a markdown prompt by directory and file name and returns
// its text trimmed of surrounding whitespace. A missing file lists the
// available prompts in the error; a blank file is rejected.
func LoadPrompt(dir, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("prompt file name is empty; select a markdown file from the prompt directory: %w", wardrobe.ErrInvalidArgument)
	}
	if err := requireDir(dir, "prompt directory"); err != nil {
		return "", err
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("prompt file %q was not found in %q (available prompts: %s): %w",
				name, dir, availablePrompts(dir), wardrobe.ErrNotFound)
		}
		return "", fmt.Errorf("read prompt %q: %w", name, err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("prompt file %q is empty; populate it before running: %w", name, wardrobe.ErrInvalidArgument)
	}
	return text, nil
}

// availablePrompts enumerates the markdown files in dir for error messages.
func availablePrompts(dir string) string {
	matches, err := doublestar.Glob(os.DirFS(dir), "*.md")
	if err != nil || len(matches) == 0 {
		return "<none>"
	}
	sort.Strings(matches)
	return strings.Join(matches, ", ")
}
