package wardrobe

import "fmt"

// Mode selects the run flow.
type Mode string

const (
	// ModeEdit dresses a separate target image using the references.
	ModeEdit Mode = "edit"

	// ModeExtract isolates the garment shown on the first reference image.
	// The first reference doubles as the editing canvas and any remaining
	// references support it; no separate target is configured.
	ModeExtract Mode = "extract"
)

// Plan is the immutable configuration for one run. It replaces the
// tweak-before-each-run constants of earlier iterations of this tool; load
// one from a YAML file with the yaml package or construct it directly.
type Plan struct {
	PromptDir  string
	PromptFile string

	// SystemPrompt is the inline system instruction. SystemPromptFile, when
	// set, takes precedence and is loaded from PromptDir.
	SystemPrompt     string
	SystemPromptFile string

	ReferenceDir   string
	ReferenceNames []string // empty = discover from ReferenceDir (edit mode only)
	TargetDir      string
	TargetName     string

	OutputDir      string
	OutputBaseName string
	OutputExt      string // default "png"

	Mode Mode // default ModeEdit

	Variations      int     // <= 1 runs a single variation
	BaseTemperature float64 // center of the temperature schedule
	Spread          float64 // half-width of the schedule window

	// Temperature fixes the sampling temperature across variations,
	// bypassing the schedule. TopP is held constant across variations;
	// when nil, one random draw from the tuned interval is reused.
	Temperature *float64
	TopP        *float64

	Model string // model ID, empty = editor default
}

// Validate checks universal constraints on Plan. Asset-level constraints
// (existence, reference counts) are enforced during resolution.
func (p Plan) Validate() error {
	switch p.Mode {
	case "", ModeEdit:
		if p.TargetName == "" {
			return fmt.Errorf("target name is required in edit mode: %w", ErrInvalidArgument)
		}
	case ModeExtract:
		if len(p.ReferenceNames) == 0 {
			return fmt.Errorf("extraction requires at least one reference name: %w", ErrInvalidArgument)
		}
	default:
		return fmt.Errorf("unknown mode %q: %w", p.Mode, ErrInvalidArgument)
	}
	if p.PromptFile == "" {
		return fmt.Errorf("prompt file name is required: %w", ErrInvalidArgument)
	}
	if p.Variations < 0 {
		return fmt.Errorf("variations must be non-negative, got %d: %w", p.Variations, ErrInvalidArgument)
	}
	if p.Spread < 0 {
		return fmt.Errorf("spread must be non-negative, got %g: %w", p.Spread, ErrInvalidArgument)
	}
	return nil
}
