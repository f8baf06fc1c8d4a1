package wardrobe

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxReferenceImages is the most reference images one request may carry.
// The image model degrades noticeably beyond two references plus the target.
const MaxReferenceImages = 2

// fallbackBaseName names the output file when the configured base name
// reduces to nothing after stripping directories and extensions.
const fallbackBaseName = "edit-result"

// defaultOutputExt is used when no output extension is configured.
const defaultOutputExt = "png"

// Sampling carries the generation parameters for one request.
type Sampling struct {
	Temperature float64
	TopP        float64
}

// RequestConfig is the canonical descriptor for one image-edit request.
// It is an immutable value: construct it through [Builder.Build] and do not
// mutate it afterwards.
//
// PayloadOrder is always ReferenceImages followed by TargetImage: the model
// expects the editing canvas last.
type RequestConfig struct {
	ReferenceImages []string
	TargetImage     string
	OutputFile      string
	Sampling        Sampling
	System          string
	Prompt          string
	PayloadOrder    []string
}

// BuildInput carries the raw material for one RequestConfig.
type BuildInput struct {
	ReferenceImages []string // 0-2 asset identifiers, transmitted first
	TargetImage     string   // asset identifier, transmitted last
	OutputBaseName  string
	System          string
	Prompt          string
	Temperature     *float64 // nil = random draw within the tuned interval
	TopP            *float64 // nil = random draw within the tuned interval
	OutputExt       string   // default "png"
}

// Builder assembles request descriptors. The clock, the random source, and
// the filename suffix source are injectable so tests can assert exact output.
type Builder struct {
	now    func() time.Time
	rand   Rand
	suffix func() string
}

// BuilderOption configures a [Builder].
type BuilderOption func(*Builder)

// WithClock sets the clock used for output filename timestamps.
func WithClock(now func() time.Time) BuilderOption {
	return func(b *Builder) { b.now = now }
}

// WithRand sets the source for randomized sampling defaults.
func WithRand(r Rand) BuilderOption {
	return func(b *Builder) { b.rand = r }
}

// WithSuffix sets the source of the per-build filename suffix. The default
// derives a short suffix from a random UUID so that two builds in the same
// wall-clock second still produce distinct filenames.
func WithSuffix(suffix func() string) BuilderOption {
	return func(b *Builder) { b.suffix = suffix }
}

// NewBuilder creates a Builder with the given options.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		now:    time.Now,
		rand:   SystemRand(),
		suffix: func() string { return uuid.NewString()[:8] },
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Build validates in and returns the canonical request descriptor.
//
// Unset sampling values are drawn uniformly from the tuned intervals.
// Explicit values are echoed verbatim; callers supplying one are trusted,
// even outside the tuned interval. Reference and target identifiers are
// recorded as given: resolving them against the filesystem is the path
// resolver's job, not the builder's. Build performs no I/O.
func (b *Builder) Build(in BuildInput) (RequestConfig, error) {
	if len(in.ReferenceImages) > MaxReferenceImages {
		return RequestConfig{}, fmt.Errorf("at most %d reference images are supported, got %d: %w",
			MaxReferenceImages, len(in.ReferenceImages), ErrInvalidArgument)
	}
	if in.TargetImage == "" {
		return RequestConfig{}, fmt.Errorf("target image is required: %w", ErrInvalidArgument)
	}
	prompt := strings.TrimSpace(in.Prompt)
	if prompt == "" {
		return RequestConfig{}, fmt.Errorf("prompt is empty: %w", ErrInvalidArgument)
	}

	temperature := ClampedRandom(b.rand, TemperatureMin, TemperatureMax)
	if in.Temperature != nil {
		temperature = *in.Temperature
	}
	topP := ClampedRandom(b.rand, TopPMin, TopPMax)
	if in.TopP != nil {
		topP = *in.TopP
	}

	references := append([]string(nil), in.ReferenceImages...)
	order := make([]string, 0, len(references)+1)
	order = append(order, references...)
	order = append(order, in.TargetImage)

	return RequestConfig{
		ReferenceImages: references,
		TargetImage:     in.TargetImage,
		OutputFile:      b.outputFile(in.OutputBaseName, in.OutputExt),
		Sampling:        Sampling{Temperature: temperature, TopP: topP},
		System:          strings.TrimSpace(in.System),
		Prompt:          prompt,
		PayloadOrder:    order,
	}, nil
}

// outputFile derives a filesystem-safe output filename: the base name with
// directories and extension stripped, a Unix-seconds timestamp for human
// readability, and a short suffix that carries the uniqueness guarantee.
func (b *Builder) outputFile(baseName, ext string) string {
	base := filepath.Base(baseName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = fallbackBaseName
	}

	ext = strings.TrimLeft(ext, ".")
	if ext == "" {
		ext = defaultOutputExt
	}

	return fmt.Sprintf("%s_%d_%s.%s", base, b.now().Unix(), b.suffix(), ext)
}
