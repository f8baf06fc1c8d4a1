package wardrobe

import (
	"context"
	"fmt"
	"path/filepath"
)

// Runner executes an edit plan: it resolves assets, builds one request
// descriptor per variation, hands each to the Editor, and persists the
// results. Variations run sequentially; the first failure aborts the rest.
type Runner struct {
	editor  Editor
	store   Persister
	source  AssetSource
	builder *Builder
	rand    Rand
}

// RunnerOption configures a [Runner].
type RunnerOption func(*Runner)

// WithBuilder sets the request config builder. Tests use this to pin the
// clock and filename suffix.
func WithBuilder(b *Builder) RunnerOption {
	return func(r *Runner) { r.builder = b }
}

// WithRunnerRand sets the source for the run-level top-p draw.
func WithRunnerRand(rnd Rand) RunnerOption {
	return func(r *Runner) { r.rand = rnd }
}

// NewRunner creates a Runner with the given collaborators and options.
func NewRunner(editor Editor, store Persister, source AssetSource, opts ...RunnerOption) *Runner {
	r := &Runner{
		editor:  editor,
		store:   store,
		source:  source,
		builder: NewBuilder(),
		rand:    SystemRand(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// RunOption configures a single Run invocation.
type RunOption func(*runConfig)

type runConfig struct {
	onEvent func(Event)
}

// WithEventHandler sets a callback that receives each progress event during
// the run. If nil or not set, events are silently discarded.
func WithEventHandler(h func(Event)) RunOption {
	return func(c *runConfig) { c.onEvent = h }
}

// Run executes the plan and returns the persisted paths in variation order.
// On failure the paths from completed variations are returned alongside the
// error, so callers can keep what finished.
func (r *Runner) Run(ctx context.Context, plan Plan, opts ...RunOption) ([]string, error) {
	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	emit := func(e Event) {
		if cfg.onEvent != nil {
			cfg.onEvent(e)
		}
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}

	assets, err := r.resolveAssets(plan)
	if err != nil {
		return nil, err
	}
	emit(EventAssetsResolved{Assets: assets})

	system, err := r.systemText(plan)
	if err != nil {
		return nil, err
	}

	prompt, err := r.source.LoadPrompt(plan.PromptDir, plan.PromptFile)
	if err != nil {
		return nil, err
	}
	emit(EventPromptLoaded{Path: filepath.Join(plan.PromptDir, plan.PromptFile), Text: prompt})

	images, err := r.source.ReadImages(assets.Paths())
	if err != nil {
		return nil, err
	}

	count := plan.Variations
	if count < 1 {
		count = 1
	}
	schedule := r.schedule(plan, count, emit)

	topP := ClampedRandom(r.rand, TopPMin, TopPMax)
	if plan.TopP != nil {
		topP = *plan.TopP
		if topP < TopPMin || topP > TopPMax {
			emit(EventWarning{Message: fmt.Sprintf("top-p %g is outside the tuned interval [%g, %g]", topP, TopPMin, TopPMax)})
		}
	}
	emit(EventSchedule{Temperatures: schedule, TopP: topP})

	var saved []string
	for i, temperature := range schedule {
		if err := ctx.Err(); err != nil {
			return saved, err
		}
		index := i + 1
		emit(EventVariationStarted{Index: index, Count: count, Temperature: temperature})

		temp := temperature
		config, err := r.builder.Build(BuildInput{
			ReferenceImages: assets.References,
			TargetImage:     assets.Target,
			OutputBaseName:  fmt.Sprintf("%s_v%d", plan.OutputBaseName, index),
			System:          system,
			Prompt:          prompt,
			Temperature:     &temp,
			TopP:            &topP,
			OutputExt:       plan.OutputExt,
		})
		if err != nil {
			return saved, err
		}
		emit(EventConfigBuilt{Index: index, Config: config})

		resp, err := r.editor.Edit(ctx, EditRequest{
			Model:       plan.Model,
			System:      config.System,
			Prompt:      config.Prompt,
			Images:      images,
			Temperature: config.Sampling.Temperature,
			TopP:        config.Sampling.TopP,
		})
		if err != nil {
			return saved, err
		}
		for _, text := range resp.Texts() {
			emit(EventModelText{Index: index, Text: text})
		}

		paths, err := r.store.Save(resp, plan.OutputDir, config.OutputFile)
		if err != nil {
			return saved, err
		}
		saved = append(saved, paths...)
		emit(EventImagesSaved{Index: index, Paths: paths})
	}

	return saved, nil
}

// resolveAssets maps the plan onto an AssetSet according to its mode. In
// extraction mode the first reference becomes the editing canvas and the
// remaining references support it.
func (r *Runner) resolveAssets(plan Plan) (AssetSet, error) {
	if plan.Mode != ModeExtract {
		return r.source.ResolveAssets(plan.ReferenceDir, plan.TargetDir, plan.ReferenceNames, plan.TargetName)
	}

	resolved, err := r.source.ResolveReferences(plan.ReferenceDir, plan.ReferenceNames)
	if err != nil {
		return AssetSet{}, err
	}
	return AssetSet{References: resolved[1:], Target: resolved[0]}, nil
}

func (r *Runner) systemText(plan Plan) (string, error) {
	if plan.SystemPromptFile == "" {
		return plan.SystemPrompt, nil
	}
	return r.source.LoadPrompt(plan.PromptDir, plan.SystemPromptFile)
}

// schedule computes the per-variation temperatures. A fixed override
// bypasses the schedule and is repeated for every variation.
func (r *Runner) schedule(plan Plan, count int, emit func(Event)) []float64 {
	if plan.Temperature != nil {
		fixed := *plan.Temperature
		if fixed < TemperatureMin || fixed > TemperatureMax {
			emit(EventWarning{Message: fmt.Sprintf("temperature %g is outside the tuned interval [%g, %g]", fixed, TemperatureMin, TemperatureMax)})
		}
		values := make([]float64, count)
		for i := range values {
			values[i] = fixed
		}
		return values
	}
	return Schedule(plan.BaseTemperature, count, TemperatureMin, TemperatureMax, plan.Spread)
}
