package wardrobe_test

import (
	"testing"
	"time"

	"github.com/fwojciec/wardrobe"
	"github.com/fwojciec/wardrobe/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func fixedBuilder() *wardrobe.Builder {
	return wardrobe.NewBuilder(
		wardrobe.WithClock(func() time.Time { return time.Unix(1700000000, 0) }),
		wardrobe.WithSuffix(func() string { return "a1b2c3d4" }),
	)
}

func TestBuilder_ExplicitSamplingEchoedVerbatim(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		temperature float64
		topP        float64
	}{
		{"within tuned interval", 0.25, 0.80},
		{"outside tuned interval", 0.95, 0.10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := fixedBuilder().Build(wardrobe.BuildInput{
				ReferenceImages: []string{"ref1.png"},
				TargetImage:     "target.png",
				Prompt:          "Edit this",
				Temperature:     f64(tt.temperature),
				TopP:            f64(tt.topP),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.temperature, cfg.Sampling.Temperature)
			assert.Equal(t, tt.topP, cfg.Sampling.TopP)
		})
	}
}

func TestBuilder_RandomizedSamplingWithinBounds(t *testing.T) {
	t.Parallel()
	b := wardrobe.NewBuilder()
	for range 50 {
		cfg, err := b.Build(wardrobe.BuildInput{
			ReferenceImages: []string{"ref1.png"},
			TargetImage:     "target.png",
			Prompt:          "Edit this",
		})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, cfg.Sampling.Temperature, wardrobe.TemperatureMin)
		assert.LessOrEqual(t, cfg.Sampling.Temperature, wardrobe.TemperatureMax)
		assert.GreaterOrEqual(t, cfg.Sampling.TopP, wardrobe.TopPMin)
		assert.LessOrEqual(t, cfg.Sampling.TopP, wardrobe.TopPMax)
	}
}

func TestBuilder_RandomizedSamplingUsesInjectedSource(t *testing.T) {
	t.Parallel()
	b := wardrobe.NewBuilder(wardrobe.WithRand(&mock.Rand{Values: []float64{0, 1}}))
	cfg, err := b.Build(wardrobe.BuildInput{
		ReferenceImages: []string{"ref1.png"},
		TargetImage:     "target.png",
		Prompt:          "Edit this",
	})
	require.NoError(t, err)
	assert.InDelta(t, wardrobe.TemperatureMin, cfg.Sampling.Temperature, 1e-9)
	assert.InDelta(t, wardrobe.TopPMax, cfg.Sampling.TopP, 1e-9)
}

func TestBuilder_PayloadOrderPlacesTargetLast(t *testing.T) {
	t.Parallel()
	cfg, err := fixedBuilder().Build(wardrobe.BuildInput{
		ReferenceImages: []string{"ref1.png", "ref2.png"},
		TargetImage:     "target.png",
		Prompt:          "Edit this",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ref1.png", "ref2.png", "target.png"}, cfg.PayloadOrder)
	assert.Equal(t, []string{"ref1.png", "ref2.png"}, cfg.ReferenceImages)
	assert.Equal(t, "target.png", cfg.TargetImage)
}

func TestBuilder_ZeroReferencesTolerated(t *testing.T) {
	t.Parallel()
	cfg, err := fixedBuilder().Build(wardrobe.BuildInput{
		TargetImage: "canvas.png",
		Prompt:      "Isolate the garment",
	})
	require.NoError(t, err)
	assert.Empty(t, cfg.ReferenceImages)
	assert.Equal(t, []string{"canvas.png"}, cfg.PayloadOrder)
}

func TestBuilder_Validation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   wardrobe.BuildInput
	}{
		{
			"three references",
			wardrobe.BuildInput{
				ReferenceImages: []string{"a.png", "b.png", "c.png"},
				TargetImage:     "t.png",
				Prompt:          "Edit this",
			},
		},
		{
			"empty target",
			wardrobe.BuildInput{ReferenceImages: []string{"a.png"}, Prompt: "Edit this"},
		},
		{
			"blank prompt",
			wardrobe.BuildInput{ReferenceImages: []string{"a.png"}, TargetImage: "t.png", Prompt: "  \n\t "},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := fixedBuilder().Build(tt.in)
			assert.ErrorIs(t, err, wardrobe.ErrInvalidArgument)
		})
	}
}

func TestBuilder_OutputFile(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		base string
		ext  string
		want string
	}{
		{"plain base", "asian_v1", "", "asian_v1_1700000000_a1b2c3d4.png"},
		{"directory and extension stripped", "out/photos/look.jpeg", "", "look_1700000000_a1b2c3d4.png"},
		{"only last extension stripped", "photo.large.jpeg", "", "photo.large_1700000000_a1b2c3d4.png"},
		{"empty base falls back", "", "", "edit-result_1700000000_a1b2c3d4.png"},
		{"extension normalized", "look", "..webp", "look_1700000000_a1b2c3d4.webp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := fixedBuilder().Build(wardrobe.BuildInput{
				ReferenceImages: []string{"ref1.png"},
				TargetImage:     "target.png",
				OutputBaseName:  tt.base,
				Prompt:          "Edit this",
				OutputExt:       tt.ext,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.OutputFile)
		})
	}
}

func TestBuilder_SameSecondBuildsDiffer(t *testing.T) {
	t.Parallel()
	b := wardrobe.NewBuilder(wardrobe.WithClock(func() time.Time { return time.Unix(1700000000, 0) }))
	in := wardrobe.BuildInput{
		ReferenceImages: []string{"ref1.png"},
		TargetImage:     "target.png",
		OutputBaseName:  "look",
		Prompt:          "Edit this",
	}
	first, err := b.Build(in)
	require.NoError(t, err)
	second, err := b.Build(in)
	require.NoError(t, err)
	assert.NotEqual(t, first.OutputFile, second.OutputFile)
}

func TestBuilder_TrimsPromptAndSystem(t *testing.T) {
	t.Parallel()
	cfg, err := fixedBuilder().Build(wardrobe.BuildInput{
		ReferenceImages: []string{"ref1.png"},
		TargetImage:     "target.png",
		System:          "  keep the pose \n",
		Prompt:          "\nEdit this  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "keep the pose", cfg.System)
	assert.Equal(t, "Edit this", cfg.Prompt)
}
