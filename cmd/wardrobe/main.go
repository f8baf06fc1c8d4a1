// Command wardrobe prepares and issues image-editing requests to the Gemini
// image model and saves the returned images.
//
// Usage:
//
//	GEMINI_API_KEY=gk-... wardrobe -plan plan.yaml [flags]
//
// Flags:
//
//	-plan string     Path to the YAML run plan (required)
//	-model string    Model ID (default: plan value, then provider default)
//	-api-key string  API key (overrides GEMINI_API_KEY)
//	-env string      Path to a .env file to seed the environment (default ".env")
//	-plain           Plain line output even on a terminal
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/fwojciec/wardrobe"
	bt "github.com/fwojciec/wardrobe/bubbletea"
	"github.com/fwojciec/wardrobe/fs"
	"github.com/fwojciec/wardrobe/gemini"
	"github.com/fwojciec/wardrobe/save"
	"github.com/fwojciec/wardrobe/yaml"
	"github.com/joho/godotenv"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "wardrobe: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps each error kind to a distinct process exit code so scripts
// can tell a configuration mistake from a service failure.
func exitCode(err error) int {
	switch {
	case errors.Is(err, wardrobe.ErrInvalidArgument):
		return 2
	case errors.Is(err, wardrobe.ErrNotFound):
		return 3
	case errors.Is(err, wardrobe.ErrTransport):
		return 4
	case errors.Is(err, wardrobe.ErrPersistence):
		return 5
	default:
		return 1
	}
}

func run() error {
	// Parse flags.
	var (
		planPath = flag.String("plan", "", "Path to the YAML run plan (required)")
		model    = flag.String("model", "", "Model ID (overrides the plan)")
		apiKey   = flag.String("api-key", "", "API key (overrides GEMINI_API_KEY)")
		envPath  = flag.String("env", ".env", "Path to a .env file to seed the environment")
		plain    = flag.Bool("plain", false, "Plain line output even on a terminal")
	)
	flag.Parse()

	if *planPath == "" {
		return fmt.Errorf("-plan is required: %w", wardrobe.ErrInvalidArgument)
	}

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Seed the environment from .env when present; a missing file is fine.
	if err := loadDotEnv(*envPath); err != nil {
		return fmt.Errorf("load %s: %w", *envPath, err)
	}

	key := *apiKey
	if key == "" {
		key = os.Getenv("GEMINI_API_KEY")
	}
	if key == "" {
		return fmt.Errorf("GEMINI_API_KEY was not found; set it in your environment or .env file: %w", wardrobe.ErrTransport)
	}

	plan, err := yaml.Load(*planPath)
	if err != nil {
		return err
	}
	if *model != "" {
		plan.Model = *model
	}
	if err := plan.Validate(); err != nil {
		return err
	}

	client, err := gemini.New(ctx, key)
	if err != nil {
		return err
	}
	runner := wardrobe.NewRunner(client, save.New(), fs.Source{})

	saved, err := dispatch(ctx, runner, plan, *plain)
	if err != nil {
		return err
	}

	for _, path := range saved {
		fmt.Println(path)
	}
	return nil
}

// dispatch runs the plan under the progress TUI on a terminal, or with the
// plain printer otherwise.
func dispatch(ctx context.Context, runner *wardrobe.Runner, plan wardrobe.Plan, plain bool) ([]string, error) {
	theme := wardrobe.DefaultTheme()

	if plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		p := newPrinter(os.Stdout, theme)
		return runner.Run(ctx, plan, wardrobe.WithEventHandler(p.print))
	}

	runFn := func(runCtx context.Context, onEvent func(wardrobe.Event)) ([]string, error) {
		return runner.Run(runCtx, plan, wardrobe.WithEventHandler(onEvent))
	}
	title := fmt.Sprintf("wardrobe %s", plan.Mode)
	if plan.Mode == "" {
		title = fmt.Sprintf("wardrobe %s", wardrobe.ModeEdit)
	}

	final, err := bt.Run(ctx, bt.New(runFn, theme, title))
	if err != nil {
		return nil, fmt.Errorf("TUI: %w", err)
	}
	return final.Saved(), final.Err()
}

// loadDotEnv loads environment variables from path. If the file does not
// exist it is silently ignored so that .env files remain optional.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
