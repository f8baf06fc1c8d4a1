// Package yaml loads run plans from YAML files.
package yaml

import (
	"fmt"
	"os"

	"github.com/fwojciec/wardrobe"
	yamlv3 "gopkg.in/yaml.v3"
)

// planDTO is the YAML representation of a plan.
type planDTO struct {
	PromptDir  string `yaml:"prompt_dir"`
	PromptFile string `yaml:"prompt_file"`

	SystemPrompt     string `yaml:"system_prompt"`
	SystemPromptFile string `yaml:"system_prompt_file"`

	ReferenceDir   string   `yaml:"reference_dir"`
	ReferenceNames []string `yaml:"reference_names"`
	TargetDir      string   `yaml:"target_dir"`
	TargetName     string   `yaml:"target_name"`

	OutputDir      string `yaml:"output_dir"`
	OutputBaseName string `yaml:"output_base_name"`
	OutputExt      string `yaml:"output_ext"`

	Mode string `yaml:"mode"`

	Variations      int      `yaml:"variations"`
	BaseTemperature float64  `yaml:"base_temperature"`
	Spread          float64  `yaml:"spread"`
	Temperature     *float64 `yaml:"temperature"`
	TopP            *float64 `yaml:"top_p"`

	Model string `yaml:"model"`
}

// Load reads a plan from a YAML file. Missing optional fields keep their
// zero values; [wardrobe.Plan.Validate] decides what is acceptable.
func Load(path string) (wardrobe.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return wardrobe.Plan{}, fmt.Errorf("plan file %q does not exist: %w", path, wardrobe.ErrNotFound)
		}
		return wardrobe.Plan{}, fmt.Errorf("read plan file: %w", err)
	}

	var dto planDTO
	if err := yamlv3.Unmarshal(data, &dto); err != nil {
		return wardrobe.Plan{}, fmt.Errorf("parse plan file %q: %v: %w", path, err, wardrobe.ErrInvalidArgument)
	}

	return wardrobe.Plan{
		PromptDir:        dto.PromptDir,
		PromptFile:       dto.PromptFile,
		SystemPrompt:     dto.SystemPrompt,
		SystemPromptFile: dto.SystemPromptFile,
		ReferenceDir:     dto.ReferenceDir,
		ReferenceNames:   dto.ReferenceNames,
		TargetDir:        dto.TargetDir,
		TargetName:       dto.TargetName,
		OutputDir:        dto.OutputDir,
		OutputBaseName:   dto.OutputBaseName,
		OutputExt:        dto.OutputExt,
		Mode:             wardrobe.Mode(dto.Mode),
		Variations:       dto.Variations,
		BaseTemperature:  dto.BaseTemperature,
		Spread:           dto.Spread,
		Temperature:      dto.Temperature,
		TopP:             dto.TopP,
		Model:            dto.Model,
	}, nil
}
