package common

import (
	"os"

	"github.com/codeassist/code-assistant/logger"
	"gopkg.in/yaml.v3"
)

// Completion holds settings for the completion service call.
type Completion struct {
	Provider       string `yaml:"provider"`
	Model          string `yaml:"model"`
	MaxTokens      int    `yaml:"max_tokens"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Retry holds settings for the invoker's retry loop.
type Retry struct {
	MaxAttempts  int `yaml:"max_attempts"`
	DelaySeconds int `yaml:"delay_seconds"`
}

type Settings struct {
	Completion Completion `yaml:"completion"`
	Retry      Retry      `yaml:"retry"`
}

func WithDefaultSettings() Settings {
	return Settings{
		Completion: Completion{
			Provider:       "gemini",
			Model:          "gemini-1.5-pro",
			MaxTokens:      4000,
			TimeoutSeconds: 60,
		},
		Retry: Retry{
			MaxAttempts:  3,
			DelaySeconds: 2,
		},
	}
}

// WithYamlFile returns the default settings overlaid with whatever
// code-assistant.yml in the working directory provides.
func WithYamlFile() Settings {
	settings := WithDefaultSettings()

	var filePath string
	filenames := []string{"code-assistant.yml", "code-assistant.yaml"}

	for _, name := range filenames {
		if _, err := os.Stat(name); err == nil {
			filePath = name
			break
		}
	}

	if filePath == "" {
		logger.Debugf("No settings file found in the current directory. Using default settings.")
		return settings
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.Infof("Failed to read settings file %s: %v", filePath, err)
		return settings
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		logger.Infof("Failed to parse YAML file %s: %v", filePath, err)
	} else {
		logger.Infof("Using settings from YAML file: %s", filePath)
	}

	return settings
}
