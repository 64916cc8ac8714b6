package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"practice-coach/work-flows/models"
)

const (
	DefaultConfigFile = "practice_coach.yaml"

	EnvConfigPath = "PRACTICE_COACH_CONFIG"
	EnvBaseURL    = "PRACTICE_COACH_BASE_URL"
	EnvLanguage   = "PRACTICE_COACH_LANGUAGE"
)

var (
	coachConfigMu       sync.Mutex
	coachConfigMemCache = make(map[string]CoachConfig)
)

type CoachConfig struct {
	Endpoint    EndpointSettings    `yaml:"endpoint"`
	Messages    models.Messages     `yaml:"messages"`
	Labels      models.Labels       `yaml:"labels"`
	Render      RenderSettings      `yaml:"render"`
	Translation TranslationSettings `yaml:"translation"`
}

type EndpointSettings struct {
	BaseURL string `yaml:"base_url"`
	Path    string `yaml:"path"`
}

type RenderSettings struct {
	WordWrap int `yaml:"word_wrap"`
}

type TranslationSettings struct {
	SourceLanguage string `yaml:"source_language"`
	TargetLanguage string `yaml:"target_language"`
}

func DefaultCoachConfig() CoachConfig {
	return CoachConfig{
		Endpoint: EndpointSettings{
			BaseURL: "http://localhost:8000",
			Path:    "/practice-coach",
		},
		Messages: models.DefaultMessages(),
		Labels:   models.DefaultLabels(),
		Render: RenderSettings{
			WordWrap: 80,
		},
		Translation: TranslationSettings{
			SourceLanguage: "en",
		},
	}
}

func (c CoachConfig) withDefaults() CoachConfig {
	d := DefaultCoachConfig()
	if c.Endpoint.BaseURL == "" {
		c.Endpoint.BaseURL = d.Endpoint.BaseURL
	}
	if c.Endpoint.Path == "" {
		c.Endpoint.Path = d.Endpoint.Path
	}
	c.Messages = c.Messages.WithDefaults()
	c.Labels = c.Labels.WithDefaults()
	if c.Render.WordWrap <= 0 {
		c.Render.WordWrap = d.Render.WordWrap
	}
	if c.Translation.SourceLanguage == "" {
		c.Translation.SourceLanguage = d.Translation.SourceLanguage
	}
	return c
}

func GetConfigDir() string {
	dir, _ := os.Getwd()
	return filepath.Join(dir, "configs")
}

// ResolveConfigPath picks the explicit path, then $PRACTICE_COACH_CONFIG,
// then configs/practice_coach.yaml under the working directory.
func ResolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := strings.TrimSpace(os.Getenv(EnvConfigPath)); env != "" {
		return env
	}
	return filepath.Join(GetConfigDir(), DefaultConfigFile)
}

func loadCoachConfigFile(path string) (*CoachConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config CoachConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	return &config, nil
}

// LoadCoachConfig reads the YAML config at path. A missing file yields the
// defaults; environment overrides are applied on top either way.
func LoadCoachConfig(path string) (CoachConfig, error) {
	coachConfigMu.Lock()
	cached, exists := coachConfigMemCache[path]
	coachConfigMu.Unlock()
	if exists {
		return applyEnvOverrides(cached), nil
	}

	config := DefaultCoachConfig()
	if _, err := os.Stat(path); err == nil {
		loaded, err := loadCoachConfigFile(path)
		if err != nil {
			return CoachConfig{}, err
		}
		config = loaded.withDefaults()
	} else if !os.IsNotExist(err) {
		return CoachConfig{}, fmt.Errorf("failed to stat config file: %w", err)
	}

	coachConfigMu.Lock()
	coachConfigMemCache[path] = config
	coachConfigMu.Unlock()

	return applyEnvOverrides(config), nil
}

func applyEnvOverrides(config CoachConfig) CoachConfig {
	if baseURL := strings.TrimSpace(os.Getenv(EnvBaseURL)); baseURL != "" {
		config.Endpoint.BaseURL = baseURL
	}
	if lang := strings.TrimSpace(os.Getenv(EnvLanguage)); lang != "" {
		config.Translation.TargetLanguage = lang
	}
	return config
}

func ClearCoachConfigCache() {
	coachConfigMu.Lock()
	defer coachConfigMu.Unlock()
	coachConfigMemCache = make(map[string]CoachConfig)
}
