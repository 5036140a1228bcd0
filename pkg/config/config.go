// Package config loads the ovplanner configuration file. Every field has a
// working default so the binary runs without any file present.
package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type DatasetConfig struct {
	SourceURL string `yaml:"sourceURL" validate:"required,url"`
	CacheDir  string `yaml:"cacheDir" validate:"required"`
}

type MatcherConfig struct {
	Threshold int `yaml:"threshold" validate:"gte=0,lte=100"`
	Limit     int `yaml:"limit" validate:"gte=0"`
}

type PlannerConfig struct {
	MaxTransfers int `yaml:"maxTransfers" validate:"gte=0"`
	MaxExplored  int `yaml:"maxExplored" validate:"gt=0"`
}

type ServerConfig struct {
	Listen string `yaml:"listen" validate:"required"`
}

type AppConfig struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Matcher MatcherConfig `yaml:"matcher"`
	Planner PlannerConfig `yaml:"planner"`
	Server  ServerConfig  `yaml:"server"`
}

func Defaults() AppConfig {
	return AppConfig{
		Dataset: DatasetConfig{
			SourceURL: "https://gtfs.ovapi.nl/nl/gtfs-nl.zip",
			CacheDir:  "./gtfs_cache",
		},
		Matcher: MatcherConfig{
			Threshold: 80,
			Limit:     5,
		},
		Planner: PlannerConfig{
			MaxTransfers: 2,
			MaxExplored:  250000,
		},
		Server: ServerConfig{
			Listen: ":8080",
		},
	}
}

// Load reads the first config file that exists out of the given paths and
// overlays it onto the defaults. No paths existing is not an error.
func Load(paths ...string) (AppConfig, error) {
	appConfig := Defaults()

	if len(paths) == 0 {
		paths = []string{"ovplanner.yaml"}
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		if err := yaml.Unmarshal(data, &appConfig); err != nil {
			return appConfig, err
		}

		break
	}

	validate := validator.New()
	if err := validate.Struct(&appConfig); err != nil {
		return appConfig, err
	}

	return appConfig, nil
}
