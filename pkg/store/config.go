package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes where state and catalog data live on disk.
type Config interface {
	BasePath() string
	CatalogPath() string
}

// LoadConfig reads .mobicheck config (yaml implicit) from the working
// directory or an override path, with MOBICHECK_* env variables layered
// on top.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.mobicheck.db")
	viper.SetDefault("catalog", "")
	viper.SetConfigName(".mobicheck")
	viper.SetEnvPrefix("MOBICHECK")
	viper.AutomaticEnv()

	if override := os.Getenv("MOBICHECK_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	return &fileConfig{
		Path:    expand(viper.GetString("path")),
		Catalog: expand(viper.GetString("catalog")),
	}, nil
}

type fileConfig struct {
	Path    string `json:"path"`
	Catalog string `json:"catalog"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) CatalogPath() string {
	return f.Catalog
}

func expand(path string) string {
	if path == "" {
		return ""
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}
