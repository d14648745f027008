package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Configuration struct {
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Janitor JanitorConfig `yaml:"janitor"`
}

type StorageConfig struct {
	DataDir string `yaml:"data_dir"`
}

type ServerConfig struct {
	Port        int       `yaml:"port"`
	BodyLimit   int       `yaml:"body_limit"`
	Concurrency int       `yaml:"concurrency"`
	LogConfig   LogConfig `yaml:"log"`
}

type LogConfig struct {
	Output  string `yaml:"output"`
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	LogPath string `yaml:"log_path"`
}

type JanitorConfig struct {
	Schedule string `yaml:"schedule"`
	// RemoveOrphans deletes upload files with no photo row during the
	// sweep. Off by default: the sweep only reports divergence.
	RemoveOrphans bool `yaml:"remove_orphans"`
}

// LoadConfiguration reads the YAML config file. A missing file is not an
// error; the defaults describe a self-hosted single-user deployment. The
// DATA_DIR environment variable always wins over the configured data_dir.
func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	config := defaultConfiguration()
	data, err := os.ReadFile(configurationFilePath)
	if err == nil {
		if err = yaml.Unmarshal(data, config); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if dataDir := os.Getenv("DATA_DIR"); dataDir != "" {
		config.Storage.DataDir = dataDir
	}
	if config.Storage.DataDir == "" {
		config.Storage.DataDir = "./data"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 3000
	}
	if config.Server.BodyLimit == 0 {
		config.Server.BodyLimit = 64
	}
	if config.Server.Concurrency == 0 {
		config.Server.Concurrency = 256
	}
	if config.Janitor.Schedule == "" {
		config.Janitor.Schedule = "@daily"
	}
	return config, nil
}

func defaultConfiguration() *Configuration {
	return &Configuration{
		Server: ServerConfig{
			LogConfig: LogConfig{
				Output: "stdout",
				Level:  "info",
				Format: "text",
			},
		},
	}
}
