package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

// AppConfig is the immutable process configuration. It is built once in main
// and passed explicitly to the components that need it; request-handling code
// never reads the environment on its own.
type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Mongo   MongoConfig   `yaml:"mongo"`
	Logging LoggingConfig `yaml:"logging"`

	// JWTSecret signs and verifies access tokens. Env only, never in yaml.
	JWTSecret string `yaml:"-"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type MongoConfig struct {
	DBName string `yaml:"db_name"`

	// URI comes from the MONGODB_URI environment variable.
	URI string `yaml:"-"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads the .env file and configuration file once at startup.
func Load() (*AppConfig, error) {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	var c AppConfig

	// the configuration file only carries non-secret settings and is optional
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err == nil {
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", CONFIG_FILE, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":3003"
	}
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Addr = ":" + port
	}

	c.Mongo.URI = os.Getenv("MONGODB_URI")
	if c.Mongo.URI == "" {
		c.Mongo.URI = "mongodb://localhost:27017"
	}
	if c.Mongo.DBName == "" {
		c.Mongo.DBName = "bloglist"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	c.JWTSecret = os.Getenv("JWT_SECRET")
	if c.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &c, nil
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
