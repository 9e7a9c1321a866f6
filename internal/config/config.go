package config

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"

	// PlaceholderAPIKey is the value shipped in example configs; it counts as unset.
	PlaceholderAPIKey = "your_api_key_here"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Log         LogConfig         `yaml:"log"`
	HuggingFace HuggingFaceConfig `yaml:"huggingface"`
	Database    DatabaseConfig    `yaml:"database"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	Console    bool   `yaml:"console"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type ServerConfig struct {
	Host        string   `yaml:"host"`
	Port        int      `yaml:"port"`
	AllowOrigin []string `yaml:"allow_origins"`
}

type HuggingFaceConfig struct {
	BaseURL      string `yaml:"base_url"`
	APIKey       string `yaml:"api_key"`
	EmotionModel string `yaml:"emotion_model"`
	SummaryModel string `yaml:"summary_model"`

	// Inputs with fewer words than this are truncated locally instead of summarized.
	SummaryMinWords  int `yaml:"summary_min_words"`
	SummaryMaxLength int `yaml:"summary_max_length"`
	SummaryMinLength int `yaml:"summary_min_length"`
}

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Path     string `yaml:"path"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// Default returns the built-in configuration used before any file or
// environment override is applied.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Host: "127.0.0.1", Port: 8787, AllowOrigin: []string{"*"}},
		Log:    LogConfig{Level: "info", Console: true, MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 30},
		HuggingFace: HuggingFaceConfig{
			BaseURL:          "https://router.huggingface.co/hf-inference/models",
			EmotionModel:     "j-hartmann/emotion-english-distilroberta-base",
			SummaryModel:     "facebook/bart-large-cnn",
			SummaryMinWords:  30,
			SummaryMaxLength: 100,
			SummaryMinLength: 20,
		},
		Database: DatabaseConfig{Driver: DriverSQLite, Port: 3306, Name: "moodlens"},
	}
}

func Load(configFile string) *Config {
	c := Default()

	paths := []string{"etc/config.yaml", "/etc/moodlens/config.yaml"}
	if configFile != "" {
		paths = []string{configFile}
	}
	for _, path := range paths {
		if data, err := os.ReadFile(path); err == nil {
			yaml.Unmarshal(data, c)
			break
		}
	}

	// .env never overrides variables already set in the environment
	godotenv.Load()

	envOverride(&c.HuggingFace.BaseURL, "HF_BASE_URL")
	envOverride(&c.HuggingFace.APIKey, "HUGGINGFACE_API_KEY")
	envOverride(&c.Database.Driver, "DB_DRIVER")
	envOverride(&c.Database.Path, "DB_PATH")
	envOverride(&c.Database.Host, "MYSQL_HOST")
	envOverride(&c.Database.User, "MYSQL_USER")
	envOverride(&c.Database.Password, "MYSQL_PASS")
	envOverride(&c.Database.Name, "MYSQL_DB")
	envOverride(&c.Log.Level, "LOG_LEVEL")
	envOverride(&c.Log.File, "LOG_FILE")
	envOverride(&c.Server.Host, "HOST")
	envOverrideInt(&c.Server.Port, "PORT")
	envOverrideInt(&c.Database.Port, "MYSQL_PORT")

	return c
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Configured reports whether a usable Hugging Face API key is set.
func (h HuggingFaceConfig) Configured() bool {
	key := strings.TrimSpace(h.APIKey)
	return key != "" && key != PlaceholderAPIKey
}

func (c *Config) OpenGormDB() (*gorm.DB, error) {
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	switch strings.ToLower(c.Database.Driver) {
	case DriverMySQL:
		cfg := gomysql.NewConfig()
		cfg.User = c.Database.User
		cfg.Passwd = c.Database.Password
		cfg.Net = "tcp"
		cfg.Addr = fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port)
		cfg.DBName = c.Database.Name
		cfg.ParseTime = true

		connector, err := gomysql.NewConnector(cfg)
		if err != nil {
			return nil, fmt.Errorf("create connector: %w", err)
		}
		sqlDB := sql.OpenDB(connector)
		if err := sqlDB.Ping(); err != nil {
			return nil, fmt.Errorf("ping db: %w", err)
		}
		return gorm.Open(mysql.New(mysql.Config{Conn: sqlDB}), gcfg)
	case DriverSQLite, "":
		path, err := ResolveDBPath(c.Database.Path)
		if err != nil {
			return nil, err
		}
		return gorm.Open(sqlite.Open(path), gcfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
}

// DefaultDBPath returns the per-user data location of the local record file.
func DefaultDBPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "moodlens.db"
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(homeDir, "AppData", "Roaming", "moodlens", "moodlens.db")
	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support", "moodlens", "moodlens.db")
	default:
		return filepath.Join(homeDir, ".local", "share", "moodlens", "moodlens.db")
	}
}

// ResolveDBPath expands "~/", makes the path absolute and creates its
// directory. ":memory:" is passed through.
func ResolveDBPath(path string) (string, error) {
	if path == ":memory:" {
		return path, nil
	}
	if path == "" {
		path = DefaultDBPath()
	}
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand %s: %w", path, err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("absolute path for %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return abs, nil
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
