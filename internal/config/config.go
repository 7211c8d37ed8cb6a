package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Globe    GlobeConfig
	Sources  SourceConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Hover    HoverConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// GlobeConfig - параметры сферы и генератора точек
type GlobeConfig struct {
	Radius       float64
	BorderOffset float64
	PointCount   int
}

// SourceConfig - откуда загружаются страны и растр плотности
type SourceConfig struct {
	CountrySource string // file | postgres
	CountriesFile string
	CentersFile   string
	CodeProperty  string
	NameProperty  string
	RasterFile    string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	CountriesTable  string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	DensityCacheTTL time.Duration
}

// HoverConfig - публикация событий подсветки в Redis Stream
type HoverConfig struct {
	Stream        string
	StreamMaxLen  int64
	PublishRate   float64
	PublishBuffer int
}

type LogConfig struct {
	Level string
}

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	// .env необязателен, переменные окружения имеют приоритет
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		Globe: GlobeConfig{
			Radius:       v.GetFloat64("GLOBE_RADIUS"),
			BorderOffset: v.GetFloat64("GLOBE_BORDER_OFFSET"),
			PointCount:   v.GetInt("GLOBE_POINT_COUNT"),
		},
		Sources: SourceConfig{
			CountrySource: v.GetString("COUNTRY_SOURCE"),
			CountriesFile: v.GetString("COUNTRIES_FILE"),
			CentersFile:   v.GetString("COUNTRY_CENTERS_FILE"),
			CodeProperty:  v.GetString("COUNTRY_CODE_PROPERTY"),
			NameProperty:  v.GetString("COUNTRY_NAME_PROPERTY"),
			RasterFile:    v.GetString("RASTER_FILE"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			CountriesTable:  v.GetString("DB_COUNTRIES_TABLE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			DensityCacheTTL: time.Duration(v.GetInt("DENSITY_CACHE_TTL")) * time.Second,
		},
		Hover: HoverConfig{
			Stream:        v.GetString("HOVER_STREAM"),
			StreamMaxLen:  v.GetInt64("HOVER_STREAM_MAXLEN"),
			PublishRate:   v.GetFloat64("HOVER_PUBLISH_RATE"),
			PublishBuffer: v.GetInt("HOVER_PUBLISH_BUFFER"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	// Set default values if not provided
	if c.Globe.Radius == 0 {
		c.Globe.Radius = 1
	}
	if c.Globe.BorderOffset == 0 {
		c.Globe.BorderOffset = 1.001
	}
	if c.Globe.PointCount == 0 {
		c.Globe.PointCount = 100000
	}

	if c.Sources.CountrySource == "" {
		c.Sources.CountrySource = SourceFile
	}
	if c.Sources.CountriesFile == "" {
		c.Sources.CountriesFile = "data/countries.geojson"
	}
	if c.Sources.CodeProperty == "" {
		c.Sources.CodeProperty = "iso_a3"
	}
	if c.Sources.NameProperty == "" {
		c.Sources.NameProperty = "admin"
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.CountriesTable == "" {
		c.Database.CountriesTable = "countries"
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 2
	}

	if c.Redis.Host == "" {
		c.Redis.Host = "localhost"
	}
	if c.Redis.Port == 0 {
		c.Redis.Port = 6379
	}

	if c.Cache.DensityCacheTTL == 0 {
		c.Cache.DensityCacheTTL = time.Hour
	}

	if c.Hover.Stream == "" {
		c.Hover.Stream = "globe:hover"
	}
	if c.Hover.StreamMaxLen == 0 {
		c.Hover.StreamMaxLen = 10000
	}
	if c.Hover.PublishRate == 0 {
		c.Hover.PublishRate = 50
	}
	if c.Hover.PublishBuffer == 0 {
		c.Hover.PublishBuffer = 256
	}
}

// Validate проверяет значения, которые нельзя исправить умолчаниями
func (c *Config) Validate() error {
	if c.Globe.Radius <= 0 {
		return fmt.Errorf("GLOBE_RADIUS must be positive, got %v", c.Globe.Radius)
	}
	if c.Globe.BorderOffset < 1 {
		return fmt.Errorf("GLOBE_BORDER_OFFSET must be >= 1, got %v", c.Globe.BorderOffset)
	}
	if c.Globe.PointCount < 1 {
		return fmt.Errorf("GLOBE_POINT_COUNT must be positive, got %d", c.Globe.PointCount)
	}
	switch c.Sources.CountrySource {
	case SourceFile, SourcePostgres:
	default:
		return fmt.Errorf("unknown COUNTRY_SOURCE %q", c.Sources.CountrySource)
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
