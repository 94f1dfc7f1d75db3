package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Astemirdum/booktrackr/booktrackr/internal/model"
	"github.com/Astemirdum/booktrackr/pkg/kafka"
	"github.com/Astemirdum/booktrackr/pkg/logger"
	"github.com/Astemirdum/booktrackr/pkg/postgres"
	"github.com/Astemirdum/booktrackr/pkg/sqlite"
)

type HTTPServer struct {
	Host         string        `envconfig:"BOOKTRACKR_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `envconfig:"BOOKTRACKR_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

type Store struct {
	// Driver is postgres or sqlite, empty means sqlite.
	Driver string `envconfig:"STORE_DRIVER"`
}

type Pipeline struct {
	PageSize     int    `envconfig:"PAGE_SIZE" default:"6"`
	SearchFields string `envconfig:"SEARCH_FIELDS" default:"title,author,series,genre,tags"`
}

func (p Pipeline) Fields() []model.Field {
	return model.ParseFields(p.SearchFields)
}

type Config struct {
	Server   HTTPServer
	Store    Store
	Database postgres.DB
	Sqlite   sqlite.DB
	Kafka    kafka.Config
	Pipeline Pipeline
	Log      logger.Log
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverPostgres, DriverSqlite:
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSqlite, c.Store.Driver)
	}
	if c.Pipeline.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be positive, got %d", c.Pipeline.PageSize)
	}
	return nil
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment once; options set values that have no env default.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		c, err := Load(ops...)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = c
		printConfig(cfg)
	})

	return cfg
}

func Load(ops ...Option) (*Config, error) {
	var config Config
	for _, op := range ops {
		op(&config)
	}
	if err := envconfig.Process("", &config); err != nil {
		return nil, err
	}
	if config.Store.Driver == "" {
		config.Store.Driver = DriverSqlite
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func printConfig(cfg *Config) {
	masked := *cfg
	masked.Database.Password = "***"
	jscfg, _ := json.MarshalIndent(masked, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
