package config

import (
	"errors"
	"hobbes/packages/common/logger"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var configLogger = logger.NewSource("CONFIG", logger.Default)

const DefaultPath = "hobbes.config.yaml"

// Wrapper for time.ParseDuration. Panics on error.
// All durations are validated on loading, so this shouldn't ever panic after Load().
func parseDuration(raw string) time.Duration {
	v, e := time.ParseDuration(raw)

	if e != nil {
		panic(e)
	}

	return v
}

type dbConfig struct {
	RawQueryTimeout string `yaml:"db-query-timeout" validate:"required,duration"`
	MaxConns        int32  `yaml:"db-max-conns" validate:"required,min=1"`
	MinConns        int32  `yaml:"db-min-conns" validate:"min=0,ltefield=MaxConns"`
}

func (c *dbConfig) QueryTimeout() time.Duration {
	return parseDuration(c.RawQueryTimeout)
}

type httpServerConfig struct {
	Port           string   `yaml:"http-port" validate:"required"`
	AllowedOrigins []string `yaml:"http-allowed-origins" validate:"required,min=1"`
	BodyLimit      string   `yaml:"http-body-limit" validate:"required"`
	RateLimit      float64  `yaml:"http-rate-limit" validate:"gt=0"`
	RateBurst      int      `yaml:"http-rate-burst" validate:"gt=0"`
}

type TestingUser struct {
	Username     string   `yaml:"username" validate:"required"`
	PasswordHash string   `yaml:"password-hash" validate:"required"`
	Scopes       []string `yaml:"scopes" validate:"required,min=1,dive,oneof=read write"`
}

type authConfig struct {
	RawAccessTokenTTL    string        `yaml:"access-token-ttl" validate:"required,duration"`
	TokenIssuer          string        `yaml:"token-issuer" validate:"required"`
	TestingMode          bool          `yaml:"testing-mode" validate:"exists"`
	TestingUsers         []TestingUser `yaml:"testing-users" validate:"required_if=TestingMode true,dive"`
	LDAPDomain           string        `yaml:"ldap-auth-domain" validate:"required_if=TestingMode false"`
	LDAPURLs             []string      `yaml:"ldap-urls" validate:"required_if=TestingMode false,dive,url"`
	RawLDAPConnTimeout   string        `yaml:"ldap-connect-timeout" validate:"required,duration"`
	RawLDAPReceiveTimout string        `yaml:"ldap-receive-timeout" validate:"required,duration"`
	LDAPTimeLimit        int           `yaml:"ldap-time-limit" validate:"min=0"`
}

func (c *authConfig) AccessTokenTTL() time.Duration {
	return parseDuration(c.RawAccessTokenTTL)
}

func (c *authConfig) LDAPConnectTimeout() time.Duration {
	return parseDuration(c.RawLDAPConnTimeout)
}

func (c *authConfig) LDAPReceiveTimeout() time.Duration {
	return parseDuration(c.RawLDAPReceiveTimout)
}

type cacheConfig struct {
	RawSocketTimeout    string `yaml:"cache-socket-timeout" validate:"required,duration"`
	RawOperationTimeout string `yaml:"cache-operation-timeout" validate:"required,duration"`
	RawTTL              string `yaml:"cache-ttl" validate:"required,duration"`
}

func (c *cacheConfig) SocketTimeout() time.Duration {
	return parseDuration(c.RawSocketTimeout)
}

func (c *cacheConfig) OperationTimeout() time.Duration {
	return parseDuration(c.RawOperationTimeout)
}

func (c *cacheConfig) TTL() time.Duration {
	return parseDuration(c.RawTTL)
}

type tasksConfig struct {
	Queue        string `yaml:"tasks-queue" validate:"required"`
	Workers      int    `yaml:"tasks-workers" validate:"min=1"`
	MaxRetries   int    `yaml:"tasks-max-retries" validate:"min=0"`
	RawCountdown string `yaml:"tasks-countdown" validate:"required,duration"`
	RetryBackoff bool   `yaml:"tasks-retry-backoff" validate:"exists"`
	RawResultTTL string `yaml:"tasks-result-ttl" validate:"required,duration"`
}

func (c *tasksConfig) Countdown() time.Duration {
	return parseDuration(c.RawCountdown)
}

func (c *tasksConfig) ResultTTL() time.Duration {
	return parseDuration(c.RawResultTTL)
}

type debugConfig struct {
	Enabled bool `yaml:"debug-mode" validate:"exists"`
}

type appConfig struct {
	ShowLogs         bool   `yaml:"show-logs" validate:"exists"`
	TraceLogsEnabled bool   `yaml:"trace-logs" validate:"exists"`
	LogsDir          string `yaml:"logs-dir" validate:"required"`
}

type emailConfig struct {
	SmtpHost       string `yaml:"smtp-host" validate:"required"`
	SmtpPort       int    `yaml:"smtp-port" validate:"required"`
	RawSendTimeout string `yaml:"email-send-timeout" validate:"required,duration"`
}

func (c *emailConfig) SendTimeout() time.Duration {
	return parseDuration(c.RawSendTimeout)
}

type Configs struct {
	dbConfig         `yaml:",inline"`
	httpServerConfig `yaml:",inline"`
	authConfig       `yaml:",inline"`
	cacheConfig      `yaml:",inline"`
	tasksConfig      `yaml:",inline"`
	debugConfig      `yaml:",inline"`
	appConfig        `yaml:",inline"`
	emailConfig      `yaml:",inline"`
}

var DB *dbConfig
var HTTP *httpServerConfig
var Auth *authConfig
var Cache *cacheConfig
var Tasks *tasksConfig
var Debug *debugConfig
var App *appConfig
var Email *emailConfig

var isInit bool = false

func newValidator() *validator.Validate {
	validate := validator.New()

	validate.RegisterValidation("exists", func(fl validator.FieldLevel) bool {
		return true // Always pass (just ensure that the field exists)
	})
	validate.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
		_, err := time.ParseDuration(fl.Field().String())
		return err == nil
	})

	return validate
}

// Reads, parses and validates config file located at path.
func Load(path string) (*Configs, error) {
	configLogger.Info("Reading config file...", nil)

	rawConfig, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	configLogger.Info("Reading config file: OK", nil)

	configLogger.Info("Parsing config file...", nil)

	dest := new(Configs)

	if err := yaml.Unmarshal(rawConfig, dest); err != nil {
		return nil, err
	}

	configLogger.Info("Parsing config file: OK", nil)

	configLogger.Info("Validating config...", nil)

	if err := newValidator().Struct(dest); err != nil {
		return nil, err
	}

	configLogger.Info("Validating config: OK", nil)

	return dest, nil
}

// Sets package level configs.
func Apply(c *Configs) {
	DB = &c.dbConfig
	HTTP = &c.httpServerConfig
	Auth = &c.authConfig
	Cache = &c.cacheConfig
	Tasks = &c.tasksConfig
	Debug = &c.debugConfig
	App = &c.appConfig
	Email = &c.emailConfig
}

// Loads config and secrets, exits on any error.
func Init(path string) {
	if isInit {
		configLogger.Fatal("Failed to initialize config", "Config already initialized", nil)
	}

	configLogger.Info("Initializing...", nil)

	configs, err := Load(path)
	if err != nil {
		configLogger.Fatal("Failed to load config", err.Error(), nil)
	}

	// .env is optional, variables may be set by environment
	if err := godotenvLoad(); err != nil && !errors.Is(err, os.ErrNotExist) {
		configLogger.Fatal("Failed to load .env file", err.Error(), nil)
	}

	secret, err := LoadSecrets()
	if err != nil {
		configLogger.Fatal("Failed to load secrets", err.Error(), nil)
	}

	Apply(configs)
	Secret = *secret

	configLogger.Info("Initializing: OK", nil)

	isInit = true
}
