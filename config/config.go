package config

import (
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"oracle-client/pkg"

	"github.com/spf13/viper"
)

type Config struct {
	DB      DatabaseConfig `mapstructure:"DATABASE"`
	Runtime RuntimeConfig  `mapstructure:"RUNTIME"`
}

type DatabaseConfig struct {
	DBAuthType string `mapstructure:"DB_AUTH_TYPE"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBHostname string `mapstructure:"DB_HOSTNAME"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBName     string `mapstructure:"DB_NAME"`
	DBDialect  string `mapstructure:"DB_DIALECT"`
}

type RuntimeConfig struct {
	MaxOpenConns   int           `mapstructure:"MAX_OPEN_CONNS"`
	ConnectTimeout time.Duration `mapstructure:"CONNECT_TIMEOUT"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
}

// Credentials returns the credential mapping consumed by sqlclient.Client.
func (d DatabaseConfig) Credentials() map[string]string {
	return map[string]string{
		"authType": d.DBAuthType,
		"username": d.DBUser,
		"password": d.DBPassword,
		"host":     d.DBHostname,
		"port":     d.DBPort,
		"database": d.DBName,
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("DATABASE.DB_AUTH_TYPE", pkg.DBAuthType)
	v.SetDefault("DATABASE.DB_USER", pkg.DBUser)
	v.SetDefault("DATABASE.DB_PASSWORD", "")
	v.SetDefault("DATABASE.DB_HOSTNAME", pkg.DBHostname)
	v.SetDefault("DATABASE.DB_PORT", pkg.DBPort)
	v.SetDefault("DATABASE.DB_NAME", pkg.DBName)
	v.SetDefault("DATABASE.DB_DIALECT", pkg.DBDialect)
	v.SetDefault("RUNTIME.MAX_OPEN_CONNS", pkg.MaxOpenConns)
	v.SetDefault("RUNTIME.CONNECT_TIMEOUT", pkg.ConnectTimeout)
	v.SetDefault("RUNTIME.LOG_LEVEL", pkg.LogLevel)
}

// LoadConfig config file from given path
func LoadConfig(filename, path string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)
	v.AddConfigPath(path)
	v.SetConfigName(filename)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	return v, nil
}

// ParseConfig file from the given viper
func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetConfigName get the path from local or docker
func GetConfigName() string {
	fileName := os.Getenv("CONFIG_NAME")
	if fileName != "" {
		return fileName
	}
	return "config"
}

func GetConfigDirectory() string {
	filePath := os.Getenv("CONFIG_DIRECTORY")
	if filePath != "" {
		return filePath
	}
	return RootDir()
}

func RootDir() string {
	_, b, _, _ := runtime.Caller(0)
	d := path.Join(path.Dir(b))
	return filepath.Dir(d)
}

// GetConfig : will get the config
func GetConfig() (*Config, error) {
	cfgFile, err := LoadConfig(GetConfigName(), GetConfigDirectory())
	if err != nil {
		return nil, err
	}
	return ParseConfig(cfgFile)
}
