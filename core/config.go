package core

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type (
	serverConfig struct {
		Address            string
		DebugAddress       string
		APIPrefix          string
		ShutdownTimeout    time.Duration
		CORSOrigins        []string
		DisableRequestLogs bool
	}

	clientConfig struct {
		BaseURL string
		Timeout time.Duration
	}

	Config struct {
		Env          string // DEV (local; default), TEST, QA, PROD
		Debug        bool
		TestMode     bool
		AppName      string
		Build        string
		WorkDir      string
		RollbarToken string
		Seed         bool
		Server       serverConfig
		Client       clientConfig
	}
)

func newViper() (*viper.Viper, string, error) {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "TutorAI")
	v.SetDefault("build", "dev")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("seed", true)
	v.SetDefault("server.address", ":3001")
	v.SetDefault("server.debugAddress", ":4001")
	v.SetDefault("server.apiPrefix", "/api")
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("server.corsOrigins", []string{"*"})
	v.SetDefault("server.disableRequestLogs", false)
	v.SetDefault("client.baseURL", "http://localhost:3001/api")
	v.SetDefault("client.timeout", 10*time.Second)

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
		v.SetDefault("debug", false)
		v.SetDefault("server.disableRequestLogs", true)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, "", errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, "", errors.Wrapf(err, "checking %s", dotEnvPath)
	}
	v.AutomaticEnv()
	return v, env, nil
}

// NewConfig loads the app configuration from defaults, the optional `config/.env.<env>` file
// and `<ENV>_*` environment variables (eg. DEV_SERVER_ADDRESS).
func NewConfig() (*Config, error) {
	v, env, err := newViper()
	if err != nil {
		return nil, err
	}

	prefix := strings.Trim(v.GetString("server.apiPrefix"), "/")
	if prefix != "" {
		prefix = "/" + prefix
	}

	return &Config{
		Env:          env,
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		AppName:      v.GetString("appName"),
		Build:        v.GetString("build"),
		WorkDir:      Getwd(),
		RollbarToken: v.GetString("rollbarToken"),
		Seed:         v.GetBool("seed"),
		Server: serverConfig{
			Address:            v.GetString("server.address"),
			DebugAddress:       v.GetString("server.debugAddress"),
			APIPrefix:          prefix,
			ShutdownTimeout:    v.GetDuration("server.shutdownTimeout"),
			CORSOrigins:        v.GetStringSlice("server.corsOrigins"),
			DisableRequestLogs: v.GetBool("server.disableRequestLogs"),
		},
		Client: clientConfig{
			BaseURL: strings.TrimRight(v.GetString("client.baseURL"), "/"),
			Timeout: v.GetDuration("client.timeout"),
		},
	}, nil
}
