package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all runtime settings. It is loaded once at startup and
// injected into whatever needs it.
type Config struct {
	AppName  string
	Env      string // DEV (default), TEST, QA, PROD
	Build    string
	Debug    bool
	TestMode bool

	RollbarToken   string
	SendgridAPIKey string

	DefaultFromEmail mail.Address
	AdminEmail       mail.Address

	// calendar UI timings
	HighlightSettleDelay time.Duration
	HighlightClearDelay  time.Duration
	SearchDebounceDelay  time.Duration
}

func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Evoka")
	conf.SetDefault("defaultFromEmail", "noreply@localhost")
	conf.SetDefault("adminEmail", "admin@localhost")
	conf.SetDefault("highlightSettleDelay", 100*time.Millisecond)
	conf.SetDefault("highlightClearDelay", 2*time.Second)
	conf.SetDefault("searchDebounceDelay", 300*time.Millisecond)

	env := os.Getenv("ENV")
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	appName := conf.GetString("appName")
	return &Config{
		AppName:              appName,
		Env:                  env,
		Build:                conf.GetString("build"),
		Debug:                conf.GetBool("debug"),
		TestMode:             conf.GetBool("testMode"),
		RollbarToken:         conf.GetString("rollbarToken"),
		SendgridAPIKey:       conf.GetString("sendgridApiKey"),
		DefaultFromEmail:     mail.Address{Name: appName, Address: conf.GetString("defaultFromEmail")},
		AdminEmail:           mail.Address{Address: conf.GetString("adminEmail")},
		HighlightSettleDelay: conf.GetDuration("highlightSettleDelay"),
		HighlightClearDelay:  conf.GetDuration("highlightClearDelay"),
		SearchDebounceDelay:  conf.GetDuration("searchDebounceDelay"),
	}
}
