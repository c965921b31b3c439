package authsession

import (
	"errors"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/authstate/pkg/credentialstore"
	"github.com/dmitrymomot/authstate/pkg/signout"
)

// Config identifies the identity-provider pool this machine talks to and
// tunes the local stores. The pool identifiers also namespace every persisted
// credential key, so two configurations never collide on one physical store.
type Config struct {
	Region      string `env:"AUTHSTATE_REGION" yaml:"region" envDefault:"us-east-1"`
	UserPoolID  string `env:"AUTHSTATE_USER_POOL_ID" yaml:"user_pool_id"`
	AppClientID string `env:"AUTHSTATE_APP_CLIENT_ID" yaml:"app_client_id"`
	KeyRoot     string `env:"AUTHSTATE_KEY_ROOT" yaml:"key_root" envDefault:"authstate"`

	// StackCapacity bounds the number of in-flight identities kept in memory.
	StackCapacity int `env:"AUTHSTATE_STACK_CAPACITY" yaml:"stack_capacity" envDefault:"10"`

	HostedUI HostedUIOptions `envPrefix:"AUTHSTATE_HOSTED_" yaml:"hosted_ui"`
}

// HostedUIOptions describes the hosted sign-in/sign-out endpoints.
type HostedUIOptions struct {
	AuthURL     string `env:"AUTH_URL" yaml:"auth_url"`
	TokenURL    string `env:"TOKEN_URL" yaml:"token_url"`
	LogoutURL   string `env:"LOGOUT_URL" yaml:"logout_url"`
	RedirectURL string `env:"REDIRECT_URL" yaml:"redirect_url"`
}

var loadEnvOnce sync.Once

// Load reads the configuration from environment variables, loading a .env
// file first when one exists.
func Load() (Config, error) {
	loadEnvOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrConfigLoad, err)
	}
	return cfg, nil
}

// LoadFile reads the configuration from a YAML file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Join(ErrConfigLoad, err)
	}

	cfg := Config{Region: "us-east-1", KeyRoot: "authstate", StackCapacity: DefaultStackCapacity}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Join(ErrConfigLoad, err)
	}
	return cfg, nil
}

// KeyConfig derives the credential-store key namespace for this configuration.
func (c Config) KeyConfig() credentialstore.KeyConfig {
	return credentialstore.KeyConfig{
		Root:        c.KeyRoot,
		UserPoolID:  c.UserPoolID,
		AppClientID: c.AppClientID,
	}
}

// HostedUIConfig derives the hosted sign-out configuration.
func (c Config) HostedUIConfig() signout.HostedUIConfig {
	return signout.HostedUIConfig{
		OAuth: oauth2.Config{
			ClientID:    c.AppClientID,
			RedirectURL: c.HostedUI.RedirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:  c.HostedUI.AuthURL,
				TokenURL: c.HostedUI.TokenURL,
			},
		},
		LogoutURL:   c.HostedUI.LogoutURL,
		RedirectURL: c.HostedUI.RedirectURL,
	}
}
