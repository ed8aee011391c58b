package service

import (
	"errors"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// ErrTokenNotSet: token Mapbox tidak ketemu di env, config, maupun file .env.
// Sifatnya configuration failure — fatal untuk request ybs saja.
var ErrTokenNotSet = errors.New("MAPBOX_ACCESS_TOKEN is not set")

// TokenSource me-resolve access token Mapbox secara lazy (sekali, saat
// request pertama yang butuh), supaya wiring service tidak pernah gagal
// hanya karena token belum di-set.
//
// Urutan resolusi: env → nilai dari configs → file .env terdekat.
type TokenSource struct {
	EnvKey      string
	Configured  string // dari configs.MapboxAccessToken saat wiring
	DotEnvPaths []string

	once  sync.Once
	token string
	err   error
}

func NewTokenSource(configured string) *TokenSource {
	return &TokenSource{
		EnvKey:      "MAPBOX_ACCESS_TOKEN",
		Configured:  configured,
		DotEnvPaths: []string{".env", "../.env", "../../.env"},
	}
}

func (ts *TokenSource) Token() (string, error) {
	ts.once.Do(func() {
		ts.token, ts.err = ts.resolve()
	})
	return ts.token, ts.err
}

func (ts *TokenSource) resolve() (string, error) {
	if v := strings.TrimSpace(os.Getenv(ts.EnvKey)); v != "" {
		return v, nil
	}
	if v := strings.TrimSpace(ts.Configured); v != "" {
		return v, nil
	}
	for _, path := range ts.DotEnvPaths {
		envMap, err := godotenv.Read(path)
		if err != nil {
			continue
		}
		if v := strings.TrimSpace(strings.Trim(envMap[ts.EnvKey], `" `)); v != "" {
			log.Printf("[INFO] Mapbox token dimuat dari %s", path)
			return v, nil
		}
	}
	return "", ErrTokenNotSet
}
