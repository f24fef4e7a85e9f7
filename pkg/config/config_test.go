package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("PORT", "")
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("RECOMMEND_DEFAULT_TOP", "")
	t.Setenv("RATE_LIMIT_RPS", "")
	t.Setenv("STORE_BREAKER_ENABLED", "")
	t.Setenv("STORE_BREAKER_FAILURES", "")
	t.Setenv("STORE_BREAKER_TIMEOUT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Store.Driver != StoreJSON {
		t.Errorf("driver = %q, want %q", cfg.Store.Driver, StoreJSON)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Server.RequestTimeout != 10*time.Second {
		t.Errorf("timeout = %v, want 10s", cfg.Server.RequestTimeout)
	}
	if cfg.Recommend.DefaultTop != 5 {
		t.Errorf("default top = %d, want 5", cfg.Recommend.DefaultTop)
	}
	if cfg.RateLimit.RPS != 0 {
		t.Errorf("rate limit = %v, want disabled", cfg.RateLimit.RPS)
	}
	if !cfg.Breaker.Enabled || cfg.Breaker.ConsecutiveFailures != 5 || cfg.Breaker.OpenTimeout != 30*time.Second {
		t.Errorf("breaker = %+v", cfg.Breaker)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown driver", map[string]string{"STORE_DRIVER": "mongo"}},
		{"postgres without password", map[string]string{"STORE_DRIVER": "postgres", "DB_PASSWORD": ""}},
		{"bad timeout", map[string]string{"REQUEST_TIMEOUT": "soon"}},
		{"zero timeout", map[string]string{"REQUEST_TIMEOUT": "0s"}},
		{"bad top", map[string]string{"RECOMMEND_DEFAULT_TOP": "five"}},
		{"bad migrate flag", map[string]string{"DB_AUTO_MIGRATE": "maybe"}},
		{"negative rate limit", map[string]string{"RATE_LIMIT_RPS": "-1"}},
		{"bad burst", map[string]string{"RATE_LIMIT_BURST": "many"}},
		{"bad breaker timeout", map[string]string{"STORE_BREAKER_TIMEOUT": "later"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: "5433", User: "u", Password: "p", Name: "reco", SSLMode: "disable"}
	want := "host=db user=u password=p dbname=reco port=5433 sslmode=disable"
	if got := d.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
