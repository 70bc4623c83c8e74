package config

import (
	"strings"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid api backend config",
			config: Config{
				Port:           "8081",
				DataBackend:    "api",
				BackendURL:     "http://localhost:5000",
				BackendTimeout: 15 * time.Second,
			},
			wantErr: false,
		},
		{
			name: "valid memory backend needs no URL",
			config: Config{
				Port:           "8081",
				DataBackend:    "memory",
				BackendTimeout: 15 * time.Second,
			},
			wantErr: false,
		},
		{
			name: "invalid port - non-numeric",
			config: Config{
				Port:           "abc",
				DataBackend:    "memory",
				BackendTimeout: 15 * time.Second,
			},
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name: "invalid port - out of range",
			config: Config{
				Port:           "70000",
				DataBackend:    "memory",
				BackendTimeout: 15 * time.Second,
			},
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name: "invalid data backend",
			config: Config{
				Port:           "8081",
				DataBackend:    "sqlite",
				BackendTimeout: 15 * time.Second,
			},
			wantErr:     true,
			errorString: "invalid data backend 'sqlite'",
		},
		{
			name: "api backend missing URL",
			config: Config{
				Port:           "8081",
				DataBackend:    "api",
				BackendTimeout: 15 * time.Second,
			},
			wantErr:     true,
			errorString: "backend URL cannot be empty",
		},
		{
			name: "api backend with bad scheme",
			config: Config{
				Port:           "8081",
				DataBackend:    "api",
				BackendURL:     "ftp://example.com",
				BackendTimeout: 15 * time.Second,
			},
			wantErr:     true,
			errorString: "invalid backend URL scheme 'ftp'",
		},
		{
			name: "timeout too small",
			config: Config{
				Port:           "8081",
				DataBackend:    "memory",
				BackendTimeout: 100 * time.Millisecond,
			},
			wantErr:     true,
			errorString: "must be at least 1 second",
		},
		{
			name: "timeout too large",
			config: Config{
				Port:           "8081",
				DataBackend:    "memory",
				BackendTimeout: time.Hour,
			},
			wantErr:     true,
			errorString: "must be at most 5 minutes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("error %q does not contain %q", err.Error(), tt.errorString)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateCollectsMultipleErrors(t *testing.T) {
	cfg := Config{Port: "abc", DataBackend: "nope", BackendTimeout: 0}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"invalid port", "invalid data backend", "backend timeout"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("combined error missing %q: %v", want, err)
		}
	}
}
