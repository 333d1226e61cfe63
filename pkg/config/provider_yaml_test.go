package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseYAML(t *testing.T) {
	input := `
terminator:
  resolution: 1.5
controllers:
  - type: rest
    rest:
      port: 9090
  - type: exporter
    exporter:
      path: /tmp/terminator.geojson
      interval: 30s
`
	cfg, err := parseYAML([]byte(input))
	if err != nil {
		t.Fatalf("parseYAML: %v", err)
	}

	if cfg.Terminator.Resolution != 1.5 {
		t.Errorf("resolution = %v, expected 1.5", cfg.Terminator.Resolution)
	}
	if len(cfg.Controllers) != 2 {
		t.Fatalf("got %d controllers, expected 2", len(cfg.Controllers))
	}

	rest := cfg.Controllers[0].RESTServer
	if rest.ListenAddr != DefaultListenAddr || rest.Port != 9090 {
		t.Errorf("rest = %+v, expected default listen addr and port 9090", rest)
	}
	if rest.TLSEnabled() {
		t.Errorf("TLS should be disabled without cert and key")
	}
	if rest.Address() != "0.0.0.0:9090" {
		t.Errorf("Address() = %q", rest.Address())
	}

	exp := cfg.Controllers[1].Exporter
	if exp.Interval != 30*time.Second {
		t.Errorf("interval = %v, expected 30s", exp.Interval)
	}
	if exp.Format != DefaultExporterFormat {
		t.Errorf("format = %q, expected %q", exp.Format, DefaultExporterFormat)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "no controllers",
			input:   "terminator:\n  resolution: 2\n",
			wantErr: "no controllers",
		},
		{
			name:    "unknown type",
			input:   "controllers:\n  - type: grpc\n",
			wantErr: "unknown controller type",
		},
		{
			name:    "negative resolution",
			input:   "terminator:\n  resolution: -1\ncontrollers:\n  - type: rest\n",
			wantErr: "out of range",
		},
		{
			name:    "resolution below minimum",
			input:   "terminator:\n  resolution: 0.001\ncontrollers:\n  - type: rest\n",
			wantErr: "out of range",
		},
		{
			name:    "resolution too large",
			input:   "terminator:\n  resolution: 400\ncontrollers:\n  - type: rest\n",
			wantErr: "out of range",
		},
		{
			name:    "exporter without path",
			input:   "controllers:\n  - type: exporter\n    exporter:\n      interval: 1m\n",
			wantErr: "path is required",
		},
		{
			name:    "exporter interval too short",
			input:   "controllers:\n  - type: exporter\n    exporter:\n      path: out.json\n      interval: 10ms\n",
			wantErr: "shorter than",
		},
		{
			name:    "exporter bad interval",
			input:   "controllers:\n  - type: exporter\n    exporter:\n      path: out.json\n      interval: soon\n",
			wantErr: "bad exporter interval",
		},
		{
			name:    "exporter bad format",
			input:   "controllers:\n  - type: exporter\n    exporter:\n      path: out.json\n      format: xml\n",
			wantErr: "unsupported exporter format",
		},
		{
			name:    "cert without key",
			input:   "controllers:\n  - type: rest\n    rest:\n      cert: server.crt\n",
			wantErr: "cert and key",
		},
		{
			name:    "unknown field",
			input:   "controllers:\n  - type: rest\n    rest:\n      prot: 80\n",
			wantErr: "prot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseYAML([]byte(tt.input))
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestNoControllersSentinel(t *testing.T) {
	cfg := &ConfigData{}
	if err := cfg.Validate(); !errors.Is(err, ErrNoControllers) {
		t.Errorf("Validate() = %v, expected ErrNoControllers", err)
	}
}

func TestYAMLProviderLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("controllers:\n  - type: rest\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := NewYAMLProvider(path)
	defer p.Close()

	controllers, err := p.GetControllers()
	if err != nil {
		t.Fatalf("GetControllers: %v", err)
	}
	if len(controllers) != 1 || controllers[0].RESTServer.Port != DefaultPort {
		t.Errorf("unexpected controllers %+v", controllers)
	}

	tc, err := p.GetTerminatorConfig()
	if err != nil {
		t.Fatalf("GetTerminatorConfig: %v", err)
	}
	if tc.Resolution != 0 {
		t.Errorf("resolution = %v, expected unset", tc.Resolution)
	}

	if !p.IsReadOnly() {
		t.Errorf("YAML provider should be read-only")
	}

	if _, err := NewYAMLProvider(filepath.Join(dir, "missing.yaml")).LoadConfig(); err == nil {
		t.Errorf("expected error for missing file")
	}
}
