package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/chrissnell/terminator/pkg/terminator"
)

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get specific configuration sections
	GetTerminatorConfig() (*TerminatorData, error)
	GetControllers() ([]ControllerData, error)

	IsReadOnly() bool
	Close() error
}

const (
	ControllerTypeREST     = "rest"
	ControllerTypeExporter = "exporter"

	DefaultListenAddr       = "0.0.0.0"
	DefaultPort             = 8080
	DefaultExporterInterval = time.Minute
	DefaultExporterFormat   = "geojson"
	MinExporterInterval     = time.Second
	MinResolution           = terminator.MinResolution
	MaxResolution           = 360.0
)

var (
	ErrNoControllers = errors.New("no controllers configured")
)

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Terminator  TerminatorData   `json:"terminator"`
	Controllers []ControllerData `json:"controllers,omitempty"`
}

// TerminatorData holds the sampling defaults for curve computation
type TerminatorData struct {
	Resolution float64 `json:"resolution,omitempty"`
}

// ControllerData holds the configuration for various controller backends
type ControllerData struct {
	Type       string          `json:"type,omitempty"`
	RESTServer *RESTServerData `json:"rest,omitempty"`
	Exporter   *ExporterData   `json:"exporter,omitempty"`
}

type RESTServerData struct {
	Cert       string `json:"cert,omitempty"`
	Key        string `json:"key,omitempty"`
	Port       int    `json:"port,omitempty"`
	ListenAddr string `json:"listen_addr,omitempty"`
}

// TLSEnabled reports whether both a certificate and key were supplied
func (r *RESTServerData) TLSEnabled() bool {
	return r.Cert != "" && r.Key != ""
}

// Address returns the host:port the server should listen on
func (r *RESTServerData) Address() string {
	return fmt.Sprintf("%s:%d", r.ListenAddr, r.Port)
}

type ExporterData struct {
	Path     string        `json:"path"`
	Interval time.Duration `json:"interval,omitempty"`
	Format   string        `json:"format,omitempty"`
}

// Validate fills in defaults and checks the configuration for errors
func (c *ConfigData) Validate() error {
	// Zero means unset
	if r := c.Terminator.Resolution; r != 0 && (r < MinResolution || r > MaxResolution) {
		return fmt.Errorf("terminator resolution %v out of range [%v, %v]", r, MinResolution, MaxResolution)
	}

	if len(c.Controllers) == 0 {
		return ErrNoControllers
	}

	for i := range c.Controllers {
		if err := c.Controllers[i].validate(); err != nil {
			return fmt.Errorf("controller %d (%s): %w", i, c.Controllers[i].Type, err)
		}
	}

	return nil
}

func (cd *ControllerData) validate() error {
	switch cd.Type {
	case ControllerTypeREST:
		if cd.RESTServer == nil {
			cd.RESTServer = &RESTServerData{}
		}
		if cd.RESTServer.ListenAddr == "" {
			cd.RESTServer.ListenAddr = DefaultListenAddr
		}
		if cd.RESTServer.Port == 0 {
			cd.RESTServer.Port = DefaultPort
		}
		if cd.RESTServer.Port < 0 || cd.RESTServer.Port > 65535 {
			return fmt.Errorf("invalid port %d", cd.RESTServer.Port)
		}
		if (cd.RESTServer.Cert == "") != (cd.RESTServer.Key == "") {
			return errors.New("cert and key must be set together")
		}
	case ControllerTypeExporter:
		if cd.Exporter == nil || cd.Exporter.Path == "" {
			return errors.New("exporter path is required")
		}
		if cd.Exporter.Interval == 0 {
			cd.Exporter.Interval = DefaultExporterInterval
		}
		if cd.Exporter.Interval < MinExporterInterval {
			return fmt.Errorf("exporter interval %v is shorter than %v", cd.Exporter.Interval, MinExporterInterval)
		}
		switch cd.Exporter.Format {
		case "":
			cd.Exporter.Format = DefaultExporterFormat
		case "geojson", "json", "msgpack":
		default:
			return fmt.Errorf("unsupported exporter format %q", cd.Exporter.Format)
		}
	default:
		return fmt.Errorf("unknown controller type %q", cd.Type)
	}
	return nil
}
