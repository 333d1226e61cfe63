// Package exporter periodically writes the terminator curve to a file.
package exporter

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/chrissnell/terminator/internal/log"
	"github.com/chrissnell/terminator/pkg/config"
	"github.com/chrissnell/terminator/pkg/responseformat"
	"github.com/chrissnell/terminator/pkg/terminator"
	"go.uber.org/zap"
)

// Controller recomputes the curve on every tick and replaces the output file
type Controller struct {
	ctx        context.Context
	wg         *sync.WaitGroup
	cfg        config.ExporterData
	format     responseformat.Format
	resolution float64
	logger     *zap.SugaredLogger
	now        func() time.Time
}

// NewController creates a new exporter controller
func NewController(ctx context.Context, wg *sync.WaitGroup, configProvider config.ConfigProvider, ec config.ExporterData, logger *zap.SugaredLogger) (*Controller, error) {
	if ec.Path == "" {
		return nil, fmt.Errorf("exporter path must be set")
	}

	if ec.Interval == 0 {
		ec.Interval = config.DefaultExporterInterval
	}
	if ec.Format == "" {
		ec.Format = config.DefaultExporterFormat
	}

	format, err := responseformat.ParseFormat(ec.Format)
	if err != nil {
		return nil, err
	}

	tc, err := configProvider.GetTerminatorConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading terminator configuration: %w", err)
	}

	return &Controller{
		ctx:        ctx,
		wg:         wg,
		cfg:        ec,
		format:     format,
		resolution: tc.Resolution,
		logger:     logger,
		now:        time.Now,
	}, nil
}

// StartController writes the file once and then again on every interval
func (c *Controller) StartController() error {
	log.Infof("Starting exporter controller (%v every %v)...", c.cfg.Path, c.cfg.Interval)
	c.wg.Add(1)
	go c.run()
	return nil
}

func (c *Controller) run() {
	defer c.wg.Done()

	c.exportAndLog()

	ticker := time.NewTicker(c.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.exportAndLog()
		case <-c.ctx.Done():
			log.Info("Stopping exporter controller...")
			return
		}
	}
}

func (c *Controller) exportAndLog() {
	// A failed write is retried on the next tick
	if err := c.Export(); err != nil {
		c.logger.Errorf("error exporting terminator to %v: %v", c.cfg.Path, err)
		return
	}
	c.logger.Debugf("exported terminator to %v", c.cfg.Path)
}

// Export computes the curve for the current time and writes it to the
// configured path.
func (c *Controller) Export() error {
	curve := terminator.New(terminator.Options{Time: c.now(), Resolution: c.resolution})

	var data any = curve
	if c.format == responseformat.GeoJSON {
		data = curve.GeoJSON()
	}

	return writeFileAtomic(c.cfg.Path, func(w io.Writer) error {
		return responseformat.Encode(w, c.format, data)
	})
}

// writeFileAtomic writes to a temporary file in the destination directory and
// renames it over path, so readers never observe a partial file.
func writeFileAtomic(path string, write func(io.Writer) error) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("error creating temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("error encoding: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
