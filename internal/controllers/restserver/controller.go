package restserver

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/chrissnell/terminator/internal/log"
	"github.com/chrissnell/terminator/pkg/config"
	"github.com/chrissnell/terminator/pkg/terminator"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Controller represents the REST server controller
type Controller struct {
	ctx        context.Context
	wg         *sync.WaitGroup
	restConfig config.RESTServerData
	Server     http.Server
	Resolution float64
	logger     *zap.SugaredLogger
	handlers   *Handlers
	now        func() time.Time
}

// NewController creates a new REST server controller
func NewController(ctx context.Context, wg *sync.WaitGroup, configProvider config.ConfigProvider, rc config.RESTServerData, logger *zap.SugaredLogger) (*Controller, error) {
	ctrl := &Controller{
		ctx:        ctx,
		wg:         wg,
		restConfig: rc,
		logger:     logger,
		now:        time.Now,
	}

	tc, err := configProvider.GetTerminatorConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading terminator configuration: %w", err)
	}

	ctrl.Resolution = tc.Resolution
	if ctrl.Resolution <= 0 {
		ctrl.Resolution = terminator.DefaultResolution
	}

	// If a ListenAddr was not provided, listen on all interfaces
	if rc.ListenAddr == "" {
		logger.Infof("rest.listen-addr not provided; defaulting to %v (all interfaces)", config.DefaultListenAddr)
		ctrl.restConfig.ListenAddr = config.DefaultListenAddr
	}

	if rc.Port == 0 {
		logger.Infof("rest.port not provided; defaulting to %v", config.DefaultPort)
		ctrl.restConfig.Port = config.DefaultPort
	}

	ctrl.handlers = NewHandlers(ctrl)

	ctrl.Server.Addr = ctrl.restConfig.Address()
	ctrl.Server.Handler = ctrl.setupRouter()
	ctrl.Server.ReadHeaderTimeout = 10 * time.Second

	return ctrl, nil
}

// StartController starts the REST server
func (c *Controller) StartController() error {
	log.Infof("Starting REST server controller on %v...", c.Server.Addr)
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		if c.restConfig.TLSEnabled() {
			if err := c.Server.ListenAndServeTLS(c.restConfig.Cert, c.restConfig.Key); err != http.ErrServerClosed {
				log.Errorf("REST server error: %v", err)
			}
		} else {
			if err := c.Server.ListenAndServe(); err != http.ErrServerClosed {
				log.Errorf("REST server error: %v", err)
			}
		}
	}()

	go func() {
		<-c.ctx.Done()
		log.Info("Shutting down the REST server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		c.Server.Shutdown(shutdownCtx)
	}()

	return nil
}

// setupRouter configures the HTTP router with all endpoints
func (c *Controller) setupRouter() *mux.Router {
	router := mux.NewRouter()

	router.Use(log.HTTPMiddleware)

	router.HandleFunc("/terminator", c.handlers.GetTerminator).Methods(http.MethodGet)
	router.HandleFunc("/terminator.geojson", c.handlers.GetTerminatorGeoJSON).Methods(http.MethodGet)
	router.HandleFunc("/ephemeris", c.handlers.GetEphemeris).Methods(http.MethodGet)
	router.HandleFunc("/subsolar", c.handlers.GetSubsolar).Methods(http.MethodGet)
	router.HandleFunc("/daylight", c.handlers.GetDaylight).Methods(http.MethodGet)
	router.HandleFunc("/healthz", c.handlers.GetHealth).Methods(http.MethodGet)

	return router
}
