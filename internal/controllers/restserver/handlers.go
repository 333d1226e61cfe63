package restserver

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/chrissnell/terminator/internal/constants"
	"github.com/chrissnell/terminator/pkg/config"
	"github.com/chrissnell/terminator/pkg/responseformat"
	"github.com/chrissnell/terminator/pkg/solar"
	"github.com/chrissnell/terminator/pkg/terminator"
)

var errGeoJSONUnsupported = errors.New("geojson format is only available for /terminator")

// Handlers contains all HTTP handlers for the REST server
type Handlers struct {
	controller *Controller
	formatter  *responseformat.Formatter
}

// NewHandlers creates a new handlers instance
func NewHandlers(ctrl *Controller) *Handlers {
	return &Handlers{
		controller: ctrl,
		formatter:  responseformat.NewFormatter(),
	}
}

var noStore = map[string]string{"Cache-Control": "no-store"}

// GetTerminator returns the terminator curve, as GeoJSON when format=geojson
func (h *Handlers) GetTerminator(w http.ResponseWriter, req *http.Request) {
	format, err := h.formatter.RequestedFormat(req)
	if err != nil {
		h.badRequest(w, req, err)
		return
	}

	curve, err := h.curve(req)
	if err != nil {
		h.badRequest(w, req, err)
		return
	}

	if format == responseformat.GeoJSON {
		h.formatter.WriteFormat(w, format, http.StatusOK, curve.GeoJSON(), noStore)
		return
	}

	h.formatter.WriteFormat(w, format, http.StatusOK, TerminatorResponse{
		Curve:        curve,
		Bounds:       curve.Bounds(),
		NightPole:    curve.NightPole(),
		MeanLatitude: curve.MeanLatitude(),
	}, noStore)
}

// GetTerminatorGeoJSON always returns the curve as a GeoJSON Feature
func (h *Handlers) GetTerminatorGeoJSON(w http.ResponseWriter, req *http.Request) {
	curve, err := h.curve(req)
	if err != nil {
		h.badRequest(w, req, err)
		return
	}

	h.formatter.WriteFormat(w, responseformat.GeoJSON, http.StatusOK, curve.GeoJSON(), noStore)
}

// GetEphemeris returns the Julian date, sidereal time and solar ephemeris
func (h *Handlers) GetEphemeris(w http.ResponseWriter, req *http.Request) {
	format, err := h.dataFormat(req)
	if err != nil {
		h.badRequest(w, req, err)
		return
	}

	t, err := h.requestTime(req)
	if err != nil {
		h.badRequest(w, req, err)
		return
	}

	h.formatter.WriteFormat(w, format, http.StatusOK, EphemerisResponse{
		Time:       t,
		JulianDate: solar.JulianDate(t),
		GMST:       solar.GreenwichMeanSiderealTime(t),
		Ephemeris:  solar.EphemerisAt(t),
	}, noStore)
}

// GetSubsolar returns the point where the Sun is at the zenith
func (h *Handlers) GetSubsolar(w http.ResponseWriter, req *http.Request) {
	format, err := h.dataFormat(req)
	if err != nil {
		h.badRequest(w, req, err)
		return
	}

	t, err := h.requestTime(req)
	if err != nil {
		h.badRequest(w, req, err)
		return
	}

	lat, lng := solar.SubsolarPoint(t)
	h.formatter.WriteFormat(w, format, http.StatusOK, SubsolarResponse{
		Time: t,
		Lat:  lat,
		Lng:  lng,
	}, noStore)
}

// GetDaylight returns the Sun's elevation and the sunrise/sunset times for a location
func (h *Handlers) GetDaylight(w http.ResponseWriter, req *http.Request) {
	format, err := h.dataFormat(req)
	if err != nil {
		h.badRequest(w, req, err)
		return
	}

	t, err := h.requestTime(req)
	if err != nil {
		h.badRequest(w, req, err)
		return
	}

	lat, err := parseCoordinate(req, "lat", 90)
	if err != nil {
		h.badRequest(w, req, err)
		return
	}

	lon, err := parseCoordinate(req, "lon", 180)
	if err != nil {
		h.badRequest(w, req, err)
		return
	}

	h.formatter.WriteFormat(w, format, http.StatusOK, solar.Daylight(lat, lon, t), noStore)
}

// GetHealth reports that the server is up
func (h *Handlers) GetHealth(w http.ResponseWriter, req *http.Request) {
	h.formatter.WriteResponse(w, req, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: constants.Version,
	}, nil)
}

func (h *Handlers) badRequest(w http.ResponseWriter, req *http.Request, err error) {
	h.controller.logger.Debugw("rejected request", "path", req.URL.Path, "error", err)
	h.formatter.WriteFormat(w, responseformat.JSON, http.StatusBadRequest, responseformat.ErrorResponse{
		Error:   http.StatusText(http.StatusBadRequest),
		Message: err.Error(),
	}, nil)
}

// dataFormat returns the requested format for endpoints that have no GeoJSON rendering
func (h *Handlers) dataFormat(req *http.Request) (responseformat.Format, error) {
	format, err := h.formatter.RequestedFormat(req)
	if err != nil {
		return "", err
	}
	if format == responseformat.GeoJSON {
		return "", errGeoJSONUnsupported
	}
	return format, nil
}

func (h *Handlers) curve(req *http.Request) (terminator.Curve, error) {
	t, err := h.requestTime(req)
	if err != nil {
		return terminator.Curve{}, err
	}

	resolution, err := h.requestResolution(req)
	if err != nil {
		return terminator.Curve{}, err
	}

	return terminator.New(terminator.Options{Time: t, Resolution: resolution}), nil
}

// requestTime parses the time query parameter. It defaults to now, resolved once per request.
func (h *Handlers) requestTime(req *http.Request) (time.Time, error) {
	ts := req.URL.Query().Get("time")
	if ts == "" {
		return h.controller.now().UTC(), nil
	}

	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: expected RFC3339", ts)
	}
	return t.UTC(), nil
}

func (h *Handlers) requestResolution(req *http.Request) (float64, error) {
	rs := req.URL.Query().Get("resolution")
	if rs == "" {
		return h.controller.Resolution, nil
	}

	resolution, err := strconv.ParseFloat(rs, 64)
	if err != nil || math.IsNaN(resolution) || resolution < config.MinResolution || resolution > config.MaxResolution {
		return 0, fmt.Errorf("invalid resolution %q: must be a number in [%v, %v]", rs, config.MinResolution, config.MaxResolution)
	}
	return resolution, nil
}

func parseCoordinate(req *http.Request, name string, limit float64) (float64, error) {
	s := req.URL.Query().Get(name)
	if s == "" {
		return 0, fmt.Errorf("%s parameter is required", name)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.Abs(v) > limit {
		return 0, fmt.Errorf("invalid %s %q: must be a number in [-%v, %v]", name, s, limit, limit)
	}
	return v, nil
}
