package responseformat

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/vmihailenco/msgpack/v5"
)

// Format names an output encoding
type Format string

const (
	JSON    Format = "json"
	GeoJSON Format = "geojson"
	MsgPack Format = "msgpack"
)

// ParseFormat converts a format name to a Format. An empty name means JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", JSON:
		return JSON, nil
	case GeoJSON:
		return GeoJSON, nil
	case MsgPack:
		return MsgPack, nil
	default:
		return "", fmt.Errorf("unsupported format %q (use json, geojson or msgpack)", s)
	}
}

// ContentType returns the MIME type for the format
func (f Format) ContentType() string {
	switch f {
	case GeoJSON:
		return "application/geo+json"
	case MsgPack:
		return "application/x-msgpack"
	default:
		return "application/json"
	}
}

// Encode writes data to w in the given format. GeoJSON is plain JSON on the wire.
func Encode(w io.Writer, format Format, data any) error {
	if format == MsgPack {
		encoder := msgpack.NewEncoder(w)
		encoder.SetCustomStructTag("json") // Use json tags for MessagePack
		return encoder.Encode(data)
	}
	return json.NewEncoder(w).Encode(data)
}

// Formatter handles encoding and writing responses in JSON, GeoJSON or MessagePack format
type Formatter struct{}

// NewFormatter creates a new response formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// RequestedFormat returns the format named by the request's format query
// parameter. JSON is the default.
func (f *Formatter) RequestedFormat(req *http.Request) (Format, error) {
	return ParseFormat(req.URL.Query().Get("format"))
}

// WriteResponse writes data with the given status in the requested format.
// Unknown formats fall back to JSON.
func (f *Formatter) WriteResponse(w http.ResponseWriter, req *http.Request, status int, data any, headers map[string]string) error {
	format, err := f.RequestedFormat(req)
	if err != nil {
		format = JSON
	}
	return f.WriteFormat(w, format, status, data, headers)
}

// WriteFormat writes data with the given status in an explicit format.
func (f *Formatter) WriteFormat(w http.ResponseWriter, format Format, status int, data any, headers map[string]string) error {
	// Set any provided headers first
	for k, v := range headers {
		w.Header().Set(k, v)
	}

	// Always set CORS header
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(status)

	return Encode(w, format, data)
}

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteError writes an ErrorResponse with the given status
func (f *Formatter) WriteError(w http.ResponseWriter, req *http.Request, status int, message string) error {
	return f.WriteResponse(w, req, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	}, nil)
}
