package api

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/rpupo63/portfolio-content-api/errs"
)

const (
	maxRequestBodySize  = 1 << 20  // 1MB
	maxResponseBodySize = 10 << 20 // 10MB
)

type Responder struct {
	logger     zerolog.Logger
	production bool
}

func NewResponder(logger zerolog.Logger, production bool) Responder {
	return Responder{logger: logger, production: production}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	r.WriteJSONStatus(w, http.StatusOK, data)
}

func (r Responder) WriteJSONStatus(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if len(jsonData) > maxResponseBodySize {
		r.logger.Error().
			Int("responseSize", len(jsonData)).
			Int("maxSize", maxResponseBodySize).
			Msg("response too large")

		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(ErrorResponse{
			Error:  "Response too large",
			Status: "error",
		})
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	// For unexpected errors, log and return generic internal error
	if !errors.As(err, &apiErr) {
		r.logger.Error().Err(err).Msg("unexpected error")
		response := ErrorResponse{
			Error:  "Internal Server Error",
			Status: "error",
		}
		if !r.production {
			response.Details = err.Error()
		}
		r.WriteJSONStatus(w, http.StatusInternalServerError, response)
		return
	}

	response := ErrorResponse{
		Error:     apiErr.Message(),
		Status:    "error",
		Field:     apiErr.Field,
		Details:   apiErr.Details,
		Available: apiErr.Available,
	}

	if apiErr.StatusCode >= http.StatusInternalServerError {
		r.logger.Error().Str("error", apiErr.GetFullError()).Msg("internal error")
		if r.production {
			response.Details = ""
		}
	}

	// Full error chain for debugging, mostly database errors
	if apiErr.Cause != nil && !r.production {
		response.Cause = apiErr.GetFullError()
	}

	r.WriteJSONStatus(w, apiErr.StatusCode, response)
}

// decodeJSON reads a bounded JSON body into dst
func decodeJSON(w http.ResponseWriter, req *http.Request, dst any) error {
	if contentType := req.Header.Get("Content-Type"); contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			return errs.NewUnsupportedMediaTypeError(contentType, []string{"application/json"})
		}
	}

	body := http.MaxBytesReader(w, req.Body, maxRequestBodySize)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			return errs.NewMaxBodySizeExceededError(maxRequestBodySize)
		case errors.Is(err, io.EOF):
			return errs.NewMalformedPayloadError("JSON", errors.New("request body is empty"))
		default:
			return errs.NewInvalidJSONError(err)
		}
	}
	return nil
}
