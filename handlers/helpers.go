package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/xpsc-club/xpsc-server/models"
	"github.com/xpsc-club/xpsc-server/response"
	"github.com/xpsc-club/xpsc-server/services"
)

const maxBodyBytes = 1_048_576 // 1MB

var errEmptyBody = errors.New("body must not be empty")

// readJSON decodes a single JSON value. Unknown fields are ignored.
func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBodyBytes))

	dec := json.NewDecoder(r.Body)
	return decodeSingle(dec, dst)
}

// readDocument decodes the body as a JSON object to be stored verbatim.
// Integral numbers become int64, every other number float64.
func readDocument(w http.ResponseWriter, r *http.Request) (models.Document, error) {
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBodyBytes))

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var raw map[string]interface{}
	if err := decodeSingle(dec, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.New("body must be a JSON object")
	}

	doc := make(models.Document, len(raw))
	for k, v := range raw {
		doc[k] = normalizeJSONValue(v)
	}
	return doc, nil
}

// readUpdate reads a PATCH body. An empty body counts as an object without
// fields, so every replaced field is nulled.
func readUpdate(w http.ResponseWriter, r *http.Request) (models.Document, error) {
	doc, err := readDocument(w, r)
	if errors.Is(err, errEmptyBody) {
		return models.Document{}, nil
	}
	return doc, err
}

func decodeSingle(dec *json.Decoder, dst interface{}) error {
	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errEmptyBody
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBodyBytes)
		case errors.As(err, &invalidUnmarshalError):
			panic(err)
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func normalizeJSONValue(v interface{}) interface{} {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case map[string]interface{}:
		doc := make(models.Document, len(val))
		for k, item := range val {
			doc[k] = normalizeJSONValue(item)
		}
		return doc
	case []interface{}:
		for i, item := range val {
			val[i] = normalizeJSONValue(item)
		}
		return val
	default:
		return v
	}
}

// respond writes data with status 200. A nil document is written as null.
func respond(w http.ResponseWriter, r *http.Request, data interface{}) {
	if err := response.JSON(w, http.StatusOK, data, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "internal server error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	response.ServerError(w, r)
}

func badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	response.Error(w, r, http.StatusBadRequest, err.Error())
}

func serviceUnavailableResponse(w http.ResponseWriter, r *http.Request, err error) {
	response.Error(w, r, http.StatusServiceUnavailable, err.Error())
}

// mapServiceErrorToHTTP turns service errors into HTTP responses.
func mapServiceErrorToHTTP(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidID),
		errors.Is(err, services.ErrInvalidContestID),
		errors.Is(err, services.ErrInvalidPage),
		errors.Is(err, services.ErrMissingHandle),
		errors.Is(err, services.ErrInvalidImage):
		badRequestResponse(w, r, err)

	case errors.Is(err, services.ErrStorageDisabled):
		serviceUnavailableResponse(w, r, err)

	default:
		serverErrorResponse(w, r, err)
	}
}

func parseContestID(raw string) (int64, error) {
	contestID, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", services.ErrInvalidContestID, raw)
	}
	return contestID, nil
}

func contestIDFromURL(r *http.Request) (int64, error) {
	return parseContestID(chi.URLParam(r, "contestId"))
}

func contestIDFromQuery(r *http.Request) (int64, error) {
	return parseContestID(r.URL.Query().Get("contestId"))
}

// pageFromQuery reads the zero-based page index and page size.
func pageFromQuery(r *http.Request) (models.Page, error) {
	q := r.URL.Query()

	index, err := strconv.ParseInt(q.Get("page"), 10, 64)
	if err != nil {
		return models.Page{}, fmt.Errorf("%w: page must be an integer", services.ErrInvalidPage)
	}
	size, err := strconv.ParseInt(q.Get("size"), 10, 64)
	if err != nil {
		return models.Page{}, fmt.Errorf("%w: size must be an integer", services.ErrInvalidPage)
	}

	page, err := models.NewPage(index, size)
	if err != nil {
		return models.Page{}, fmt.Errorf("%w: %w", services.ErrInvalidPage, err)
	}
	return page, nil
}
