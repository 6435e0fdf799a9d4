package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/retail-pos/internal/auth"
	"github.com/rogerio-castellano/retail-pos/internal/logger"
	repo "github.com/rogerio-castellano/retail-pos/internal/repo"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

func respond(w http.ResponseWriter, r *http.Request, status int, data any) {
	if err := writeJSON(w, status, data); err != nil {
		reqLogger(r).Error("failed to write JSON response", zap.Error(err))
	}
}

func reqLogger(r *http.Request) *zap.Logger {
	return logger.WithRequest(middleware.GetReqID(r.Context()), r.Method, r.URL.Path)
}

// principal fetches the caller put on the context by the auth middleware.
func principal(w http.ResponseWriter, r *http.Request) (auth.Principal, bool) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return auth.Principal{}, false
	}
	return p, true
}

// authorizeShop writes 403 when shopID is outside the caller's shops.
func authorizeShop(w http.ResponseWriter, p auth.Principal, shopID uuid.UUID) bool {
	if !p.CanAccess(shopID) {
		http.Error(w, "forbidden: shop not accessible", http.StatusForbidden)
		return false
	}
	return true
}

func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		http.Error(w, "invalid "+name, http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// optionalUUIDQuery parses a query parameter that may be absent.
func optionalUUIDQuery(r *http.Request, name string) (*uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", name)
	}
	return &id, nil
}

// pageParams reads offset and limit, applying the configured default and cap.
func pageParams(r *http.Request) (offset, limit int, err error) {
	limit = pagination.DefaultLimit

	if s := r.URL.Query().Get("offset"); s != "" {
		offset, err = strconv.Atoi(s)
		if err != nil {
			return 0, 0, errors.New("invalid offset format")
		}
		if offset < 0 {
			return 0, 0, errors.New("offset must be zero or positive")
		}
	}
	if s := r.URL.Query().Get("limit"); s != "" {
		limit, err = strconv.Atoi(s)
		if err != nil {
			return 0, 0, errors.New("invalid limit format")
		}
		if limit <= 0 {
			return 0, 0, errors.New("limit must be greater than zero")
		}
		if limit > pagination.MaxLimit {
			return 0, 0, fmt.Errorf("limit must not exceed %d", pagination.MaxLimit)
		}
	}
	return offset, limit, nil
}

// timeParam parses an RFC3339 query value. URL decoding turns the "+" of a
// zone offset into a space, so it is put back first.
func timeParam(r *http.Request, name string) (*time.Time, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}
	if len(s) == len(time.RFC3339) && s[len(s)-6] == ' ' {
		s = s[:len(s)-6] + "+" + s[len(s)-5:]
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s date format", name)
	}
	return &ts, nil
}

// writeRepoError maps repository sentinels onto status codes.
func writeRepoError(w http.ResponseWriter, r *http.Request, err error, action string) {
	switch {
	case errors.Is(err, repo.ErrNotFound), errors.Is(err, repo.ErrUserNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, repo.ErrDuplicate):
		http.Error(w, action+": duplicated value", http.StatusConflict)
	case errors.Is(err, repo.ErrInsufficientQuantity):
		http.Error(w, "quantity cannot be negative", http.StatusConflict)
	case errors.Is(err, repo.ErrForeignKey):
		http.Error(w, action+": referenced record does not exist", http.StatusBadRequest)
	default:
		reqLogger(r).Error(action, zap.Error(err))
		http.Error(w, action, http.StatusInternalServerError)
	}
}
