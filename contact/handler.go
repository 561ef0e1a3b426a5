package contact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

var (
	// ErrMethodNotAllowed rejects anything but POST before storage is touched
	ErrMethodNotAllowed = errors.New("method not allowed")
	// ErrPersistence wraps every decode, ensure or insert failure
	ErrPersistence = errors.New("failed to save submission")
)

// Response bodies
const (
	bodyMethodNotAllowed = "Method Not Allowed"
	bodySuccess          = `{"message":"Submission successful"}`
	bodyFailure          = `{"error":"Failed to save submission"}`
)

// DefaultMaxBody bounds request bodies read by the handler
const DefaultMaxBody int64 = 64 << 10

// Handler serves the submission endpoint
type Handler struct {
	store   Writer
	log     *zap.Logger
	maxBody int64
}

// NewHandler wires a handler; nil logger is replaced by a no-op
func NewHandler(store Writer, log *zap.Logger, maxBody int64) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	if maxBody <= 0 {
		maxBody = DefaultMaxBody
	}
	return &Handler{store: store, log: log, maxBody: maxBody}
}

// CheckMethod accepts only POST
func CheckMethod(method string) error {
	if method != http.MethodPost {
		return fmt.Errorf("%w: %s", ErrMethodNotAllowed, method)
	}
	return nil
}

// Submit decodes body and stores it in one attempt
func (h *Handler) Submit(ctx context.Context, contentType string, body []byte) (Record, error) {
	sub, err := Decode(contentType, body)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if err := h.store.EnsureTable(ctx); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	rec, err := h.store.Insert(ctx, sub)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return rec, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := CheckMethod(r.Method); err != nil {
		h.log.Debug("Rejected submission", zap.String("method", r.Method))
		w.Header().Set("Allow", http.MethodPost)
		writeBody(w, http.StatusMethodNotAllowed, "text/plain; charset=utf-8", bodyMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBody))
	if err != nil {
		h.fail(w, fmt.Errorf("%w: read body: %w", ErrPersistence, err))
		return
	}

	rec, err := h.Submit(r.Context(), r.Header.Get("Content-Type"), body)
	if err != nil {
		h.fail(w, err)
		return
	}

	h.log.Info("Stored submission", zap.String("id", rec.ID))
	writeBody(w, http.StatusOK, "application/json", bodySuccess)
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	h.log.Error("Database error", zap.Error(err))
	writeBody(w, http.StatusInternalServerError, "application/json", bodyFailure)
}

func writeBody(w http.ResponseWriter, status int, contentType, body string) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
