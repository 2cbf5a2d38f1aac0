package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/suar-net/bestsellers-gw/internal/model"
)

// BooksService is the contract the handler needs from the upstream gateway.
type BooksService interface {
	ListNames(ctx context.Context) (json.RawMessage, error)
	GetList(ctx context.Context, p model.ListParams) (json.RawMessage, error)
	GetOverview(ctx context.Context, p model.OverviewParams) (json.RawMessage, error)
	GetHistory(ctx context.Context, p model.HistoryParams) (json.RawMessage, error)
	GetReviews(ctx context.Context, p model.ReviewParams) (json.RawMessage, error)
}

// BooksHandler serves the book routes by delegating to a BooksService.
type BooksHandler struct {
	service BooksService
	logger  *zap.Logger
}

// NewBooksHandler is the constructor for BooksHandler.
func NewBooksHandler(s BooksService, l *zap.Logger) *BooksHandler {
	return &BooksHandler{
		service: s,
		logger:  l,
	}
}

// ListNames serves GET /listnames.
func (h *BooksHandler) ListNames(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListNames(r.Context())
	h.respond(w, r, resp, err)
}

// GetList serves GET /lists.
func (h *BooksHandler) GetList(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetList(r.Context(), model.NewListParams(queryValues(r)))
	h.respond(w, r, resp, err)
}

// GetOverview serves GET /overview.
func (h *BooksHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetOverview(r.Context(), model.NewOverviewParams(queryValues(r)))
	h.respond(w, r, resp, err)
}

// GetHistory serves GET /history.
func (h *BooksHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetHistory(r.Context(), model.NewHistoryParams(queryValues(r)))
	h.respond(w, r, resp, err)
}

// GetReviews serves GET /reviews.
func (h *BooksHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetReviews(r.Context(), model.NewReviewParams(queryValues(r)))
	h.respond(w, r, resp, err)
}

// respond writes the success envelope, or the error envelope for the status
// mapped from err.
func (h *BooksHandler) respond(w http.ResponseWriter, r *http.Request, resp json.RawMessage, err error) {
	if err != nil {
		status := statusForError(err)
		level := zap.DebugLevel
		if status >= http.StatusInternalServerError {
			level = zap.ErrorLevel
		}
		h.logger.Log(level, "request failed",
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Error(err))
		respondWithError(w, status)
		return
	}
	respondWithSuccess(w, resp)
}

// queryValues parses the raw query with ';' kept inside values. url.ParseQuery
// drops any pair containing ';', and the upstream uses it to separate ISBNs.
func queryValues(r *http.Request) url.Values {
	q, _ := url.ParseQuery(strings.ReplaceAll(r.URL.RawQuery, ";", "%3B"))
	return q
}
