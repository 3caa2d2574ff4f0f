package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kyc-tools/companymatch/internal/domain"
)

// Resolver is the use-case surface the handler needs.
type Resolver interface {
	Resolve(ctx context.Context, query domain.Query) (domain.MatchResult, error)
}

// ResolveHandler handles HTTP requests for company resolution.
type ResolveHandler struct {
	resolver    Resolver
	logger      *slog.Logger
	maxBodySize int64
}

// NewResolveHandler creates a new ResolveHandler.
func NewResolveHandler(resolver Resolver, logger *slog.Logger, maxBodySize int64) *ResolveHandler {
	return &ResolveHandler{
		resolver:    resolver,
		logger:      logger,
		maxBodySize: maxBodySize,
	}
}

// ServeHTTP processes one resolve request. Missing or garbled query fields
// are not errors (they degrade to no_match or null fields); only malformed
// requests and reference-data faults produce non-200 responses.
func (h *ResolveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Enforce max body size
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var query domain.Query
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&query); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			http.Error(w, "Payload too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Bad request: failed to decode query", http.StatusBadRequest)
		return
	}

	result, err := h.resolver.Resolve(r.Context(), query)
	if err != nil {
		// Matching never fails on query input; an error here means broken
		// reference data.
		h.logger.Error("failed to resolve query", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.logger.Error("failed to encode match result", "error", err)
	}
}
