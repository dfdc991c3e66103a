package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ersonp/thanepark/internal/domain/entities"
	"github.com/ersonp/thanepark/internal/domain/services"
)

type handler struct {
	reader Reader
	logger *slog.Logger
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorDetail `json:"error"`
}

type ridesResponse struct {
	Rides []entities.Ride `json:"rides"`
	Total int             `json:"total"`
}

type historyResponse struct {
	Commands []entities.CommandEntry `json:"commands"`
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// listRides returns all rides, narrowed by the optional maintenance and
// waittime query parameters (e.g. ?maintenance=<10&waittime=>=5).
func (h *handler) listRides(w http.ResponseWriter, r *http.Request) {
	cond, err := parseCondition(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	rides, err := h.reader.LoadRides(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	list := services.NewRideList()
	if err := list.SetRides(rides); err != nil {
		h.internalError(w, r, err)
		return
	}
	matched := withTags(list.Query(cond...), r.URL.Query()["tag"])
	writeJSON(w, http.StatusOK, ridesResponse{Rides: matched, Total: len(matched)})
}

// withTags keeps the rides carrying every tag.
func withTags(rides []entities.Ride, tags []string) []entities.Ride {
	if len(tags) == 0 {
		return rides
	}
	out := rides[:0]
	for _, ride := range rides {
		if hasAllTags(ride, tags) {
			out = append(out, ride)
		}
	}
	return out
}

func hasAllTags(ride entities.Ride, tags []string) bool {
	for _, tag := range tags {
		if !ride.HasTag(tag) {
			return false
		}
	}
	return true
}

func (h *handler) getRide(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	ride, err := h.reader.FindRide(r.Context(), name)
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	if ride == nil {
		writeError(w, http.StatusNotFound, "not_found", fmt.Sprintf("ride %q not found", name))
		return
	}
	writeJSON(w, http.StatusOK, ride)
}

func (h *handler) listHistory(w http.ResponseWriter, r *http.Request) {
	limit := DefaultHistoryLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "validation_error", "limit must be a positive integer")
			return
		}
		limit = n
	}

	entries, err := h.reader.ListCommands(r.Context(), limit)
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	if entries == nil {
		entries = []entities.CommandEntry{}
	}
	writeJSON(w, http.StatusOK, historyResponse{Commands: entries})
}

func (h *handler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
}

func parseCondition(q url.Values) (entities.Condition, error) {
	var cond entities.Condition
	for _, attr := range []entities.NumericAttribute{entities.AttributeMaintenance, entities.AttributeWaitTime} {
		for _, expr := range q[string(attr)] {
			p, err := entities.ParseAttributePredicate(attr, expr)
			if err != nil {
				return nil, unwrapValidation(err)
			}
			cond = append(cond, p)
		}
	}
	return cond, nil
}

// unwrapValidation drops the sentinel prefix from a validation error.
func unwrapValidation(err error) error {
	prefix := entities.ErrValidation.Error() + ": "
	if msg := err.Error(); errors.Is(err, entities.ErrValidation) && len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return errors.New(msg[len(prefix):])
	}
	return err
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}
