package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/alexiusacademia/gopurlin/internal/batch"
	"github.com/alexiusacademia/gopurlin/internal/catalog"
	"github.com/alexiusacademia/gopurlin/internal/logger"
	"github.com/alexiusacademia/gopurlin/internal/purlin"
	"github.com/alexiusacademia/gopurlin/internal/report"
)

const maxBodyBytes = 1 << 20

// SectionsHandler serves the section catalog
type SectionsHandler struct{}

func (h *SectionsHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, catalog.ListTables())
}

func (h *SectionsHandler) Table(w http.ResponseWriter, r *http.Request) {
	id := catalog.TableID(mux.Vars(r)["table"])

	info, err := catalog.Info(id)
	if err != nil {
		respondDesignError(w, r, err)
		return
	}
	rows, err := catalog.Rows(id)
	if err != nil {
		respondDesignError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{
		"table": info,
		"rows":  rows,
	})
}

func (h *SectionsHandler) Row(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	n, err := strconv.Atoi(vars["row"])
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "row must be an integer", err)
		return
	}

	sec, err := catalog.Row(catalog.TableID(vars["table"]), n)
	if err != nil {
		respondDesignError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, sec)
}

// PurlinHandler runs purlin designs
type PurlinHandler struct {
	// Workers bounds the goroutines used by one batch request
	Workers int
}

func (h *PurlinHandler) Design(w http.ResponseWriter, r *http.Request) {
	in := purlin.DefaultInput()
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request payload", err)
		return
	}

	res, err := purlin.Design(in)
	if err != nil {
		respondDesignError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, res)
}

type reportRequest struct {
	purlin.Input
	Meta report.Meta `json:"meta"`
}

func (h *PurlinHandler) Report(w http.ResponseWriter, r *http.Request) {
	req := reportRequest{Input: purlin.DefaultInput()}
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request payload", err)
		return
	}

	res, err := purlin.Design(req.Input)
	if err != nil {
		respondDesignError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WritePDF(&buf, res, req.Meta); err != nil {
		logger.Error("report generation failed", "request_id", RequestID(r.Context()), "error", err)
		respondError(w, r, http.StatusInternalServerError, "report generation error", nil)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"purlin-report.pdf\"")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn("response write failed", "request_id", RequestID(r.Context()), "error", err)
	}
}

func (h *PurlinHandler) Batch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request payload", err)
		return
	}

	// Each item starts from the default input like a single design
	items := make([]purlin.Input, len(req.Items))
	for i, raw := range req.Items {
		items[i] = purlin.DefaultInput()
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&items[i]); err != nil {
			respondError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid item %d", i), err)
			return
		}
	}

	res, err := batch.Run(r.Context(), items, h.Workers)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid batch", err)
		return
	}
	respondJSON(w, r, http.StatusOK, res)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// respondDesignError maps engine errors to HTTP statuses
func respondDesignError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, purlin.ErrInvalidInput):
		respondJSON(w, r, http.StatusBadRequest, map[string]any{
			"error":  "invalid input",
			"fields": fieldErrors(err),
		})
	case errors.Is(err, purlin.ErrInvalidSection):
		respondError(w, r, http.StatusNotFound, "invalid section", err)
	default:
		logger.Error("design failed", "request_id", RequestID(r.Context()), "error", err)
		respondError(w, r, http.StatusInternalServerError, "design failed", nil)
	}
}

// fieldErrors flattens joined validation errors into field → message
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)

	var walk func(error)
	walk = func(err error) {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				walk(e)
			}
			return
		}
		var verr *purlin.ValidationError
		if errors.As(err, &verr) {
			out[verr.Field] = verr.Error()
		}
	}
	walk(err)
	return out
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn("response write failed", "request_id", RequestID(r.Context()), "error", err)
	}
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	response := map[string]string{
		"error": message,
	}
	if err != nil {
		response["details"] = err.Error()
	}
	respondJSON(w, r, status, response)
}
