package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"klaxon/internal/metrics"
	"klaxon/internal/models"
)

// Asserter queues event assertions for the next control tick.
type Asserter interface {
	Assert(a models.EventAssertion) bool
}

// AssertHandler handles event assertions from HTTP producers.
type AssertHandler struct {
	loop        Asserter
	maxBodySize int64
}

// AssertConfig holds configuration for the assert handler.
type AssertConfig struct {
	Loop        Asserter
	MaxBodySize int64
}

// NewAssertHandler creates an assert handler.
func NewAssertHandler(cfg AssertConfig) *AssertHandler {
	maxBodySize := cfg.MaxBodySize
	if maxBodySize == 0 {
		maxBodySize = 1 << 20 // 1MB default
	}
	return &AssertHandler{
		loop:        cfg.Loop,
		maxBodySize: maxBodySize,
	}
}

// AssertRequest represents the incoming JSON payload (single or batch)
type AssertRequest struct {
	// Single assertion (if Events is empty)
	Event *models.EventAssertion `json:"event,omitempty"`

	// Batch of assertions
	Events []models.EventAssertion `json:"events,omitempty"`
}

// AssertResponse is the response returned to producers.
type AssertResponse struct {
	Success  bool          `json:"success"`
	Accepted int           `json:"accepted"`
	Rejected int           `json:"rejected"`
	Errors   []AssertError `json:"errors,omitempty"`
}

// AssertError describes a validation error for a specific assertion.
type AssertError struct {
	Index int    `json:"index"`
	Name  string `json:"name,omitempty"`
	Error string `json:"error"`
}

// ServeHTTP handles the assertion HTTP request.
func (h *AssertHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType != "application/json" && contentType != "" {
		h.writeError(w, http.StatusUnsupportedMediaType, "content-type must be application/json")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}

	assertions, err := h.parseBody(body)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(assertions) == 0 {
		h.writeError(w, http.StatusBadRequest, models.ErrNoAssertions.Error())
		return
	}

	response := h.processAssertions(assertions)

	w.Header().Set("Content-Type", "application/json")
	if response.Rejected > 0 && response.Accepted == 0 {
		w.WriteHeader(http.StatusBadRequest)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	json.NewEncoder(w).Encode(response)
}

// parseBody parses the JSON body into a slice of assertions.
func (h *AssertHandler) parseBody(body []byte) ([]models.EventAssertion, error) {
	// Try parsing as AssertRequest first
	var req AssertRequest
	if err := json.Unmarshal(body, &req); err == nil {
		if len(req.Events) > 0 {
			return req.Events, nil
		}
		if req.Event != nil {
			return []models.EventAssertion{*req.Event}, nil
		}
	}

	// Try parsing as array of assertions
	var batch []models.EventAssertion
	if err := json.Unmarshal(body, &batch); err == nil && len(batch) > 0 {
		return batch, nil
	}

	// Try parsing as single assertion
	var single models.EventAssertion
	if err := json.Unmarshal(body, &single); err == nil && single.Name != "" {
		return []models.EventAssertion{single}, nil
	}

	return nil, fmt.Errorf("invalid JSON format: expected assertion object or array of assertions")
}

// processAssertions validates and queues assertions for the next tick.
func (h *AssertHandler) processAssertions(assertions []models.EventAssertion) AssertResponse {
	response := AssertResponse{
		Success: true,
		Errors:  make([]AssertError, 0),
	}

	for i, a := range assertions {
		a.Normalize()
		if err := a.Validate(); err != nil {
			response.Errors = append(response.Errors, AssertError{
				Index: i,
				Name:  a.Name,
				Error: err.Error(),
			})
			response.Rejected++
			metrics.EventsAssertedTotal.WithLabelValues("http", "rejected").Inc()
			continue
		}

		if !h.loop.Assert(a) {
			response.Errors = append(response.Errors, AssertError{
				Index: i,
				Name:  a.Name,
				Error: "mailbox full",
			})
			response.Rejected++
			metrics.EventsAssertedTotal.WithLabelValues("http", "rejected").Inc()
			continue
		}

		response.Accepted++
		metrics.EventsAssertedTotal.WithLabelValues("http", "accepted").Inc()
	}

	if response.Rejected > 0 {
		response.Success = response.Accepted > 0
	}
	return response
}

func (h *AssertHandler) writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
