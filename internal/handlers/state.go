package handlers

import (
	"encoding/json"
	"net/http"

	"klaxon/internal/alerts"
	"klaxon/internal/models"
)

// FrameSource exposes the most recently published alert frame.
type FrameSource interface {
	LastFrame() *models.AlertFrame
}

// TelemetrySink accepts live telemetry snapshots for generator alerts.
type TelemetrySink interface {
	SetTelemetry(t alerts.Telemetry)
}

// StateHandler serves the last published frame: the selected alerts and
// the category view of the active event set.
type StateHandler struct {
	frames FrameSource
}

// NewStateHandler creates a state handler.
func NewStateHandler(frames FrameSource) *StateHandler {
	return &StateHandler{frames: frames}
}

func (h *StateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	frame := h.frames.LastFrame()
	if frame == nil {
		http.Error(w, "no frame published yet", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(frame)
}

// TelemetryHandler accepts telemetry snapshot updates from the host.
type TelemetryHandler struct {
	sink TelemetrySink
}

// NewTelemetryHandler creates a telemetry handler.
func NewTelemetryHandler(sink TelemetrySink) *TelemetryHandler {
	return &TelemetryHandler{sink: sink}
}

// telemetryInput mirrors alerts.Telemetry on the wire.
type telemetryInput struct {
	VEgo                float64   `json:"v_ego"`
	CalPerc             int       `json:"cal_perc"`
	GPSIntegrated       bool      `json:"gps_integrated"`
	AutoLaneChangeTimer float64   `json:"auto_lane_change_timer"`
	JoystickAxes        []float64 `json:"joystick_axes,omitempty"`
	CruiseMainOn        bool      `json:"cruise_main_on"`
}

func (h *TelemetryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut && r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var in telemetryInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	h.sink.SetTelemetry(alerts.Telemetry{
		VEgo:                in.VEgo,
		CalPerc:             in.CalPerc,
		GPSIntegrated:       in.GPSIntegrated,
		AutoLaneChangeTimer: in.AutoLaneChangeTimer,
		JoystickAxes:        in.JoystickAxes,
		CruiseMainOn:        in.CruiseMainOn,
	})

	w.WriteHeader(http.StatusNoContent)
}
