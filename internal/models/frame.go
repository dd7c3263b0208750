package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"klaxon/internal/alerts"
)

// Validation errors
var (
	ErrEmptyName    = errors.New("event name cannot be empty")
	ErrNameTooLong  = errors.New("event name exceeds maximum length")
	ErrNoAssertions = errors.New("no assertions provided")
)

const MaxNameLength = 128

// EventAssertion is the inbound producer message: one event asserted
// true for the current tick.
type EventAssertion struct {
	Name   string `json:"name"`
	Sticky bool   `json:"sticky,omitempty"`
}

// Validate checks the assertion is well-formed. An unknown event name is
// not a validation error; the engine drops it silently downstream.
func (a *EventAssertion) Validate() error {
	if a.Name == "" {
		return ErrEmptyName
	}
	if len(a.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

// Normalize trims whitespace from the event name.
func (a *EventAssertion) Normalize() {
	a.Name = strings.TrimSpace(a.Name)
}

// ExternalEvent is the outbound per-event view: name plus every category
// it currently satisfies.
type ExternalEvent struct {
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
}

// AlertView carries the rendering fields of one selected alert.
type AlertView struct {
	Type          string  `json:"type"`
	Text1         string  `json:"text_1"`
	Text2         string  `json:"text_2,omitempty"`
	Status        string  `json:"status"`
	Size          string  `json:"size"`
	Priority      string  `json:"priority"`
	Visual        string  `json:"visual"`
	Audible       string  `json:"audible"`
	SoundDuration float64 `json:"sound_duration_s"`
	HUDDuration   float64 `json:"hud_duration_s"`
	TextDuration  float64 `json:"text_duration_s"`
	Rate          float64 `json:"rate,omitempty"`
}

// AlertFrame is the per-tick publication: the selected alerts per
// rendering channel plus the full category view of the active event set.
type AlertFrame struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Tick      uint64          `json:"tick"`
	Engaged   bool            `json:"engaged"`
	Visual    *AlertView      `json:"visual,omitempty"`
	Audio     *AlertView      `json:"audio,omitempty"`
	Events    []ExternalEvent `json:"events"`
}

// NewAlertFrame creates an empty frame for the given tick.
func NewAlertFrame(tick uint64, engaged bool) *AlertFrame {
	return &AlertFrame{
		ID:        uuid.New().String(),
		Timestamp: time.Now().UTC(),
		Tick:      tick,
		Engaged:   engaged,
	}
}

// ViewOf converts a resolved alert into its wire view.
func ViewOf(a *alerts.Alert) *AlertView {
	if a == nil {
		return nil
	}
	return &AlertView{
		Type:          a.Type,
		Text1:         a.Text1,
		Text2:         a.Text2,
		Status:        a.Status.String(),
		Size:          a.Size.String(),
		Priority:      a.Priority.String(),
		Visual:        a.Visual.String(),
		Audible:       a.Audible.String(),
		SoundDuration: a.SoundDuration.Seconds(),
		HUDDuration:   a.HUDDuration.Seconds(),
		TextDuration:  a.TextDuration.Seconds(),
		Rate:          a.Rate,
	}
}

// ExternalEventsOf converts the engine's external view to wire form.
func ExternalEventsOf(evs []alerts.ExternalEvent) []ExternalEvent {
	out := make([]ExternalEvent, len(evs))
	for i, ev := range evs {
		out[i] = ExternalEvent{Name: ev.Name, Categories: ev.Categories}
	}
	return out
}
