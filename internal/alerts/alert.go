package alerts

import (
	"fmt"
	"time"
)

// Priority ranks simultaneously active alerts. It is the only ordering
// key: equal priorities are unordered and callers fall back to encounter
// order in the resolver output.
type Priority int

const (
	PriorityLowest Priority = iota
	PriorityLower
	PriorityLow
	PriorityMid
	PriorityHigh
	PriorityHighest
)

func (p Priority) String() string {
	switch p {
	case PriorityLowest:
		return "lowest"
	case PriorityLower:
		return "lower"
	case PriorityLow:
		return "low"
	case PriorityMid:
		return "mid"
	case PriorityHigh:
		return "high"
	case PriorityHighest:
		return "highest"
	default:
		return "unknown"
	}
}

// Status classifies how an alert should be styled by the renderer.
type Status int

const (
	StatusNormal Status = iota
	StatusUserPrompt
	StatusCritical
)

func (s Status) String() string {
	switch s {
	case StatusNormal:
		return "normal"
	case StatusUserPrompt:
		return "userPrompt"
	case StatusCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Size selects the display footprint of an alert.
type Size int

const (
	SizeNone Size = iota
	SizeSmall
	SizeMid
	SizeFull
)

func (s Size) String() string {
	switch s {
	case SizeNone:
		return "none"
	case SizeSmall:
		return "small"
	case SizeMid:
		return "mid"
	case SizeFull:
		return "full"
	default:
		return "unknown"
	}
}

// Visual identifies the HUD cue to show with an alert.
type Visual int

const (
	VisualNone Visual = iota
	VisualFCW
	VisualSteerRequired
	VisualBrakePressed
	VisualWrongGear
	VisualSeatbeltUnbuckled
	VisualSpeedTooHigh
	VisualLDW
)

func (v Visual) String() string {
	switch v {
	case VisualNone:
		return "none"
	case VisualFCW:
		return "fcw"
	case VisualSteerRequired:
		return "steerRequired"
	case VisualBrakePressed:
		return "brakePressed"
	case VisualWrongGear:
		return "wrongGear"
	case VisualSeatbeltUnbuckled:
		return "seatbeltUnbuckled"
	case VisualSpeedTooHigh:
		return "speedTooHigh"
	case VisualLDW:
		return "ldw"
	default:
		return "unknown"
	}
}

// Audible identifies the chime to play with an alert.
type Audible int

const (
	AudibleNone Audible = iota
	AudibleEngage
	AudibleDisengage
	AudibleError
	AudibleDing
	AudibleDingRepeat
	AudiblePrompt
	AudibleWarning
	AudibleWarningRepeat
	AudibleDistracted
)

func (a Audible) String() string {
	switch a {
	case AudibleNone:
		return "none"
	case AudibleEngage:
		return "engage"
	case AudibleDisengage:
		return "disengage"
	case AudibleError:
		return "error"
	case AudibleDing:
		return "ding"
	case AudibleDingRepeat:
		return "dingRepeat"
	case AudiblePrompt:
		return "prompt"
	case AudibleWarning:
		return "warning"
	case AudibleWarningRepeat:
		return "warningRepeat"
	case AudibleDistracted:
		return "distracted"
	default:
		return "unknown"
	}
}

// Alert describes one piece of user-facing feedback. Alerts are value
// types; the resolver stamps Type and Category on its own copy, the
// catalog's copy is never mutated.
type Alert struct {
	Text1 string
	Text2 string

	Status   Status
	Size     Size
	Priority Priority
	Visual   Visual
	Audible  Audible

	SoundDuration time.Duration
	HUDDuration   time.Duration
	TextDuration  time.Duration

	// Rate throttles repeated display of the same alert (0 = no repeat).
	Rate float64

	// CreationDelay is how long the event must have been continuously
	// active before this alert may surface.
	CreationDelay time.Duration

	// Set by the resolver, empty on catalog entries.
	Type     string
	Category Category
}

func (a Alert) String() string {
	return fmt.Sprintf("%s/%s %s %s %s", a.Text1, a.Text2, a.Priority, a.Visual, a.Audible)
}

// Greater reports whether a outranks b. Equal priorities compare as
// neither greater, forcing callers to keep encounter order.
func (a Alert) Greater(b Alert) bool {
	return a.Priority > b.Priority
}

// Select returns the highest-priority alert among candidates, keeping
// the earliest on a tie. Returns nil for an empty slice.
func Select(candidates []Alert) *Alert {
	if len(candidates) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(candidates); i++ {
		if candidates[i].Greater(candidates[best]) {
			best = i
		}
	}
	return &candidates[best]
}

// NoEntryAlert is the standard refusal-to-engage alert.
func NoEntryAlert(text2 string) Alert {
	return Alert{
		Text1:         "Unable to engage",
		Text2:         text2,
		Status:        StatusNormal,
		Size:          SizeMid,
		Priority:      PriorityLow,
		Visual:        VisualNone,
		Audible:       AudibleError,
		SoundDuration: 400 * time.Millisecond,
		HUDDuration:   2 * time.Second,
		TextDuration:  3 * time.Second,
	}
}

// SoftDisableAlert requests a controlled disengage.
func SoftDisableAlert(text2 string) Alert {
	return Alert{
		Text1:         "Take control immediately",
		Text2:         text2,
		Status:        StatusCritical,
		Size:          SizeFull,
		Priority:      PriorityMid,
		Visual:        VisualSteerRequired,
		Audible:       AudibleWarningRepeat,
		SoundDuration: 100 * time.Millisecond,
		HUDDuration:   2 * time.Second,
		TextDuration:  2 * time.Second,
	}
}

// ImmediateDisableAlert demands an immediate disengage.
func ImmediateDisableAlert(text2 string) Alert {
	return Alert{
		Text1:         "Take control immediately",
		Text2:         text2,
		Status:        StatusCritical,
		Size:          SizeFull,
		Priority:      PriorityHighest,
		Visual:        VisualSteerRequired,
		Audible:       AudibleWarningRepeat,
		SoundDuration: 2200 * time.Millisecond,
		HUDDuration:   3 * time.Second,
		TextDuration:  4 * time.Second,
	}
}

// EngagementAlert is the chime-only alert for engage/disengage edges.
func EngagementAlert(audible Audible) Alert {
	return Alert{
		Status:        StatusNormal,
		Size:          SizeNone,
		Priority:      PriorityMid,
		Visual:        VisualNone,
		Audible:       audible,
		SoundDuration: 200 * time.Millisecond,
	}
}

// NormalPermanentAlert is a low-priority informational alert shown in
// all states.
func NormalPermanentAlert(text1, text2 string, textDuration time.Duration) Alert {
	size := SizeSmall
	if text2 != "" {
		size = SizeMid
	}
	return Alert{
		Text1:        text1,
		Text2:        text2,
		Status:       StatusNormal,
		Size:         size,
		Priority:     PriorityLower,
		Visual:       VisualNone,
		Audible:      AudibleNone,
		TextDuration: textDuration,
	}
}
