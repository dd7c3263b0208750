package alerts

import (
	"errors"
	"fmt"
	"time"

	"klaxon/internal/logger"
	"klaxon/internal/metrics"
)

var (
	ErrEmptySource = errors.New("alert source has neither alert nor generator")
	ErrNilAlert    = errors.New("generator returned nil alert")
)

// CreateAlerts resolves the active events against the requested
// categories and returns the eligible alerts for this tick.
//
// Output order is encounter order: events in assertion order, categories
// in request order. Downstream selection must pick the maximum priority
// and keep the first entry on ties, so resolution is reproducible for a
// fixed catalog and assertion order.
func (s *EventSet) CreateAlerts(categories []Category, rctx *ResolveContext) []Alert {
	var ret []Alert
	seen := make(map[EventID]bool, len(s.active))
	for _, e := range s.active {
		if seen[e] {
			continue
		}
		seen[e] = true

		bindings := s.catalog.Bindings(e)
		if bindings == nil {
			// Producer asserted an event this catalog doesn't know.
			continue
		}
		for _, ct := range categories {
			src, ok := bindings[ct]
			if !ok {
				continue
			}

			alertType := e.String() + "/" + ct.String()
			alert, err := src.materialize(rctx)
			if err != nil {
				// A failed generator costs one alert for one tick,
				// never the tick itself.
				log := logger.WithComponent("alerts")
				log.Warn().
					Err(err).
					Str("alert_type", alertType).
					Msg("alert generator failed")
				metrics.GeneratorFailuresTotal.WithLabelValues(alertType).Inc()
				continue
			}

			// Creation-delay gate: the event must have been continuously
			// active long enough before the alert may surface.
			elapsed := s.tickPeriod * time.Duration(s.ages[e]+1)
			if elapsed < alert.CreationDelay {
				metrics.AlertsSuppressedTotal.Inc()
				continue
			}

			alert.Type = alertType
			alert.Category = ct
			ret = append(ret, alert)
			metrics.AlertsResolvedTotal.WithLabelValues(ct.String()).Inc()
		}
	}
	return ret
}

// materialize produces the concrete alert for a source, invoking the
// generator under panic containment.
func (src Source) materialize(rctx *ResolveContext) (out Alert, err error) {
	if src.Alert != nil {
		return *src.Alert, nil
	}
	if src.Generate == nil {
		return Alert{}, ErrEmptySource
	}

	defer func() {
		if r := recover(); r != nil {
			metrics.PanicsRecovered.WithLabelValues("generator").Inc()
			err = fmt.Errorf("generator panic: %v", r)
		}
	}()

	a, err := src.Generate(rctx)
	if err != nil {
		return Alert{}, err
	}
	if a == nil {
		return Alert{}, ErrNilAlert
	}
	return *a, nil
}
