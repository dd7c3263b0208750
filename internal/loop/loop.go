package loop

import (
	"context"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"klaxon/internal/alerts"
	"klaxon/internal/logger"
	"klaxon/internal/metrics"
	"klaxon/internal/models"
)

// Publisher delivers the per-tick alert frame to the outside world.
type Publisher interface {
	Publish(ctx context.Context, frame *models.AlertFrame) error
}

// softDisableTime is how long a controlled disengage is allowed to take.
const softDisableTime = 3 * time.Second

// Config holds control loop configuration.
type Config struct {
	Catalog     alerts.Catalog
	Publisher   Publisher
	TickPeriod  time.Duration
	MailboxSize int
	Params      alerts.VehicleParams
	Metric      bool
}

// Loop owns the event set and drives the add -> resolve -> publish ->
// clear cycle once per tick. It is the single writer for the whole
// lifetime of the event set; producers hand assertions to the mailbox
// and never touch the set directly.
type Loop struct {
	set        *alerts.EventSet
	publisher  Publisher
	tickPeriod time.Duration
	mailbox    chan models.EventAssertion

	params alerts.VehicleParams
	metric bool

	telemetryMu sync.Mutex
	telemetry   alerts.Telemetry

	engaged          bool
	softDisableTicks int

	tick      uint64
	lastFrame atomic.Pointer[models.AlertFrame]

	// Stats
	processed atomic.Uint64
	failed    atomic.Uint64
	dropped   atomic.Uint64
}

// New creates a control loop over the given catalog.
func New(cfg Config) *Loop {
	if cfg.TickPeriod <= 0 {
		cfg.TickPeriod = 10 * time.Millisecond
	}
	if cfg.MailboxSize <= 0 {
		cfg.MailboxSize = 1024
	}

	metrics.MailboxCapacity.Set(float64(cfg.MailboxSize))

	return &Loop{
		set:        alerts.NewEventSet(cfg.Catalog, cfg.TickPeriod),
		publisher:  cfg.Publisher,
		tickPeriod: cfg.TickPeriod,
		mailbox:    make(chan models.EventAssertion, cfg.MailboxSize),
		params:     cfg.Params,
		metric:     cfg.Metric,
	}
}

// Assert queues an event assertion for the next tick. Never blocks: when
// the mailbox is full the assertion is dropped and counted, because a
// slow alert layer must not stall producers.
func (l *Loop) Assert(a models.EventAssertion) bool {
	select {
	case l.mailbox <- a:
		metrics.MailboxSize.Set(float64(len(l.mailbox)))
		return true
	default:
		l.dropped.Add(1)
		return false
	}
}

// SetTelemetry replaces the live telemetry snapshot read by generator
// alerts on the next tick.
func (l *Loop) SetTelemetry(t alerts.Telemetry) {
	l.telemetryMu.Lock()
	l.telemetry = t
	l.telemetryMu.Unlock()
}

// LastFrame returns the most recently published frame, nil before the
// first tick completes.
func (l *Loop) LastFrame() *models.AlertFrame {
	return l.lastFrame.Load()
}

// Run drives ticks until the context is cancelled.
func (l *Loop) Run(ctx context.Context) {
	log := logger.WithComponent("loop")
	log.Info().
		Dur("tick_period", l.tickPeriod).
		Int("mailbox", cap(l.mailbox)).
		Msg("control loop started")

	ticker := time.NewTicker(l.tickPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Uint64("ticks", l.tick).Msg("control loop stopped")
			return
		case <-ticker.C:
			l.safeTick(ctx)
		}
	}
}

// safeTick runs one tick under panic recovery; a bad catalog entry or
// publisher must cost at most one tick.
func (l *Loop) safeTick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			log := logger.WithComponent("loop")
			log.Error().
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("tick panic recovered")
			metrics.PanicsRecovered.WithLabelValues("loop").Inc()
			l.failed.Add(1)
		}
	}()
	l.Tick(ctx)
}

// Tick executes one full control tick: drain the mailbox, advance the
// engage state, resolve and select alerts, publish, clear.
func (l *Loop) Tick(ctx context.Context) {
	start := time.Now()

	l.drainMailbox()

	// Resolve against the state the tick started in, then let the
	// category flags advance the state for the next tick.
	frame := l.resolveFrame()
	l.publish(ctx, frame)
	l.advanceState()

	metrics.EventsActive.Set(float64(l.set.Len()))
	metrics.TickDuration.Observe(time.Since(start).Seconds())
	metrics.TicksTotal.Inc()

	l.set.Clear()
	l.tick++
}

// drainMailbox applies every queued assertion in arrival order. This is
// the single point where producer input enters the event set.
func (l *Loop) drainMailbox() {
	for {
		select {
		case a := <-l.mailbox:
			if id, ok := alerts.EventIDFromName(a.Name); ok {
				l.set.Add(id, a.Sticky)
			}
			// Unknown names are dropped silently: producers and the
			// catalog evolve independently.
		default:
			metrics.MailboxSize.Set(float64(len(l.mailbox)))
			return
		}
	}
}

// advanceState runs the minimal engage state machine off the category
// flags. The host's real state machine owns policy; this keeps the
// daemon self-contained and exercises the flag queries.
func (l *Loop) advanceState() {
	log := logger.WithComponent("loop")

	if l.engaged {
		switch {
		case l.set.Any(alerts.CategoryUserDisable),
			l.set.Any(alerts.CategoryImmediateDisable):
			l.setEngaged(false)
			l.softDisableTicks = 0
			log.Info().Uint64("tick", l.tick).Msg("disengaged")
		case l.set.Any(alerts.CategorySoftDisable):
			if l.softDisableTicks == 0 {
				l.softDisableTicks = int(softDisableTime / l.tickPeriod)
				log.Warn().Uint64("tick", l.tick).Msg("soft disable armed")
			}
		}
		if l.softDisableTicks > 0 {
			l.softDisableTicks--
			if l.softDisableTicks == 0 {
				l.setEngaged(false)
				log.Warn().Uint64("tick", l.tick).Msg("soft disable completed")
			}
		}
		return
	}

	if l.set.Any(alerts.CategoryEnable) && !l.set.Any(alerts.CategoryNoEntry) {
		l.setEngaged(true)
		log.Info().Uint64("tick", l.tick).Msg("engaged")
	}
}

func (l *Loop) setEngaged(engaged bool) {
	l.engaged = engaged
	state := "disengaged"
	if engaged {
		state = "engaged"
	}
	metrics.EngageTransitionsTotal.WithLabelValues(state).Inc()
}

// resolveFrame resolves the categories relevant to the current state and
// picks one alert per rendering channel.
func (l *Loop) resolveFrame() *models.AlertFrame {
	l.telemetryMu.Lock()
	telemetry := l.telemetry
	l.telemetryMu.Unlock()

	rctx := &alerts.ResolveContext{
		Params:    l.params,
		Telemetry: telemetry,
		Metric:    l.metric,
	}

	categories := []alerts.Category{alerts.CategoryPermanent}
	if l.engaged {
		categories = append(categories,
			alerts.CategoryWarning,
			alerts.CategorySoftDisable,
			alerts.CategoryImmediateDisable,
			alerts.CategoryUserDisable,
		)
	} else {
		categories = append(categories,
			alerts.CategoryNoEntry,
			alerts.CategoryPreEnable,
			alerts.CategoryEnable,
		)
	}

	resolved := l.set.CreateAlerts(categories, rctx)

	frame := models.NewAlertFrame(l.tick, l.engaged)
	frame.Visual = models.ViewOf(alerts.Select(resolved))
	frame.Audio = models.ViewOf(alerts.Select(audiblePool(resolved)))
	frame.Events = models.ExternalEventsOf(l.set.ToExternal())
	return frame
}

// audiblePool filters the resolved alerts down to the audible channel.
func audiblePool(resolved []alerts.Alert) []alerts.Alert {
	var out []alerts.Alert
	for _, a := range resolved {
		if a.Audible != alerts.AudibleNone {
			out = append(out, a)
		}
	}
	return out
}

func (l *Loop) publish(ctx context.Context, frame *models.AlertFrame) {
	l.lastFrame.Store(frame)

	if l.publisher == nil {
		return
	}

	pubCtx, cancel := context.WithTimeout(ctx, l.tickPeriod)
	defer cancel()

	if err := l.publisher.Publish(pubCtx, frame); err != nil {
		log := logger.WithComponent("loop")
		log.Error().
			Err(err).
			Uint64("tick", frame.Tick).
			Msg("failed to publish frame")
		l.failed.Add(1)
		return
	}
	l.processed.Add(1)
}

// Stats returns loop counters.
func (l *Loop) Stats() Stats {
	return Stats{
		Published: l.processed.Load(),
		Failed:    l.failed.Load(),
		Dropped:   l.dropped.Load(),
	}
}

// Stats holds control loop metrics.
type Stats struct {
	Published uint64
	Failed    uint64
	Dropped   uint64
}
