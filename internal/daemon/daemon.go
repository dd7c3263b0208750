package daemon

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"klaxon/internal/alerts"
	"klaxon/internal/catalog"
	"klaxon/internal/config"
	"klaxon/internal/handlers"
	"klaxon/internal/kafka"
	"klaxon/internal/logger"
	"klaxon/internal/loop"
	"klaxon/internal/middleware"
)

// Daemon is the high-level coordinator wiring the Kafka consumer, the
// control loop, the Kafka producer and the HTTP boundary together.
type Daemon struct {
	cfg        *config.Config
	producer   *kafka.Producer
	consumer   *kafka.Consumer
	loop       *loop.Loop
	httpServer *http.Server
	wg         sync.WaitGroup
}

// New constructs a Daemon with given config.
func New(cfg *config.Config) *Daemon {
	return &Daemon{cfg: cfg}
}

// Run starts background goroutines and blocks until context cancelled.
func (d *Daemon) Run(ctx context.Context) error {
	log := logger.WithComponent("daemon")
	log.Info().Msg("daemon starting")

	if err := d.initProducer(); err != nil {
		log.Error().Err(err).Msg("failed to initialize producer")
		return fmt.Errorf("failed to initialize producer: %w", err)
	}
	defer d.producer.Close()

	d.initLoop()

	if err := d.initConsumer(); err != nil {
		log.Error().Err(err).Msg("failed to initialize consumer")
		return fmt.Errorf("failed to initialize consumer: %w", err)
	}
	defer d.consumer.Close()

	d.initHTTPServer()

	loopCtx, loopCancel := context.WithCancel(context.Background())
	defer loopCancel()

	// Control loop
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.loop.Run(loopCtx)
	}()

	// Kafka consumer feeding the loop mailbox
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if err := d.consumer.Run(ctx); err != nil {
			log.Error().Err(err).Msg("consumer error")
		}
	}()

	// HTTP server
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		log.Info().Str("addr", d.cfg.HTTPAddr).Msg("starting HTTP server")
		if err := d.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("HTTP server error")
		}
	}()

	// Stats reporting
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.reportStats(ctx)
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	return d.shutdown(loopCancel)
}

// initProducer initializes the Kafka producer for alert frames.
func (d *Daemon) initProducer() error {
	log := logger.WithComponent("daemon")
	producer, err := kafka.NewProducer(
		d.cfg.Kafka.Brokers,
		d.cfg.Kafka.AlertsTopic,
		d.cfg.Kafka.Producer,
	)
	if err != nil {
		return err
	}

	d.producer = producer
	log.Info().
		Strs("brokers", d.cfg.Kafka.Brokers).
		Str("topic", d.cfg.Kafka.AlertsTopic).
		Msg("kafka producer initialized")
	return nil
}

// initLoop initializes the control loop over the default catalog.
func (d *Daemon) initLoop() {
	log := logger.WithComponent("daemon")
	d.loop = loop.New(loop.Config{
		Catalog:    catalog.Default(),
		Publisher:  d.producer,
		TickPeriod: d.cfg.TickPeriod,
		Metric:     d.cfg.Metric,
		Params:     alerts.VehicleParams{},
	})
	log.Info().Dur("tick_period", d.cfg.TickPeriod).Msg("control loop initialized")
}

// initConsumer initializes the Kafka consumer for event assertions.
func (d *Daemon) initConsumer() error {
	log := logger.WithComponent("daemon")
	consumer, err := kafka.NewConsumer(d.cfg.Kafka, d.loop)
	if err != nil {
		return err
	}

	d.consumer = consumer
	log.Info().Str("topic", d.cfg.Kafka.EventsTopic).Msg("kafka consumer initialized")
	return nil
}

// initHTTPServer initializes the HTTP server with handlers.
func (d *Daemon) initHTTPServer() {
	mux := http.NewServeMux()

	assertHandler := handlers.NewAssertHandler(handlers.AssertConfig{Loop: d.loop})
	mux.Handle("/events", middleware.Chain(
		assertHandler,
		middleware.Recovery,
		middleware.Logging,
	))

	mux.Handle("/state", middleware.Chain(
		handlers.NewStateHandler(d.loop),
		middleware.Recovery,
	))

	mux.Handle("/telemetry", middleware.Chain(
		handlers.NewTelemetryHandler(d.loop),
		middleware.Recovery,
		middleware.Logging,
	))

	mux.HandleFunc("/health", d.healthHandler)

	// Prometheus metrics endpoint
	mux.Handle("/metrics", promhttp.Handler())

	d.httpServer = &http.Server{
		Addr:         d.cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// shutdown performs graceful shutdown.
func (d *Daemon) shutdown(loopCancel context.CancelFunc) error {
	log := logger.WithComponent("daemon")
	log.Info().Msg("initiating graceful shutdown")

	// 1. Stop accepting new HTTP requests
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info().Msg("stopping HTTP server")
	if err := d.httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop the control loop; the last frame has been published
	log.Info().Msg("stopping control loop")
	loopCancel()

	// 3. Close producer
	log.Info().Msg("closing kafka producer")
	if err := d.producer.Close(); err != nil {
		log.Error().Err(err).Msg("producer close error")
	}

	// 4. Wait for all goroutines
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info().Msg("daemon stopped gracefully")
	case <-time.After(15 * time.Second):
		log.Warn().Msg("shutdown timeout - forcing exit")
	}

	return nil
}

// reportStats periodically logs statistics.
func (d *Daemon) reportStats(ctx context.Context) {
	log := logger.WithComponent("daemon")
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			loopStats := d.loop.Stats()
			producerStats := d.producer.Stats()

			log.Info().
				Uint64("frames_published", loopStats.Published).
				Uint64("frames_failed", loopStats.Failed).
				Uint64("assertions_dropped", loopStats.Dropped).
				Uint64("producer_sent", producerStats.FramesSent).
				Uint64("producer_failed", producerStats.FramesFailed).
				Uint64("producer_bytes", producerStats.BytesWritten).
				Msg("stats")
		}
	}
}

// healthHandler handles health check requests.
func (d *Daemon) healthHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := d.producer.HealthCheck(ctx); err != nil {
		http.Error(w, fmt.Sprintf("unhealthy: %v", err), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"healthy","timestamp":"%s"}`, time.Now().Format(time.RFC3339))
}
