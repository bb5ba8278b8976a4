package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/rsvp-tracker/internal/config"
	"github.com/phrazzld/rsvp-tracker/internal/events"
	"github.com/phrazzld/rsvp-tracker/internal/metrics"
	"github.com/phrazzld/rsvp-tracker/internal/platform/logger"
	"github.com/phrazzld/rsvp-tracker/internal/platform/memory"
	"github.com/phrazzld/rsvp-tracker/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

// app wires the components a command needs.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	service  service.RsvpService
	registry *prometheus.Registry
}

// newApp loads configuration, sets up logging to logOut, and builds the
// RSVP service with its event emitter and metrics collector.
func newApp(flags *globalFlags, logOut io.Writer) (*app, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
	}

	slogger, err := logger.Setup(cfg.Logging, logOut)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slogger.Debug("configuration loaded",
		"log_level", cfg.Logging.Level,
		"log_format", cfg.Logging.Format,
		"event", cfg.Event.Name)

	emitter := events.NewInMemoryEventEmitter(slogger)
	svc := service.NewRsvpService(
		logger.New(slogger).With("component", "rsvp_service"),
		service.WithStore(memory.NewRsvpStore(slogger)),
		service.WithEmitter(emitter),
	)

	registry := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(registry, cfg.Event.MetricsNamespace, svc)
	if err != nil {
		return nil, err
	}
	emitter.RegisterHandler(collector)

	return &app{
		cfg:      cfg,
		log:      slogger,
		service:  svc,
		registry: registry,
	}, nil
}

// printMetrics writes every gathered sample to w.
func (a *app) printMetrics(w io.Writer) error {
	samples, err := metrics.Gather(a.registry)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, renderHeading("Metrics:"))
	for _, s := range samples {
		fmt.Fprintln(w, s.String())
	}
	return nil
}
