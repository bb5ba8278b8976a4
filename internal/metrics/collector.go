package metrics

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/phrazzld/rsvp-tracker/internal/domain"
	"github.com/phrazzld/rsvp-tracker/internal/events"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// CountsSource provides the current response tally.
type CountsSource interface {
	GetRsvpCounts(ctx context.Context) domain.RsvpCounts
}

// Collector owns the RSVP metrics registered on one registerer.
type Collector struct {
	submissions *prometheus.CounterVec
	responses   []prometheus.GaugeFunc
	total       prometheus.GaugeFunc
}

// NewCollector creates the RSVP metrics and registers them on reg.
// namespace may be empty. Returns an error if any metric is already
// registered.
func NewCollector(reg prometheus.Registerer, namespace string, counts CountsSource) (*Collector, error) {
	c := &Collector{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rsvp_submissions_total",
			Help:      "Total number of stored RSVP submissions by action and status",
		}, []string{"action", "status"}),
	}

	for _, status := range domain.RsvpStatuses() {
		status := status
		c.responses = append(c.responses, prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "rsvp_responses",
			Help:        "Current number of players per RSVP status",
			ConstLabels: prometheus.Labels{"status": status.String()},
		}, func() float64 {
			return float64(counts.GetRsvpCounts(context.Background()).For(status))
		}))
	}

	c.total = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "rsvp_responses_total",
		Help:      "Current number of players who responded",
	}, func() float64 {
		return float64(counts.GetRsvpCounts(context.Background()).Total)
	})

	collectors := []prometheus.Collector{c.submissions, c.total}
	for _, g := range c.responses {
		collectors = append(collectors, g)
	}
	for _, col := range collectors {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("registering rsvp metrics: %w", err)
		}
	}

	return c, nil
}

// Ensure Collector implements events.EventHandler interface
var _ events.EventHandler = (*Collector)(nil)

// HandleEvent counts one stored submission.
func (c *Collector) HandleEvent(_ context.Context, event *events.RsvpEvent) error {
	action := "added"
	if event.IsUpdate() {
		action = "updated"
	}
	c.submissions.WithLabelValues(action, event.Status.String()).Inc()
	return nil
}

// Sample is one gathered metric value.
type Sample struct {
	Name   string
	Labels map[string]string
	Value  float64
}

// Key identifies the series, e.g. rsvp_responses{status="Yes"}.
func (s Sample) Key() string {
	if len(s.Labels) == 0 {
		return s.Name
	}
	keys := make([]string, 0, len(s.Labels))
	for k := range s.Labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%q", k, s.Labels[k]))
	}
	return fmt.Sprintf("%s{%s}", s.Name, strings.Join(pairs, ","))
}

// String renders the sample in exposition-like form, e.g.
// rsvp_responses{status="Yes"} 2.
func (s Sample) String() string {
	return fmt.Sprintf("%s %g", s.Key(), s.Value)
}

// Gather collects counter and gauge samples from g, sorted by name then
// labels.
func Gather(g prometheus.Gatherer) ([]Sample, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, fmt.Errorf("gathering metrics: %w", err)
	}

	var samples []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			value, ok := sampleValue(mf.GetType(), m)
			if !ok {
				continue
			}
			labels := make(map[string]string, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			samples = append(samples, Sample{Name: mf.GetName(), Labels: labels, Value: value})
		}
	}

	sort.SliceStable(samples, func(i, j int) bool {
		if samples[i].Name != samples[j].Name {
			return samples[i].Name < samples[j].Name
		}
		return samples[i].Key() < samples[j].Key()
	})
	return samples, nil
}

func sampleValue(t dto.MetricType, m *dto.Metric) (float64, bool) {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue(), true
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue(), true
	default:
		return 0, false
	}
}
