package clan

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"dragon-clan/dragon"
)

// Metrics records simulation activity. A nil *Metrics records nothing.
type Metrics struct {
	interactions     *prometheus.CounterVec
	opinionChange    prometheus.Histogram
	reciprocalChange prometheus.Histogram
	population       *prometheus.GaugeVec
}

// NewMetrics registers the clan collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		interactions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "dragonclan",
				Subsystem: "interaction",
				Name:      "resolved_total",
				Help:      "Interactions resolved, by narrative kind",
			},
			[]string{"kind"},
		),
		opinionChange: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dragonclan",
			Subsystem: "interaction",
			Name:      "opinion_change",
			Help:      "Opinion change proposed by the initiating dragon",
			Buckets:   prometheus.LinearBuckets(-20, 5, 9),
		}),
		reciprocalChange: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dragonclan",
			Subsystem: "interaction",
			Name:      "reciprocal_change",
			Help:      "Damped opinion change applied to the other dragon",
			Buckets:   prometheus.LinearBuckets(-20, 5, 9),
		}),
		population: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "dragonclan",
				Subsystem: "clan",
				Name:      "dragons",
				Help:      "Dragons currently in the clan",
			},
			[]string{"clan"},
		),
	}
}

func (m *Metrics) recordInteraction(ev *InteractionEvent) {
	if m == nil {
		return
	}
	m.interactions.WithLabelValues(ev.Kind.String()).Inc()
	m.opinionChange.Observe(float64(ev.OpinionChange))
	m.reciprocalChange.Observe(ev.ReciprocalChange)
}

func (m *Metrics) setPopulation(clan string, n int) {
	if m == nil {
		return
	}
	m.population.WithLabelValues(clan).Set(float64(n))
}

func (m *Metrics) dropClan(clan string) {
	if m == nil {
		return
	}
	m.population.DeleteLabelValues(clan)
}

// seed every kind so a scrape shows zeros before the first interaction
func (m *Metrics) init() {
	if m == nil {
		return
	}
	for _, k := range dragon.AllKinds {
		m.interactions.WithLabelValues(k.String())
	}
}
