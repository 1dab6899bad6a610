// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/Idris-jose/AnonVote/models"
)

const namespace = "anonvote"

// Recorder counts poll activity. It implements store.Observer.
type Recorder struct {
	pollsCreated   prometheus.Counter
	votes          prometheus.Counter
	optionsPerPoll prometheus.Histogram
	currentVotes   prometheus.Gauge
}

// New registers the collectors with reg. Registering two recorders on the
// same registry panics.
func New(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		pollsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "polls_created_total",
			Help:      "Number of polls created",
		}),
		votes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "votes_total",
			Help:      "Number of votes recorded across all polls",
		}),
		optionsPerPoll: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "poll_options",
			Help:      "Number of options per created poll",
			Buckets:   []float64{2, 3, 4, 5, 6, 8, 10},
		}),
		currentVotes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_voted_poll_total_votes",
			Help:      "Total votes of the poll that received the most recent vote",
		}),
	}
}

func (r *Recorder) PollCreated(p models.Poll) {
	r.pollsCreated.Inc()
	r.optionsPerPoll.Observe(float64(len(p.Options)))
}

func (r *Recorder) VoteRecorded(p models.Poll, _ int) {
	r.votes.Inc()
	r.currentVotes.Set(float64(p.TotalVotes))
}

// Write renders every metric family in g in the Prometheus text format.
func Write(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
