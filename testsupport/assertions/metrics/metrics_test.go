package metrics_test

import (
	"strings"
	"testing"

	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions"
	assertmetrics "github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions/metrics"
	"github.com/codeready-toolchain/toolchain-assertions/testsupport/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	signups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sandbox_user_signups_total",
		Help: "Total number of unique user signups",
	}, []string{"domain"})
	spaces := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "sandbox_spaces_current",
		Help: "Number of spaces",
	})
	reg.MustRegister(signups, spaces)
	signups.WithLabelValues("external").Add(3)
	signups.WithLabelValues("internal").Inc()
	spaces.Set(7)
	return reg
}

func TestMetrics(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		// given
		s := assertions.NewSoft()
		families, err := metrics.Gather(newRegistry())
		require.NoError(t, err)

		// when
		assertmetrics.That(s, families).
			HasFamily("sandbox_spaces_current").
			HasValue("sandbox_spaces_current", 7).
			HasValue("sandbox_user_signups_total", 3, "domain", "external").
			HasLabels("sandbox_user_signups_total", map[string]string{"domain": "internal"})

		// then
		require.NoError(t, s.Err())
	})

	t.Run("gathered", func(t *testing.T) {
		assertmetrics.ThatGathered(t, newRegistry()).
			HasValue("sandbox_user_signups_total", 1, "domain", "internal")
	})

	t.Run("parsed", func(t *testing.T) {
		// given
		families, err := metrics.Parse(strings.NewReader("# TYPE sandbox_spaces_current gauge\nsandbox_spaces_current 2\n"))
		require.NoError(t, err)

		// when
		assertions.ThatAs[*assertmetrics.Assert](t, families).HasValue("sandbox_spaces_current", 2)
	})

	t.Run("failures", func(t *testing.T) {
		// given
		s := assertions.NewSoft()
		families, err := metrics.Gather(newRegistry())
		require.NoError(t, err)

		// when
		assertmetrics.That(s, families).
			HasFamily("sandbox_unknown").
			HasValue("sandbox_spaces_current", 8).
			HasValue("sandbox_user_signups_total", 3, "domain", "unknown").
			HasLabels("sandbox_user_signups_total", map[string]string{"domain": "unknown"})

		// then
		errs := s.ErrorsCollected()
		require.Len(t, errs, 4)
		assert.Equal(t, "Expecting the metrics:\n  [\"sandbox_spaces_current\", \"sandbox_user_signups_total\"]\nto contain the family:\n  \"sandbox_unknown\"", errs[0].Error())
		assert.Equal(t, "Expecting the metric 'sandbox_spaces_current' to have the value:\n  8.0\nbut was:\n  7.0", errs[1].Error())
		assert.Equal(t, "Expecting the metric 'sandbox_user_signups_total{domain=\"unknown\"}' to have the value:\n  3.0\nbut: metric 'sandbox_user_signups_total{[domain unknown]}' not found", errs[2].Error())
		assert.Contains(t, errs[3].Error(), "Expecting a metric of the family \"sandbox_user_signups_total\" to have the labels:\n  {\"domain\"=\"unknown\"}")
	})

	t.Run("nil families", func(t *testing.T) {
		// given
		s := assertions.NewSoft()

		// when
		assertmetrics.That(s, nil).HasFamily("sandbox_spaces_current")

		// then
		errs := s.ErrorsCollected()
		require.Len(t, errs, 1)
		assert.ErrorIs(t, errs[0], assertions.ErrNullSubject)
	})
}
