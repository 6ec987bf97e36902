package metrics

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"k8s.io/client-go/rest"
)

// Families are the metric families indexed by their names.
type Families map[string]*dto.MetricFamily

// Gather collects the metric families of the gatherer, a prometheus.Registry for example.
func Gather(g prometheus.Gatherer) (Families, error) {
	mfs, err := g.Gather()
	if err != nil {
		return nil, errors.Wrap(err, "unable to gather the metrics")
	}
	families := Families{}
	for _, mf := range mfs {
		families[mf.GetName()] = mf
	}
	return families, nil
}

// Parse reads the metric families in the text exposition format.
func Parse(r io.Reader) (Families, error) {
	parser := expfmt.TextParser{}
	families, err := parser.TextToMetricFamilies(r)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse the metrics")
	}
	return families, nil
}

// Fetch gets the metric families exposed at baseURL + "/metrics", authenticating with the
// bearer token of the config if there is one.
func Fetch(restConfig *rest.Config, baseURL string) (Families, error) {
	client := http.Client{
		Timeout: time.Duration(30 * time.Second),
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec
		},
	}
	request, err := http.NewRequest(http.MethodGet, baseURL+"/metrics", nil)
	if err != nil {
		return nil, err
	}
	if restConfig != nil && restConfig.BearerToken != "" {
		request.Header.Add("Authorization", fmt.Sprintf("Bearer %s", restConfig.BearerToken))
	}
	resp, err := client.Do(request)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected status code %d when fetching the metrics from %s", resp.StatusCode, baseURL)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return Parse(bytes.NewReader(body))
}

// Value returns the value of the counter, gauge or untyped metric of the family with exactly
// the given labels, passed as key-value pairs.
func Value(families Families, family string, labels ...string) (float64, error) {
	m, t, err := find(families, family, labels)
	if err != nil {
		return 0, err
	}
	switch t { // nolint:exhaustive
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue(), nil
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue(), nil
	case dto.MetricType_UNTYPED:
		return m.GetUntyped().GetValue(), nil
	default:
		return 0, errors.Errorf("unknown or unsupported metric type %s", t.String())
	}
}

// Buckets returns the buckets of the histogram metric of the family with exactly the given labels.
func Buckets(families Families, family string, labels ...string) ([]*dto.Bucket, error) {
	m, t, err := find(families, family, labels)
	if err != nil {
		return nil, err
	}
	if t != dto.MetricType_HISTOGRAM {
		return nil, errors.Errorf("unknown or unsupported metric type %s", t.String())
	}
	return m.GetHistogram().GetBucket(), nil
}

// Labels returns the labels (indexed by key) of all the metrics of the family.
func Labels(families Families, family string) []map[string]string {
	f, ok := families[family]
	if !ok {
		return nil
	}
	result := make([]map[string]string, 0, len(f.GetMetric()))
	for _, m := range f.GetMetric() {
		labels := map[string]string{}
		for _, kv := range m.GetLabel() {
			labels[kv.GetName()] = kv.GetValue()
		}
		result = append(result, labels)
	}
	return result
}

func find(families Families, family string, expectedLabels []string) (*dto.Metric, dto.MetricType, error) {
	if len(expectedLabels)%2 != 0 {
		return nil, 0, errors.New("received odd number of label arguments, labels must be key-value pairs")
	}
	f, ok := families[family]
	if ok {
		// metric without labels
		if len(f.GetMetric()) == 1 && len(expectedLabels) == 0 {
			return f.GetMetric()[0], f.GetType(), nil
		}
	metricSearch:
		for _, m := range f.GetMetric() {
			metricLabels := m.GetLabel()
			if len(metricLabels) != len(expectedLabels)/2 {
				continue
			}
			for i := 0; i < len(expectedLabels); i += 2 {
				labelFound := false
				for _, l := range metricLabels {
					if l.GetName() == expectedLabels[i] && l.GetValue() == expectedLabels[i+1] {
						labelFound = true
					}
				}
				if !labelFound {
					continue metricSearch
				}
			}
			return m, f.GetType(), nil
		}
	}
	return nil, 0, errors.Errorf("metric '%s{%v}' not found", family, expectedLabels)
}
