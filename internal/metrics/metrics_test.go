package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := New()

	c.ObserveOperation("create", StatusOK)
	c.ObserveOperation("create", StatusOK)
	c.ObserveOperation("create", StatusInvalid)
	c.ObserveValidationFailure("InvalidPhone")
	c.SetRecords(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.Operations.WithLabelValues("create", StatusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Operations.WithLabelValues("create", StatusInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ValidationFailures.WithLabelValues("InvalidPhone")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.Records))

	families, err := c.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"subscriptions_operations_total",
		"subscriptions_validation_failures_total",
		"subscriptions_records",
	}, names)
}
