package youtube

import (
	"testing"

	"github.com/hahaha-network/revsync/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Filters(t *testing.T) {
	c := &Client{}

	assert.Equal(t, "group==abc123", c.filters("abc123", model.RegionAll))
	assert.Equal(t, "group==abc123;country==US", c.filters("abc123", model.RegionUS))
}

func TestMetricValue(t *testing.T) {
	t.Run("float", func(t *testing.T) {
		got, err := metricValue(float64(1234.56))
		require.NoError(t, err)
		assert.True(t, got.Equal(decimal.NewFromFloat(1234.56)))
	})

	t.Run("string", func(t *testing.T) {
		got, err := metricValue("987.65")
		require.NoError(t, err)
		assert.True(t, got.Equal(decimal.RequireFromString("987.65")))
	})

	t.Run("bad string", func(t *testing.T) {
		_, err := metricValue("not-a-number")
		assert.Error(t, err)
	})

	t.Run("unexpected type", func(t *testing.T) {
		_, err := metricValue([]any{1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected metric value type")
	})
}
