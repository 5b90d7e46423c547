package helper_util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBypassTime(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)

	got, err := ParseBypassTime("2024-06-01T10:00:00Z", ist)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)))

	got, err = ParseBypassTime("2024-06-01 10:00:00", ist)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 6, 1, 10, 0, 0, 0, ist)))

	got, err = ParseBypassTime(" 2024-06-01 ", time.UTC)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))

	_, err = ParseBypassTime("tomorrow", time.UTC)
	assert.Error(t, err)
	_, err = ParseBypassTime("", time.UTC)
	assert.Error(t, err)
}
