package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, DEBUG, ParseLevel("debug"))
	require.Equal(t, INFO, ParseLevel("INFO"))
	require.Equal(t, WARNING, ParseLevel("warn"))
	require.Equal(t, ERROR, ParseLevel("error"))
	require.Equal(t, SILENCE, ParseLevel("silent"))
	require.Equal(t, INFO, ParseLevel("whatever"))
}
