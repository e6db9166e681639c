package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) time.Time {
	parsed, err := time.Parse(time.RFC3339, s)
	require.Nil(t, err)
	return parsed
}
