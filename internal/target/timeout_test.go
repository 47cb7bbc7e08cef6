package target

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeout(t *testing.T) {
	cases := map[string]time.Duration{
		"500ms":  500 * time.Millisecond,
		"3s":     3 * time.Second,
		"0s":     0,
		"0ms":    0,
		"1500ms": 1500 * time.Millisecond,
	}
	for raw, want := range cases {
		t.Run(raw, func(t *testing.T) {
			got, err := ParseTimeout(raw)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseTimeout_Invalid(t *testing.T) {
	cases := map[string]error{
		"5x":                    ErrInvalidTimeoutUnit,
		"5":                     ErrInvalidTimeoutUnit,
		"":                      ErrInvalidTimeoutUnit,
		"5m":                    ErrInvalidTimeoutUnit,
		"s":                     ErrInvalidTimeoutValue,
		"ms":                    ErrInvalidTimeoutValue,
		"-5s":                   ErrInvalidTimeoutValue,
		"1.5s":                  ErrInvalidTimeoutValue,
		"abcms":                 ErrInvalidTimeoutValue,
		"99999999999999999999s": ErrInvalidTimeoutValue,
		"9223372036854775807s":  ErrInvalidTimeoutValue,
	}
	for raw, want := range cases {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseTimeout(raw)
			assert.ErrorIs(t, err, want)
		})
	}
}
