package model

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusDefaultsToClosed(t *testing.T) {
	var r ScanResult
	assert.Equal(t, StatusClosed, r.Status)
	assert.False(t, r.Open())
	assert.Equal(t, "CLOSED", r.Status.String())
	assert.Equal(t, "OPEN", StatusOpen.String())
}

func TestCauseString(t *testing.T) {
	assert.Equal(t, "refused", CauseRefused.String())
	assert.Equal(t, "timeout", CauseTimeout.String())
	assert.Equal(t, "other", Cause(42).String())
}

func TestTargetsCount(t *testing.T) {
	targets := Targets{
		Hosts: []netip.Addr{netip.MustParseAddr("10.0.0.1"), netip.MustParseAddr("::1")},
		Ports: []uint16{22, 80, 443},
	}
	assert.Equal(t, 6, targets.Count())
	assert.Zero(t, Targets{}.Count())
}
