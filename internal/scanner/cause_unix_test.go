//go:build unix

package scanner

import (
	"context"
	"net"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"spark/internal/model"
)

func TestClassifyErrno(t *testing.T) {
	refused := &net.OpError{Op: "dial", Err: &os.SyscallError{Syscall: "connect", Err: unix.ECONNREFUSED}}
	assert.Equal(t, model.CauseRefused, classifyError(refused))

	hostUnreach := &net.OpError{Op: "dial", Err: &os.SyscallError{Syscall: "connect", Err: unix.EHOSTUNREACH}}
	assert.Equal(t, model.CauseUnreachable, classifyError(hostUnreach))

	netUnreach := &net.OpError{Op: "dial", Err: unix.ENETUNREACH}
	assert.Equal(t, model.CauseUnreachable, classifyError(netUnreach))
}

func TestScanPort_RefusedCause(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := uint16(l.Addr().(*net.TCPAddr).Port)
	require.NoError(t, l.Close())
	time.Sleep(50 * time.Millisecond)

	res := NewPortScanner(1, nil).ScanPort(context.Background(), loopback, port, time.Second)
	assert.Equal(t, model.StatusClosed, res.Status)
	assert.Equal(t, model.CauseRefused, res.Cause)
}
