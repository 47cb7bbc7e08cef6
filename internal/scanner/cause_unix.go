//go:build unix

package scanner

import (
	"errors"

	"golang.org/x/sys/unix"

	"spark/internal/model"
)

func classifyErrno(err error) model.Cause {
	switch {
	case errors.Is(err, unix.ECONNREFUSED):
		return model.CauseRefused
	case errors.Is(err, unix.ETIMEDOUT):
		return model.CauseTimeout
	case errors.Is(err, unix.EHOSTUNREACH), errors.Is(err, unix.ENETUNREACH):
		return model.CauseUnreachable
	}
	return model.CauseNone
}
