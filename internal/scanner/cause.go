package scanner

import (
	"context"
	"errors"
	"net"

	"spark/internal/model"
)

// classifyError 把连接错误归类为诊断原因。结果只用于日志，端口状态统一为 CLOSED
func classifyError(err error) model.Cause {
	if err == nil {
		return model.CauseNone
	}
	if errors.Is(err, context.Canceled) {
		return model.CauseCanceled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return model.CauseTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return model.CauseTimeout
	}
	if cause := classifyErrno(err); cause != model.CauseNone {
		return cause
	}
	return model.CauseOther
}
