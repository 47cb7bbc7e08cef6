//go:build !unix

package scanner

import "spark/internal/model"

// 非 unix 平台只区分超时与取消，其余失败归为 other
func classifyErrno(error) model.Cause {
	return model.CauseNone
}
