package model

import (
	"net/netip"
	"time"
)

// Targets 解析后的探测目标: 主机集合、端口序列与连接超时
type Targets struct {
	Hosts   []netip.Addr
	Ports   []uint16
	Timeout time.Duration
}

// Count 返回 (主机, 端口) 组合总数
func (t Targets) Count() int {
	return len(t.Hosts) * len(t.Ports)
}

// Status 端口状态。零值为 CLOSED，任何非成功结果都归为 CLOSED
type Status int

const (
	StatusClosed Status = iota
	StatusOpen
)

func (s Status) String() string {
	if s == StatusOpen {
		return "OPEN"
	}
	return "CLOSED"
}

// Cause 连接失败的具体原因，仅用于诊断，不影响 Status
type Cause int

const (
	CauseNone Cause = iota
	CauseRefused
	CauseTimeout
	CauseUnreachable
	CauseCanceled
	CauseOther
)

var causeNames = [...]string{
	CauseNone:        "none",
	CauseRefused:     "refused",
	CauseTimeout:     "timeout",
	CauseUnreachable: "unreachable",
	CauseCanceled:    "canceled",
	CauseOther:       "other",
}

func (c Cause) String() string {
	if c < 0 || int(c) >= len(causeNames) {
		return "other"
	}
	return causeNames[c]
}

// ScanResult 单次 TCP 连接结果
type ScanResult struct {
	Host    netip.Addr
	Port    uint16
	Status  Status
	Cause   Cause
	Elapsed time.Duration
	Err     error
}

// Open 端口是否开放
func (r ScanResult) Open() bool {
	return r.Status == StatusOpen
}
