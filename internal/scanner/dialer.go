package scanner

import (
	"context"
	"net"
)

// Dialer 建立网络连接。默认使用 net.Dialer，测试中可替换
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// NewDefaultDialer 直连拨号器。超时由调用方的 context 控制
func NewDefaultDialer() Dialer {
	return &net.Dialer{}
}
