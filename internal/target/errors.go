package target

import "errors"

// 解析错误。调用方用 errors.Is 判断类别，具体出错的参数通过 %w 包装附带
var (
	ErrUsage               = errors.New("Usage: ./spark <ips> -p <ports> [-t <timeout>]")
	ErrInvalidHost         = errors.New("Invalid IP address or CIDR range")
	ErrTooManyHosts        = errors.New("Address range too large")
	ErrInvalidArgument     = errors.New("Invalid argument")
	ErrInvalidPortNumber   = errors.New("Invalid port number")
	ErrInvalidPortRange    = errors.New("Invalid port range")
	ErrMissingTimeoutValue = errors.New("Timeout value is missing")
	ErrInvalidTimeoutValue = errors.New("Invalid timeout value")
	ErrInvalidTimeoutUnit  = errors.New("Invalid timeout unit")
)
