package target

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePorts 解析端口列表，支持单个端口、逗号分隔与闭区间范围 (如 443,80,8000-8002)。
// 保持书写顺序，不去重；任一项非法则整个解析失败
func ParsePorts(raw string) ([]uint16, error) {
	return fold(raw, nil, appendPortToken)
}

func appendPortToken(ports []uint16, token string) ([]uint16, error) {
	if !strings.Contains(token, "-") {
		port, err := parsePort(token)
		if err != nil {
			return nil, err
		}
		return append(ports, port), nil
	}

	bounds := strings.Split(token, "-")
	if len(bounds) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPortRange, token)
	}
	start, err := parsePort(bounds[0])
	if err != nil {
		return nil, err
	}
	end, err := parsePort(bounds[1])
	if err != nil {
		return nil, err
	}
	if start > end {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPortRange, token)
	}

	for port := int(start); port <= int(end); port++ {
		ports = append(ports, uint16(port))
	}
	return ports, nil
}

func parsePort(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPortNumber, s)
	}
	return uint16(v), nil
}
