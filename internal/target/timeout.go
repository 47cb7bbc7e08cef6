package target

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ParseTimeout 解析超时，格式为非负整数加单位 ms 或 s (500ms, 3s)
func ParseTimeout(raw string) (time.Duration, error) {
	var numeric string
	var unit time.Duration
	switch {
	case strings.HasSuffix(raw, "ms"):
		numeric, unit = strings.TrimSuffix(raw, "ms"), time.Millisecond
	case strings.HasSuffix(raw, "s"):
		numeric, unit = strings.TrimSuffix(raw, "s"), time.Second
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeoutUnit, raw)
	}

	v, err := strconv.ParseUint(numeric, 10, 64)
	if err != nil || v > uint64(math.MaxInt64/int64(unit)) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeoutValue, raw)
	}
	return time.Duration(v) * unit, nil
}
