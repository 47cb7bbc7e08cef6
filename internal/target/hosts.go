package target

import (
	"fmt"
	"net/netip"

	"spark/internal/config"
)

// ParseHosts 解析逗号分隔的主机列表。每一项先按单个地址解析，失败再按 CIDR 解析。
// 结果去重，保持首次出现的顺序；展开后的主机总数不能超过 maxHosts
func ParseHosts(raw string, maxHosts int) ([]netip.Addr, error) {
	if maxHosts <= 0 {
		maxHosts = config.DefaultMaxHosts
	}
	set := &hostSet{limit: maxHosts, seen: make(map[netip.Addr]struct{})}
	return fold(raw, nil, set.appendToken)
}

type hostSet struct {
	limit int
	seen  map[netip.Addr]struct{}
}

func (s *hostSet) appendToken(hosts []netip.Addr, token string) ([]netip.Addr, error) {
	if addr, err := netip.ParseAddr(token); err == nil {
		return s.add(hosts, addr, token)
	}

	block, err := ParseBlock(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHost, token)
	}
	if size, ok := block.Size(); !ok || size > uint64(s.limit) {
		return nil, fmt.Errorf("%w: %s exceeds %d hosts", ErrTooManyHosts, token, s.limit)
	}
	for addr := range block.All() {
		if hosts, err = s.add(hosts, addr, token); err != nil {
			return nil, err
		}
	}
	return hosts, nil
}

func (s *hostSet) add(hosts []netip.Addr, addr netip.Addr, token string) ([]netip.Addr, error) {
	if _, dup := s.seen[addr]; dup {
		return hosts, nil
	}
	if len(hosts) >= s.limit {
		return nil, fmt.Errorf("%w: %s exceeds %d hosts", ErrTooManyHosts, token, s.limit)
	}
	s.seen[addr] = struct{}{}
	return append(hosts, addr), nil
}
