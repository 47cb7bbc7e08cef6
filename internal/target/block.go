package target

import (
	"iter"
	"net/netip"
)

// Block 是一个 CIDR 地址块。地址按数值顺序惰性生成，可重复遍历，
// 包含网络地址与广播地址
type Block struct {
	prefix netip.Prefix
}

// ParseBlock 解析 CIDR 记法，主机位会被清零 (10.0.0.5/30 => 10.0.0.4/30)
func ParseBlock(raw string) (Block, error) {
	prefix, err := netip.ParsePrefix(raw)
	if err != nil {
		return Block{}, err
	}
	return Block{prefix: prefix.Masked()}, nil
}

// Size 返回块内地址数量。超过 2^62 的块 (大型 IPv6 网段) 返回 ok=false
func (b Block) Size() (n uint64, ok bool) {
	if !b.prefix.IsValid() {
		return 0, true
	}
	hostBits := b.prefix.Addr().BitLen() - b.prefix.Bits()
	if hostBits > 62 {
		return 0, false
	}
	return 1 << uint(hostBits), true
}

// All 按顺序遍历块内所有地址。零值 Block 不产生任何地址
func (b Block) All() iter.Seq[netip.Addr] {
	return func(yield func(netip.Addr) bool) {
		if !b.prefix.IsValid() {
			return
		}
		for addr := b.prefix.Addr(); addr.IsValid() && b.prefix.Contains(addr); addr = addr.Next() {
			if !yield(addr) {
				return
			}
		}
	}
}
