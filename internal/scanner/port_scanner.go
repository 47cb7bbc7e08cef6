package scanner

import (
	"context"
	"net/netip"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"spark/internal/model"
	"spark/internal/utils"
)

// 乱序完成的结果最多缓存 threads*reorderWindowFactor 个，超出后暂停派发
const reorderWindowFactor = 4

type PortScanner struct {
	threads int
	dialer  Dialer
	logger  *utils.Logger
}

// NewPortScanner threads 为同时进行的连接数，1 即逐个顺序探测。dialer 为 nil 时直连
func NewPortScanner(threads int, dialer Dialer) *PortScanner {
	if threads < 1 {
		threads = 1
	}
	if dialer == nil {
		dialer = NewDefaultDialer()
	}
	return &PortScanner{
		threads: threads,
		dialer:  dialer,
		logger:  utils.NewLogger("scanner"),
	}
}

// ScanPort 对单个 (主机, 端口) 发起一次 TCP 连接，连接阶段最长等待 timeout。
// 连接成功为 OPEN 并立即关闭；拒绝、超时、不可达等一律为 CLOSED，原因记录在 Cause
func (ps *PortScanner) ScanPort(ctx context.Context, host netip.Addr, port uint16, timeout time.Duration) model.ScanResult {
	result := model.ScanResult{
		Host:   host,
		Port:   port,
		Status: model.StatusClosed,
	}

	if timeout <= 0 {
		result.Cause = model.CauseTimeout
		return result
	}

	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	address := netip.AddrPortFrom(host, port).String()
	start := time.Now()
	conn, err := ps.dialer.DialContext(dialCtx, "tcp", address)
	result.Elapsed = time.Since(start)

	if err != nil {
		result.Cause = classifyError(err)
		result.Err = err
		if ps.logger.DebugEnabled() {
			ps.logger.WithFields(logrus.Fields{
				"address": address,
				"cause":   result.Cause.String(),
				"elapsed": result.Elapsed,
			}).Debugf("连接失败: %v", err)
		}
		return result
	}
	_ = conn.Close()

	result.Status = model.StatusOpen
	ps.logger.Debug("端口开放: %s (%v)", address, result.Elapsed)
	return result
}

type indexedResult struct {
	index  int
	result model.ScanResult
}

// Scan 探测所有 (主机, 端口) 组合，每个组合只尝试一次。
// 结果按主机在外、端口在内的解析顺序输出，与并发完成顺序无关。
// 取消 ctx 后不再发起新连接，进行中的连接被中止且其结果不输出，通道随后关闭。
// 调用方需读完通道或取消 ctx
func (ps *PortScanner) Scan(ctx context.Context, targets model.Targets) <-chan model.ScanResult {
	out := make(chan model.ScanResult)
	unordered := make(chan indexedResult, ps.threads)
	window := make(chan struct{}, ps.threads*reorderWindowFactor)

	// 派发
	go func() {
		defer close(unordered)

		var g errgroup.Group
		g.SetLimit(ps.threads)
		defer g.Wait()

		index := 0
		for _, host := range targets.Hosts {
			for _, port := range targets.Ports {
				if ctx.Err() != nil {
					ps.logger.Debug("扫描取消，已派发 %d/%d", index, targets.Count())
					return
				}
				select {
				case window <- struct{}{}:
				case <-ctx.Done():
					ps.logger.Debug("扫描取消，已派发 %d/%d", index, targets.Count())
					return
				}

				i := index
				g.Go(func() error {
					unordered <- indexedResult{index: i, result: ps.ScanPort(ctx, host, port, targets.Timeout)}
					return nil
				})
				index++
			}
		}
	}()

	// 按顺序重排输出
	go func() {
		defer close(out)

		pending := make(map[int]model.ScanResult)
		next := 0
		for r := range unordered {
			pending[r.index] = r.result
			for {
				res, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)

				// 取消后不再输出，被中止的连接不能当作 CLOSED 上报
				if ctx.Err() != nil || res.Cause == model.CauseCanceled {
					for range unordered {
					}
					return
				}

				select {
				case out <- res:
				case <-ctx.Done():
					for range unordered {
					}
					return
				}
				<-window
				next++
			}
		}
	}()

	return out
}

// ScanAll 等待全部结果，按解析顺序返回
func (ps *PortScanner) ScanAll(ctx context.Context, targets model.Targets) []model.ScanResult {
	results := make([]model.ScanResult, 0, targets.Count())
	for result := range ps.Scan(ctx, targets) {
		results = append(results, result)
	}
	return results
}
