package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"spark/internal/config"
	"spark/internal/model"
	"spark/internal/scanner"
	"spark/internal/target"
	"spark/internal/utils"
)

type Option func(*Parser)

// WithDialer 替换探测使用的拨号器
func WithDialer(d scanner.Dialer) Option {
	return func(p *Parser) {
		p.dialer = d
	}
}

type Parser struct {
	cfg    *config.Config
	dialer scanner.Dialer
	logger *utils.Logger
}

func NewParser(cfg *config.Config, opts ...Option) *Parser {
	p := &Parser{
		cfg:    cfg,
		logger: utils.NewLogger("cli"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Command 根命令。参数按位置解析 (<hosts> -p <ports> [-t <timeout>])，
// 所以关闭 cobra 自身的 flag 解析
func (p *Parser) Command() *cobra.Command {
	return &cobra.Command{
		Use:                "spark <ips> -p <ports> [-t <timeout>]",
		Short:              "TCP 端口连通性探测",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return p.run(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}
}

func (p *Parser) run(ctx context.Context, out io.Writer, args []string) error {
	targets, err := target.NewResolver(p.cfg).Resolve(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p.logger.Info("开始探测 %d 个主机, %d 个端口, 超时 %v, 并发 %d",
		len(targets.Hosts), len(targets.Ports), targets.Timeout, p.cfg.Workers)

	formatter := NewOutputFormatter(out)
	portScanner := scanner.NewPortScanner(p.cfg.Workers, p.dialer)

	startTime := time.Now()
	var openPorts, total int
	for result := range portScanner.Scan(ctx, targets) {
		if err := formatter.PrintResult(result); err != nil {
			return err
		}
		total++
		if result.Status == model.StatusOpen {
			openPorts++
		}
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("scan interrupted: %w", err)
	}

	p.logger.Info("探测完成，%d/%d 开放，耗时 %v", openPorts, total, time.Since(startTime))
	return nil
}

// Execute 执行命令并返回进程退出码。解析错误输出 "Error: <message>" 且不做任何探测
func Execute(ctx context.Context, cmd *cobra.Command, args []string) int {
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		NewOutputFormatter(cmd.OutOrStdout()).PrintError(err)
		return 1
	}
	return 0
}
