package target

import (
	"fmt"
	"time"

	"spark/internal/config"
	"spark/internal/model"
	"spark/internal/utils"
)

const (
	portFlag    = "-p"
	timeoutFlag = "-t"
)

// Resolver 把命令行位置参数 <hosts> -p <ports> [-t <timeout>] 解析为探测目标。
// 不做任何网络 I/O
type Resolver struct {
	maxHosts       int
	defaultTimeout time.Duration
	logger         *utils.Logger
}

func NewResolver(cfg *config.Config) *Resolver {
	return &Resolver{
		maxHosts:       cfg.MaxHosts,
		defaultTimeout: cfg.DefaultTimeout,
		logger:         utils.NewLogger("target"),
	}
}

// Resolve 解析程序名之后的参数。参数顺序固定，不支持重排
func (r *Resolver) Resolve(args []string) (model.Targets, error) {
	if len(args) < 3 {
		return model.Targets{}, ErrUsage
	}

	hosts, err := ParseHosts(args[0], r.maxHosts)
	if err != nil {
		return model.Targets{}, err
	}

	if args[1] != portFlag {
		return model.Targets{}, fmt.Errorf("%w: %q", ErrInvalidArgument, args[1])
	}
	ports, err := ParsePorts(args[2])
	if err != nil {
		return model.Targets{}, err
	}

	timeout := r.defaultTimeout
	if len(args) > 3 {
		if args[3] != timeoutFlag {
			return model.Targets{}, fmt.Errorf("%w: %q", ErrInvalidArgument, args[3])
		}
		if len(args) < 5 {
			return model.Targets{}, ErrMissingTimeoutValue
		}
		if timeout, err = ParseTimeout(args[4]); err != nil {
			return model.Targets{}, err
		}
		if len(args) > 5 {
			r.logger.Warn("忽略多余参数: %v", args[5:])
		}
	}

	r.logger.Debug("解析完成: %d 个主机, %d 个端口, 超时 %v", len(hosts), len(ports), timeout)
	return model.Targets{Hosts: hosts, Ports: ports, Timeout: timeout}, nil
}
