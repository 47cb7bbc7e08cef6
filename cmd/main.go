package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"spark/internal/config"
	"spark/internal/utils"
	"spark/pkg/cli"
)

func main() {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "配置错误: %v\n", err)
		os.Exit(1)
	}
	utils.ConfigureLogging(cfg.Log, os.Stderr)

	// Ctrl-C 停止发起新的连接，已输出的结果保持有序
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	parser := cli.NewParser(cfg)
	code := cli.Execute(ctx, parser.Command(), os.Args[1:])
	stop()
	os.Exit(code)
}
