package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"KissaHub/app/common/outbox"
	"KissaHub/app/common/response"
	"KissaHub/app/services/catalog/internal/config"
	"KissaHub/app/services/catalog/internal/handler"
	"KissaHub/app/services/catalog/internal/mq"
	"KissaHub/app/services/catalog/internal/svc"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"
	"golang.org/x/sync/errgroup"
)

var configFile = flag.String("f", "etc/catalog.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	server := rest.MustNewServer(c.RestConf)
	ctx := svc.NewServiceContext(c)
	defer ctx.Bus.Close()
	handler.RegisterHandlers(server, ctx)
	httpx.SetErrorHandlerCtx(response.ErrorHandler)

	stopRelay, err := outbox.StartAsynq(c.AsynqConf, c.RelayConf, c.RedisConf.Host, ctx.Outbox)
	if err != nil {
		logx.Errorw("start outbox relay failed", logx.Field("err", err))
		panic(err)
	}
	defer stopRelay()

	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(rootCtx)
	group.Go(func() error { return mq.StartApprovalConsumer(groupCtx, ctx) })
	group.Go(func() error {
		fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
		server.Start()
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		server.Stop()
		return nil
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logx.Errorw("catalog stopped with error", logx.Field("err", err))
		os.Exit(1)
	}
	logx.Info("catalog shutdown gracefully")
}
