package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"KissaHub/app/common/response"
	"KissaHub/app/services/profile/internal/config"
	"KissaHub/app/services/profile/internal/handler"
	"KissaHub/app/services/profile/internal/mq"
	"KissaHub/app/services/profile/internal/svc"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"
	"golang.org/x/sync/errgroup"
)

var configFile = flag.String("f", "etc/profile.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	server := rest.MustNewServer(c.RestConf)
	ctx := svc.NewServiceContext(c)
	defer ctx.Bus.Close()
	handler.RegisterHandlers(server, ctx)
	httpx.SetErrorHandlerCtx(response.ErrorHandler)

	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(rootCtx)
	group.Go(func() error { return mq.StartStatisticsConsumer(groupCtx, ctx) })
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
		logx.Errorw("profile stopped with error", logx.Field("err", err))
		os.Exit(1)
	}
	logx.Info("profile shutdown gracefully")
}
