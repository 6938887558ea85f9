package main

import (
	"flag"
	"fmt"

	"KissaHub/app/common/outbox"
	"KissaHub/app/common/response"
	"KissaHub/app/services/moderation/internal/config"
	"KissaHub/app/services/moderation/internal/handler"
	"KissaHub/app/services/moderation/internal/svc"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"
)

var configFile = flag.String("f", "etc/moderation.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

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

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
