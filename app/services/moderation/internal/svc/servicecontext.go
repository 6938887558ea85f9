package svc

import (
	"KissaHub/app/common/bus"
	"KissaHub/app/common/geocode"
	"KissaHub/app/common/middleware"
	"KissaHub/app/common/outbox"
	"KissaHub/app/common/snowflake"
	moderationmodel "KissaHub/app/dal/moderation"
	outboxmodel "KissaHub/app/dal/outbox"
	"KissaHub/app/services/moderation/internal/config"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/go-zero/rest"
)

type ServiceContext struct {
	Config config.Config

	IdentityMiddleware rest.Middleware

	ListingsModel moderationmodel.ListingsModel
	Outbox        *outbox.Relay
	Geocoder      geocode.Geocoder

	Bus *bus.Bus
}

func NewServiceContext(c config.Config) *ServiceContext {
	if c.SnowflakeNode > 0 {
		logx.Must(snowflake.SetNodeID(c.SnowflakeNode))
	}

	conn := sqlx.NewMysql(c.MysqlConf.DataSource)
	b := bus.MustNewBus(c.KafkaConf)

	return &ServiceContext{
		Config:             c,
		IdentityMiddleware: middleware.NewIdentityMiddleware().Handle,
		ListingsModel:      moderationmodel.NewListingsModel(conn, c.CacheConf),
		Outbox:             outbox.NewRelay(outboxmodel.NewOutboxEventsModel(conn), b.Publisher, c.RelayConf),
		Geocoder:           geocode.MustNewGeocoder(c.GeocodeConf),
		Bus:                b,
	}
}
