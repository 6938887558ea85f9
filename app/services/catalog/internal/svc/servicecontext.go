package svc

import (
	"KissaHub/app/common/bus"
	appcache "KissaHub/app/common/cache"
	"KissaHub/app/common/middleware"
	"KissaHub/app/common/outbox"
	"KissaHub/app/common/snowflake"
	catalogmodel "KissaHub/app/dal/catalog"
	outboxmodel "KissaHub/app/dal/outbox"
	"KissaHub/app/services/catalog/internal/config"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/go-zero/rest"
)

type ServiceContext struct {
	Config config.Config

	IdentityMiddleware rest.Middleware

	CoffeeShopsModel   catalogmodel.CoffeeShopsModel
	ShopLocationsModel catalogmodel.ShopLocationsModel
	ShopContactsModel  catalogmodel.ShopContactsModel
	ShopPhotosModel    catalogmodel.ShopPhotosModel
	ShopSchedulesModel catalogmodel.ShopSchedulesModel
	ReviewsModel       catalogmodel.ReviewsModel
	CheckinsModel      catalogmodel.CheckinsModel

	Cache       *appcache.ReadThrough
	Invalidator *appcache.Invalidator

	Outbox *outbox.Relay
	Bus    *bus.Bus
}

func NewServiceContext(c config.Config) *ServiceContext {
	if c.SnowflakeNode > 0 {
		logx.Must(snowflake.SetNodeID(c.SnowflakeNode))
	}

	conn := sqlx.NewMysql(c.MysqlConf.DataSource)
	store := appcache.NewRedisStore(redis.MustNewRedis(c.RedisConf))
	b := bus.MustNewBus(c.KafkaConf)

	return &ServiceContext{
		Config:             c,
		IdentityMiddleware: middleware.NewIdentityMiddleware().Handle,
		CoffeeShopsModel:   catalogmodel.NewCoffeeShopsModel(conn),
		ShopLocationsModel: catalogmodel.NewShopLocationsModel(conn),
		ShopContactsModel:  catalogmodel.NewShopContactsModel(conn),
		ShopPhotosModel:    catalogmodel.NewShopPhotosModel(conn),
		ShopSchedulesModel: catalogmodel.NewShopSchedulesModel(conn),
		ReviewsModel:       catalogmodel.NewReviewsModel(conn),
		CheckinsModel:      catalogmodel.NewCheckinsModel(conn),
		Cache:              appcache.NewReadThrough(store),
		Invalidator:        appcache.NewInvalidator(store),
		Outbox:             outbox.NewRelay(outboxmodel.NewOutboxEventsModel(conn), b.Publisher, c.RelayConf),
		Bus:                b,
	}
}
