package svc

import (
	"context"

	"KissaHub/app/common/bus"
	"KissaHub/app/common/consts/biz"
	"KissaHub/app/common/outbox"
	"KissaHub/app/common/snowflake"
	outboxmodel "KissaHub/app/dal/outbox"
	usermodel "KissaHub/app/dal/user"
	"KissaHub/app/services/user/internal/config"

	"github.com/zeromicro/go-zero/core/bloom"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

type ServiceContext struct {
	Config config.Config

	UsersModel usermodel.UsersModel
	Bloom      *bloom.Filter

	Outbox *outbox.Relay
	Bus    *bus.Bus
}

func NewServiceContext(c config.Config) *ServiceContext {
	if c.SnowflakeNode > 0 {
		logx.Must(snowflake.SetNodeID(c.SnowflakeNode))
	}

	conn := sqlx.NewMysql(c.MysqlConf.DataSource)
	usersModel := usermodel.NewUsersModel(conn, c.CacheConf)
	bf := bloom.New(redis.MustNewRedis(c.RedisConf), biz.USER_REGISTER_BLOOM, biz.USER_REGISTER_BLOOM_BIT)
	if err := BloomPreheat(context.Background(), bf, usersModel); err != nil {
		logx.Errorw("bloom preheat failed, usernames fall back to the database", logx.Field("err", err))
	}
	b := bus.MustNewBus(c.KafkaConf)

	return &ServiceContext{
		Config:     c,
		UsersModel: usersModel,
		Bloom:      bf,
		Outbox:     outbox.NewRelay(outboxmodel.NewOutboxEventsModel(conn), b.Publisher, c.RelayConf),
		Bus:        b,
	}
}

// BloomPreheat loads every registered username into bf.
func BloomPreheat(ctx context.Context, bf *bloom.Filter, usersModel usermodel.UsersModel) error {
	names, err := usersModel.FindAllUsername(ctx)
	if err != nil {
		return err
	}

	for _, name := range names {
		if err := bf.Add([]byte(name)); err != nil {
			return err
		}
	}
	return nil
}
