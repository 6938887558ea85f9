package config

import (
	"KissaHub/app/common/bus"
	"KissaHub/app/common/outbox"

	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	RedisConf redis.RedisConf
	MysqlConf sqlx.SqlConf
	CacheConf cache.CacheConf

	KafkaConf bus.KafkaConf
	AsynqConf outbox.AsynqConf
	RelayConf outbox.RelayConf

	SnowflakeNode int64 `json:",optional"`
}
