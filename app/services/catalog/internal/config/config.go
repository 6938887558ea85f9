package config

import (
	"time"

	"KissaHub/app/common/bus"
	"KissaHub/app/common/outbox"

	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	RedisConf redis.RedisConf
	MysqlConf sqlx.SqlConf

	KafkaConf bus.KafkaConf
	AsynqConf outbox.AsynqConf
	RelayConf outbox.RelayConf

	// point lookups only, collection entries live until evicted
	ShopCacheTTL time.Duration `json:",default=10m"`

	SnowflakeNode int64 `json:",optional"`
}
