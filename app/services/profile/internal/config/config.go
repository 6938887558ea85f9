package config

import (
	"KissaHub/app/common/bus"

	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	MysqlConf sqlx.SqlConf
	CacheConf cache.CacheConf

	KafkaConf bus.KafkaConf
}
