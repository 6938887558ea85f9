package svc

import (
	"KissaHub/app/common/bus"
	profilemodel "KissaHub/app/dal/profile"
	"KissaHub/app/services/profile/internal/config"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

type ServiceContext struct {
	Config config.Config

	UserProfilesModel    profilemodel.UserProfilesModel
	UserStatisticsModel  profilemodel.UserStatisticsModel
	ProcessedEventsModel profilemodel.ProcessedEventsModel

	Bus *bus.Bus
}

func NewServiceContext(c config.Config) *ServiceContext {
	conn := sqlx.NewMysql(c.MysqlConf.DataSource)

	return &ServiceContext{
		Config:               c,
		UserProfilesModel:    profilemodel.NewUserProfilesModel(conn),
		UserStatisticsModel:  profilemodel.NewUserStatisticsModel(conn, c.CacheConf),
		ProcessedEventsModel: profilemodel.NewProcessedEventsModel(conn),
		Bus:                  bus.MustNewBus(c.KafkaConf),
	}
}
