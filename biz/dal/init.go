package dal

import (
	"github.com/bennett39/stocktrader/biz/dal/kafka"
	"github.com/bennett39/stocktrader/biz/dal/pg"
	"github.com/bennett39/stocktrader/biz/dal/redis"
)

func Init() {
	pg.Init()
	redis.Init()
	kafka.Init()
}
