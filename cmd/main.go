package main

import (
	"os"
	"time"

	"github.com/bennett39/stocktrader/biz/dal"
	"github.com/bennett39/stocktrader/biz/dal/pg"
	"github.com/bennett39/stocktrader/biz/handler"
	"github.com/bennett39/stocktrader/biz/money"
	"github.com/bennett39/stocktrader/biz/quote"
	"github.com/bennett39/stocktrader/biz/service"
	"github.com/bennett39/stocktrader/biz/trading"
	"github.com/bennett39/stocktrader/conf"
	"github.com/bennett39/stocktrader/middleware"
	"github.com/bennett39/stocktrader/util"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/cors"
	"github.com/hertz-contrib/gzip"
	"github.com/hertz-contrib/logger/accesslog"
	"github.com/hertz-contrib/pprof"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
)

func main() {
	_ = godotenv.Load()
	cfg := conf.GetConf()
	hlog.SetLevel(conf.LogLevel())

	util.InitSonyFlake()
	logger := util.NewLogger(cfg.Hertz)
	defer func() { _ = logger.Sync() }()

	dal.Init()

	oracle := quote.NewIEXClient(quote.Config{
		BaseURL: cfg.Quote.BaseURL,
		Token:   os.Getenv(cfg.Quote.TokenEnv),
		Timeout: time.Duration(cfg.Quote.TimeoutSeconds) * time.Second,
	})

	pool, err := ants.NewPool(64)
	if err != nil {
		panic(err)
	}
	defer pool.Release()

	store := pg.NewStore()
	engine := trading.NewEngine(oracle, store, logger,
		trading.WithCashFloor(money.MustFromString(cfg.Trading.CashFloor)),
		trading.WithPublisher(service.NewTransactionFeed(cfg.Kafka.Topic)))
	builder := trading.NewPortfolioBuilder(store, oracle, pool)
	handler.Init(engine, builder, trading.NewLedger(store), oracle)

	h := server.New(server.WithHostPorts(cfg.Hertz.Address))
	h.Use(cors.Default())
	if cfg.Hertz.EnableGzip {
		h.Use(gzip.Gzip(gzip.DefaultCompression))
	}
	if cfg.Hertz.EnableAccessLog {
		h.Use(accesslog.New())
	}
	if cfg.Hertz.EnablePprof {
		pprof.Register(h)
	}

	api := h.Group("/api")
	api.POST("/register", handler.Register)
	api.POST("/login", handler.Login)
	api.POST("/logout", handler.Logout)

	authed := api.Group("/", middleware.SessionAuth())
	authed.GET("/quote", handler.GetQuote)
	authed.GET("/portfolio", handler.GetPortfolio)
	authed.GET("/holdings", handler.GetHoldings)
	authed.GET("/history", handler.GetHistory)
	authed.POST("/buy", handler.Buy)
	authed.POST("/sell", handler.Sell)

	h.Spin()
}
