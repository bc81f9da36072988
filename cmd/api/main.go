package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/yuhao2046/AINewsHub/internal/aggregator"
	"github.com/yuhao2046/AINewsHub/internal/api"
	"github.com/yuhao2046/AINewsHub/internal/classify"
	"github.com/yuhao2046/AINewsHub/internal/config"
	"github.com/yuhao2046/AINewsHub/internal/scheduler"
	"github.com/yuhao2046/AINewsHub/internal/scorer"
	"github.com/yuhao2046/AINewsHub/internal/storage"
)

func main() {
	cfg := config.Load()

	sc := scorer.New(config.DefaultWeights(), config.AuthorityScores())
	cl := classify.New(config.DefaultKeywords())
	agg := aggregator.New(cfg, sc, cl)

	svc := aggregator.NewService(agg, cfg.CacheTTL)

	// 归档与快照都是可选项，没配置就纯内存运行
	if cfg.PostgresDSN != "" || cfg.RedisAddr != "" {
		store, err := storage.NewStore(cfg.PostgresDSN, cfg.RedisAddr, cfg.CacheTTL)
		if err != nil {
			log.Fatalf("init store failed: %v", err)
		}
		if store.Redis != nil {
			svc.UseSnapshots(store)
		}
		if store.DB != nil {
			svc.UseArchive(store)
		}
	}

	s, err := scheduler.New(cfg.CronSpec, svc)
	if err != nil {
		log.Fatalf("init scheduler failed: %v", err)
	}
	s.Start()

	r := gin.Default()
	apiServer := api.NewServer(svc)
	apiServer.RegisterRoutes(r)

	addr := ":" + cfg.AppPort
	log.Printf("starting api server at %s ...", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exit: %v", err)
	}
}
