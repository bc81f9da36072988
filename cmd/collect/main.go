package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/yuhao2046/AINewsHub/internal/aggregator"
	"github.com/yuhao2046/AINewsHub/internal/classify"
	"github.com/yuhao2046/AINewsHub/internal/config"
	"github.com/yuhao2046/AINewsHub/internal/scorer"
)

// 只执行一轮聚合并打印结果的命令行入口：适合调试词表和打分
func main() {
	cfg := config.Load()

	sc := scorer.New(config.DefaultWeights(), config.AuthorityScores())
	cl := classify.New(config.DefaultKeywords())
	agg := aggregator.New(cfg, sc, cl)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	items, err := agg.Aggregate(ctx)
	if err != nil {
		log.Fatalf("aggregate failed: %v", err)
	}

	fmt.Printf("aggregated %d articles\n", len(items))
	for i, it := range items {
		if i >= 30 {
			break
		}
		fmt.Printf("%5.1f  [%s] %s  (%s)\n", it.Hotness, it.Category, it.Title, it.Source)
	}
}
