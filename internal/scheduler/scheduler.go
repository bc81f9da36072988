package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/yuhao2046/AINewsHub/internal/aggregator"
)

// Scheduler 定时刷新聚合缓存，保证用户请求大多命中热缓存
type Scheduler struct {
	cron *cron.Cron
	svc  *aggregator.Service
}

// 单轮刷新的超时上限：覆盖所有源的抓取加可选的串行翻译
const refreshTimeout = 5 * time.Minute

func New(spec string, svc *aggregator.Service) (*Scheduler, error) {
	c := cron.New()
	s := &Scheduler{cron: c, svc: svc}

	if _, err := c.AddFunc(spec, s.refresh); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	// 延迟执行首轮刷新，避免与启动期其它初始化争抢资源
	const startupDelay = 15 * time.Second
	time.AfterFunc(startupDelay, func() {
		go s.refresh()
	})
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) refresh() {
	log.Println("start refresh job...")

	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if err := s.svc.Refresh(ctx); err != nil {
		log.Printf("refresh job error: %v", err)
		return
	}
	log.Println("refresh job done")
}
