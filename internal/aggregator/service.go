package aggregator

import (
	"context"
	"log"
	"time"

	"github.com/yuhao2046/AINewsHub/internal/collector"
	"github.com/yuhao2046/AINewsHub/internal/processor"
)

// SnapshotStore 聚合结果的进程外快照（可选），重启后还在有效期内可直接复用
type SnapshotStore interface {
	LoadSnapshot(ctx context.Context) ([]collector.Article, time.Time, bool)
	SaveSnapshot(ctx context.Context, items []collector.Article, fetchedAt time.Time) error
}

// Archiver 聚合结果的历史归档（可选），不在读路径上
type Archiver interface {
	SaveBatch(items []collector.Article) error
}

type cacheEntry struct {
	items     []collector.Article
	fetchedAt time.Time
}

// Service 持有聚合器和单槽缓存，是对外的查询入口。
// 缓存整体替换、从不原地修改；刷新期间持锁，并发请求自然合并到同一次刷新。
type Service struct {
	agg *Aggregator
	ttl time.Duration

	mu    chan struct{} // 容量 1，当互斥锁用，便于带 ctx 的获取
	entry *cacheEntry

	snapshots SnapshotStore
	archive   Archiver

	dedupe *processor.Deduper

	now func() time.Time
}

func NewService(agg *Aggregator, ttl time.Duration) *Service {
	s := &Service{
		agg:    agg,
		ttl:    ttl,
		mu:     make(chan struct{}, 1),
		dedupe: processor.NewDeduper(),
		now:    time.Now,
	}
	return s
}

// UseSnapshots 启用进程外快照（Redis）
func (s *Service) UseSnapshots(store SnapshotStore) {
	s.snapshots = store
}

// UseArchive 启用历史归档（Postgres）
func (s *Service) UseArchive(a Archiver) {
	s.archive = a
}

// Refresh 强制重新聚合并覆盖缓存
func (s *Service) Refresh(ctx context.Context) error {
	_, _, _, err := s.cachedItems(ctx, true)
	return err
}

// cachedItems 返回未过滤的缓存全集。force 为 true 时跳过有效期检查。
// 锁覆盖整个刷新过程：刷新期间到达的请求等待同一次刷新完成后读到新槽。
func (s *Service) cachedItems(ctx context.Context, force bool) ([]collector.Article, time.Time, bool, error) {
	select {
	case s.mu <- struct{}{}:
	case <-ctx.Done():
		return nil, time.Time{}, false, ctx.Err()
	}
	defer func() { <-s.mu }()

	now := s.now()

	if !force && s.entry != nil && now.Sub(s.entry.fetchedAt) < s.ttl {
		return s.entry.items, s.entry.fetchedAt, true, nil
	}

	// 进程刚启动时先看快照，还新鲜就不用重新聚合
	if !force && s.entry == nil && s.snapshots != nil {
		if items, at, ok := s.snapshots.LoadSnapshot(ctx); ok && now.Sub(at) < s.ttl {
			s.entry = &cacheEntry{items: items, fetchedAt: at}
			return items, at, true, nil
		}
	}

	items, err := s.agg.Aggregate(ctx)
	if err != nil {
		return nil, time.Time{}, false, err
	}

	s.entry = &cacheEntry{items: items, fetchedAt: now}

	if s.snapshots != nil {
		if err := s.snapshots.SaveSnapshot(ctx, items, now); err != nil {
			log.Printf("save snapshot error: %v", err)
		}
	}
	if s.archive != nil {
		if err := s.archive.SaveBatch(items); err != nil {
			log.Printf("archive batch error: %v", err)
		}
	}

	return items, now, false, nil
}
