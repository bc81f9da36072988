package storage

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yuhao2046/AINewsHub/internal/collector"
)

// News 聚合结果的历史归档行，以 URL 作为幂等键
type News struct {
	ID          string            `gorm:"primaryKey;size:40" json:"id"`
	Title       string            `gorm:"size:512" json:"title"`
	URL         string            `gorm:"size:1024;uniqueIndex" json:"url"`
	Source      string            `gorm:"size:64;index" json:"source"`
	Description string            `gorm:"size:600" json:"description"`
	Category    string            `gorm:"size:16;index" json:"category"`
	PublishedAt time.Time         `gorm:"index" json:"publishedAt"`
	Hotness     float64           `gorm:"index" json:"hotness"`
	ExtraData   datatypes.JSONMap `gorm:"type:jsonb" json:"extraData"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store 可选的持久化层：Postgres 归档 + Redis 快照。
// 任意一半未配置则对应方法退化为 no-op，核心管线不依赖这里。
type Store struct {
	DB    *gorm.DB
	Redis *redis.Client

	snapshotTTL time.Duration
}

func NewStore(dsn, redisAddr string, snapshotTTL time.Duration) (*Store, error) {
	s := &Store{snapshotTTL: snapshotTTL}

	if dsn != "" {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, err
		}
		if err := db.AutoMigrate(&News{}); err != nil {
			return nil, err
		}
		s.DB = db
	}

	if redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("warn: redis ping failed: %v", err)
		}
		s.Redis = rdb
	}

	return s, nil
}

// toValidUTF8 将字符串规范为合法 UTF-8，避免 PostgreSQL invalid byte sequence 错误
func toValidUTF8(s string) string {
	return strings.ToValidUTF8(s, "�")
}

// truncateRunesDB 按 rune 数截断，确保不超过数据库字段长度
func truncateRunesDB(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	s = strings.TrimSpace(s)
	rs := []rune(s)
	if len(rs) <= limit {
		return s
	}
	return string(rs[:limit])
}

func hashURL(url string) string {
	h := sha1.New()
	h.Write([]byte(url))
	return hex.EncodeToString(h.Sum(nil))
}

// SaveBatch 归档一批文章，已存在的按 URL 更新热度与描述
func (s *Store) SaveBatch(items []collector.Article) error {
	if s.DB == nil {
		return nil
	}

	for _, it := range items {
		if it.Link == "" {
			continue
		}
		title := truncateRunesDB(toValidUTF8(it.Title), 512)
		description := truncateRunesDB(toValidUTF8(it.Description), 600)

		n := &News{
			ID:          hashURL(it.Link),
			Title:       title,
			URL:         it.Link,
			Source:      it.Source,
			Description: description,
			Category:    it.Category,
			PublishedAt: time.UnixMilli(it.Timestamp),
			Hotness:     it.Hotness,
			ExtraData: datatypes.JSONMap{
				"isTranslated":  it.IsTranslated,
				"originalTitle": it.OriginalTitle,
			},
		}

		if err := s.DB.Where("url = ?", it.Link).FirstOrCreate(n).Error; err != nil {
			return err
		}
		_ = s.DB.Model(n).Updates(map[string]any{
			"title":        title,
			"description":  description,
			"hotness":      it.Hotness,
			"published_at": time.UnixMilli(it.Timestamp),
		}).Error
	}

	return nil
}

// ListArchived 按分类返回归档历史，热度降序
func (s *Store) ListArchived(category string, limit int) ([]News, error) {
	if s.DB == nil {
		return nil, nil
	}
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	var list []News
	db := s.DB.Model(&News{})
	if category != "" {
		db = db.Where("category = ?", category)
	}
	if err := db.Order("hotness DESC").Order("published_at DESC").Limit(limit).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

const snapshotKey = "news:aggregate:v1"

type snapshot struct {
	Items     []collector.Article `json:"items"`
	FetchedAt time.Time           `json:"fetchedAt"`
}

// SaveSnapshot 把一轮聚合结果整体写入 Redis，TTL 与缓存有效期一致
func (s *Store) SaveSnapshot(ctx context.Context, items []collector.Article, fetchedAt time.Time) error {
	if s.Redis == nil {
		return nil
	}
	bs, err := json.Marshal(snapshot{Items: items, FetchedAt: fetchedAt})
	if err != nil {
		return err
	}
	return s.Redis.Set(ctx, snapshotKey, bs, s.snapshotTTL).Err()
}

// LoadSnapshot 读取进程外快照；没有或解析失败都按未命中处理
func (s *Store) LoadSnapshot(ctx context.Context) ([]collector.Article, time.Time, bool) {
	if s.Redis == nil {
		return nil, time.Time{}, false
	}
	bs, err := s.Redis.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		return nil, time.Time{}, false
	}
	var snap snapshot
	if err := json.Unmarshal(bs, &snap); err != nil {
		log.Printf("warn: bad snapshot payload: %v", err)
		return nil, time.Time{}, false
	}
	return snap.Items, snap.FetchedAt, true
}
