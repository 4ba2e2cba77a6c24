package cache

import (
	"context"
	"crypto/sha1"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 摘要缓存过期时间 - 24小时
const summaryExpireAt = 24 * time.Hour

// SummaryStorage 按内容哈希缓存摘要 避免重复调用外部摘要服务
type SummaryStorage struct {
	redis *redis.Client
}

func NewSummaryStorage(rds *redis.Client) *SummaryStorage {
	return &SummaryStorage{rds}
}

func (s *SummaryStorage) Get(ctx context.Context, content string) (string, bool) {
	val, err := s.redis.Get(ctx, s.name(content)).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set 缓存失败直接忽略 摘要缓存只是优化
func (s *SummaryStorage) Set(ctx context.Context, content, summary string) {
	s.redis.Set(ctx, s.name(content), summary, summaryExpireAt)
}

// note:summary:<sha1(content)>
func (s *SummaryStorage) name(content string) string {
	return fmt.Sprintf("note:summary:%x", sha1.Sum([]byte(content)))
}
