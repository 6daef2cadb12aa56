package cache

import (
	"context"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

const tokenExpiration = 48 * time.Hour

var (
	ErrTokenNotFound = errors.New("回顾请求令牌不存在或已过期")
)

// ReviewTokenCache 令牌是码对的替身，redis 里只存 token -> 请求码 的映射
//
//go:generate mockgen -source=./token.go -package=cachemocks -destination=../../../mocks/cache/token.mock.go ReviewTokenCache
type ReviewTokenCache interface {
	SetToken(ctx context.Context, token, requestCode string) error
	GetRequestCode(ctx context.Context, token string) (string, error)
}

type reviewTokenCache struct {
	ec ecache.Cache
}

func NewReviewTokenCache(ec ecache.Cache) ReviewTokenCache {
	return &reviewTokenCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "review-token:",
		},
	}
}

func (c *reviewTokenCache) SetToken(ctx context.Context, token, requestCode string) error {
	err := c.ec.Set(ctx, token, requestCode, tokenExpiration)
	if err != nil {
		return errors.Wrap(err, "写入回顾请求令牌失败")
	}
	return nil
}

func (c *reviewTokenCache) GetRequestCode(ctx context.Context, token string) (string, error) {
	val := c.ec.Get(ctx, token)
	if val.KeyNotFound() {
		return "", ErrTokenNotFound
	}
	if val.Err != nil {
		return "", errors.Wrap(val.Err, "查询回顾请求令牌失败")
	}
	return val.Val.(string), nil
}
