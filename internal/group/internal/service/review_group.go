package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/gotomicro/ego/core/elog"
	"github.com/reviewme/reviewme/internal/group/internal/domain"
	"github.com/reviewme/reviewme/internal/group/internal/repository"
	"github.com/reviewme/reviewme/internal/group/internal/repository/cache"
)

const (
	// requestCodeLength 请求码长度，调参数不算改契约
	requestCodeLength = 8
	// maxGenerationAttempts 连续碰撞这么多次就放弃
	maxGenerationAttempts = 10
)

var (
	// ErrReviewGroupNotFound 两个码合在一起没解析出小组，不区分哪一个错了
	ErrReviewGroupNotFound = errors.New("回顾小组不存在")
	// ErrCodeGenerationExhausted 超出请求码生成的重试预算，可以在上层重试
	ErrCodeGenerationExhausted = errors.New("生成请求码的重试次数耗尽")
)

// CodeGenerator 随机码生成器，注入进来方便测试给确定性序列
type CodeGenerator interface {
	Generate(length int) string
}

//go:generate mockgen -source=./review_group.go -destination=../../mocks/svc.mock.go -package=groupmocks
type ReviewGroupService interface {
	// Create 返回生成的请求码，确认码不回传
	Create(ctx context.Context, g domain.ReviewGroup) (string, error)
	CheckAccess(ctx context.Context, requestCode, accessCode string) (bool, error)
	// Resolve 码对联合解析，失败时报 ErrReviewGroupNotFound
	Resolve(ctx context.Context, requestCode, accessCode string) (domain.ReviewGroup, error)
	// ResolveByRequestCode 写回顾走的路径，只需要请求码
	ResolveByRequestCode(ctx context.Context, requestCode string) (domain.ReviewGroup, error)
	IssueToken(ctx context.Context, requestCode, accessCode string) (string, error)
	ResolveToken(ctx context.Context, token string) (domain.ReviewGroup, error)
}

type reviewGroupService struct {
	repo       repository.ReviewGroupRepository
	tokenCache cache.ReviewTokenCache
	generator  CodeGenerator
	logger     *elog.Component
}

func NewReviewGroupService(repo repository.ReviewGroupRepository,
	tokenCache cache.ReviewTokenCache,
	generator CodeGenerator) ReviewGroupService {
	return &reviewGroupService{
		repo:       repo,
		tokenCache: tokenCache,
		generator:  generator,
		logger:     elog.DefaultLogger,
	}
}

func (s *reviewGroupService) Create(ctx context.Context, g domain.ReviewGroup) (string, error) {
	tid, err := s.repo.LatestTemplateID(ctx)
	if err != nil {
		return "", err
	}
	g.TemplateID = tid
	for i := 0; i < maxGenerationAttempts; i++ {
		code := s.generator.Generate(requestCodeLength)
		exists, err := s.repo.ExistsByRequestCode(ctx, code)
		if err != nil {
			return "", err
		}
		if exists {
			continue
		}
		g.ReviewRequestCode = code
		_, err = s.repo.Create(ctx, g)
		if errors.Is(err, repository.ErrDuplicateRequestCode) {
			// 预检查和插入之间被别人抢先了，按碰撞处理重新生成
			s.logger.Warn("请求码并发碰撞", elog.String("code", code))
			continue
		}
		if err != nil {
			return "", err
		}
		return code, nil
	}
	return "", fmt.Errorf("%w: 连续碰撞 %d 次", ErrCodeGenerationExhausted, maxGenerationAttempts)
}

func (s *reviewGroupService) CheckAccess(ctx context.Context, requestCode, accessCode string) (bool, error) {
	g, err := s.repo.FindByRequestCode(ctx, requestCode)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return g.GroupAccessCode == accessCode, nil
}

func (s *reviewGroupService) Resolve(ctx context.Context, requestCode, accessCode string) (domain.ReviewGroup, error) {
	g, err := s.repo.FindByCodes(ctx, requestCode, accessCode)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.ReviewGroup{}, ErrReviewGroupNotFound
	}
	if err != nil {
		return domain.ReviewGroup{}, err
	}
	return g, nil
}

func (s *reviewGroupService) ResolveByRequestCode(ctx context.Context, requestCode string) (domain.ReviewGroup, error) {
	g, err := s.repo.FindByRequestCode(ctx, requestCode)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.ReviewGroup{}, ErrReviewGroupNotFound
	}
	if err != nil {
		return domain.ReviewGroup{}, err
	}
	return g, nil
}

func (s *reviewGroupService) IssueToken(ctx context.Context, requestCode, accessCode string) (string, error) {
	_, err := s.Resolve(ctx, requestCode, accessCode)
	if err != nil {
		return "", err
	}
	token := uuid.NewString()
	err = s.tokenCache.SetToken(ctx, token, requestCode)
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *reviewGroupService) ResolveToken(ctx context.Context, token string) (domain.ReviewGroup, error) {
	code, err := s.tokenCache.GetRequestCode(ctx, token)
	if errors.Is(err, cache.ErrTokenNotFound) {
		return domain.ReviewGroup{}, ErrReviewGroupNotFound
	}
	if err != nil {
		return domain.ReviewGroup{}, err
	}
	return s.ResolveByRequestCode(ctx, code)
}
