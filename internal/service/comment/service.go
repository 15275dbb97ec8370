package comment

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"otonavi/internal/domain"
	"otonavi/internal/pkg/i18n"
	"otonavi/internal/repository"
	"otonavi/internal/service/tree"
)

// AddResult is the discriminated outcome of a submission: exactly one of
// Success and Error is set. Validation and storage failures both surface here
// as short localized messages; nothing internal leaks to the caller.
type AddResult struct {
	Success bool   `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ListResult always carries a list. A read failure degrades to an empty list
// plus a soft error message so the page still renders.
type ListResult struct {
	Comments []domain.SerializedComment `json:"comments"`
	Error    string                     `json:"error,omitempty"`
}

type TreeResult struct {
	Comments []domain.CommentNode `json:"comments"`
	Error    string               `json:"error,omitempty"`
}

type Service interface {
	Add(ctx context.Context, input domain.AddCommentInput) AddResult
	ListByPage(ctx context.Context, page string) ListResult
	ListTree(ctx context.Context, page string) TreeResult
}

type service struct {
	commentRepo repository.CommentRepository
	redis       *redis.Client
	locale      string
	cacheTTL    time.Duration
}

func NewService(commentRepo repository.CommentRepository, redis *redis.Client, locale string, cacheTTL time.Duration) Service {
	return &service{
		commentRepo: commentRepo,
		redis:       redis,
		locale:      locale,
		cacheTTL:    cacheTTL,
	}
}

func cacheKey(page string) string {
	return fmt.Sprintf("comments:page:%s", page)
}

func (s *service) Add(ctx context.Context, input domain.AddCommentInput) AddResult {
	record, verr := domain.ValidateAddComment(input, s.locale)
	if verr != nil {
		return AddResult{Error: verr.Message}
	}

	name := record.Name
	comment := &domain.Comment{
		ID:       uuid.New(),
		Content:  record.Content,
		Name:     &name,
		Page:     record.Page,
		ParentID: record.ParentID,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		log.Printf("failed to add comment (page=%s): %v", record.Page, err)
		return AddResult{Error: i18n.Translate(s.locale, "add_failed")}
	}

	if s.redis != nil {
		_ = s.redis.Del(ctx, cacheKey(record.Page)).Err()
	}

	return AddResult{Success: true}
}

func (s *service) ListByPage(ctx context.Context, page string) ListResult {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey(page)).Result(); err == nil {
			var comments []domain.SerializedComment
			if json.Unmarshal([]byte(cached), &comments) == nil {
				return ListResult{Comments: comments}
			}
		}
	}

	records, err := s.commentRepo.ListByPage(ctx, page)
	if err != nil {
		log.Printf("failed to get comments (page=%s): %v", page, err)
		return ListResult{
			Comments: []domain.SerializedComment{},
			Error:    i18n.Translate(s.locale, "fetch_failed"),
		}
	}

	serialized := domain.SerializeComments(records)

	if s.redis != nil {
		if data, err := json.Marshal(serialized); err == nil {
			_ = s.redis.Set(ctx, cacheKey(page), data, s.cacheTTL).Err()
		}
	}

	return ListResult{Comments: serialized}
}

func (s *service) ListTree(ctx context.Context, page string) TreeResult {
	list := s.ListByPage(ctx, page)
	nodes := tree.Build(list.Comments)
	if nodes == nil {
		nodes = []domain.CommentNode{}
	}
	return TreeResult{Comments: nodes, Error: list.Error}
}
