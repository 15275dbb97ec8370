package service

import (
	"github.com/redis/go-redis/v9"

	"otonavi/internal/config"
	"otonavi/internal/repository"
	"otonavi/internal/service/catalog"
	"otonavi/internal/service/comment"
	"otonavi/internal/service/seo"
	"otonavi/internal/service/thread"
)

type Services struct {
	Comment comment.Service
	Thread  thread.Service
	Catalog catalog.Service
	SEO     seo.Service
}

func NewServices(repos *repository.Repositories, redisClient *redis.Client, cfg *config.Config) *Services {
	commentService := comment.NewService(repos.Comment, redisClient, cfg.DefaultLocale, cfg.CommentCacheTTL)

	var threadStore thread.Store
	if redisClient != nil {
		threadStore = thread.NewRedisStore(redisClient, cfg.ThreadStateTTL)
	} else {
		threadStore = thread.NewMemoryStore()
	}
	threadService := thread.NewService(commentService, threadStore)

	catalogService := catalog.NewService(cfg, redisClient)
	seoService := seo.NewService(repos.Content, cfg.SiteURL)

	return &Services{
		Comment: commentService,
		Thread:  threadService,
		Catalog: catalogService,
		SEO:     seoService,
	}
}
