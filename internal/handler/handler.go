package handler

import (
	"otonavi/internal/repository"
	"otonavi/internal/service"
)

type Handlers struct {
	Comment *CommentHandler
	Thread  *ThreadHandler
	Catalog *CatalogHandler
	Content *ContentHandler
	SEO     *SEOHandler
}

func NewHandlers(services *service.Services, repos *repository.Repositories) *Handlers {
	return &Handlers{
		Comment: NewCommentHandler(services.Comment),
		Thread:  NewThreadHandler(services.Thread),
		Catalog: NewCatalogHandler(services.Catalog),
		Content: NewContentHandler(repos.Content, services.SEO),
		SEO:     NewSEOHandler(services.SEO),
	}
}
