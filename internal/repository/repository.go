package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Comment CommentRepository
	Content ContentRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Comment: NewCommentRepository(db),
		Content: NewContentRepository(),
	}
}
