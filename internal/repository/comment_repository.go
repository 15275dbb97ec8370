package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"otonavi/internal/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByPage(ctx context.Context, page string) ([]domain.Comment, error)
}

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (comment_id, page, name, content, parent_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		comment.ID, comment.Page, comment.Name, comment.Content, comment.ParentID,
	).Scan(&comment.CreatedAt)
}

func (r *commentRepository) ListByPage(ctx context.Context, page string) ([]domain.Comment, error) {
	query := `
		SELECT comment_id, page, name, content, parent_id, created_at
		FROM comments
		WHERE page = $1
		ORDER BY created_at DESC, comment_id DESC`

	var comments []domain.Comment
	if err := r.db.SelectContext(ctx, &comments, query, page); err != nil {
		return nil, err
	}

	return comments, nil
}
