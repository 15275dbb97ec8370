package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"otonavi/internal/pkg/i18n"
)

const (
	MaxCommentLength = 2000
	MaxNameLength    = 50
)

// Comment is the stored record. ParentID is nil for top-level comments and is
// set only at creation time, never mutated.
type Comment struct {
	ID        uuid.UUID  `json:"id" db:"comment_id"`
	Content   string     `json:"content" db:"content"`
	Name      *string    `json:"name" db:"name"`
	Page      string     `json:"page" db:"page"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	ParentID  *uuid.UUID `json:"parent_id" db:"parent_id"`
}

// SerializedComment is the wire shape: timestamps as RFC3339 text.
type SerializedComment struct {
	ID        string  `json:"id"`
	Content   string  `json:"content"`
	Name      *string `json:"name"`
	Page      string  `json:"page"`
	CreatedAt string  `json:"createdAt"`
	ParentID  *string `json:"parentId"`
}

// CommentNode is a serialized comment plus its ordered replies. Never
// persisted; rebuilt from the flat list on every read.
type CommentNode struct {
	SerializedComment
	Children []CommentNode `json:"children"`
}

// AddCommentInput carries the raw submitted fields before validation.
type AddCommentInput struct {
	Content  string `json:"content"`
	Page     string `json:"page"`
	Name     string `json:"name"`
	ParentID string `json:"parentId"`
}

// NewComment is the normalized record produced by validation.
type NewComment struct {
	Content  string
	Page     string
	Name     string
	ParentID *uuid.UUID
}

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateAddComment checks the raw fields in order, first failure wins:
// content, page, name, parentId. Messages come from the locale catalog.
func ValidateAddComment(input AddCommentInput, locale string) (*NewComment, *ValidationError) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, &ValidationError{Message: i18n.Translate(locale, "content_required")}
	}
	if len([]rune(content)) > MaxCommentLength {
		return nil, &ValidationError{Message: i18n.Translate(locale, "content_too_long")}
	}

	page := strings.TrimSpace(input.Page)
	if page == "" {
		return nil, &ValidationError{Message: i18n.Translate(locale, "page_required")}
	}

	name := strings.TrimSpace(input.Name)
	if len([]rune(name)) > MaxNameLength {
		return nil, &ValidationError{Message: i18n.Translate(locale, "name_too_long")}
	}
	if name == "" {
		name = i18n.Translate(locale, "name_default")
	}

	var parentID *uuid.UUID
	if raw := strings.TrimSpace(input.ParentID); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return nil, &ValidationError{Message: i18n.Translate(locale, "parent_invalid")}
		}
		parentID = &parsed
	}

	return &NewComment{
		Content:  content,
		Page:     page,
		Name:     name,
		ParentID: parentID,
	}, nil
}

// Serialize converts a stored comment to its wire shape.
func (c Comment) Serialize() SerializedComment {
	var parentID *string
	if c.ParentID != nil {
		id := c.ParentID.String()
		parentID = &id
	}

	return SerializedComment{
		ID:        c.ID.String(),
		Content:   c.Content,
		Name:      c.Name,
		Page:      c.Page,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339Nano),
		ParentID:  parentID,
	}
}

// SerializeComments maps a flat record list to the wire shape, preserving order.
func SerializeComments(comments []Comment) []SerializedComment {
	serialized := make([]SerializedComment, len(comments))
	for i, c := range comments {
		serialized[i] = c.Serialize()
	}
	return serialized
}
