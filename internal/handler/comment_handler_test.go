package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"otonavi/internal/domain"
	"otonavi/internal/handler"
	"otonavi/internal/middleware"
	"otonavi/internal/service/comment"
)

// stubCommentService answers with canned results so the tests exercise only
// the HTTP surface.
type stubCommentService struct {
	addResult  comment.AddResult
	listResult comment.ListResult
	treeResult comment.TreeResult
	lastInput  domain.AddCommentInput
	lastPage   string
}

func (s *stubCommentService) Add(ctx context.Context, input domain.AddCommentInput) comment.AddResult {
	s.lastInput = input
	return s.addResult
}

func (s *stubCommentService) ListByPage(ctx context.Context, page string) comment.ListResult {
	s.lastPage = page
	return s.listResult
}

func (s *stubCommentService) ListTree(ctx context.Context, page string) comment.TreeResult {
	s.lastPage = page
	return s.treeResult
}

func newCommentApp(stub *stubCommentService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})

	h := handler.NewCommentHandler(stub)
	pages := app.Group("/api/v1/pages")
	pages.Get("/:page/comments", h.List)
	pages.Get("/:page/comments/tree", h.ListTree)
	pages.Post("/:page/comments", h.Create)

	return app
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.NoError(t, json.Unmarshal(data, out))
}

func TestCommentHandlerList(t *testing.T) {
	t.Run("Returns comments array", func(t *testing.T) {
		stub := &stubCommentService{listResult: comment.ListResult{
			Comments: []domain.SerializedComment{{ID: "c1", Content: "hello", Page: "abc"}},
		}}
		app := newCommentApp(stub)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/pages/abc/comments", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		decodeBody(t, resp, &body)
		assert.Len(t, body["comments"], 1)
		assert.Equal(t, "abc", stub.lastPage)
	})

	t.Run("Soft read error still returns 200", func(t *testing.T) {
		stub := &stubCommentService{listResult: comment.ListResult{
			Comments: []domain.SerializedComment{},
			Error:    "コメントの取得に失敗しました",
		}}
		app := newCommentApp(stub)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/pages/abc/comments", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Comments []domain.SerializedComment `json:"comments"`
			Error    string                     `json:"error"`
		}
		decodeBody(t, resp, &body)
		assert.NotNil(t, body.Comments)
		assert.Empty(t, body.Comments)
		assert.Equal(t, "コメントの取得に失敗しました", body.Error)
	})

	t.Run("Page id is unescaped", func(t *testing.T) {
		stub := &stubCommentService{listResult: comment.ListResult{Comments: []domain.SerializedComment{}}}
		app := newCommentApp(stub)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/pages/abbey%20road/comments", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "abbey road", stub.lastPage)
	})
}

func TestCommentHandlerCreate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		stub := &stubCommentService{addResult: comment.AddResult{Success: true}}
		app := newCommentApp(stub)

		payload, _ := json.Marshal(fiber.Map{
			"content":  "いいね",
			"name":     "Taro",
			"parentId": "",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/pages/abc/comments", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body comment.AddResult
		decodeBody(t, resp, &body)
		assert.True(t, body.Success)
		assert.Equal(t, "いいね", stub.lastInput.Content)
		assert.Equal(t, "abc", stub.lastInput.Page)
	})

	t.Run("Validation failure is data not an HTTP error", func(t *testing.T) {
		stub := &stubCommentService{addResult: comment.AddResult{Error: "コメント内容は必須です"}}
		app := newCommentApp(stub)

		payload, _ := json.Marshal(fiber.Map{"content": ""})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/pages/abc/comments", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body comment.AddResult
		decodeBody(t, resp, &body)
		assert.False(t, body.Success)
		assert.Equal(t, "コメント内容は必須です", body.Error)
	})

	t.Run("Malformed body is a bad request", func(t *testing.T) {
		stub := &stubCommentService{}
		app := newCommentApp(stub)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/pages/abc/comments", bytes.NewReader([]byte("{broken")))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body middleware.ErrorResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, "BAD_REQUEST", body.Code)
		assert.NotEmpty(t, body.TraceID)
	})
}

func TestCommentHandlerListTree(t *testing.T) {
	stub := &stubCommentService{treeResult: comment.TreeResult{
		Comments: []domain.CommentNode{
			{
				SerializedComment: domain.SerializedComment{ID: "root", Content: "hello", Page: "abc"},
				Children: []domain.CommentNode{
					{SerializedComment: domain.SerializedComment{ID: "reply", Content: "hi", Page: "abc"}},
				},
			},
		},
	}}
	app := newCommentApp(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pages/abc/comments/tree", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Comments []domain.CommentNode `json:"comments"`
	}
	decodeBody(t, resp, &body)
	assert.Len(t, body.Comments, 1)
	assert.Equal(t, "root", body.Comments[0].ID)
	assert.Len(t, body.Comments[0].Children, 1)
	assert.Equal(t, "reply", body.Comments[0].Children[0].ID)
}
