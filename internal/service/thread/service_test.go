package thread

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"otonavi/internal/domain"
	"otonavi/internal/service/comment"
)

// stubCommentService returns canned results and records the inputs it saw.
type stubCommentService struct {
	addResult comment.AddResult
	addInputs []domain.AddCommentInput
	tree      comment.TreeResult
}

func (s *stubCommentService) Add(ctx context.Context, input domain.AddCommentInput) comment.AddResult {
	s.addInputs = append(s.addInputs, input)
	return s.addResult
}

func (s *stubCommentService) ListByPage(ctx context.Context, page string) comment.ListResult {
	return comment.ListResult{Comments: []domain.SerializedComment{}}
}

func (s *stubCommentService) ListTree(ctx context.Context, page string) comment.TreeResult {
	return s.tree
}

func TestView(t *testing.T) {
	t.Run("Fresh visitor starts idle", func(t *testing.T) {
		stub := &stubCommentService{tree: comment.TreeResult{Comments: []domain.CommentNode{}}}
		svc := NewService(stub, NewMemoryStore())

		view, err := svc.View(context.Background(), "v1", "abc")

		assert.NoError(t, err)
		assert.Equal(t, PhaseIdle, view.State.Phase)
		assert.NotNil(t, view.Comments)
	})

	t.Run("Carries soft read error through", func(t *testing.T) {
		stub := &stubCommentService{tree: comment.TreeResult{
			Comments: []domain.CommentNode{},
			Error:    "コメントの取得に失敗しました",
		}}
		svc := NewService(stub, NewMemoryStore())

		view, err := svc.View(context.Background(), "v1", "abc")

		assert.NoError(t, err)
		assert.Equal(t, "コメントの取得に失敗しました", view.Error)
	})
}

func TestServiceSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful reply submission", func(t *testing.T) {
		stub := &stubCommentService{addResult: comment.AddResult{Success: true}}
		store := NewMemoryStore()
		svc := NewService(stub, store)

		_, err := svc.ToggleReply(ctx, "v1", "abc", "c1")
		assert.NoError(t, err)
		_, err = svc.SaveDraft(ctx, "v1", "abc", "Hana", "reply text")
		assert.NoError(t, err)

		outcome, err := svc.Submit(ctx, "v1", "abc")

		assert.NoError(t, err)
		assert.True(t, outcome.Refresh)
		assert.Equal(t, PhaseIdle, outcome.State.Phase)
		assert.Len(t, stub.addInputs, 1)
		assert.Equal(t, "reply text", stub.addInputs[0].Content)
		assert.Equal(t, "c1", stub.addInputs[0].ParentID)
	})

	t.Run("Failed submission keeps draft for retry", func(t *testing.T) {
		stub := &stubCommentService{addResult: comment.AddResult{Error: "コメントの追加に失敗しました"}}
		store := NewMemoryStore()
		svc := NewService(stub, store)

		_, err := svc.SaveDraft(ctx, "v1", "abc", "Taro", "hello")
		assert.NoError(t, err)

		outcome, err := svc.Submit(ctx, "v1", "abc")

		assert.NoError(t, err)
		assert.False(t, outcome.Refresh)
		assert.Equal(t, PhaseComposingRoot, outcome.State.Phase)
		assert.Equal(t, "hello", outcome.State.RootContent)
		assert.Equal(t, "コメントの追加に失敗しました", outcome.State.ErrorMessage)

		saved, err := store.Load(ctx, "v1", "abc")
		assert.NoError(t, err)
		assert.Equal(t, "hello", saved.RootContent)
	})

	t.Run("Submit with nothing composing is ignored", func(t *testing.T) {
		stub := &stubCommentService{addResult: comment.AddResult{Success: true}}
		svc := NewService(stub, NewMemoryStore())

		outcome, err := svc.Submit(ctx, "v1", "abc")

		assert.NoError(t, err)
		assert.False(t, outcome.Refresh)
		assert.Empty(t, stub.addInputs)
	})

	t.Run("State is scoped per visitor and page", func(t *testing.T) {
		stub := &stubCommentService{addResult: comment.AddResult{Success: true}}
		svc := NewService(stub, NewMemoryStore())

		_, err := svc.SaveDraft(ctx, "v1", "abc", "", "draft one")
		assert.NoError(t, err)
		_, err = svc.SaveDraft(ctx, "v2", "abc", "", "draft two")
		assert.NoError(t, err)

		view1, _ := svc.View(ctx, "v1", "abc")
		view2, _ := svc.View(ctx, "v2", "abc")
		viewOther, _ := svc.View(ctx, "v1", "xyz")

		assert.Equal(t, "draft one", view1.State.RootContent)
		assert.Equal(t, "draft two", view2.State.RootContent)
		assert.Empty(t, viewOther.State.RootContent)
	})
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	newStore := func(t *testing.T) (*miniredis.Miniredis, Store) {
		t.Helper()
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		return mr, NewRedisStore(client, 30*time.Minute)
	}

	t.Run("Round trip", func(t *testing.T) {
		_, store := newStore(t)

		state := NewState()
		state.ToggleReply("c1")
		state.SetDraft("Hana", "reply text")

		assert.NoError(t, store.Save(ctx, "v1", "abc", state))

		loaded, err := store.Load(ctx, "v1", "abc")
		assert.NoError(t, err)
		assert.Equal(t, PhaseComposingReply, loaded.Phase)
		assert.Equal(t, "c1", *loaded.ReplyTo)
		assert.Equal(t, "reply text", loaded.ReplyContent)
	})

	t.Run("Missing entry is not an error", func(t *testing.T) {
		_, store := newStore(t)

		loaded, err := store.Load(ctx, "v1", "abc")
		assert.NoError(t, err)
		assert.Nil(t, loaded)
	})

	t.Run("Corrupt entry treated as missing", func(t *testing.T) {
		mr, store := newStore(t)
		mr.Set("thread:view:v1:abc", "{broken")

		loaded, err := store.Load(ctx, "v1", "abc")
		assert.NoError(t, err)
		assert.Nil(t, loaded)
	})

	t.Run("Entry expires", func(t *testing.T) {
		mr, store := newStore(t)

		assert.NoError(t, store.Save(ctx, "v1", "abc", NewState()))
		mr.FastForward(31 * time.Minute)

		loaded, err := store.Load(ctx, "v1", "abc")
		assert.NoError(t, err)
		assert.Nil(t, loaded)
	})
}
