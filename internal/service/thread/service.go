package thread

import (
	"context"

	"otonavi/internal/domain"
	"otonavi/internal/service/comment"
)

// View is what a thread page renders: the authoritative tree plus this
// visitor's compose state.
type View struct {
	Comments []domain.CommentNode `json:"comments"`
	Error    string               `json:"error,omitempty"`
	State    State                `json:"state"`
}

// SubmitOutcome reports a submission. Refresh tells the client to refetch the
// whole thread; the new comment only appears through that refetch.
type SubmitOutcome struct {
	State   State `json:"state"`
	Refresh bool  `json:"refresh"`
}

type Service interface {
	View(ctx context.Context, visitorID, page string) (*View, error)
	ToggleReply(ctx context.Context, visitorID, page, commentID string) (*State, error)
	SaveDraft(ctx context.Context, visitorID, page, name, content string) (*State, error)
	Submit(ctx context.Context, visitorID, page string) (*SubmitOutcome, error)
}

type service struct {
	commentSvc comment.Service
	store      Store
}

func NewService(commentSvc comment.Service, store Store) Service {
	return &service{
		commentSvc: commentSvc,
		store:      store,
	}
}

func (s *service) load(ctx context.Context, visitorID, page string) *State {
	state, err := s.store.Load(ctx, visitorID, page)
	if err != nil || state == nil {
		return NewState()
	}
	return state
}

func (s *service) View(ctx context.Context, visitorID, page string) (*View, error) {
	state := s.load(ctx, visitorID, page)
	result := s.commentSvc.ListTree(ctx, page)

	return &View{
		Comments: result.Comments,
		Error:    result.Error,
		State:    *state,
	}, nil
}

func (s *service) ToggleReply(ctx context.Context, visitorID, page, commentID string) (*State, error) {
	state := s.load(ctx, visitorID, page)
	state.ToggleReply(commentID)

	if err := s.store.Save(ctx, visitorID, page, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *service) SaveDraft(ctx context.Context, visitorID, page, name, content string) (*State, error) {
	state := s.load(ctx, visitorID, page)
	state.SetDraft(name, content)

	if err := s.store.Save(ctx, visitorID, page, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *service) Submit(ctx context.Context, visitorID, page string) (*SubmitOutcome, error) {
	state := s.load(ctx, visitorID, page)

	if !state.BeginSubmit() {
		// Blank draft or nothing composing: no transition, submission ignored.
		return &SubmitOutcome{State: *state}, nil
	}

	if err := s.store.Save(ctx, visitorID, page, state); err != nil {
		return nil, err
	}

	name, content, parentID := state.Draft()
	input := domain.AddCommentInput{
		Content: content,
		Page:    page,
		Name:    name,
	}
	if parentID != nil {
		input.ParentID = *parentID
	}

	result := s.commentSvc.Add(ctx, input)
	refresh := state.FinishSubmit(result.Error)

	if err := s.store.Save(ctx, visitorID, page, state); err != nil {
		return nil, err
	}

	return &SubmitOutcome{State: *state, Refresh: refresh}, nil
}
