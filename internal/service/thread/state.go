package thread

import "strings"

// Phase is the compose state of one thread view. The browser in front of this
// API is intentionally dumb: it posts events and re-renders whatever state
// comes back, so all transition rules live here.
type Phase string

const (
	PhaseIdle           Phase = "idle"
	PhaseComposingRoot  Phase = "composing-root"
	PhaseComposingReply Phase = "composing-reply"
	PhaseSubmitting     Phase = "submitting"
)

// State holds the compose state for one visitor on one page. Drafts survive a
// failed submission so the visitor can retry without retyping.
type State struct {
	Phase   Phase   `json:"phase"`
	ReplyTo *string `json:"replyTo,omitempty"`

	RootName    string `json:"rootName"`
	RootContent string `json:"rootContent"`

	ReplyName    string `json:"replyName"`
	ReplyContent string `json:"replyContent"`

	ErrorMessage string `json:"errorMessage,omitempty"`

	// resumePhase remembers where a failed submission returns to.
	ResumePhase   Phase   `json:"resumePhase,omitempty"`
	ResumeReplyTo *string `json:"resumeReplyTo,omitempty"`
}

func NewState() *State {
	return &State{Phase: PhaseIdle}
}

// ToggleReply opens the reply form on the given comment. Toggling the same
// comment closes it; a different comment replaces the open form. Only one
// reply form is open at a time. Ignored while a submission is in flight.
func (s *State) ToggleReply(commentID string) {
	if s.Phase == PhaseSubmitting {
		return
	}

	if s.Phase == PhaseComposingReply && s.ReplyTo != nil && *s.ReplyTo == commentID {
		s.Phase = PhaseIdle
		s.ReplyTo = nil
		return
	}

	id := commentID
	s.Phase = PhaseComposingReply
	s.ReplyTo = &id
}

// SetDraft records entered text into the active compose slot. Typing into the
// root form while idle moves the view to composing-root.
func (s *State) SetDraft(name, content string) {
	if s.Phase == PhaseSubmitting {
		return
	}

	if s.Phase == PhaseComposingReply {
		s.ReplyName = name
		s.ReplyContent = content
		return
	}

	s.RootName = name
	s.RootContent = content
	if s.Phase == PhaseIdle {
		s.Phase = PhaseComposingRoot
	}
}

// Draft returns the fields the active compose slot would submit.
func (s *State) Draft() (name, content string, parentID *string) {
	if s.Phase == PhaseComposingReply || (s.Phase == PhaseSubmitting && s.ResumePhase == PhaseComposingReply) {
		replyTo := s.ReplyTo
		if s.Phase == PhaseSubmitting {
			replyTo = s.ResumeReplyTo
		}
		return s.ReplyName, s.ReplyContent, replyTo
	}
	return s.RootName, s.RootContent, nil
}

// BeginSubmit moves a composing view into submitting. It refuses while a
// submission is already in flight (one at a time) and silently ignores blank
// content; the server re-validates everything regardless.
func (s *State) BeginSubmit() bool {
	if s.Phase != PhaseComposingRoot && s.Phase != PhaseComposingReply {
		return false
	}

	_, content, _ := s.Draft()
	if strings.TrimSpace(content) == "" {
		return false
	}

	s.ResumePhase = s.Phase
	s.ResumeReplyTo = s.ReplyTo
	s.Phase = PhaseSubmitting
	s.ErrorMessage = ""
	return true
}

// FinishSubmit resolves an in-flight submission. On success the relevant
// drafts are cleared, any open reply form closes, and the caller must refetch
// the authoritative tree; there is no optimistic local insertion. On failure
// the view returns to its prior composing state with drafts intact.
func (s *State) FinishSubmit(errMessage string) (refresh bool) {
	if s.Phase != PhaseSubmitting {
		return false
	}

	if errMessage != "" {
		s.Phase = s.ResumePhase
		s.ReplyTo = s.ResumeReplyTo
		s.ResumePhase = ""
		s.ResumeReplyTo = nil
		s.ErrorMessage = errMessage
		return false
	}

	if s.ResumePhase == PhaseComposingReply {
		s.ReplyName = ""
		s.ReplyContent = ""
	} else {
		s.RootContent = ""
	}

	s.Phase = PhaseIdle
	s.ReplyTo = nil
	s.ResumePhase = ""
	s.ResumeReplyTo = nil
	s.ErrorMessage = ""
	return true
}
