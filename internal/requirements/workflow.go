package requirements

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Phase is the submission workflow state. Keeping it a single tagged
// value (rather than a pile of booleans) makes illegal combinations,
// such as submitting without an upload result, unrepresentable.
type Phase int

const (
	PhaseEditing Phase = iota
	PhaseAwaitingAuth
	PhaseSubmitting
	PhaseSubmitted
)

func (p Phase) String() string {
	switch p {
	case PhaseEditing:
		return "editing"
	case PhaseAwaitingAuth:
		return "awaiting_auth"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// Form is the staged state of one submission attempt. It is owned by
// exactly one caller; nothing here is shared across instances.
type Form struct {
	Phase          Phase
	Description    string
	Upload         *UploadResult
	UploadInFlight bool
}

// Identity is the resolved authenticated identity at the moment of a
// submission attempt.
type Identity struct {
	ID    string
	Email string
}

// IdentitySource answers "who is signed in right now, if anyone". It is
// queried immediately before each insert attempt rather than cached,
// because sign-in state can change while an upload is running (another
// tab, expired session).
type IdentitySource interface {
	CurrentUser(ctx context.Context) (Identity, bool, error)
}

// Workflow composes the validator, uploader, identity source and
// requirements repository into a single guarded submit action.
type Workflow struct {
	Identity IdentitySource
	Repo     Repo

	now func() time.Time
}

// NewWorkflow builds a Workflow.
func NewWorkflow(identity IdentitySource, repo Repo) *Workflow {
	return &Workflow{
		Identity: identity,
		Repo:     repo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Submit runs one submission attempt against the staged form and returns
// the next form state. The guard chain runs first and issues no external
// calls; only a fully staged form reaches the identity query, and only a
// resolved identity reaches the insert. On persistence failure the form
// returns to Editing with description and upload result intact, so a
// retry does not require re-uploading the file.
func (w *Workflow) Submit(ctx context.Context, form Form) (Form, Requirement, error) {
	if strings.TrimSpace(form.Description) == "" {
		form.Phase = PhaseEditing
		return form, Requirement{}, ErrDescriptionRequired
	}
	if form.Upload == nil || form.Upload.URL == "" {
		form.Phase = PhaseEditing
		return form, Requirement{}, ErrFileRequired
	}
	if form.UploadInFlight {
		form.Phase = PhaseEditing
		return form, Requirement{}, ErrUploadInFlight
	}

	identity, ok, err := w.Identity.CurrentUser(ctx)
	if err != nil {
		form.Phase = PhaseEditing
		return form, Requirement{}, err
	}
	if !ok {
		form.Phase = PhaseAwaitingAuth
		return form, Requirement{}, ErrAuthRequired
	}

	form.Phase = PhaseSubmitting
	rec := Requirement{
		ID:          uuid.NewString(),
		Description: form.Description,
		FileURL:     form.Upload.URL,
		FileName:    form.Upload.FileName,
		UserID:      identity.ID,
		UserEmail:   identity.Email,
		Status:      StatusPending,
		CreatedAt:   w.now(),
	}

	if err := w.Repo.Create(ctx, rec); err != nil {
		form.Phase = PhaseEditing
		return form, Requirement{}, err
	}

	form.Phase = PhaseSubmitted
	return form, rec, nil
}

// Cancel leaves the awaiting-auth prompt without losing staged data.
func Cancel(form Form) Form {
	if form.Phase == PhaseAwaitingAuth {
		form.Phase = PhaseEditing
	}
	return form
}

// Reset clears a submitted form so a new requirement can be staged.
func Reset(form Form) Form {
	return Form{Phase: PhaseEditing}
}
