package requirements

import (
	"context"
	"errors"
	"sync"
	"testing"
)

type fakeIdentity struct {
	identity Identity
	ok       bool
	err      error
	queries  int
}

func (f *fakeIdentity) CurrentUser(ctx context.Context) (Identity, bool, error) {
	f.queries++
	return f.identity, f.ok, f.err
}

type recordingRepo struct {
	mu        sync.Mutex
	created   []Requirement
	createErr error
}

func (r *recordingRepo) Create(ctx context.Context, rec Requirement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, rec)
	return nil
}

func (r *recordingRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Requirement, error) {
	return nil, nil
}

func stagedForm() Form {
	return Form{
		Phase:       PhaseEditing,
		Description: "Need 200 M8 bolts",
		Upload: &UploadResult{
			URL:      "https://store/x.pdf",
			FileName: "spec.pdf",
		},
	}
}

func TestSubmitEmptyDescriptionStaysEditing(t *testing.T) {
	repo := &recordingRepo{}
	ident := &fakeIdentity{ok: true, identity: Identity{ID: "u1", Email: "a@b.com"}}
	wf := NewWorkflow(ident, repo)

	form := stagedForm()
	form.Description = "   "
	next, _, err := wf.Submit(context.Background(), form)
	if !errors.Is(err, ErrDescriptionRequired) {
		t.Fatalf("expected ErrDescriptionRequired, got %v", err)
	}
	if next.Phase != PhaseEditing {
		t.Fatalf("expected Editing, got %v", next.Phase)
	}
	if len(repo.created) != 0 {
		t.Fatalf("expected zero inserts, got %d", len(repo.created))
	}
	if ident.queries != 0 {
		t.Fatalf("validation failure must not reach the auth client")
	}
}

func TestSubmitWithoutUploadStaysEditing(t *testing.T) {
	repo := &recordingRepo{}
	ident := &fakeIdentity{ok: true}
	wf := NewWorkflow(ident, repo)

	form := stagedForm()
	form.Upload = nil
	next, _, err := wf.Submit(context.Background(), form)
	if !errors.Is(err, ErrFileRequired) {
		t.Fatalf("expected ErrFileRequired, got %v", err)
	}
	if next.Phase != PhaseEditing {
		t.Fatalf("expected Editing, got %v", next.Phase)
	}
	if len(repo.created) != 0 || ident.queries != 0 {
		t.Fatalf("no external calls expected")
	}
}

func TestSubmitWhileUploadInFlightStaysEditing(t *testing.T) {
	repo := &recordingRepo{}
	ident := &fakeIdentity{ok: true}
	wf := NewWorkflow(ident, repo)

	form := stagedForm()
	form.UploadInFlight = true
	next, _, err := wf.Submit(context.Background(), form)
	if !errors.Is(err, ErrUploadInFlight) {
		t.Fatalf("expected ErrUploadInFlight, got %v", err)
	}
	if next.Phase != PhaseEditing {
		t.Fatalf("expected Editing, got %v", next.Phase)
	}
	if len(repo.created) != 0 || ident.queries != 0 {
		t.Fatalf("no external calls expected")
	}
}

func TestSubmitUnauthenticatedTransitionsToAwaitingAuth(t *testing.T) {
	repo := &recordingRepo{}
	ident := &fakeIdentity{ok: false}
	wf := NewWorkflow(ident, repo)

	next, _, err := wf.Submit(context.Background(), stagedForm())
	if !errors.Is(err, ErrAuthRequired) {
		t.Fatalf("expected ErrAuthRequired, got %v", err)
	}
	if next.Phase != PhaseAwaitingAuth {
		t.Fatalf("expected AwaitingAuth, got %v", next.Phase)
	}
	if len(repo.created) != 0 {
		t.Fatalf("expected zero inserts, got %d", len(repo.created))
	}
	// Staged data survives the auth detour.
	if next.Description != "Need 200 M8 bolts" || next.Upload == nil {
		t.Fatalf("staged data lost on auth transition")
	}
}

func TestSubmitAuthenticatedInsertsExactlyOnce(t *testing.T) {
	repo := &recordingRepo{}
	ident := &fakeIdentity{ok: true, identity: Identity{ID: "u1", Email: "a@b.com"}}
	wf := NewWorkflow(ident, repo)

	next, rec, err := wf.Submit(context.Background(), stagedForm())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if next.Phase != PhaseSubmitted {
		t.Fatalf("expected Submitted, got %v", next.Phase)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected exactly one insert, got %d", len(repo.created))
	}

	got := repo.created[0]
	if got.Description != "Need 200 M8 bolts" {
		t.Fatalf("description: %q", got.Description)
	}
	if got.FileURL != "https://store/x.pdf" {
		t.Fatalf("file url: %q", got.FileURL)
	}
	if got.FileName != "spec.pdf" {
		t.Fatalf("file name: %q", got.FileName)
	}
	if got.UserID != "u1" || got.UserEmail != "a@b.com" {
		t.Fatalf("owner: %q %q", got.UserID, got.UserEmail)
	}
	if got.Status != StatusPending {
		t.Fatalf("status: %q", got.Status)
	}
	if rec.ID == "" || got.ID != rec.ID {
		t.Fatalf("expected stable record id, got %q / %q", rec.ID, got.ID)
	}
	if ident.queries != 1 {
		t.Fatalf("identity must be resolved exactly once per attempt, got %d", ident.queries)
	}
}

func TestSubmitPersistenceFailurePreservesStagedData(t *testing.T) {
	repo := &recordingRepo{createErr: errors.New("permission denied for table client_requirements")}
	ident := &fakeIdentity{ok: true, identity: Identity{ID: "u1", Email: "a@b.com"}}
	wf := NewWorkflow(ident, repo)

	next, _, err := wf.Submit(context.Background(), stagedForm())
	if err == nil || err.Error() != "permission denied for table client_requirements" {
		t.Fatalf("expected underlying persistence error, got %v", err)
	}
	if next.Phase != PhaseEditing {
		t.Fatalf("expected Editing after failure, got %v", next.Phase)
	}
	if next.Description != "Need 200 M8 bolts" {
		t.Fatalf("description lost after failure")
	}
	if next.Upload == nil || next.Upload.URL != "https://store/x.pdf" {
		t.Fatalf("upload result lost after failure; retry would require re-uploading")
	}
}

func TestIdentityResolvedPerAttemptNotCached(t *testing.T) {
	repo := &recordingRepo{}
	ident := &fakeIdentity{ok: false}
	wf := NewWorkflow(ident, repo)

	form := stagedForm()
	next, _, _ := wf.Submit(context.Background(), form)
	if ident.queries != 1 {
		t.Fatalf("expected one query, got %d", ident.queries)
	}

	// Sign-in happens elsewhere; the next attempt sees the fresh state.
	ident.ok = true
	ident.identity = Identity{ID: "u1", Email: "a@b.com"}
	next = Cancel(next)
	next, _, err := wf.Submit(context.Background(), next)
	if err != nil {
		t.Fatalf("second attempt: %v", err)
	}
	if ident.queries != 2 {
		t.Fatalf("expected identity re-resolved on retry, got %d queries", ident.queries)
	}
	if next.Phase != PhaseSubmitted {
		t.Fatalf("expected Submitted, got %v", next.Phase)
	}
}

func TestCancelAndReset(t *testing.T) {
	form := stagedForm()
	form.Phase = PhaseAwaitingAuth

	cancelled := Cancel(form)
	if cancelled.Phase != PhaseEditing {
		t.Fatalf("expected Editing after cancel, got %v", cancelled.Phase)
	}
	if cancelled.Description == "" || cancelled.Upload == nil {
		t.Fatalf("cancel must not lose staged data")
	}

	form.Phase = PhaseSubmitted
	reset := Reset(form)
	if reset.Phase != PhaseEditing {
		t.Fatalf("expected Editing after reset, got %v", reset.Phase)
	}
	if reset.Description != "" || reset.Upload != nil || reset.UploadInFlight {
		t.Fatalf("reset must clear all staged data")
	}
}
