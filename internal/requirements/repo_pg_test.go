package requirements

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateInsertsAllFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	rec := Requirement{
		ID:          "req-1",
		Description: "Need 200 M8 bolts",
		FileURL:     "https://store/x.pdf",
		FileName:    "spec.pdf",
		UserID:      "u1",
		UserEmail:   "a@b.com",
		Status:      StatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO client_requirements").
		WithArgs(
			rec.ID,
			rec.Description,
			rec.FileURL,
			rec.FileName,
			rec.UserID,
			rec.UserEmail,
			rec.Status,
			rec.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoCreateDefaultsStatusToPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	rec := Requirement{
		ID:          "req-2",
		Description: "desc",
		FileURL:     "https://store/y.pdf",
		FileName:    "y.pdf",
		UserID:      "u1",
		UserEmail:   "a@b.com",
		CreatedAt:   time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO client_requirements").
		WithArgs(
			rec.ID,
			rec.Description,
			rec.FileURL,
			rec.FileName,
			rec.UserID,
			rec.UserEmail,
			StatusPending,
			rec.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "description", "file_url", "file_name", "user_id", "user_email", "status", "created_at",
	}).
		AddRow("req-2", "second", "https://store/b.pdf", "b.pdf", "u1", "a@b.com", "pending", now).
		AddRow("req-1", "first", "https://store/a.pdf", "a.pdf", "u1", "a@b.com", "pending", now.Add(-time.Hour))

	mock.ExpectQuery("SELECT id, description, file_url, file_name, user_id, user_email, status, created_at").
		WithArgs("u1", 20, 0).
		WillReturnRows(rows)

	recs, err := repo.ListByUser(context.Background(), "u1", 0, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(recs))
	}
	if recs[0].ID != "req-2" || recs[1].ID != "req-1" {
		t.Fatalf("expected newest-first ordering, got %q then %q", recs[0].ID, recs[1].ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
