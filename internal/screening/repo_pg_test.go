package screening

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	result := Result{
		ID:             "screening-1",
		Filename:       "resume.pdf",
		JobTitle:       "Backend Engineer",
		Success:        true,
		FinalScore:     83.5,
		Recommendation: RecommendStrong,
		CreatedAt:      time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO screenings").
		WithArgs(
			result.ID,
			result.Filename,
			result.JobTitle,
			result.FinalScore,
			result.Recommendation,
			result.Success,
			sqlmock.AnyArg(), // payload
			sqlmock.AnyArg(), // created_at
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), result); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	want := Result{
		ID:         "screening-2",
		Filename:   "resume.docx",
		Success:    true,
		FinalScore: 61.2,
	}
	payload, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	mock.ExpectQuery("SELECT payload").
		WithArgs(want.ID).
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(payload))

	repo := &PGRepo{DB: db}
	got, err := repo.GetByID(context.Background(), want.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != want.ID || got.FinalScore != want.FinalScore || got.Filename != want.Filename {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT payload").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}))

	repo := &PGRepo{DB: db}
	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPGRepoList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	first, _ := json.Marshal(Result{ID: "a", FinalScore: 90})
	second, _ := json.Marshal(Result{ID: "b", FinalScore: 40})

	mock.ExpectQuery("SELECT payload").
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(first).AddRow(second))

	repo := &PGRepo{DB: db}
	got, err := repo.List(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("got %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
