package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/interview-api/internal/models"
)

func TestInterviewRepository_BulkCreateWithTx(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInterviewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO interviews").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO interviews").WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	tx, err := repo.BeginTx(context.Background())
	require.NoError(t, err)

	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	interviews := []models.Interview{
		{
			JobID:            7,
			ApplicantEmail:   "ada@example.com",
			InterviewerEmail: "iv1@example.com",
			StartTime:        start,
			EndTime:          start.Add(30 * time.Minute),
			Location:         "HQ",
			Type:             "onsite",
			Status:           models.InterviewStatusScheduled,
			ProposalID:       "p1",
		},
		{
			JobID:            7,
			ApplicantEmail:   "bob@example.com",
			InterviewerEmail: "iv1@example.com",
			StartTime:        start.Add(30 * time.Minute),
			EndTime:          start.Add(60 * time.Minute),
			Location:         "HQ",
			Type:             "onsite",
			Status:           models.InterviewStatusScheduled,
			ProposalID:       "p1",
		},
	}

	err = repo.BulkCreateWithTx(context.Background(), tx, interviews)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInterviewRepository_BulkCreateWithTx_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInterviewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO interviews").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	tx, err := repo.BeginTx(context.Background())
	require.NoError(t, err)

	err = repo.BulkCreateWithTx(context.Background(), tx, []models.Interview{{JobID: 7}})
	require.Error(t, err)
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInterviewRepository_ListByJob(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInterviewRepository(db)

	now := time.Now()
	cols := []string{"id", "job_id", "applicant_email", "interviewer_email", "start_time", "end_time",
		"location", "type", "status", "proposal_id", "violations", "created_at", "updated_at"}
	rows := sqlmock.NewRows(cols).
		AddRow(int64(1), int64(7), "ada@example.com", "iv1@example.com", now, now.Add(30*time.Minute),
			"HQ", "onsite", models.InterviewStatusScheduled, "p1", []byte(`[]`), now, now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM interviews WHERE job_id = $1 AND status = $2")).
		WithArgs(int64(7), models.InterviewStatusScheduled).
		WillReturnRows(rows)

	out, err := repo.ListByJob(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "ada@example.com", out[0].ApplicantEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}
