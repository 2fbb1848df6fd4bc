package accounts

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*SQLRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return NewSQLRepository(sqlx.NewDb(db, "sqlmock")), mock
}

const (
	listQuery   = `(?s)^SELECT\s+account_id,\s*credential_hash\s+FROM\s+accounts\s+ORDER\s+BY\s+account_id$`
	upsertQuery = `(?s)^INSERT\s+INTO\s+accounts\s*\(account_id,\s*credential_hash\)\s*VALUES\s*\(\?,\s*\?\)\s*ON\s+CONFLICT\s*\(account_id\)\s*DO\s+UPDATE\s+SET\s+credential_hash\s*=\s*excluded\.credential_hash,\s*updated_at\s*=\s*CURRENT_TIMESTAMP$`
	deleteQuery = `^DELETE\s+FROM\s+accounts\s+WHERE\s+account_id\s*=\s*\?$`
)

func TestList_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	rows := sqlmock.NewRows([]string{"account_id", "credential_hash"}).
		AddRow(int64(1), "hashA").
		AddRow(int64(2), "hashB")
	mock.ExpectQuery(listQuery).WillReturnRows(rows)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Account{
		{AccountID: 1, CredentialHash: "hashA"},
		{AccountID: 2, CredentialHash: "hashB"},
	}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_Empty(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(listQuery).WillReturnRows(sqlmock.NewRows([]string{"account_id", "credential_hash"}))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestList_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(listQuery).WillReturnError(errors.New("db down"))

	_, err := repo.List(context.Background())
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestUpsert_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(upsertQuery).
		WithArgs(int64(7), "newHash").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Upsert(context.Background(), 7, "newHash"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(upsertQuery).
		WithArgs(int64(7), "dup").
		WillReturnError(errors.New("UNIQUE constraint failed"))

	err := repo.Upsert(context.Background(), 7, "dup")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error: UNIQUE constraint failed")
}

func TestDelete_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(deleteQuery).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 7))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_MissingIsNotAnError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(deleteQuery).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 99))
}

func TestDelete_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(deleteQuery).
		WithArgs(int64(7)).
		WillReturnError(errors.New("locked"))

	err := repo.Delete(context.Background(), 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error: locked")
}
