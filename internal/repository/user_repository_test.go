package repository

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func userColumns() []string {
	return []string{"id", "first_name", "last_name", "email_address", "password_hash", "created_at", "updated_at"}
}

func TestUserCreate(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo := NewUserRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("Joe", "Smith", "joe@smith.com", "hashed").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(1, "Joe", "Smith", "joe@smith.com", "hashed", now, now))

	user, err := repo.Create("Joe", "Smith", "joe@smith.com", "hashed")
	require.NoError(t, err)

	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "joe@smith.com", user.EmailAddress)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCreateTranslatesUniqueViolation(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("Joe", "Smith", "joe@smith.com", "hashed").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_address_key"})

	_, err := repo.Create("Joe", "Smith", "joe@smith.com", "hashed")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCreateOtherErrorsWrapped(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.Create("Joe", "Smith", "joe@smith.com", "hashed")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateEmail)
}

func TestUserFindByEmail(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo := NewUserRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs("joe@smith.com").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(1, "Joe", "Smith", "joe@smith.com", "hashed", now, now))

	user, err := repo.FindByEmail("joe@smith.com")
	require.NoError(t, err)
	assert.Equal(t, "hashed", user.PasswordHash)
}

func TestUserFindByEmailNotFound(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs("nobody@smith.com").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := repo.FindByEmail("nobody@smith.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserFindByID(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo := NewUserRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(1, "Joe", "Smith", "joe@smith.com", "hashed", now, now))

	user, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Joe", user.FirstName)
}
