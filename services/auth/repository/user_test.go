package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/lleva/internal/pkg/models"
	"github.com/piresc/lleva/services/auth"
	"github.com/piresc/lleva/services/auth/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	userCols    = []string{"id", "email", "password_hash", "created_at"}
	profileCols = []string{"id", "full_name", "avatar_url", "phone", "city", "age", "user_type", "created_at", "updated_at"}
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func newAccount() (*models.User, *models.Profile) {
	name := "Ana Pérez"
	userType := models.UserTypeCustomer
	return &models.User{ID: "6f1c1d4e-0000-4000-8000-000000000001", Email: "ana@example.com", PasswordHash: "hash"},
		&models.Profile{ID: "6f1c1d4e-0000-4000-8000-000000000001", FullName: &name, UserType: &userType}
}

func TestUserRepo_ImplementsUserRepo(t *testing.T) {
	db, _ := setupMockDB(t)
	var _ auth.UserRepo = repository.NewUserRepository(db)
}

func TestCreateUser_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewUserRepository(db)
	user, profile := newAccount()
	createdAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(user.ID, user.Email, user.PasswordHash).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO profiles")).
		WithArgs(profile.ID, profile.FullName, profile.UserType).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(createdAt, createdAt))
	mock.ExpectCommit()

	err := repo.CreateUser(context.Background(), user, profile)

	require.NoError(t, err)
	assert.Equal(t, createdAt, user.CreatedAt)
	assert.Equal(t, createdAt, profile.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewUserRepository(db)
	user, profile := newAccount()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
	mock.ExpectRollback()

	err := repo.CreateUser(context.Background(), user, profile)

	assert.ErrorIs(t, err, auth.ErrEmailTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_ProfileFailureRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewUserRepository(db)
	user, profile := newAccount()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO profiles")).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.CreateUser(context.Background(), user, profile)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert profile")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewUserRepository(db)
	createdAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow("u-1", "ana@example.com", "hash", createdAt))

	user, err := repo.GetUserByEmail(context.Background(), "ana@example.com")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByID_NoAccount(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs("u-404").
		WillReturnRows(sqlmock.NewRows(userCols))

	user, err := repo.GetUserByID(context.Background(), "u-404")

	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByID_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WillReturnError(errors.New("connection refused"))

	user, err := repo.GetUserByID(context.Background(), "u-1")

	assert.Error(t, err)
	assert.Nil(t, user)
}

func TestGetProfile(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewUserRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("FROM profiles")).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(profileCols).AddRow("u-1", "Ana Pérez", nil, nil, "Lima", 31, "customer", now, now))

	profile, err := repo.GetProfile(context.Background(), "u-1")

	require.NoError(t, err)
	require.NotNil(t, profile)
	require.NotNil(t, profile.FullName)
	assert.Equal(t, "Ana Pérez", *profile.FullName)
	assert.Nil(t, profile.AvatarURL)
	require.NotNil(t, profile.UserType)
	assert.Equal(t, models.UserTypeCustomer, *profile.UserType)
	require.NotNil(t, profile.Age)
	assert.Equal(t, 31, *profile.Age)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProfile_KeepsUnsetFields(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewUserRepository(db)
	now := time.Now().UTC()
	phone := "+51987654321"
	age := 32

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE profiles")).
		WithArgs("u-1", nil, nil, &phone, nil, &age).
		WillReturnRows(sqlmock.NewRows(profileCols).
			AddRow("u-1", "Ana Pérez", nil, phone, "Lima", age, "customer", now, now))

	profile, err := repo.UpdateProfile(context.Background(), "u-1", models.ProfileUpdate{Phone: &phone, Age: &age})

	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Ana Pérez", *profile.FullName)
	assert.Equal(t, phone, *profile.Phone)
	assert.Equal(t, 32, *profile.Age)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProfile_NoProfile(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewUserRepository(db)
	city := "Cusco"

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE profiles")).
		WillReturnRows(sqlmock.NewRows(profileCols))

	profile, err := repo.UpdateProfile(context.Background(), "u-404", models.ProfileUpdate{City: &city})

	assert.NoError(t, err)
	assert.Nil(t, profile)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProfile_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewUserRepository(db)
	city := "Cusco"

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE profiles")).
		WillReturnError(errors.New("connection refused"))

	profile, err := repo.UpdateProfile(context.Background(), "u-1", models.ProfileUpdate{City: &city})

	assert.ErrorContains(t, err, "failed to update profile")
	assert.Nil(t, profile)
}
