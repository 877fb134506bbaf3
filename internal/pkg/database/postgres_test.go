package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/lleva/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name     string
		config   models.DatabaseConfig
		expected string
	}{
		{
			name: "Local database",
			config: models.DatabaseConfig{
				Host: "localhost", Port: 5432, Username: "lleva", Password: "secret",
				Database: "lleva", SSLMode: "disable",
			},
			expected: "host=localhost port=5432 user=lleva password=secret dbname=lleva sslmode=disable",
		},
		{
			name: "Special characters in password",
			config: models.DatabaseConfig{
				Host: "db", Port: 6543, Username: "user", Password: "p@ss!#",
				Database: "db", SSLMode: "require",
			},
			expected: "host=db port=6543 user=user password=p@ss!# dbname=db sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildDSN(tt.config))
		})
	}
}

func TestPostgresClient_GetDB(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	client := NewPostgresClientFromDB(sqlxDB)

	assert.Equal(t, sqlxDB, client.GetDB())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClient_Ping(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectPing()

	client := NewPostgresClientFromDB(sqlx.NewDb(mockDB, "sqlmock"))
	assert.NoError(t, client.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClient_Close(t *testing.T) {
	t.Run("Close successfully", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		mock.ExpectClose()

		client := NewPostgresClientFromDB(sqlx.NewDb(mockDB, "sqlmock"))
		assert.NoError(t, client.Close())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Close with error", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		mock.ExpectClose().WillReturnError(sql.ErrConnDone)

		client := NewPostgresClientFromDB(sqlx.NewDb(mockDB, "sqlmock"))
		assert.ErrorIs(t, client.Close(), sql.ErrConnDone)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
