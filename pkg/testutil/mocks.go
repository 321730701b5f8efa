package testutil

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/painel/painel-backend/pkg/database"
	"github.com/painel/painel-backend/pkg/logger"
)

// MockDB wraps sqlmock for easier testing
type MockDB struct {
	DB   *database.DB
	Mock sqlmock.Sqlmock
}

// NewMockDB creates a new mock database for unit testing.
//
// Usage:
//
//	mockDB := testutil.NewMockDB(t)
//	defer mockDB.Close()
//
//	mockDB.ExpectQuery("SELECT payload FROM snapshot_artifacts").WillReturnRows(...)
//	store := repository.NewPostgresStore(mockDB.DB)
func NewMockDB(t *testing.T) *MockDB {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	return &MockDB{
		DB:   database.Wrap(sqlx.NewDb(db, "postgres"), logger.Nop()),
		Mock: mock,
	}
}

// Close closes the mock database connection
func (m *MockDB) Close() error {
	return m.DB.Close()
}

// ExpectQuery sets up an expected query
func (m *MockDB) ExpectQuery(query string) *sqlmock.ExpectedQuery {
	return m.Mock.ExpectQuery(regexp.QuoteMeta(query))
}

// ExpectExec sets up an expected exec
func (m *MockDB) ExpectExec(query string) *sqlmock.ExpectedExec {
	return m.Mock.ExpectExec(regexp.QuoteMeta(query))
}

// ExpectationsWereMet verifies all expectations were met
func (m *MockDB) ExpectationsWereMet(t *testing.T) {
	if err := m.Mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// MockRows creates a new mock rows object
func MockRows(columns ...string) *sqlmock.Rows {
	return sqlmock.NewRows(columns)
}
