package db

import (
	"context"
	"database/sql"

	"github.com/stretchr/testify/mock"
)

// mockExecutor records calls made through SQLExecutor. *sql.Rows and *sql.Row
// cannot be built outside database/sql, so query mocks only return errors.
type mockExecutor struct {
	mock.Mock
}

var _ SQLExecutor = (*mockExecutor)(nil)

func (m *mockExecutor) PingContext(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockExecutor) WithTransaction(ctx context.Context, isolation sql.IsolationLevel, fn TxFunc) error {
	return m.Called(ctx, isolation, fn).Error(0)
}

func (m *mockExecutor) ExecContext(ctx context.Context, query string, queryArgs ...any) (sql.Result, error) {
	args := m.Called(ctx, query, queryArgs)
	result, _ := args.Get(0).(sql.Result)
	return result, args.Error(1)
}

func (m *mockExecutor) QueryContext(ctx context.Context, query string, queryArgs ...any) (*sql.Rows, error) {
	args := m.Called(ctx, query, queryArgs)
	rows, _ := args.Get(0).(*sql.Rows)
	return rows, args.Error(1)
}

func (m *mockExecutor) QueryRowContext(ctx context.Context, query string, queryArgs ...any) *sql.Row {
	row, _ := m.Called(ctx, query, queryArgs).Get(0).(*sql.Row)
	return row
}

// rowsAffected is a fixed sql.Result.
type rowsAffected int64

func (r rowsAffected) LastInsertId() (int64, error) { return 0, nil }
func (r rowsAffected) RowsAffected() (int64, error) { return int64(r), nil }
