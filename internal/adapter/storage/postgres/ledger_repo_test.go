package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"relief-custody-engine/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddr(c string) domain.Address {
	return domain.Address("0x" + strings.Repeat(c, 40))
}

func newTestAccount(addr domain.Address, balance int64) *domain.LedgerAccount {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.LedgerAccount{Address: addr, Balance: balance, CreatedAt: now, UpdatedAt: now}
}

func accountRow(a *domain.LedgerAccount) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"address", "balance", "created_at", "updated_at"}).
		AddRow(a.Address, a.Balance, a.CreatedAt, a.UpdatedAt)
}

func TestLedgerRepo_CreateAccount(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	a := newTestAccount(testAddr("1"), 0)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO ledger_accounts").
		WithArgs(a.Address, a.Balance, a.CreatedAt, a.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.CreateAccount(context.Background(), tx, a)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_GetAccount(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	a := newTestAccount(testAddr("1"), 500)

	mock.ExpectQuery("SELECT .+ FROM ledger_accounts WHERE address").
		WithArgs(a.Address).
		WillReturnRows(accountRow(a))

	result, err := repo.GetAccount(context.Background(), a.Address)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, int64(500), result.Balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_GetAccount_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM ledger_accounts WHERE address").
		WithArgs(testAddr("9")).
		WillReturnRows(pgxmock.NewRows([]string{"address", "balance", "created_at", "updated_at"}))

	result, err := repo.GetAccount(context.Background(), testAddr("9"))
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_GetAccountForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	a := newTestAccount(testAddr("1"), 500)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM ledger_accounts WHERE address .+ FOR UPDATE").
		WithArgs(a.Address).
		WillReturnRows(accountRow(a))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetAccountForUpdate(context.Background(), tx, a.Address)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, a.Address, result.Address)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_UpdateBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	addr := testAddr("1")

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE ledger_accounts SET balance").
		WithArgs(int64(750), addr).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateBalance(context.Background(), tx, addr, 750)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_UpdateBalance_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE ledger_accounts SET balance").
		WithArgs(int64(750), testAddr("9")).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateBalance(context.Background(), tx, testAddr("9"), 750)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_UpsertCredit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	addr := testAddr("2")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO ledger_accounts .+ ON CONFLICT").
		WithArgs(addr, int64(400)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpsertCredit(context.Background(), tx, addr, 400)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_GetAllowance_DefaultsToZero(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)

	mock.ExpectQuery("SELECT remaining FROM allowances").
		WithArgs(testAddr("1"), testAddr("2")).
		WillReturnRows(pgxmock.NewRows([]string{"remaining"}))

	remaining, err := repo.GetAllowance(context.Background(), testAddr("1"), testAddr("2"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), remaining)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_SetAllowance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)

	mock.ExpectExec("INSERT INTO allowances").
		WithArgs(testAddr("1"), testAddr("2"), int64(1000)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.SetAllowance(context.Background(), testAddr("1"), testAddr("2"), 1000)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_PauseFlag(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)

	// No state row yet: not paused.
	mock.ExpectQuery("SELECT paused FROM token_state").
		WillReturnRows(pgxmock.NewRows([]string{"paused"}))

	paused, err := repo.IsPaused(context.Background())
	require.NoError(t, err)
	assert.False(t, paused)

	mock.ExpectExec("INSERT INTO token_state").
		WithArgs(true).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.SetPaused(context.Background(), true))

	mock.ExpectQuery("SELECT paused FROM token_state").
		WillReturnRows(pgxmock.NewRows([]string{"paused"}).AddRow(true))

	paused, err = repo.IsPaused(context.Background())
	require.NoError(t, err)
	assert.True(t, paused)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_IsPausedForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT paused FROM token_state .+ FOR SHARE").
		WillReturnRows(pgxmock.NewRows([]string{"paused"}).AddRow(true))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	paused, err := repo.IsPausedForUpdate(context.Background(), tx)
	require.NoError(t, err)
	assert.True(t, paused)
	assert.NoError(t, mock.ExpectationsWereMet())
}
