package service

import (
	"context"
	"strings"
	"testing"

	"relief-custody-engine/internal/core/domain"
	"relief-custody-engine/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// fakeTx satisfies pgx.Tx for services that only Commit and Rollback.
type fakeTx struct{ pgx.Tx }

func (fakeTx) Commit(ctx context.Context) error   { return nil }
func (fakeTx) Rollback(ctx context.Context) error { return nil }

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// testAddr builds a valid ledger address from a single repeated hex digit.
func testAddr(c string) domain.Address {
	return domain.Address("0x" + strings.Repeat(c, 40))
}

func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, code, appErr.Code)
}
