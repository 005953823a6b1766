package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRepo_ApproveOrganizer_Idempotent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRegistryRepo(mock)
	addr := testAddr("2")

	mock.ExpectExec("INSERT INTO approved_organizers").
		WithArgs(addr).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, repo.ApproveOrganizer(context.Background(), addr))

	// Second approval hits the DO NOTHING branch.
	mock.ExpectExec("INSERT INTO approved_organizers").
		WithArgs(addr).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	require.NoError(t, repo.ApproveOrganizer(context.Background(), addr))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistryRepo_IsApprovedOrganizer(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRegistryRepo(mock)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(testAddr("2")).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	approved, err := repo.IsApprovedOrganizer(context.Background(), testAddr("2"))
	require.NoError(t, err)
	assert.True(t, approved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistryRepo_CampaignCount(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRegistryRepo(mock)

	mock.ExpectQuery("SELECT COUNT.+ FROM campaigns").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(12)))

	count, err := repo.CampaignCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistryRepo_CampaignIDAt(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRegistryRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT id FROM campaigns WHERE registry_index").
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))

	result, err := repo.CampaignIDAt(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, id, *result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistryRepo_CampaignIDAt_OutOfRange(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRegistryRepo(mock)

	mock.ExpectQuery("SELECT id FROM campaigns WHERE registry_index").
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	result, err := repo.CampaignIDAt(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}
