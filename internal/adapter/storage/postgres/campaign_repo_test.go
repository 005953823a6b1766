package postgres

import (
	"context"
	"testing"
	"time"

	"relief-custody-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCampaign() *domain.Campaign {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Campaign{
		ID:           uuid.New(),
		Index:        0,
		Address:      testAddr("c"),
		Organizer:    testAddr("2"),
		Title:        "Flood Relief",
		GoalAmount:   100000,
		RaisedAmount: 5000,
		Status:       domain.CampaignStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func campaignTestColumns() []string {
	return []string{
		"id", "registry_index", "address", "organizer", "title", "goal_amount",
		"raised_amount", "total_allocated", "status", "created_at", "updated_at",
	}
}

func campaignRow(c *domain.Campaign) *pgxmock.Rows {
	return pgxmock.NewRows(campaignTestColumns()).AddRow(
		c.ID, c.Index, c.Address, c.Organizer, c.Title, c.GoalAmount,
		c.RaisedAmount, c.TotalAllocated, c.Status, c.CreatedAt, c.UpdatedAt,
	)
}

func TestCampaignRepo_Create_AssignsRegistryIndex(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCampaignRepo(mock)
	c := newTestCampaign()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO campaigns").
		WithArgs(c.ID, c.Address, c.Organizer, c.Title, c.GoalAmount,
			c.RaisedAmount, c.TotalAllocated, c.Status, c.CreatedAt, c.UpdatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"registry_index"}).AddRow(int64(4)))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, c)
	require.NoError(t, err)
	assert.Equal(t, int64(4), c.Index)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCampaignRepo(mock)
	c := newTestCampaign()

	mock.ExpectQuery("SELECT .+ FROM campaigns WHERE id").
		WithArgs(c.ID).
		WillReturnRows(campaignRow(c))

	result, err := repo.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, c.Title, result.Title)
	assert.Equal(t, c.RaisedAmount, result.RaisedAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCampaignRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM campaigns WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(campaignTestColumns()))

	result, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepo_GetByIDForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCampaignRepo(mock)
	c := newTestCampaign()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM campaigns WHERE id .+ FOR UPDATE").
		WithArgs(c.ID).
		WillReturnRows(campaignRow(c))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetByIDForUpdate(context.Background(), tx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, c.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepo_UpdateTotals(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCampaignRepo(mock)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE campaigns SET raised_amount").
		WithArgs(int64(6000), int64(1000), id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateTotals(context.Background(), tx, id, 6000, 1000)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepo_UpdateStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCampaignRepo(mock)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE campaigns SET status").
		WithArgs(domain.CampaignStatusPaused, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateStatus(context.Background(), tx, id, domain.CampaignStatusPaused)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepo_BeneficiarySet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCampaignRepo(mock)
	id := uuid.New()
	addr := testAddr("3")

	mock.ExpectExec("INSERT INTO campaign_beneficiaries").
		WithArgs(id, addr).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, repo.AddBeneficiaryApplication(context.Background(), id, addr))

	mock.ExpectExec("UPDATE campaign_beneficiaries").
		WithArgs(id, addr).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, repo.ApproveBeneficiary(context.Background(), id, addr))

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(id, addr).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	approved, err := repo.IsBeneficiaryApproved(context.Background(), id, addr)
	require.NoError(t, err)
	assert.True(t, approved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepo_ApproveBeneficiary_NoApplication(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCampaignRepo(mock)

	mock.ExpectExec("UPDATE campaign_beneficiaries").
		WithArgs(uuid.Nil, testAddr("3")).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.ApproveBeneficiary(context.Background(), uuid.Nil, testAddr("3"))
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepo_MerchantSet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCampaignRepo(mock)
	id := uuid.New()
	addr := testAddr("4")

	mock.ExpectExec("INSERT INTO campaign_merchants").
		WithArgs(id, addr).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, repo.ApproveMerchant(context.Background(), id, addr))

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(id, addr).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	approved, err := repo.IsMerchantApproved(context.Background(), id, addr)
	require.NoError(t, err)
	assert.True(t, approved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepo_ListApplicants(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCampaignRepo(mock)
	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT .+ FROM campaign_beneficiaries").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"campaign_id", "address", "approved", "applied_at", "approved_at"}).
			AddRow(id, testAddr("3"), true, now, &now).
			AddRow(id, testAddr("5"), false, now, (*time.Time)(nil)))

	apps, err := repo.ListApplicants(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.True(t, apps[0].Approved)
	assert.False(t, apps[1].Approved)
	assert.Nil(t, apps[1].ApprovedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
