package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAddress(t *testing.T) {
	addr, err := NormalizeAddress("0xAB54A98CEB1F0AD2eb2c5b9fd6a7c4e1d3f20918")
	require.NoError(t, err)
	assert.Equal(t, Address("0xab54a98ceb1f0ad2eb2c5b9fd6a7c4e1d3f20918"), addr)
}

func TestNormalizeAddress_TrimsWhitespace(t *testing.T) {
	addr, err := NormalizeAddress("  0xab54a98ceb1f0ad2eb2c5b9fd6a7c4e1d3f20918 ")
	require.NoError(t, err)
	assert.Equal(t, Address("0xab54a98ceb1f0ad2eb2c5b9fd6a7c4e1d3f20918"), addr)
}

func TestNormalizeAddress_Rejects(t *testing.T) {
	cases := []string{
		"",
		"ab54a98ceb1f0ad2eb2c5b9fd6a7c4e1d3f20918", // no 0x prefix
		"0xab54",                                     // too short
		"0xab54a98ceb1f0ad2eb2c5b9fd6a7c4e1d3f2091800", // too long
		"0xzz54a98ceb1f0ad2eb2c5b9fd6a7c4e1d3f20918",   // not hex
	}
	for _, c := range cases {
		_, err := NormalizeAddress(c)
		assert.Error(t, err, "expected rejection for %q", c)
	}
}

func TestNewAddress_Shape(t *testing.T) {
	a := NewAddress()
	normalized, err := NormalizeAddress(a.String())
	require.NoError(t, err)
	assert.Equal(t, a, normalized)
	assert.False(t, a.IsZero())

	// Two generated addresses must not collide.
	assert.NotEqual(t, a, NewAddress())
}

func TestAddress_IsZero(t *testing.T) {
	assert.True(t, ZeroAddress.IsZero())
	assert.True(t, Address("").IsZero())
	assert.False(t, NewAddress().IsZero())
}

func TestCampaignStatus_CanTransition(t *testing.T) {
	cases := []struct {
		from, to CampaignStatus
		ok       bool
	}{
		{CampaignStatusDraft, CampaignStatusActive, true},
		{CampaignStatusDraft, CampaignStatusCancelled, true},
		{CampaignStatusDraft, CampaignStatusPaused, false},
		{CampaignStatusActive, CampaignStatusPaused, true},
		{CampaignStatusPaused, CampaignStatusActive, true},
		{CampaignStatusActive, CampaignStatusCompleted, true},
		{CampaignStatusPaused, CampaignStatusCompleted, true},
		{CampaignStatusActive, CampaignStatusCancelled, true},
		{CampaignStatusCompleted, CampaignStatusCancelled, false},
		{CampaignStatusCancelled, CampaignStatusActive, false},
		{CampaignStatusCompleted, CampaignStatusActive, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestCampaignStatus_IsTerminal(t *testing.T) {
	assert.True(t, CampaignStatusCompleted.IsTerminal())
	assert.True(t, CampaignStatusCancelled.IsTerminal())
	assert.False(t, CampaignStatusActive.IsTerminal())
	assert.False(t, CampaignStatusPaused.IsTerminal())
	assert.False(t, CampaignStatusDraft.IsTerminal())
}

func TestCampaign_Pool(t *testing.T) {
	c := &Campaign{RaisedAmount: 1000, TotalAllocated: 900}
	assert.Equal(t, int64(100), c.Pool())
}

func TestCampaign_IsActive(t *testing.T) {
	c := &Campaign{Status: CampaignStatusActive}
	assert.True(t, c.IsActive())
	c.Status = CampaignStatusPaused
	assert.False(t, c.IsActive())
}
