package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- address shape tests ---

func TestAddressRegexp(t *testing.T) {
	valid := []string{
		"0x" + "ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12",
		"0x" + "AB12CD34EF56AB12CD34EF56AB12CD34EF56AB12",
		"0x0000000000000000000000000000000000000000",
	}
	for _, v := range valid {
		assert.True(t, addressRe.MatchString(v), v)
	}

	invalid := []string{
		"",
		"0x",
		"ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12",     // missing prefix
		"0xab12cd34ef56ab12cd34ef56ab12cd34ef56ab1",    // 39 digits
		"0xab12cd34ef56ab12cd34ef56ab12cd34ef56ab123",  // 41 digits
		"0xgb12cd34ef56ab12cd34ef56ab12cd34ef56ab12",   // non-hex
		"0x ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12",  // inner whitespace
	}
	for _, v := range invalid {
		assert.False(t, addressRe.MatchString(v), v)
	}
}

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := RegisterRequest{
		Username: "  alice  ",
		Password: "  pass1234  ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "alice", req.Username)
	assert.Equal(t, "pass1234", req.Password)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := CreateCampaignRequest{
		Title:      "Flood Relief <script>alert('x')</script>",
		GoalAmount: 1000,
	}
	SanitizeStruct(&req)

	assert.Contains(t, req.Title, "&lt;script&gt;")
	assert.NotContains(t, req.Title, "<script>")
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	req := LoginRequest{Username: "  bob  "}
	SanitizeStruct(req)
	assert.Equal(t, "  bob  ", req.Username)
}
