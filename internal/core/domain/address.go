package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// Address identifies a ledger account: "0x" followed by 40 hex characters,
// stored lowercase. Callers compare addresses case-insensitively, so every
// ingress path normalizes before the value reaches the core.
type Address string

// ZeroAddress is the absent-wallet sentinel.
const ZeroAddress Address = "0x0000000000000000000000000000000000000000"

const addressHexLen = 40

// NormalizeAddress lowercases and validates a caller-supplied address.
func NormalizeAddress(s string) (Address, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "0x") {
		return "", fmt.Errorf("address must start with 0x")
	}
	body := s[2:]
	if len(body) != addressHexLen {
		return "", fmt.Errorf("address must be %d hex characters, got %d", addressHexLen, len(body))
	}
	if _, err := hex.DecodeString(body); err != nil {
		return "", fmt.Errorf("address is not valid hex: %w", err)
	}
	return Address(s), nil
}

// NewAddress generates a fresh random address for a participant, campaign
// custody account or custodial wallet.
func NewAddress() Address {
	b := make([]byte, addressHexLen/2)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failure means the process has no usable entropy source.
		panic(fmt.Sprintf("generating address: %v", err))
	}
	return Address("0x" + hex.EncodeToString(b))
}

// IsZero reports whether the address is the absent sentinel or empty.
func (a Address) IsZero() bool {
	return a == "" || a == ZeroAddress
}

func (a Address) String() string {
	return string(a)
}
