package id

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// NewGUID returns exactly 32 lowercase hex characters (no separators/prefixes),
// the guid format GnuCash uses for accounts, commodities and books.
func NewGUID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}
