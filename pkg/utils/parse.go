package utils

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/bonusplayerslive-star/neon-kafe/pkg/apperror"
)

// ParseID is the single identifier check used by every operation that accepts
// an external id. A malformed id is rejected here with a typed validation
// error before it can reach a datastore call.
func ParseID(s string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, apperror.NewValidationError("identifier is required")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, apperror.NewValidationError("malformed identifier: " + s)
	}
	return id, nil
}

// ParseAmount converts a raw money field to cents. Malformed or negative
// input is coerced to 0, matching the permissive intake the admin form
// always had.
func ParseAmount(s string) int64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 {
		return 0
	}
	return int64(f*100 + 0.5)
}

// ParseCount converts a raw stock count field. Malformed or negative input is
// coerced to 0.
func ParseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
