package queries

import (
	"fmt"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200

	DefaultLoginLogLimit = 10
	BackupLogLimit       = 10
)

// ValidateLimit applies the default for zero and rejects values outside (0, max].
func ValidateLimit(limit, def, max int32) (int32, error) {
	if limit == 0 {
		return def, nil
	}
	if limit < 0 || limit > max {
		return 0, fmt.Errorf("limit must be between 1 and %d", max)
	}
	return limit, nil
}

var salonSortKeys = map[string]struct{}{
	"name":      {},
	"minPrice":  {},
	"maxPrice":  {},
	"createdAt": {},
}

func ValidateSalonSort(sortBy string) (string, error) {
	if sortBy == "" {
		return "createdAt", nil
	}
	if _, ok := salonSortKeys[sortBy]; !ok {
		return "", fmt.Errorf("unsupported sort key %q", sortBy)
	}
	return sortBy, nil
}
