// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package idgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"

	"github.com/google/uuid"
)

// Join codes are five digits so they are easy to read off a projector.
const (
	joinCodeMin = 10000
	joinCodeMax = 99999
)

// GenerateID returns a random opaque identifier for events, images,
// participants and votes
func GenerateID() string {
	return uuid.NewString()
}

// GenerateJoinCode returns a random numeric join code in [10000, 99999].
// It is independent of the event id; uniqueness is the caller's job.
func GenerateJoinCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(joinCodeMax-joinCodeMin+1))
	if err != nil {
		return "", fmt.Errorf("failed to generate join code: %w", err)
	}
	return strconv.FormatInt(n.Int64()+joinCodeMin, 10), nil
}

// IsJoinCode reports whether s has the shape of a join code
func IsJoinCode(s string) bool {
	n, err := strconv.Atoi(s)
	if err != nil || len(s) != 5 {
		return false
	}
	return n >= joinCodeMin && n <= joinCodeMax
}
