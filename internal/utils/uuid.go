// Package utils holds small helpers shared across the client.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces the request ids attached to every backend call
// via the X-Request-Id header. Ids are time-ordered (UUIDv7) so backend
// logs sort chronologically per client.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7 string, falling back to a random v4 if
// the system clock refuses to cooperate.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
