package utils

import "github.com/google/uuid"

// UUIDGenerator produces note identifiers. UUIDv7 is preferred because its
// time-ordered prefix keeps ids roughly sortable; the random v4 form is the
// fallback when v7 generation fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
