package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for resource handles and
// trace ids.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

// Generate returns a UUIDv7. When the v7 source fails it returns a random
// UUIDv4, so ids stay unique but lose their ordering.
func (g *UUIDGenerator) Generate() string {
	id, err := g.newV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
