package postgres

import (
	"github.com/oklog/ulid/v2"
)

// ULIDGenerator issues lexicographically sortable record IDs. Cuts
// and users created later always sort after earlier ones.
type ULIDGenerator struct{}

func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}
