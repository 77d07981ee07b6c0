package testutil

// ConstantIDGenerator returns the same event ID every time.
//
// Appending several events through it exercises the journal's
// first-write-wins handling of duplicate IDs.
//
// Thread-safety: ConstantIDGenerator is stateless and safe for concurrent use.
type ConstantIDGenerator struct {
	id string
}

// NewConstantIDGenerator creates a generator for id. An empty id becomes
// "test-event-default".
func NewConstantIDGenerator(id string) *ConstantIDGenerator {
	if id == "" {
		id = "test-event-default"
	}
	return &ConstantIDGenerator{id: id}
}

// Generate returns the fixed ID.
func (g *ConstantIDGenerator) Generate() string {
	return g.id
}
