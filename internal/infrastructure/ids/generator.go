// Package ids generates transaction and attempt identifiers.
package ids

import (
	"strings"

	"github.com/google/uuid"
)

// Generator is the production id source. The state machine receives it behind
// an interface so tests can substitute a deterministic one.
type Generator struct{}

func New() *Generator { return &Generator{} }

// TransactionID returns an id like "CC_1A2B3C4D": rail/flow prefix plus the
// first segment of a fresh UUID, uppercased.
func (g *Generator) TransactionID(prefix string) string {
	id := uuid.NewString()
	return prefix + "_" + strings.ToUpper(id[:8])
}

// AttemptID returns a full UUID for checkout attempts and instance tags.
func (g *Generator) AttemptID() string {
	return uuid.NewString()
}
