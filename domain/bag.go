// Package domain contains the core concepts of the token-bag system.
// No runtime, network, or storage logic should be added here.
package domain

// Token is a single token drawn from the bag.
type Token string

const (
	TokenSuccess      Token = "success"
	TokenComplication Token = "complication"
)

// Bag is the shared pool of tokens for a room, modeled as two counters.
// Both counters are non-negative at rest. Only the draw engine and the
// explicit configure/help/return/reset operations mutate it.
type Bag struct {
	Successes     int `json:"successes"`
	Complications int `json:"complications"`
}

// Total is the number of tokens physically left in the bag.
func (b Bag) Total() int {
	return b.Successes + b.Complications
}
