package event

import "log/slog"

const (
	TokensDrawnLabel     = "tokens_drawn"
	RiskAllResolvedLabel = "risk_all_resolved"
	BagMutatedLabel      = "bag_mutated"
)

// DrawStatsHandler counts committed draws and bag mutations. It is wired
// to the telemetry channel, so a lost event only skews the counters, never
// the game state.
type DrawStatsHandler struct {
	log     *slog.Logger
	counter *Counter
}

func NewDrawStatsHandler(log *slog.Logger, counter *Counter) *DrawStatsHandler {
	return &DrawStatsHandler{log: log, counter: counter}
}

func (h *DrawStatsHandler) Handle(e DomainEvent) {
	switch e.(type) {
	case TokensDrawn:
		h.counter.Increment(TokensDrawnLabel)
	case RiskAllResolved:
		h.counter.Increment(RiskAllResolvedLabel)
	case BagConfigured, HelpAdded, TokensReturned, BagReset:
		h.counter.Increment(BagMutatedLabel)
	}
}
