package intent

import "strings"

// Kind enumerates the classified purposes of a user message.
type Kind string

const (
	KindTrade     Kind = "trade"
	KindPrice     Kind = "price"
	KindPortfolio Kind = "portfolio"
	KindMarket    Kind = "market"
	KindChat      Kind = "chat"
	KindUnknown   Kind = "unknown"
)

// TradeIntent is the structured decision extracted from a user message.
// Optional fields are empty / nil when the model did not supply them.
type TradeIntent struct {
	Kind     Kind
	Symbol   string
	Amount   *float64
	Side     string
	Response string
}

// Unknown returns the all-empty intent used when classification fails.
func Unknown() *TradeIntent {
	return &TradeIntent{Kind: KindUnknown}
}

// IsWellFormedTrade reports whether the intent carries everything a market
// order needs: symbol, amount and side.
func (t *TradeIntent) IsWellFormedTrade() bool {
	return t.Kind == KindTrade &&
		strings.TrimSpace(t.Symbol) != "" &&
		t.Amount != nil &&
		(strings.EqualFold(t.Side, "buy") || strings.EqualFold(t.Side, "sell"))
}

// MissingTradeFields lists the required trade fields absent from the intent.
func (t *TradeIntent) MissingTradeFields() []string {
	var missing []string
	if strings.TrimSpace(t.Symbol) == "" {
		missing = append(missing, "symbol")
	}
	if t.Amount == nil {
		missing = append(missing, "amount")
	}
	if !strings.EqualFold(t.Side, "buy") && !strings.EqualFold(t.Side, "sell") {
		missing = append(missing, "side")
	}
	return missing
}

func parseKind(raw string) Kind {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trade":
		return KindTrade
	case "price":
		return KindPrice
	case "portfolio":
		return KindPortfolio
	case "market":
		return KindMarket
	case "chat":
		return KindChat
	default:
		return KindUnknown
	}
}
