package intent

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// intentContract mirrors the JSON object the model is instructed to emit.
// Every field is optional; models routinely omit or null them.
type intentContract struct {
	Intent   *string  `json:"intent"`
	Symbol   *string  `json:"symbol"`
	Amount   *float64 `json:"amount"`
	Side     *string  `json:"side"`
	Response *string  `json:"response"`
}

// parserStrategy attempts to recover an intentContract from raw model output.
// Strategies are tried in order; the first success wins.
type parserStrategy struct {
	name  string
	parse func(raw string) (*intentContract, bool)
}

var strategies = []parserStrategy{
	{name: "json", parse: parseWholeJSON},
	{name: "embedded", parse: parseEmbeddedJSON},
	{name: "fields", parse: parseFieldPatterns},
}

var (
	intentPattern   = regexp.MustCompile(`"intent"\s*:\s*"([^"]+)"`)
	symbolPattern   = regexp.MustCompile(`"symbol"\s*:\s*"([^"]+)"`)
	amountPattern   = regexp.MustCompile(`"amount"\s*:\s*(\d+\.?\d*)`)
	sidePattern     = regexp.MustCompile(`"side"\s*:\s*"([^"]+)"`)
	responsePattern = regexp.MustCompile(`"response"\s*:\s*"([^"]+)"`)
)

// Parse turns raw model output into a TradeIntent. It never fails: output
// that defeats every strategy, or that carries no intent field, degrades to
// the unknown intent.
func Parse(raw string) *TradeIntent {
	for _, s := range strategies {
		contract, ok := s.parse(raw)
		if !ok {
			continue
		}
		return contractToIntent(contract)
	}
	return Unknown()
}

func contractToIntent(c *intentContract) *TradeIntent {
	result := &TradeIntent{Kind: KindUnknown}
	if c.Intent != nil {
		result.Kind = parseKind(*c.Intent)
	}
	if c.Symbol != nil {
		result.Symbol = strings.TrimSpace(*c.Symbol)
	}
	if c.Amount != nil {
		amount := *c.Amount
		result.Amount = &amount
	}
	if c.Side != nil {
		result.Side = strings.ToLower(strings.TrimSpace(*c.Side))
	}
	if c.Response != nil {
		result.Response = strings.TrimSpace(*c.Response)
	}
	return result
}

// parseWholeJSON treats the entire completion as a JSON object.
func parseWholeJSON(raw string) (*intentContract, bool) {
	var contract intentContract
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &contract); err != nil {
		return nil, false
	}
	return &contract, true
}

// parseEmbeddedJSON extracts the first brace-delimited substring, repairs it
// and parses the result. Models love wrapping the object in prose.
func parseEmbeddedJSON(raw string) (*intentContract, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, false
	}

	candidate := raw[start : end+1]
	repaired, err := jsonrepair.JSONRepair(candidate)
	if err != nil {
		return nil, false
	}

	var contract intentContract
	if err := json.Unmarshal([]byte(repaired), &contract); err != nil {
		return nil, false
	}
	return &contract, true
}

// parseFieldPatterns recovers fields independently via regex. Succeeds when
// at least one field matches; unmatched fields stay nil.
func parseFieldPatterns(raw string) (*intentContract, bool) {
	contract := &intentContract{}
	matched := false

	if m := intentPattern.FindStringSubmatch(raw); m != nil {
		contract.Intent = &m[1]
		matched = true
	}
	if m := symbolPattern.FindStringSubmatch(raw); m != nil {
		contract.Symbol = &m[1]
		matched = true
	}
	if m := amountPattern.FindStringSubmatch(raw); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			contract.Amount = &v
			matched = true
		}
	}
	if m := sidePattern.FindStringSubmatch(raw); m != nil {
		contract.Side = &m[1]
		matched = true
	}
	if m := responsePattern.FindStringSubmatch(raw); m != nil {
		contract.Response = &m[1]
		matched = true
	}

	if !matched {
		return nil, false
	}
	return contract, true
}
