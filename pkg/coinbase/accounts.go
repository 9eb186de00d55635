package coinbase

import (
	"context"
	"fmt"
	"strconv"
)

// AccountBalance is one currency entry from the accounts endpoint. Balances
// may be zero or negative; consumers filter what they need.
type AccountBalance struct {
	Currency string
	Amount   float64
}

type accountsResponse struct {
	Data []struct {
		Currency string `json:"currency"`
		Balance  struct {
			Amount   string `json:"amount"`
			Currency string `json:"currency"`
		} `json:"balance"`
	} `json:"data"`
}

// Accounts returns the balances of every account wallet. Requires
// credentials; failures surface as an error the caller treats as
// "portfolio unavailable".
func (c *Client) Accounts(ctx context.Context) ([]AccountBalance, error) {
	var payload accountsResponse
	if err := c.getJSON(ctx, "/v2/accounts", true, &payload); err != nil {
		return nil, err
	}

	balances := make([]AccountBalance, 0, len(payload.Data))
	for _, entry := range payload.Data {
		amount, err := strconv.ParseFloat(entry.Balance.Amount, 64)
		if err != nil {
			return nil, fmt.Errorf("coinbase: parse balance %q for %s: %w", entry.Balance.Amount, entry.Currency, err)
		}
		balances = append(balances, AccountBalance{
			Currency: entry.Currency,
			Amount:   amount,
		})
	}
	return balances, nil
}
