package coinbase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

type spotPriceResponse struct {
	Data struct {
		Amount   string `json:"amount"`
		Base     string `json:"base"`
		Currency string `json:"currency"`
	} `json:"data"`
}

type historicPricesResponse struct {
	Data struct {
		Prices []struct {
			Price string `json:"price"`
			Time  string `json:"time"`
		} `json:"prices"`
	} `json:"data"`
}

// ProductID derives the USD trading pair for a symbol, e.g. "btc" -> "BTC-USD".
func ProductID(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol)) + "-USD"
}

// SpotPrice returns the current USD spot price for a symbol. Any transport
// failure or non-2xx response surfaces as an error the caller treats as
// "price unavailable".
func (c *Client) SpotPrice(ctx context.Context, symbol string) (float64, error) {
	var payload spotPriceResponse
	path := fmt.Sprintf("/v2/prices/%s/spot", ProductID(symbol))
	if err := c.getJSON(ctx, path, false, &payload); err != nil {
		return 0, err
	}

	price, err := strconv.ParseFloat(payload.Data.Amount, 64)
	if err != nil {
		return 0, fmt.Errorf("coinbase: parse spot price %q: %w", payload.Data.Amount, err)
	}
	return price, nil
}

// DailyChange returns the 24h price change for a symbol in percent, computed
// from the day's historic series.
func (c *Client) DailyChange(ctx context.Context, symbol string) (float64, error) {
	var payload historicPricesResponse
	path := fmt.Sprintf("/v2/prices/%s/historic?period=day", ProductID(symbol))
	if err := c.getJSON(ctx, path, false, &payload); err != nil {
		return 0, err
	}

	prices := payload.Data.Prices
	if len(prices) < 2 {
		return 0, fmt.Errorf("coinbase: historic series too short for %s", symbol)
	}

	first, err := strconv.ParseFloat(prices[0].Price, 64)
	if err != nil {
		return 0, fmt.Errorf("coinbase: parse historic price %q: %w", prices[0].Price, err)
	}
	last, err := strconv.ParseFloat(prices[len(prices)-1].Price, 64)
	if err != nil {
		return 0, fmt.Errorf("coinbase: parse historic price %q: %w", prices[len(prices)-1].Price, err)
	}
	if first == 0 {
		return 0, fmt.Errorf("coinbase: zero opening price for %s", symbol)
	}
	return (last - first) / first * 100, nil
}
