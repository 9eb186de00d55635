package coinbase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
)

const ordersPath = "/api/v3/brokerage/orders"

// TradeResult is the outcome of a market order attempt. Message is the
// human-facing text shown to the chat user verbatim.
type TradeResult struct {
	Success  bool
	Message  string
	RawOrder json.RawMessage
}

type marketIOC struct {
	QuoteSize string `json:"quote_size,omitempty"`
	BaseSize  string `json:"base_size,omitempty"`
}

func (m marketIOC) size() string {
	if m.BaseSize != "" {
		return m.BaseSize
	}
	return m.QuoteSize
}

type orderConfiguration struct {
	MarketMarketIOC marketIOC `json:"market_market_ioc"`
}

// orderRequest is the brokerage order submission payload. The client order
// id makes a retried submission idempotent on the exchange side.
type orderRequest struct {
	ClientOrderID      string             `json:"client_order_id"`
	ProductID          string             `json:"product_id"`
	Side               string             `json:"side"`
	OrderConfiguration orderConfiguration `json:"order_configuration"`
}

type orderResponse struct {
	Success bool `json:"success"`
	Order   struct {
		SuccessResponse struct {
			OrderID   string `json:"order_id"`
			ProductID string `json:"product_id"`
			Side      string `json:"side"`
		} `json:"success_response"`
		OrderConfiguration orderConfiguration `json:"order_configuration"`
	} `json:"order"`
	Error                string `json:"error"`
	ErrorDetails         string `json:"error_details"`
	Message              string `json:"message"`
	PreviewFailureReason string `json:"preview_failure_reason"`
}

// ExecuteTrade places a market order. Buy orders are sized in USD spend
// (amount * spot price, 2 decimal places); sell orders dispose of a
// crypto-native quantity (up to 8 decimal places, trailing zeros stripped).
// It never returns an error: every failure mode lands in the result message.
func (c *Client) ExecuteTrade(ctx context.Context, symbol, side string, amount float64) *TradeResult {
	productID := ProductID(symbol)
	sideUpper := strings.ToUpper(strings.TrimSpace(side))

	// The buy path needs a USD order size, so no price means no order.
	price, err := c.SpotPrice(ctx, symbol)
	if err != nil {
		logx.WithContext(ctx).Errorf("coinbase: price lookup before trade failed: %v", err)
		return &TradeResult{
			Success: false,
			Message: fmt.Sprintf("❌ Could not get current price for %s", strings.ToUpper(symbol)),
		}
	}

	var config orderConfiguration
	if sideUpper == "BUY" {
		config.MarketMarketIOC.QuoteSize = FormatQuoteSize(amount, price)
	} else {
		config.MarketMarketIOC.BaseSize = FormatBaseSize(amount)
	}

	order := orderRequest{
		ClientOrderID:      uuid.NewString(),
		ProductID:          productID,
		Side:               sideUpper,
		OrderConfiguration: config,
	}
	logx.WithContext(ctx).Infof("coinbase: placing market order %s %s size=%s",
		order.Side, order.ProductID, config.MarketMarketIOC.size())

	status, body, err := c.postJSON(ctx, ordersPath, order)
	if err != nil {
		return &TradeResult{Success: false, Message: fmt.Sprintf("❌ Error: %v", err)}
	}

	var resp orderResponse
	parseable := json.Unmarshal(body, &resp) == nil

	if status == 200 {
		if parseable && resp.Success {
			ioc := resp.Order.OrderConfiguration.MarketMarketIOC
			return &TradeResult{
				Success:  true,
				RawOrder: json.RawMessage(body),
				Message: fmt.Sprintf("✅ Trade executed successfully!\n"+
					"Side: %s\n"+
					"Product: %s\n"+
					"Amount: %s\n"+
					"Order ID: %s",
					resp.Order.SuccessResponse.Side,
					resp.Order.SuccessResponse.ProductID,
					ioc.size(),
					resp.Order.SuccessResponse.OrderID),
			}
		}

		errMsg := resp.Error
		if errMsg == "" {
			errMsg = "Unknown error"
		}
		return &TradeResult{
			Success: false,
			Message: fmt.Sprintf("❌ Trade failed: %s\nDetails: %s\nMessage: %s\nPreview: %s",
				errMsg, resp.ErrorDetails, resp.Message, resp.PreviewFailureReason),
		}
	}

	errMsg := resp.Message
	if errMsg == "" {
		errMsg = string(body)
	}
	return &TradeResult{
		Success: false,
		Message: fmt.Sprintf("❌ API Error (%d):\nError: %s\nDetails: %s", status, errMsg, resp.ErrorDetails),
	}
}
