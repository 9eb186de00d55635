package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"
	"golang.org/x/sync/errgroup"

	"frank-api/pkg/coinbase"
	"frank-api/pkg/intent"
)

const (
	unknownReply   = "I'm not sure what you want to do. Try asking about prices, portfolio, market status, or trading."
	greetingReply  = "Hello! I'm Frank, your crypto trading assistant. How can I help you today?"
	askSymbolReply = "Which coin are you asking about? Try something like \"price of BTC\"."
)

// Classifier produces a structured intent from free text.
type Classifier interface {
	Classify(ctx context.Context, prompt string) *intent.TradeIntent
}

// Exchange exposes the trading operations the assistant dispatches to.
// *coinbase.Client satisfies it; tests substitute fakes.
type Exchange interface {
	SpotPrice(ctx context.Context, symbol string) (float64, error)
	DailyChange(ctx context.Context, symbol string) (float64, error)
	Accounts(ctx context.Context) ([]coinbase.AccountBalance, error)
	ExecuteTrade(ctx context.Context, symbol, side string, amount float64) *coinbase.TradeResult
}

// Assistant routes classified intents to exchange operations and renders
// human-readable replies. It holds no per-request state.
type Assistant struct {
	classifier Classifier
	exchange   Exchange
	watchlist  []string
}

// New constructs an Assistant.
func New(classifier Classifier, exchange Exchange, cfg *Config) *Assistant {
	watchlist := defaultWatchlist
	if cfg != nil && len(cfg.Watchlist) > 0 {
		watchlist = cfg.Watchlist
	}
	return &Assistant{
		classifier: classifier,
		exchange:   exchange,
		watchlist:  watchlist,
	}
}

// HandlePrompt is the dispatcher's sole entry point: one classification,
// one dispatch, one reply string.
func (a *Assistant) HandlePrompt(ctx context.Context, prompt string) string {
	ti := a.classifier.Classify(ctx, prompt)
	logx.WithContext(ctx).Infof("assistant: intent=%s symbol=%s side=%s", ti.Kind, ti.Symbol, ti.Side)

	switch ti.Kind {
	case intent.KindChat:
		if strings.TrimSpace(ti.Response) == "" {
			return greetingReply
		}
		return ti.Response
	case intent.KindPrice:
		return a.handlePrice(ctx, ti)
	case intent.KindPortfolio:
		return a.handlePortfolio(ctx)
	case intent.KindMarket:
		return a.handleMarket(ctx)
	case intent.KindTrade:
		return a.handleTrade(ctx, ti)
	default:
		return unknownReply
	}
}

func (a *Assistant) handlePrice(ctx context.Context, ti *intent.TradeIntent) string {
	symbol := strings.ToUpper(strings.TrimSpace(ti.Symbol))
	if symbol == "" {
		return askSymbolReply
	}

	price, err := a.exchange.SpotPrice(ctx, symbol)
	if err != nil {
		logx.WithContext(ctx).Errorf("assistant: spot price for %s failed: %v", symbol, err)
		return fmt.Sprintf("Sorry, couldn't get the price for %s", symbol)
	}
	return fmt.Sprintf("Current price of %s: %s", symbol, usd(price))
}

func (a *Assistant) handlePortfolio(ctx context.Context) string {
	balances, err := a.exchange.Accounts(ctx)
	if err != nil {
		logx.WithContext(ctx).Errorf("assistant: portfolio fetch failed: %v", err)
		return "Sorry, couldn't fetch your portfolio information"
	}

	var sb strings.Builder
	sb.WriteString("**Your Portfolio:**\n")
	total := 0.0
	for _, b := range balances {
		if b.Amount <= 0 {
			continue
		}
		if b.Currency == "USD" {
			total += b.Amount
			fmt.Fprintf(&sb, "%s: %s\n", b.Currency, usd(b.Amount))
			continue
		}
		// A failed per-currency lookup drops that line, never the reply.
		price, err := a.exchange.SpotPrice(ctx, b.Currency)
		if err != nil {
			logx.WithContext(ctx).Errorf("assistant: portfolio price for %s failed: %v", b.Currency, err)
			continue
		}
		value := b.Amount * price
		total += value
		fmt.Fprintf(&sb, "%s: %v (%s)\n", b.Currency, b.Amount, usd(value))
	}
	fmt.Fprintf(&sb, "\n**Total Portfolio Value: %s**", usd(total))
	return sb.String()
}

type marketLine struct {
	symbol string
	price  float64
	change *float64
	ok     bool
}

func (a *Assistant) handleMarket(ctx context.Context) string {
	lines := make([]marketLine, len(a.watchlist))

	var group errgroup.Group
	for i, symbol := range a.watchlist {
		i, symbol := i, symbol
		group.Go(func() error {
			price, err := a.exchange.SpotPrice(ctx, symbol)
			if err != nil {
				logx.WithContext(ctx).Errorf("assistant: market price for %s failed: %v", symbol, err)
				return nil
			}
			line := marketLine{symbol: symbol, price: price, ok: true}
			if change, err := a.exchange.DailyChange(ctx, symbol); err == nil {
				line.change = &change
			}
			lines[i] = line
			return nil
		})
	}
	_ = group.Wait()

	var sb strings.Builder
	sb.WriteString("**Current Market Status:**\n")
	for _, line := range lines {
		if !line.ok {
			continue
		}
		fmt.Fprintf(&sb, "%s: %s", line.symbol, usd(line.price))
		if line.change != nil {
			fmt.Fprintf(&sb, " (%+.2f%%)", *line.change)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (a *Assistant) handleTrade(ctx context.Context, ti *intent.TradeIntent) string {
	if !ti.IsWellFormedTrade() {
		missing := ti.MissingTradeFields()
		return fmt.Sprintf(
			"To place a trade I need a symbol, an amount and a side (buy or sell). Missing: %s.",
			strings.Join(missing, ", "))
	}

	result := a.exchange.ExecuteTrade(ctx, ti.Symbol, ti.Side, *ti.Amount)
	return result.Message
}
