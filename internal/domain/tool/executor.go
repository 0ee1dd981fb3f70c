package tool

import (
	"fmt"

	"github.com/rs/zerolog"

	"lumina-server/concierge-api/internal/domain/cart"
	"lumina-server/concierge-api/internal/domain/menu"
	"lumina-server/concierge-api/internal/infrastructure/metrics"
)

// Executor translates tool calls into cart mutations. The text chat path and
// the realtime voice path both execute through here so cart behavior stays
// identical regardless of transport.
type Executor struct {
	catalog *menu.Catalog
	cart    *cart.Store
	log     zerolog.Logger
}

// NewExecutor wires the executor against the shared catalog and cart.
func NewExecutor(catalog *menu.Catalog, cartStore *cart.Store, log zerolog.Logger) *Executor {
	return &Executor{
		catalog: catalog,
		cart:    cartStore,
		log:     log.With().Str("component", "tool-executor").Logger(),
	}
}

// Execute runs one call against the cart and produces its result. Unknown
// item ids on add are reported in the result, not as an error; removal of an
// absent id is a success-shaped no-op.
func (e *Executor) Execute(call Call) Result {
	result := Result{CallID: call.ID, Name: call.Name}

	switch call.Name {
	case NameAddToOrder:
		item, ok := e.catalog.FindByID(call.ItemID)
		if !ok {
			result.Output = "Item not found."
			result.IsError = true
			metrics.ToolCallsTotal.WithLabelValues(call.Name, "not_found").Inc()
			return result
		}
		line := e.cart.Add(item, call.Quantity)
		result.Output = fmt.Sprintf("Added %d %s(s) to cart. Cart now holds %d.", call.Quantity, item.Name, line.Quantity)
		metrics.ToolCallsTotal.WithLabelValues(call.Name, "ok").Inc()

	case NameRemoveFromOrder:
		e.cart.RemoveByItemID(call.ItemID)
		result.Output = fmt.Sprintf("Removed item %s from cart.", call.ItemID)
		metrics.ToolCallsTotal.WithLabelValues(call.Name, "ok").Inc()

	default:
		// ParseCall rejects unknown names; this covers hand-built calls.
		result.Output = fmt.Sprintf("Unknown tool %q.", call.Name)
		result.IsError = true
		metrics.ToolCallsTotal.WithLabelValues(call.Name, "unknown").Inc()
	}

	e.log.Debug().
		Str("tool", call.Name).
		Str("call_id", call.ID).
		Str("item_id", call.ItemID).
		Bool("is_error", result.IsError).
		Msg("tool call executed")

	return result
}

// ExecuteBatch runs calls in the order received and returns exactly one
// result per call.
func (e *Executor) ExecuteBatch(calls []Call) []Result {
	results := make([]Result, 0, len(calls))
	for _, call := range calls {
		results = append(results, e.Execute(call))
	}
	return results
}
