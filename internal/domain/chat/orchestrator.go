package chat

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"lumina-server/concierge-api/internal/domain/cart"
	"lumina-server/concierge-api/internal/domain/llm"
	"lumina-server/concierge-api/internal/domain/tool"
	"lumina-server/concierge-api/internal/infrastructure/metrics"
)

// connectivityFallback is the single user-visible turn produced for any
// provider failure. Failures are not retried.
const connectivityFallback = "I'm having trouble connecting to the network right now. " +
	"Please check your connection or try again in a moment."

// toolRoundsFallback surfaces when the model keeps requesting tools past
// the round bound.
const toolRoundsFallback = "I seem to have lost my train of thought. Could you repeat that?"

// Orchestrator drives one "ask the concierge" interaction to completion,
// looping through bounded tool-call rounds before producing user-visible
// output.
type Orchestrator struct {
	provider    llm.Provider
	executor    *tool.Executor
	cart        *cart.Store
	model       string
	maxRounds   int
	turnTimeout time.Duration
	log         zerolog.Logger
}

// NewOrchestrator wires the chat orchestrator.
func NewOrchestrator(
	provider llm.Provider,
	executor *tool.Executor,
	cartStore *cart.Store,
	model string,
	maxRounds int,
	turnTimeout time.Duration,
	log zerolog.Logger,
) *Orchestrator {
	if maxRounds <= 0 {
		maxRounds = 5
	}
	return &Orchestrator{
		provider:    provider,
		executor:    executor,
		cart:        cartStore,
		model:       model,
		maxRounds:   maxRounds,
		turnTimeout: turnTimeout,
		log:         log.With().Str("component", "chat-orchestrator").Logger(),
	}
}

// SubmitUserMessage appends the user's message (with the cart context
// preamble) to the session and drains the tool-call loop until the model
// produces a final text reply. It returns the assistant turn appended to
// the session. Cart mutations are visible to the rest of the service as
// soon as each tool call executes, before the follow-up text arrives.
func (o *Orchestrator) SubmitUserMessage(ctx context.Context, session *Session, text string) Turn {
	if o.turnTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.turnTimeout)
		defer cancel()
	}

	session.AppendTurn("user", text, "")
	session.AppendMessage(llm.ChatMessage{
		Role:    "user",
		Content: cartContext(o.cart.Snapshot()) + " " + text,
	})

	rounds := 0
	for ; rounds < o.maxRounds; rounds++ {
		resp, err := o.provider.CreateChatCompletion(ctx, llm.ChatCompletionRequest{
			Model:      o.model,
			Messages:   session.Messages(),
			Tools:      tool.Definitions(),
			ToolChoice: "auto",
		})
		if err != nil || resp == nil || len(resp.Choices) == 0 {
			o.log.Error().Err(err).Str("session_id", session.ID).Msg("chat completion failed")
			metrics.ChatTurnsTotal.WithLabelValues("connectivity_error").Inc()
			return session.AppendTurn("assistant", connectivityFallback, "")
		}

		message := resp.Choices[0].Message
		session.AppendMessage(message)

		if len(message.ToolCalls) == 0 {
			metrics.ChatTurnsTotal.WithLabelValues("completed").Inc()
			metrics.ChatToolRounds.Observe(float64(rounds))
			return o.renderText(session, message.Content)
		}

		for _, rawCall := range message.ToolCalls {
			result := o.executeCall(rawCall)
			session.AppendMessage(llm.ChatMessage{
				Role:       "tool",
				ToolCallID: result.CallID,
				Name:       result.Name,
				Content:    result.Output,
			})
		}
	}

	o.log.Warn().
		Str("session_id", session.ID).
		Int("rounds", rounds).
		Msg("tool round bound exceeded, dropping turn")
	metrics.ChatTurnsTotal.WithLabelValues("rounds_exceeded").Inc()
	return session.AppendTurn("assistant", toolRoundsFallback, "")
}

func (o *Orchestrator) executeCall(rawCall llm.ToolCall) tool.Result {
	call, err := tool.ParseCall(rawCall)
	if err != nil {
		// Malformed calls still get a correlated result so the
		// follow-up turn stays structurally valid.
		return tool.Result{
			CallID:  rawCall.ID,
			Name:    rawCall.Function.Name,
			Output:  err.Error(),
			IsError: true,
		}
	}
	return o.executor.Execute(call)
}

// renderText strips the checkout marker, attaches the checkout action, and
// appends the assistant turn when anything remains to show.
func (o *Orchestrator) renderText(session *Session, raw string) Turn {
	text := raw
	var action Action

	if strings.Contains(text, CheckoutMarker) {
		text = strings.TrimSpace(strings.ReplaceAll(text, CheckoutMarker, ""))
		// The model is told not to offer checkout on an empty cart,
		// but the orchestrator does not take its word for it.
		if o.cart.TotalItems() > 0 {
			action = ActionOpenCheckout
		}
	}

	text = strings.TrimSpace(text)
	if text == "" && action == "" {
		// Nothing to show. The transcript stays clean, but callers still
		// get a fully formed turn to serialize.
		return Turn{
			ID:        newTurnID(),
			Role:      "assistant",
			Timestamp: time.Now(),
		}
	}
	return session.AppendTurn("assistant", text, action)
}
