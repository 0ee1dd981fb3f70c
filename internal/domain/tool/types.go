package tool

import (
	"bytes"
	"encoding/json"
	"fmt"

	"lumina-server/concierge-api/internal/domain/llm"
)

// Tool names the model may invoke. The same set is declared to the chat
// endpoint and the realtime voice endpoint.
const (
	NameAddToOrder      = "addToOrder"
	NameRemoveFromOrder = "removeFromOrder"
)

// Call encapsulates one tool call requested by the model. ID correlates the
// call with its result.
type Call struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Result is the outcome sent back to the model for one Call.
type Result struct {
	CallID  string `json:"call_id"`
	Name    string `json:"name"`
	Output  string `json:"output"`
	IsError bool   `json:"is_error"`
}

type callArguments struct {
	ItemID   string `json:"itemId"`
	Quantity *int   `json:"quantity,omitempty"`
}

// ParseCall converts a provider tool call into the domain Call struct,
// applying the default quantity of 1.
func ParseCall(call llm.ToolCall) (Call, error) {
	return parseCall(call.ID, call.Function.Name, call.Function.Arguments)
}

// ParseRawCall parses a tool call arriving outside the chat completion
// shape, e.g. over the realtime voice channel.
func ParseRawCall(id, name string, arguments json.RawMessage) (Call, error) {
	return parseCall(id, name, arguments)
}

func parseCall(id, name string, arguments json.RawMessage) (Call, error) {
	if name != NameAddToOrder && name != NameRemoveFromOrder {
		return Call{}, fmt.Errorf("unknown tool %q", name)
	}

	payload := bytes.TrimSpace(arguments)
	// OpenAI-compatible chat endpoints deliver arguments as a JSON-encoded
	// string, not an object; unwrap before decoding.
	if len(payload) > 0 && payload[0] == '"' {
		var inner string
		if err := json.Unmarshal(payload, &inner); err != nil {
			return Call{}, fmt.Errorf("parse %s arguments: %w", name, err)
		}
		payload = bytes.TrimSpace([]byte(inner))
	}

	var args callArguments
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &args); err != nil {
			return Call{}, fmt.Errorf("parse %s arguments: %w", name, err)
		}
	}

	quantity := 1
	if args.Quantity != nil && *args.Quantity > 0 {
		quantity = *args.Quantity
	}

	return Call{
		ID:       id,
		Name:     name,
		ItemID:   args.ItemID,
		Quantity: quantity,
	}, nil
}

// Definitions returns the OpenAI-compatible tool declarations.
func Definitions() []llm.ToolDefinition {
	return []llm.ToolDefinition{
		{
			Type: "function",
			Function: llm.ToolFunctionSchema{
				Name:        NameAddToOrder,
				Description: "Add a menu item to the user's cart.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"itemId": map[string]interface{}{
							"type":        "string",
							"description": "The ID of the menu item (e.g., s1, m2).",
						},
						"quantity": map[string]interface{}{
							"type":        "number",
							"description": "The number of items to add.",
						},
					},
					"required": []string{"itemId"},
				},
			},
		},
		{
			Type: "function",
			Function: llm.ToolFunctionSchema{
				Name:        NameRemoveFromOrder,
				Description: "Remove a menu item from the user's cart.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"itemId": map[string]interface{}{
							"type":        "string",
							"description": "The ID of the menu item to remove.",
						},
					},
					"required": []string{"itemId"},
				},
			},
		},
	}
}
