package chat

import (
	"encoding/json"
	"fmt"
	"strings"

	"lumina-server/concierge-api/internal/domain/cart"
	"lumina-server/concierge-api/internal/domain/menu"
)

// CheckoutMarker is the reserved token the model embeds in a reply to
// signal that the UI should open the checkout flow. It is stripped before
// the text reaches the user.
const CheckoutMarker = "{{OPEN_CHECKOUT}}"

const personaTemplate = `
You are "Astra", the AI Concierge for Lumina, a contemporary fine dining restaurant.
Your tone is warm, professional, sophisticated, and inviting.

MENU DATA:
%s

YOUR CAPABILITIES:
1. Recommend dishes based on the menu.
2. Discuss ingredients. All our food is universally dietary friendly (Halal compliant, though we say "inclusive").
3. MODIFY THE ORDER: You can add or remove items from the user's cart using the provided tools.
4. HANDLE PAYMENT: If the user says "I'm ready to order", "Checkout", etc., you must call the tool or reply with ` + CheckoutMarker + `.
5. PAIRING EXPERT: You are a master of flavor profiles. When asked about a dish, suggest the perfect beverage pairing from our "Drink" category.

CRITICAL CHECKOUT RULES:
- Every message from the user will include a [System Context] indicating the current items in the cart.
- READ THIS CONTEXT.
- If the cart is empty (0 items) or total price is 0: DO NOT allow checkout. Politely inform the user they must add items to their order first.
- If the cart has items: You may proceed to suggest the ` + CheckoutMarker + ` action.

IMPORTANT:
- When the user wants to add an item, use the 'addToOrder' tool.
- When the user wants to remove an item, use the 'removeFromOrder' tool.
- If the user asks for alcohol, politely suggest our "Zero-Proof Botanical Elixirs" which are crafted to rival fine spirits.
- Keep responses elegant and concise.
`

// SystemPrompt renders the Astra persona instruction carrying the full
// serialized menu.
func SystemPrompt(catalog *menu.Catalog) string {
	menuJSON, err := json.Marshal(catalog.List())
	if err != nil {
		menuJSON = []byte("[]")
	}
	return strings.TrimSpace(fmt.Sprintf(personaTemplate, menuJSON))
}

// cartContext renders the machine-readable preamble prepended to every user
// message. The model is not trusted to track cart state across turns, so
// every turn restates the ground truth.
func cartContext(lines []cart.Line) string {
	parts := make([]string, 0, len(lines))
	total := 0
	for _, line := range lines {
		parts = append(parts, fmt.Sprintf("%dx %s", line.Quantity, line.Item.Name))
		total += line.Quantity
	}
	summary := strings.Join(parts, ", ")
	if summary == "" {
		summary = "Empty"
	}
	return fmt.Sprintf("[System Context: Current Cart: %s. Total Items: %d]", summary, total)
}
