package assistant

import (
	"fmt"
	"strings"
	"time"

	"ecotrack/domain"
	"ecotrack/entities"
)

// Items this close to expiry are called out separately in the prompt.
const contextExpiringDays = 5

var recipeKeywords = []string{
	"leftover",
	"recipe",
	"use up",
	"what can i make",
	"what to do with",
}

const recipePrompt = `You are EcoBot, the assistant inside EcoTrack, an app that helps people waste less food.
Your main job here is to suggest recipes that use up leftover ingredients.

Be specific: give concrete recipes rather than general advice.
When the user mentions particular ingredients, suggest 2-3 recipes with short instructions.
Use emoji icons and bullet points for the ingredient lists.%s

User's query: %s`

const generalPrompt = `You are EcoBot, the assistant inside EcoTrack, an app that helps people waste less food.
Help the user reduce food waste with:
1. Storage tips that keep food fresh for longer
2. Recipe ideas for leftover ingredients
3. Facts about the environmental impact of food waste
4. Everyday habits that cut food waste
5. Options for donating food%s

Stay on the topic of food waste.
Answer in 1-3 friendly sentences.
If you are unsure about something, offer a general food waste tip instead.

User's query: %s`

// IsRecipeQuery reports whether the message asks for ways to use food up.
func IsRecipeQuery(message string) bool {
	lower := strings.ToLower(message)
	for _, keyword := range recipeKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// BuildPrompt picks the template for the message and fills in the inventory
// context. It returns the prompt and the template name.
func BuildPrompt(userMessage string, activeInventory []entities.InventoryItem, now time.Time) (string, string) {
	inventoryContext := InventoryContext(activeInventory, now)
	if IsRecipeQuery(userMessage) {
		return fmt.Sprintf(recipePrompt, inventoryContext, userMessage), domain.PromptTemplateRecipe
	}
	return fmt.Sprintf(generalPrompt, inventoryContext, userMessage), domain.PromptTemplateGeneral
}

// InventoryContext lists the active items, then the ones expiring within five
// days. Already expired items count as expiring. Empty when nothing is active.
func InventoryContext(activeInventory []entities.InventoryItem, now time.Time) string {
	if len(activeInventory) == 0 {
		return ""
	}

	names := make([]string, 0, len(activeInventory))
	expiring := []string{}
	for _, item := range activeInventory {
		names = append(names, item.FoodItem)
		days := item.ExpiryDate.DaysUntil(now)
		if days <= contextExpiringDays {
			expiring = append(expiring, fmt.Sprintf("%s (%s)", item.FoodItem, describeDays(days)))
		}
	}

	var b strings.Builder
	b.WriteString("\nYou have the following items in your inventory: ")
	b.WriteString(strings.Join(names, ", "))
	b.WriteString(".")
	if len(expiring) > 0 {
		b.WriteString("\nItems expiring soon: ")
		b.WriteString(strings.Join(expiring, ", "))
		b.WriteString(".")
	}
	return b.String()
}

func describeDays(days int) string {
	switch {
	case days < -1:
		return fmt.Sprintf("expired %d days ago", -days)
	case days == -1:
		return "expired 1 day ago"
	case days == 0:
		return "expires today"
	case days == 1:
		return "expires in 1 day"
	}
	return fmt.Sprintf("expires in %d days", days)
}
