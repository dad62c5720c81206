package assistant

import (
	"strings"
	"testing"
	"time"

	"ecotrack/domain"
	"ecotrack/entities"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2024, time.January, 10, 8, 0, 0, 0, time.UTC)

func item(name string, expiry entities.Date) entities.InventoryItem {
	return entities.InventoryItem{FoodItem: name, ExpiryDate: expiry, Category: entities.CategoryOther}
}

func TestIsRecipeQuery(t *testing.T) {
	for _, message := range []string{
		"Any LEFTOVER ideas?",
		"recipe with rice",
		"How do I use up spinach",
		"What can I make tonight?",
		"what to do with stale bread",
	} {
		assert.True(t, IsRecipeQuery(message), message)
	}

	for _, message := range []string{"How long does milk last?", "tips for storing herbs", ""} {
		assert.False(t, IsRecipeQuery(message), message)
	}
}

func TestBuildPrompt_SelectsTemplate(t *testing.T) {
	prompt, template := BuildPrompt("What can I make with eggs?", nil, testNow)
	assert.Equal(t, domain.PromptTemplateRecipe, template)
	assert.Contains(t, prompt, "suggest 2-3 recipes")
	assert.True(t, strings.HasSuffix(prompt, "User's query: What can I make with eggs?"))

	prompt, template = BuildPrompt("How should I store lettuce?", nil, testNow)
	assert.Equal(t, domain.PromptTemplateGeneral, template)
	assert.Contains(t, prompt, "Answer in 1-3 friendly sentences.")
	assert.NotContains(t, prompt, "inventory:")
}

func TestInventoryContext(t *testing.T) {
	today := entities.DateOf(testNow)
	active := []entities.InventoryItem{
		item("Yogurt", today.AddDays(-2)),
		item("Milk", today),
		item("Bread", today.AddDays(1)),
		item("Cheese", today.AddDays(5)),
		item("Rice", today.AddDays(6)),
	}

	got := InventoryContext(active, testNow)

	assert.Equal(t,
		"\nYou have the following items in your inventory: Yogurt, Milk, Bread, Cheese, Rice."+
			"\nItems expiring soon: Yogurt (expired 2 days ago), Milk (expires today), Bread (expires in 1 day), Cheese (expires in 5 days).",
		got)
}

func TestInventoryContext_NothingExpiring(t *testing.T) {
	active := []entities.InventoryItem{item("Rice", entities.DateOf(testNow).AddDays(300))}

	got := InventoryContext(active, testNow)

	assert.Equal(t, "\nYou have the following items in your inventory: Rice.", got)
	assert.Empty(t, InventoryContext(nil, testNow))
}

func TestBuildPrompt_IncludesContext(t *testing.T) {
	active := []entities.InventoryItem{item("Spinach", entities.DateOf(testNow).AddDays(1))}

	prompt, _ := BuildPrompt("any leftover ideas", active, testNow)

	assert.Contains(t, prompt, "bullet points for the ingredient lists.\nYou have the following items in your inventory: Spinach.")
	assert.Contains(t, prompt, "Items expiring soon: Spinach (expires in 1 day).")
}
