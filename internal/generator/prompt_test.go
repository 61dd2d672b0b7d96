package generator

import (
	"strings"
	"testing"

	"email-template-server/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_Defaults(t *testing.T) {
	prompt := BuildPrompt(nil, nil)

	assert.Contains(t, prompt, "- Tone: professional\n")
	assert.Contains(t, prompt, "- Target Audience: customers\n")
	assert.Contains(t, prompt, "- Purpose: product promotion\n")
	assert.Contains(t, prompt, "- Style Preferences: clean and modern\n")
	assert.NotContains(t, prompt, "Additional Details")
	assert.True(t, strings.HasSuffix(prompt, "Return ONLY the HTML code, no explanations or markdown formatting.\n"))
}

func TestBuildPrompt_ContextValuesAppearVerbatim(t *testing.T) {
	convCtx := models.ConversationContext{
		"tone":     "Friendly, playful",
		"audience": "VIP clients",
		"purpose":  "spring sale",
		"style":    "pastel; lots of whitespace",
		"brand":    "ACME™",
		"deadline": "Friday",
	}

	prompt := BuildPrompt(nil, convCtx)

	assert.Contains(t, prompt, "- Tone: Friendly, playful\n")
	assert.Contains(t, prompt, "- Target Audience: VIP clients\n")
	assert.Contains(t, prompt, "- Purpose: spring sale\n")
	assert.Contains(t, prompt, "- Style Preferences: pastel; lots of whitespace\n")
	assert.Contains(t, prompt, "**Additional Details:**\n- brand: ACME™\n- deadline: Friday\n")
}

func TestBuildPrompt_ProductsInOrder(t *testing.T) {
	products := []models.ProductInfo{
		{URL: "https://a.test", Title: "A", Image: "a.jpg", Price: "1"},
		models.FailedProduct("https://b.test"),
	}

	prompt := BuildPrompt(products, nil)

	first := strings.Index(prompt, "Product 1:\n- Title: A\n- Price: 1\n- URL: https://a.test\n- Image: a.jpg\n")
	second := strings.Index(prompt, "Product 2:\n- Title: Product Title\n- Price: N/A\n- URL: https://b.test\n- Image: placeholder.jpg\n")
	assert.GreaterOrEqual(t, first, 0)
	assert.Greater(t, second, first)
}

func TestSummaryMessage(t *testing.T) {
	assert.Equal(t,
		"Perfect! I've generated your email template featuring 2 product(s) with a urgent tone. The template is ready to use!",
		SummaryMessage(2, models.ConversationContext{"tone": "urgent"}))
	assert.Contains(t, SummaryMessage(0, nil), "with a professional tone")
}
