package generator

import (
	"fmt"
	"strings"

	"email-template-server/internal/models"
)

// Значения по умолчанию для отсутствующих ключей контекста.
const (
	DefaultTone     = "professional"
	DefaultAudience = "customers"
	DefaultPurpose  = "product promotion"
	DefaultStyle    = "clean and modern"
)

// SystemPrompt is sent as the system message of every completion request.
const SystemPrompt = "You are an expert email template designer. Create responsive, professional HTML email templates that work across all email clients."

const templateInstructions = `

Please create a complete, responsive HTML email template that:
1. Incorporates all the products with their details
2. Matches the specified tone and audience
3. Includes proper email-safe CSS styling
4. Has a professional layout with product images, titles, prices, and call-to-action buttons
5. Is mobile-responsive and works across email clients

Return ONLY the HTML code, no explanations or markdown formatting.
`

// BuildPrompt assembles the user prompt from the collected preferences and
// the extracted products. Context keys other than tone, audience, purpose and
// style are listed verbatim under "Additional Details" in key order.
func BuildPrompt(products []models.ProductInfo, convCtx models.ConversationContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, `
Create a professional HTML email template with the following requirements:

**Template Details:**
- Tone: %s
- Target Audience: %s
- Purpose: %s
- Style Preferences: %s
`,
		convCtx.GetOrDefault(models.ContextKeyTone, DefaultTone),
		convCtx.GetOrDefault(models.ContextKeyAudience, DefaultAudience),
		convCtx.GetOrDefault(models.ContextKeyPurpose, DefaultPurpose),
		convCtx.GetOrDefault(models.ContextKeyStyle, DefaultStyle),
	)

	if extra := convCtx.ExtraKeys(); len(extra) > 0 {
		b.WriteString("\n**Additional Details:**\n")
		for _, k := range extra {
			fmt.Fprintf(&b, "- %s: %s\n", k, convCtx[k])
		}
	}

	b.WriteString("\n**Products to Feature:**\n")
	for i, p := range products {
		fmt.Fprintf(&b, `
Product %d:
- Title: %s
- Price: %s
- URL: %s
- Image: %s
`, i+1, p.Title, p.Price, p.URL, p.Image)
	}

	b.WriteString(templateInstructions)
	return b.String()
}

// SummaryMessage is the chat reply that accompanies a generated template.
func SummaryMessage(productCount int, convCtx models.ConversationContext) string {
	return fmt.Sprintf(
		"Perfect! I've generated your email template featuring %d product(s) with a %s tone. The template is ready to use!",
		productCount, convCtx.GetOrDefault(models.ContextKeyTone, DefaultTone),
	)
}
