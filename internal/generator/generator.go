package generator

import (
	"context"
	"strings"

	"email-template-server/internal/models"

	"go.uber.org/zap"
)

// Result is a generated email template together with what it was built from.
type Result struct {
	Message  string
	HTML     string
	Products []models.ProductInfo
}

// TemplateGenerator turns products and preferences into an HTML email.
type TemplateGenerator interface {
	Generate(ctx context.Context, apiKey string, products []models.ProductInfo, convCtx models.ConversationContext) (*Result, error)
	GenerateFromPrompt(ctx context.Context, apiKey string, prompt string) (string, error)
}

// Compile-time check to ensure implementation satisfies the interface.
var _ TemplateGenerator = (*Service)(nil)

// Service implements TemplateGenerator on top of an AIClient per caller key.
type Service struct {
	newClient ClientFactory
	logger    *zap.Logger
}

// NewService creates a template generator.
func NewService(newClient ClientFactory, logger *zap.Logger) *Service {
	return &Service{
		newClient: newClient,
		logger:    logger.Named("TemplateGenerator"),
	}
}

// Generate builds the prompt, calls the completion API and cleans up the
// returned HTML. A blank apiKey fails with models.ErrMissingCredential before
// any outbound call; API failures are returned as *models.UpstreamError.
func (s *Service) Generate(ctx context.Context, apiKey string, products []models.ProductInfo, convCtx models.ConversationContext) (*Result, error) {
	prompt := BuildPrompt(products, convCtx)
	s.logger.Debug("Generating email template",
		zap.Int("products", len(products)),
		zap.Any("conversation_context", convCtx),
	)

	html, err := s.complete(ctx, apiKey, prompt)
	if err != nil {
		return nil, err
	}

	return &Result{
		Message:  SummaryMessage(len(products), convCtx),
		HTML:     html,
		Products: products,
	}, nil
}

// GenerateFromPrompt generates a template from a free-form user prompt.
func (s *Service) GenerateFromPrompt(ctx context.Context, apiKey string, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", models.ErrInvalidInput
	}
	return s.complete(ctx, apiKey, prompt)
}

func (s *Service) complete(ctx context.Context, apiKey, prompt string) (string, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return "", models.ErrMissingCredential
	}

	text, _, err := s.newClient(apiKey).GenerateText(ctx, SystemPrompt, prompt)
	if err != nil {
		classified := ClassifyError(err)
		s.logger.Error("Template generation failed", zap.Error(classified))
		return "", classified
	}

	return StripCodeFences(text), nil
}
