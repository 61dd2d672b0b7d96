package flow

import (
	"context"
	"strings"

	"email-template-server/internal/extractor"
	"email-template-server/internal/generator"
	"email-template-server/internal/models"

	"go.uber.org/zap"
)

// Тексты ответов на каждом шаге диалога.
const (
	GreetingMessage       = "Hi! I'm ready to help you create an amazing email template. Let's start by gathering some details about what you need."
	CollectDetailsMessage = "Great! Tell me in more details to create the perfect email template for you. You can answer such questions:"
	CollectURLsMessage    = "Perfect! Now please provide the product URLs you'd like to feature in your email template (one URL per line):"
	NoURLsMessage         = "Please provide at least one valid product URL."
)

// DetailQuestions are asked on the collect_details step.
var DetailQuestions = []string{
	"What tone would you like for your email? (e.g., professional, friendly, persuasive, urgent)",
	"Who is your target audience? (e.g., existing customers, new prospects, VIP clients)",
	"What's the main purpose of this email? (e.g., product promotion, newsletter, announcement)",
	"Any specific style preferences or branding guidelines?",
}

// Request is one turn of the conversation.
type Request struct {
	Message string
	APIKey  string
	Step    string
	Context models.ConversationContext
}

// Response is the reply for one turn. NextStep is empty only when the
// conversation has nowhere to go.
type Response struct {
	Message         string
	NextStep        models.FlowStep
	Questions       []string
	HTML            string
	Products        []models.ProductInfo
	ShowToneOptions bool
	Context         models.ConversationContext
}

// Controller drives the template conversation. It keeps no state between
// calls: everything it needs arrives in the Request.
type Controller struct {
	extractor extractor.ProductExtractor
	generator generator.TemplateGenerator
	logger    *zap.Logger
}

// NewController creates a conversation controller.
func NewController(ext extractor.ProductExtractor, gen generator.TemplateGenerator, logger *zap.Logger) *Controller {
	return &Controller{
		extractor: ext,
		generator: gen,
		logger:    logger.Named("FlowController"),
	}
}

// Handle dispatches the request to the handler for its step.
func (c *Controller) Handle(ctx context.Context, req Request) (*Response, error) {
	step := models.ParseFlowStep(req.Step)
	convCtx := req.Context.Clone()

	log := c.logger.With(zap.String("step", step.String()))
	log.Debug("Handling chat turn", zap.Int("message_length", len(req.Message)))

	var (
		resp *Response
		err  error
	)
	switch step {
	case models.StepCollectDetails:
		resp = collectDetails()
	case models.StepCollectURLs:
		resp = collectURLs()
	case models.StepGenerateTemplate:
		resp, err = c.generateTemplate(ctx, req.APIKey, req.Message, convCtx)
	case models.StepComplete, models.StepInitial:
		// После complete начинаем новый шаблон с приветствия.
		resp = greeting()
	default:
		resp = greeting()
	}
	if err != nil {
		log.Warn("Chat turn failed", zap.Error(err))
		return nil, err
	}

	resp.Context = convCtx
	return resp, nil
}

func greeting() *Response {
	return &Response{
		Message:  GreetingMessage,
		NextStep: models.StepCollectDetails,
	}
}

func collectDetails() *Response {
	questions := make([]string, len(DetailQuestions))
	copy(questions, DetailQuestions)
	return &Response{
		Message:         CollectDetailsMessage,
		Questions:       questions,
		NextStep:        models.StepCollectURLs,
		ShowToneOptions: true,
	}
}

func collectURLs() *Response {
	return &Response{
		Message:  CollectURLsMessage,
		NextStep: models.StepGenerateTemplate,
	}
}

func (c *Controller) generateTemplate(ctx context.Context, apiKey, message string, convCtx models.ConversationContext) (*Response, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, models.ErrMissingCredential
	}

	urls := ParseURLs(message)
	if len(urls) == 0 {
		return &Response{
			Message:  NoURLsMessage,
			NextStep: models.StepGenerateTemplate,
		}, nil
	}

	products := c.extractor.ExtractBatch(ctx, urls)
	c.logger.Info("Products extracted", zap.Int("urls", len(urls)), zap.Int("products", len(products)))

	result, err := c.generator.Generate(ctx, apiKey, products, convCtx)
	if err != nil {
		return nil, err
	}

	return &Response{
		Message:  result.Message,
		HTML:     result.HTML,
		Products: result.Products,
		NextStep: models.StepComplete,
	}, nil
}

// ParseURLs splits a message into one URL per non-blank line, in order.
// Lines are not validated here: a bad URL degrades to a placeholder product.
func ParseURLs(message string) []string {
	lines := strings.Split(strings.TrimSpace(message), "\n")
	urls := make([]string, 0, len(lines))
	for _, line := range lines {
		if u := strings.TrimSpace(line); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}
