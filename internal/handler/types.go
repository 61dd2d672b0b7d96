package handler

import "email-template-server/internal/models"

// --- Request/Response Structs ---

type chatRequest struct {
	Message string                     `json:"message"`
	APIKey  string                     `json:"apiKey"`
	Step    string                     `json:"step"`
	Context models.ConversationContext `json:"conversation_context"`
}

type chatResponse struct {
	Message         string                     `json:"message"`
	NextStep        string                     `json:"next_step,omitempty"`
	Questions       []string                   `json:"questions,omitempty"`
	HTML            string                     `json:"html,omitempty"`
	Products        []models.ProductInfo       `json:"products,omitempty"`
	ShowToneOptions bool                       `json:"show_tone_options,omitempty"`
	Context         models.ConversationContext `json:"conversation_context"`
}

type generateTemplateRequest struct {
	Prompt string `json:"prompt"`
	APIKey string `json:"apiKey"`
}

type generateTemplateResponse struct {
	HTML string `json:"html"`
}

type statusResponse struct {
	Message string `json:"message"`
}
