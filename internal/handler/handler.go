package handler

import (
	"net/http"
	"net/url"
	"strings"

	"email-template-server/internal/extractor"
	"email-template-server/internal/flow"
	"email-template-server/internal/generator"
	"email-template-server/internal/models"
	"email-template-server/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatusMessage is returned by the liveness probe on /status.
const StatusMessage = "This is a reply from the server."

// TemplateHandler serves the email template API.
type TemplateHandler struct {
	extractor extractor.ProductExtractor
	flow      *flow.Controller
	generator generator.TemplateGenerator
	logger    *zap.Logger
}

func NewTemplateHandler(ext extractor.ProductExtractor, controller *flow.Controller, gen generator.TemplateGenerator, logger *zap.Logger) *TemplateHandler {
	return &TemplateHandler{
		extractor: ext,
		flow:      controller,
		generator: gen,
		logger:    logger.Named("TemplateHandler"),
	}
}

// RegisterRoutes mounts the API at the root and, when basePath is set, under
// basePath too (фронтенд ходит через прокси с префиксом /api).
func (h *TemplateHandler) RegisterRoutes(router *gin.Engine, basePath string) {
	h.register(router.Group("/"))

	basePath = "/" + strings.Trim(basePath, "/")
	if basePath != "/" {
		h.register(router.Group(basePath))
	}
}

func (h *TemplateHandler) register(g *gin.RouterGroup) {
	g.GET("/status", h.status)
	g.GET("/fetch_info", h.fetchInfo)
	g.POST("/chat", h.chat)
	g.POST("/generate-template", h.generateTemplate)
}

func (h *TemplateHandler) status(c *gin.Context) {
	c.JSON(http.StatusOK, statusResponse{Message: StatusMessage})
}

func (h *TemplateHandler) fetchInfo(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("url"))
	if raw == "" {
		badRequest(c, "Query parameter 'url' is required")
		return
	}
	if !isHTTPURL(raw) {
		badRequest(c, "Query parameter 'url' must be an absolute http(s) URL")
		return
	}

	fetchInfoTotal.Inc()
	info := h.extractor.Extract(c.Request.Context(), raw)
	c.JSON(http.StatusOK, info)
}

func (h *TemplateHandler) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid chat request body", zap.Error(err), zap.String("request_id", middleware.GetRequestID(c)))
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	step := models.ParseFlowStep(req.Step).String()
	resp, err := h.flow.Handle(c.Request.Context(), flow.Request{
		Message: req.Message,
		APIKey:  req.APIKey,
		Step:    req.Step,
		Context: req.Context,
	})
	if err != nil {
		chatTurnsTotal.WithLabelValues(step, "error").Inc()
		handleServiceError(c, err)
		return
	}
	chatTurnsTotal.WithLabelValues(step, "success").Inc()
	if resp.HTML != "" {
		templatesGeneratedTotal.WithLabelValues("chat").Inc()
	}

	c.JSON(http.StatusOK, chatResponse{
		Message:         resp.Message,
		NextStep:        resp.NextStep.String(),
		Questions:       resp.Questions,
		HTML:            resp.HTML,
		Products:        resp.Products,
		ShowToneOptions: resp.ShowToneOptions,
		Context:         resp.Context,
	})
}

func (h *TemplateHandler) generateTemplate(c *gin.Context) {
	var req generateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	html, err := h.generator.GenerateFromPrompt(c.Request.Context(), req.APIKey, req.Prompt)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	templatesGeneratedTotal.WithLabelValues("prompt").Inc()

	c.JSON(http.StatusOK, generateTemplateResponse{HTML: html})
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
