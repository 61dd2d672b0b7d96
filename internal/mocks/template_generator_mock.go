package mocks

import (
	"context"

	"email-template-server/internal/generator"
	"email-template-server/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockTemplateGenerator is a mock type for the TemplateGenerator type
type MockTemplateGenerator struct {
	mock.Mock
}

// Generate provides a mock function with given fields: ctx, apiKey, products, convCtx
func (_m *MockTemplateGenerator) Generate(ctx context.Context, apiKey string, products []models.ProductInfo, convCtx models.ConversationContext) (*generator.Result, error) {
	ret := _m.Called(ctx, apiKey, products, convCtx)

	var r0 *generator.Result
	if rf, ok := ret.Get(0).(func(context.Context, string, []models.ProductInfo, models.ConversationContext) *generator.Result); ok {
		r0 = rf(ctx, apiKey, products, convCtx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*generator.Result)
	}

	return r0, ret.Error(1)
}

// GenerateFromPrompt provides a mock function with given fields: ctx, apiKey, prompt
func (_m *MockTemplateGenerator) GenerateFromPrompt(ctx context.Context, apiKey string, prompt string) (string, error) {
	ret := _m.Called(ctx, apiKey, prompt)
	return ret.String(0), ret.Error(1)
}

// NewMockTemplateGenerator creates a new instance of MockTemplateGenerator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTemplateGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTemplateGenerator {
	m := &MockTemplateGenerator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ generator.TemplateGenerator = (*MockTemplateGenerator)(nil)
