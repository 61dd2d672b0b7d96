package mocks

import (
	"context"

	"email-template-server/internal/generator"

	"github.com/stretchr/testify/mock"
)

// MockAIClient is a mock type for the AIClient type
type MockAIClient struct {
	mock.Mock
}

// GenerateText provides a mock function with given fields: ctx, systemPrompt, userInput
func (_m *MockAIClient) GenerateText(ctx context.Context, systemPrompt string, userInput string) (string, generator.UsageInfo, error) {
	ret := _m.Called(ctx, systemPrompt, userInput)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, string, string) string); ok {
		r0 = rf(ctx, systemPrompt, userInput)
	} else {
		r0 = ret.String(0)
	}

	var r1 generator.UsageInfo
	if ret.Get(1) != nil {
		r1 = ret.Get(1).(generator.UsageInfo)
	}

	return r0, r1, ret.Error(2)
}

// NewMockAIClient creates a new instance of MockAIClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockAIClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAIClient {
	m := &MockAIClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ generator.AIClient = (*MockAIClient)(nil)
