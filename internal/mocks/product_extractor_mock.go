package mocks

import (
	"context"

	"email-template-server/internal/extractor"
	"email-template-server/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockProductExtractor is a mock type for the ProductExtractor type
type MockProductExtractor struct {
	mock.Mock
}

// Extract provides a mock function with given fields: ctx, pageURL
func (_m *MockProductExtractor) Extract(ctx context.Context, pageURL string) models.ProductInfo {
	ret := _m.Called(ctx, pageURL)

	if rf, ok := ret.Get(0).(func(context.Context, string) models.ProductInfo); ok {
		return rf(ctx, pageURL)
	}
	return ret.Get(0).(models.ProductInfo)
}

// ExtractBatch provides a mock function with given fields: ctx, urls
func (_m *MockProductExtractor) ExtractBatch(ctx context.Context, urls []string) []models.ProductInfo {
	ret := _m.Called(ctx, urls)

	if rf, ok := ret.Get(0).(func(context.Context, []string) []models.ProductInfo); ok {
		return rf(ctx, urls)
	}
	if ret.Get(0) == nil {
		return nil
	}
	return ret.Get(0).([]models.ProductInfo)
}

// NewMockProductExtractor creates a new instance of MockProductExtractor. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockProductExtractor(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProductExtractor {
	m := &MockProductExtractor{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ extractor.ProductExtractor = (*MockProductExtractor)(nil)
