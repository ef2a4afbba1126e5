package services_test

import (
	"github.com/getmentor/formsdemo/internal/cache"
	"github.com/getmentor/formsdemo/internal/models"
	"github.com/getmentor/formsdemo/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockSubmissionStore is a mock implementation of SubmissionStore
type MockSubmissionStore struct {
	mock.Mock
}

func (m *MockSubmissionStore) Set(variant models.Variant, submission *models.FormSubmission) {
	m.Called(variant, submission)
}

func (m *MockSubmissionStore) Get(variant models.Variant) (*models.FormSubmission, bool) {
	args := m.Called(variant)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*models.FormSubmission), args.Bool(1)
}

func (m *MockSubmissionStore) Snapshot() []store.Entry {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]store.Entry)
}

// MockPreviewStore is a mock implementation of PreviewStore
type MockPreviewStore struct {
	mock.Mock
}

func (m *MockPreviewStore) Put(draft string, p cache.Preview) error {
	args := m.Called(draft, p)
	return args.Error(0)
}

func (m *MockPreviewStore) Get(draft string) (cache.Preview, bool) {
	args := m.Called(draft)
	return args.Get(0).(cache.Preview), args.Bool(1)
}
