// Package mocks provides testify mocks shared across package tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jn0w/Lindsey/domain/memory"
)

// MockMemoryRepository is a testify mock of ports.MemoryRepository
type MockMemoryRepository struct {
	mock.Mock
}

func (m *MockMemoryRepository) FindAll(ctx context.Context) ([]memory.Memory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]memory.Memory), args.Error(1)
}

func (m *MockMemoryRepository) FindAllByDateDesc(ctx context.Context) ([]memory.Memory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]memory.Memory), args.Error(1)
}

func (m *MockMemoryRepository) FindByID(ctx context.Context, id string) (*memory.Memory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*memory.Memory), args.Error(1)
}

func (m *MockMemoryRepository) Insert(ctx context.Context, mem *memory.Memory) (*memory.Memory, error) {
	args := m.Called(ctx, mem)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*memory.Memory), args.Error(1)
}

func (m *MockMemoryRepository) Replace(ctx context.Context, id string, mem *memory.Memory) (*memory.Memory, error) {
	args := m.Called(ctx, id, mem)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*memory.Memory), args.Error(1)
}

func (m *MockMemoryRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMemoryRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
