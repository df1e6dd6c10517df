// Package services contains the application services between the HTTP
// handlers and the record store.
package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jn0w/Lindsey/application/ports"
	"github.com/jn0w/Lindsey/domain/memory"
)

// MemoryInput carries the user-editable fields of a memory record.
// The record identifier is never taken from input.
type MemoryInput struct {
	Title       string
	Description string
	ImageURL    string
	Date        string
	Tags        []string
}

// MemoryService implements the memory CRUD operations
type MemoryService struct {
	repo   ports.MemoryRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewMemoryService creates a new memory service
func NewMemoryService(repo ports.MemoryRepository, logger *zap.Logger) *MemoryService {
	return &MemoryService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// List returns all memories sorted by date, newest first
func (s *MemoryService) List(ctx context.Context) ([]memory.Memory, error) {
	return s.repo.FindAllByDateDesc(ctx)
}

// Get returns a single memory by ID
func (s *MemoryService) Get(ctx context.Context, id string) (*memory.Memory, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates input and stores a new memory record
func (s *MemoryService) Create(ctx context.Context, input MemoryInput) (*memory.Memory, error) {
	m, err := memory.NewMemory(
		input.Title,
		input.Description,
		input.ImageURL,
		input.Date,
		input.Tags,
		s.now(),
	)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Insert(ctx, m)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Memory created",
		zap.String("memoryID", created.ID),
		zap.String("title", created.Title),
	)
	return created, nil
}

// Update replaces every field of an existing memory except its ID and
// CreatedAt. UpdatedAt is refreshed.
func (s *MemoryService) Update(ctx context.Context, id string, input MemoryInput) (*memory.Memory, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	m, err := memory.NewMemory(
		input.Title,
		input.Description,
		input.ImageURL,
		input.Date,
		input.Tags,
		now,
	)
	if err != nil {
		return nil, err
	}
	m.CreatedAt = existing.CreatedAt
	m.UpdatedAt = now

	updated, err := s.repo.Replace(ctx, id, m)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Memory updated", zap.String("memoryID", id))
	return updated, nil
}

// Delete removes a memory permanently
func (s *MemoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Memory deleted", zap.String("memoryID", id))
	return nil
}
