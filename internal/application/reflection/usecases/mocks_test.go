package usecases

import (
	"context"

	"github.com/inkfolio/inkfolio/internal/domain/reflection"
	"github.com/inkfolio/inkfolio/internal/shared/logger"
)

type mockReflectionRepository struct {
	CreateFunc  func(ctx context.Context, r *reflection.Reflection) error
	GetByIDFunc func(ctx context.Context, id string) (*reflection.Reflection, error)
	ListFunc    func(ctx context.Context, filter reflection.ListFilter) ([]*reflection.Reflection, error)
	UpdateFunc  func(ctx context.Context, r *reflection.Reflection) error
	DeleteFunc  func(ctx context.Context, id string) (bool, error)
}

func (m *mockReflectionRepository) Create(ctx context.Context, r *reflection.Reflection) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return nil
}

func (m *mockReflectionRepository) GetByID(ctx context.Context, id string) (*reflection.Reflection, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockReflectionRepository) List(ctx context.Context, filter reflection.ListFilter) ([]*reflection.Reflection, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockReflectionRepository) Update(ctx context.Context, r *reflection.Reflection) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockReflectionRepository) Delete(ctx context.Context, id string) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

type mockRenderer struct {
	err error
}

func (m *mockRenderer) Render(markdown string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return "<p>" + markdown + "</p>", nil
}

func newTestLogger() logger.Interface {
	return logger.Discard()
}
