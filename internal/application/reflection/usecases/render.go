package usecases

import (
	"fmt"

	"github.com/inkfolio/inkfolio/internal/application/reflection/dto"
	"github.com/inkfolio/inkfolio/internal/domain/reflection"
	"github.com/inkfolio/inkfolio/internal/shared/services/markdown"
)

func toDTO(r *reflection.Reflection, renderer markdown.Renderer) (*dto.ReflectionDTO, error) {
	html, err := renderer.Render(r.Content())
	if err != nil {
		return nil, fmt.Errorf("failed to render reflection %s: %w", r.ID(), err)
	}
	return dto.ToReflectionDTO(r, html), nil
}
