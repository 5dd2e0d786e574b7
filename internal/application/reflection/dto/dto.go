package dto

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/inkfolio/inkfolio/internal/domain/reflection"
	vo "github.com/inkfolio/inkfolio/internal/domain/reflection/valueobjects"
)

type ReflectionDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Published   bool      `json:"published"`
	ReadTime    string    `json:"read_time"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ReflectionListDTO struct {
	Reflections []*ReflectionDTO `json:"reflections"`
	Total       int              `json:"total"`
	Categories  []string         `json:"categories"`
}

type CategoryDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// CreateReflectionRequest is the admin create body. Published defaults to
// true when omitted.
type CreateReflectionRequest struct {
	Title     string     `json:"title" validate:"required,max=200"`
	Excerpt   string     `json:"excerpt" validate:"required,max=500"`
	Content   string     `json:"content" validate:"required"`
	Category  string     `json:"category" validate:"required,oneof=blog journal artwork"`
	Tags      []string   `json:"tags" validate:"omitempty,max=50,dive,max=50"`
	Published *bool      `json:"published"`
	Date      *time.Time `json:"date"`
}

// UpdateReflectionRequest carries only the fields the client sent.
type UpdateReflectionRequest struct {
	Title     *string    `json:"title" validate:"omitempty,max=200"`
	Excerpt   *string    `json:"excerpt" validate:"omitempty,max=500"`
	Content   *string    `json:"content"`
	Category  *string    `json:"category" validate:"omitempty,oneof=blog journal artwork"`
	Tags      *[]string  `json:"tags" validate:"omitempty,max=50,dive,max=50"`
	Published *bool      `json:"published"`
	Date      *time.Time `json:"date"`
}

func ToReflectionDTO(r *reflection.Reflection, contentHTML string) *ReflectionDTO {
	if r == nil {
		return nil
	}

	return &ReflectionDTO{
		ID:          r.ID(),
		Title:       r.Title(),
		Excerpt:     r.Excerpt(),
		Content:     r.Content(),
		ContentHTML: contentHTML,
		Category:    r.Category().String(),
		Tags:        r.Tags(),
		Published:   r.IsPublished(),
		ReadTime:    r.ReadTime(),
		Date:        r.Date(),
		CreatedAt:   r.CreatedAt(),
		UpdatedAt:   r.UpdatedAt(),
	}
}

// CategoryValues lists the category identifiers in display order.
func CategoryValues() []string {
	all := vo.AllCategories()
	out := make([]string, len(all))
	for i, c := range all {
		out[i] = c.String()
	}
	return out
}

var titleCaser = cases.Title(language.English)

func ToCategoryDTOs() []CategoryDTO {
	all := vo.AllCategories()
	out := make([]CategoryDTO, len(all))
	for i, c := range all {
		out[i] = CategoryDTO{Value: c.String(), Label: titleCaser.String(c.String())}
	}
	return out
}
