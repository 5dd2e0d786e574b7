package reflection

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	vo "github.com/inkfolio/inkfolio/internal/domain/reflection/valueobjects"
	"github.com/inkfolio/inkfolio/internal/shared/biztime"
)

const (
	MaxTitleLength   = 200
	MaxExcerptLength = 500
)

// Reflection is a blog post, journal entry or artwork note. Its read time is
// derived from the body and is only ever set alongside it.
type Reflection struct {
	id        string
	title     string
	excerpt   string
	content   string
	category  vo.Category
	tags      []string
	published bool
	readTime  string
	date      time.Time
	createdAt time.Time
	updatedAt time.Time
}

// NewReflection validates the fields and assigns a fresh id. A nil date
// defaults to now.
func NewReflection(
	title string,
	excerpt string,
	content string,
	category vo.Category,
	tags []string,
	published bool,
	date *time.Time,
	now time.Time,
) (*Reflection, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateExcerpt(excerpt); err != nil {
		return nil, err
	}
	if err := validateContent(content); err != nil {
		return nil, err
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}

	semanticDate := now
	if date != nil && !date.IsZero() {
		semanticDate = date.UTC()
	}

	return &Reflection{
		id:        uuid.NewString(),
		title:     title,
		excerpt:   excerpt,
		content:   content,
		category:  category,
		tags:      NormalizeTags(tags),
		published: published,
		readTime:  EstimateReadTime(content),
		date:      semanticDate,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructReflection rebuilds a reflection from storage. The read time is
// recomputed from the stored body rather than trusted.
func ReconstructReflection(
	id string,
	title string,
	excerpt string,
	content string,
	category vo.Category,
	tags []string,
	published bool,
	date, createdAt, updatedAt time.Time,
) (*Reflection, error) {
	if id == "" {
		return nil, fmt.Errorf("reflection ID cannot be empty")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}

	return &Reflection{
		id:        id,
		title:     title,
		excerpt:   excerpt,
		content:   content,
		category:  category,
		tags:      NormalizeTags(tags),
		published: published,
		readTime:  EstimateReadTime(content),
		date:      date,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (r *Reflection) ID() string {
	return r.id
}

func (r *Reflection) Title() string {
	return r.title
}

func (r *Reflection) Excerpt() string {
	return r.excerpt
}

func (r *Reflection) Content() string {
	return r.content
}

func (r *Reflection) Category() vo.Category {
	return r.category
}

func (r *Reflection) Tags() []string {
	out := make([]string, len(r.tags))
	copy(out, r.tags)
	return out
}

func (r *Reflection) IsPublished() bool {
	return r.published
}

func (r *Reflection) ReadTime() string {
	return r.readTime
}

func (r *Reflection) Date() time.Time {
	return r.date
}

func (r *Reflection) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Reflection) UpdatedAt() time.Time {
	return r.updatedAt
}

// Patch carries a partial update. Nil fields are left untouched.
type Patch struct {
	Title     *string
	Excerpt   *string
	Content   *string
	Category  *vo.Category
	Tags      *[]string
	Published *bool
	Date      *time.Time
}

func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Excerpt == nil && p.Content == nil && p.Category == nil &&
		p.Tags == nil && p.Published == nil && p.Date == nil
}

// Apply validates every supplied field before touching the entity, so a
// rejected patch leaves it unchanged. updated_at advances on every accepted
// patch and never moves backwards.
func (r *Reflection) Apply(p Patch, now time.Time) error {
	if p.IsEmpty() {
		return fmt.Errorf("no update data provided")
	}
	if p.Title != nil {
		if err := validateTitle(*p.Title); err != nil {
			return err
		}
	}
	if p.Excerpt != nil {
		if err := validateExcerpt(*p.Excerpt); err != nil {
			return err
		}
	}
	if p.Content != nil {
		if err := validateContent(*p.Content); err != nil {
			return err
		}
	}
	if p.Category != nil && !p.Category.IsValid() {
		return fmt.Errorf("invalid category: %s", *p.Category)
	}

	if p.Title != nil {
		r.title = *p.Title
	}
	if p.Excerpt != nil {
		r.excerpt = *p.Excerpt
	}
	if p.Content != nil {
		r.content = *p.Content
		r.readTime = EstimateReadTime(r.content)
	}
	if p.Category != nil {
		r.category = *p.Category
	}
	if p.Tags != nil {
		r.tags = NormalizeTags(*p.Tags)
	}
	if p.Published != nil {
		r.published = *p.Published
	}
	if p.Date != nil && !p.Date.IsZero() {
		r.date = p.Date.UTC()
	}

	r.updatedAt = biztime.Touch(r.updatedAt, now)
	return nil
}

// NormalizeTags trims tags, drops empties and removes duplicates while
// keeping first-seen order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func validateTitle(title string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(title))
	if n == 0 {
		return fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	return nil
}

func validateExcerpt(excerpt string) error {
	if strings.TrimSpace(excerpt) == "" {
		return fmt.Errorf("excerpt is required")
	}
	if utf8.RuneCountInString(excerpt) > MaxExcerptLength {
		return fmt.Errorf("excerpt exceeds maximum length of %d characters", MaxExcerptLength)
	}
	return nil
}

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content is required")
	}
	return nil
}
