package valueobjects

import "fmt"

// Category is the closed set of reflection kinds. Adding a value is a code
// change, not a data migration.
type Category string

const (
	CategoryBlog    Category = "blog"
	CategoryJournal Category = "journal"
	CategoryArtwork Category = "artwork"
)

var validCategories = map[Category]bool{
	CategoryBlog:    true,
	CategoryJournal: true,
	CategoryArtwork: true,
}

// AllCategories returns the categories in display order.
func AllCategories() []Category {
	return []Category{CategoryBlog, CategoryJournal, CategoryArtwork}
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func NewCategory(str string) (Category, error) {
	c := Category(str)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", str)
	}
	return c, nil
}
