package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/shopline/backend/internal/domain/shared"
)

// Category groups products for browsing
type Category struct {
	shared.BaseEntity
	Name  string
	Slug  string
	Image string // object storage key, empty when the category has no image
}

// NewCategory creates a new category. The slug is assigned by the
// application layer once uniqueness has been checked.
func NewCategory(name, image string) (*Category, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	return &Category{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Image:      strings.TrimSpace(image),
	}, nil
}

// AssignSlug sets the slug on first save only
func (c *Category) AssignSlug(slug string) {
	if c.Slug == "" {
		c.Slug = slug
	}
}

func validateName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 100 characters")
	}
	return nil
}
