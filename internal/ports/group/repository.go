package group

import (
	"context"

	"inkwell/internal/core/group"
)

// GroupRepository storage port for groups
type GroupRepository interface {
	Create(ctx context.Context, g *group.Group) (*group.Group, error)
	FindBySlug(ctx context.Context, slug string) (*group.Group, error)
	FindByID(ctx context.Context, id uint) (*group.Group, error)
	List(ctx context.Context) ([]*group.Group, error)
	// Delete detaches the group's posts and removes the group atomically
	Delete(ctx context.Context, id uint) error
}

type GroupDTO struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func NewGroupDTO(g *group.Group) *GroupDTO {
	if g == nil {
		return nil
	}
	return &GroupDTO{
		ID:          g.ID,
		Title:       g.Title,
		Slug:        g.Slug,
		Description: g.Description,
	}
}
