package groupapp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"inkwell/internal/core/apperr"
	groupEntity "inkwell/internal/core/group"
	groupPort "inkwell/internal/ports/group"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// GroupService administrative group management
type GroupService struct {
	GroupRepository groupPort.GroupRepository
	logger          *zap.Logger
}

func NewGroupService(repo groupPort.GroupRepository, logger *zap.Logger) *GroupService {
	return &GroupService{
		GroupRepository: repo,
		logger:          logger,
	}
}

type groupInput struct {
	Title       string `json:"title" validate:"required,max=200"`
	Slug        string `json:"slug" validate:"required,max=50,slug"`
	Description string `json:"description" validate:"max=10000"`
}

func (s *GroupService) CreateGroup(ctx context.Context, title, slug, description string) (*groupPort.GroupDTO, error) {
	in := groupInput{
		Title:       strings.TrimSpace(title),
		Slug:        strings.TrimSpace(slug),
		Description: strings.TrimSpace(description),
	}
	if err := apperr.Validate(in); err != nil {
		return nil, err
	}

	g, err := s.GroupRepository.Create(ctx, &groupEntity.Group{
		Title:       in.Title,
		Slug:        in.Slug,
		Description: in.Description,
	})
	if errors.Is(err, apperr.ErrDuplicate) {
		return nil, apperr.NewValidationError("slug", "a group with this slug already exists")
	}
	if err != nil {
		return nil, fmt.Errorf("create group: %w", err)
	}

	s.logger.Info("group created", zap.Uint("groupID", g.ID), zap.String("slug", g.Slug))
	return groupPort.NewGroupDTO(g), nil
}

// DeleteGroup removes the group; its posts stay published without a group
func (s *GroupService) DeleteGroup(ctx context.Context, slug string) error {
	g, err := s.GroupRepository.FindBySlug(ctx, slug)
	if err != nil {
		return fmt.Errorf("group %q: %w", slug, err)
	}
	if err := s.GroupRepository.Delete(ctx, g.ID); err != nil {
		return fmt.Errorf("delete group %q: %w", slug, err)
	}

	s.logger.Info("group deleted", zap.Uint("groupID", g.ID), zap.String("slug", slug))
	return nil
}

func (s *GroupService) GetGroup(ctx context.Context, slug string) (*groupPort.GroupDTO, error) {
	g, err := s.GroupRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("group %q: %w", slug, err)
	}
	return groupPort.NewGroupDTO(g), nil
}

func (s *GroupService) ListGroups(ctx context.Context) ([]*groupPort.GroupDTO, error) {
	groups, err := s.GroupRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(groups, func(g *groupEntity.Group, _ int) *groupPort.GroupDTO {
		return groupPort.NewGroupDTO(g)
	}), nil
}
