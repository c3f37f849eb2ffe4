package groupapp

import (
	"context"
	"regexp"
	"strings"

	"yatube/internal/config"
	"yatube/internal/core/apperr"
	groupEntity "yatube/internal/core/group"
	groupPort "yatube/internal/ports/group"

	"go.uber.org/zap"
)

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// GroupService گروه‌ها فقط از مسیر مدیریتی ساخته می‌شوند
type GroupService struct {
	GroupRepository groupPort.GroupRepository
}

func NewGroupService(repo groupPort.GroupRepository) *GroupService {
	return &GroupService{GroupRepository: repo}
}

func (s *GroupService) CreateGroup(ctx context.Context, slug, title, description string) (*groupPort.GroupDTO, error) {
	slug = strings.TrimSpace(slug)
	title = strings.TrimSpace(title)
	if !slugPattern.MatchString(slug) {
		return nil, apperr.NewValidationError("slug", "Enter a valid slug consisting of letters, numbers, underscores or hyphens.")
	}
	if title == "" {
		return nil, apperr.NewValidationError("title", "This field is required.")
	}

	_, err := s.GroupRepository.FindBySlug(ctx, slug)
	switch {
	case err == nil:
		return nil, apperr.NewValidationError("slug", "Group with this slug already exists.")
	case !apperr.IsNotFound(err):
		return nil, err
	}

	g, err := s.GroupRepository.Create(ctx, &groupEntity.Group{Slug: slug, Title: title, Description: description})
	if err != nil {
		return nil, err
	}
	config.Logger.Info("Group created", zap.Uint("groupID", g.ID), zap.String("slug", g.Slug))
	return groupPort.ToDTO(g), nil
}

func (s *GroupService) GetBySlug(ctx context.Context, slug string) (*groupPort.GroupDTO, error) {
	g, err := s.GroupRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return groupPort.ToDTO(g), nil
}

func (s *GroupService) ListGroups(ctx context.Context) ([]*groupPort.GroupDTO, error) {
	groups, err := s.GroupRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]*groupPort.GroupDTO, 0, len(groups))
	for _, g := range groups {
		dtos = append(dtos, groupPort.ToDTO(g))
	}
	return dtos, nil
}
