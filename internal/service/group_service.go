package service

import (
	"context"
	"strings"

	"github.com/GanderM1/testforgenew/internal/apperror"
	"github.com/GanderM1/testforgenew/internal/dto"
	"github.com/GanderM1/testforgenew/internal/model"
	"github.com/GanderM1/testforgenew/internal/repository"
	"github.com/rs/zerolog/log"
)

type GroupService interface {
	List(ctx context.Context) ([]dto.GroupDTO, error)
	Create(ctx context.Context, req dto.GroupCreateDTO) (*dto.GroupDTO, error)
	Delete(ctx context.Context, id uint) error
}

type groupService struct {
	groupRepo repository.GroupRepository
}

func NewGroupService(groupRepo repository.GroupRepository) GroupService {
	return &groupService{groupRepo: groupRepo}
}

func (s *groupService) List(ctx context.Context) ([]dto.GroupDTO, error) {
	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toGroupDTOs(groups), nil
}

// Create adds a group. Names are unique; a duplicate is a validation error.
func (s *groupService) Create(ctx context.Context, req dto.GroupCreateDTO) (*dto.GroupDTO, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.Validation("group name is required")
	}
	group := model.Group{Name: name}
	if err := s.groupRepo.Create(ctx, &group); err != nil {
		return nil, err
	}
	log.Info().Uint("groupID", group.ID).Str("name", name).Msg("Group created")
	return &dto.GroupDTO{ID: group.ID, Name: group.Name}, nil
}

func (s *groupService) Delete(ctx context.Context, id uint) error {
	if err := s.groupRepo.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Uint("groupID", id).Msg("Group deleted")
	return nil
}
