package service

import (
	"context"

	"github.com/GanderM1/testforgenew/internal/apperror"
	"github.com/GanderM1/testforgenew/internal/auth"
	"github.com/GanderM1/testforgenew/internal/dto"
	"github.com/GanderM1/testforgenew/internal/model"
	"github.com/GanderM1/testforgenew/internal/repository"
	"github.com/rs/zerolog/log"
)

// UserTestService serves tests to the people who take or review them.
type UserTestService interface {
	ListTests(ctx context.Context, viewer auth.Identity) ([]dto.TestSummaryDTO, error)
	GetTest(ctx context.Context, viewer auth.Identity, testID uint) (*dto.TestDetailDTO, error)
	CheckAccess(ctx context.Context, viewer auth.Identity, testID uint) (*dto.CheckAccessDTO, error)
}

type userTestService struct {
	testRepo repository.TestRepository
}

func NewUserTestService(testRepo repository.TestRepository) UserTestService {
	return &userTestService{testRepo: testRepo}
}

func (s *userTestService) ListTests(ctx context.Context, viewer auth.Identity) ([]dto.TestSummaryDTO, error) {
	tests, err := s.testRepo.List(ctx, repository.TestScope{
		Role:    viewer.Role,
		UserID:  viewer.UserID,
		GroupID: viewer.GroupID,
	})
	if err != nil {
		log.Error().Err(err).Uint("userID", viewer.UserID).Msg("ListTests: repository error")
		return nil, err
	}
	return toSummaries(tests), nil
}

// GetTest returns the test with its questions. The answer key is only shown
// to admins and the author.
func (s *userTestService) GetTest(ctx context.Context, viewer auth.Identity, testID uint) (*dto.TestDetailDTO, error) {
	test, err := s.testRepo.FindWithQuestions(ctx, testID)
	if err != nil {
		return nil, err
	}
	if !canTake(viewer, test) {
		return nil, apperror.Forbidden("test %d is not available to you", testID)
	}
	return toDetail(test, viewer.CanManage(test.AuthorID)), nil
}

func (s *userTestService) CheckAccess(ctx context.Context, viewer auth.Identity, testID uint) (*dto.CheckAccessDTO, error) {
	test, err := s.testRepo.FindByID(ctx, testID)
	if err != nil {
		return nil, err
	}
	return &dto.CheckAccessDTO{HasAccess: canTake(viewer, test)}, nil
}

func toGroupDTOs(groups []model.Group) []dto.GroupDTO {
	out := make([]dto.GroupDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.GroupDTO{ID: g.ID, Name: g.Name})
	}
	return out
}

func toSummaries(tests []model.Test) []dto.TestSummaryDTO {
	out := make([]dto.TestSummaryDTO, 0, len(tests))
	for i := range tests {
		t := &tests[i]
		out = append(out, dto.TestSummaryDTO{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			AuthorID:    t.AuthorID,
			Author:      t.Author.Username,
			Groups:      toGroupDTOs(t.Groups),
			CreatedAt:   t.CreatedAt,
		})
	}
	return out
}

func toDetail(test *model.Test, withKey bool) *dto.TestDetailDTO {
	detail := &dto.TestDetailDTO{
		ID:          test.ID,
		Title:       test.Title,
		Description: test.Description,
		AuthorID:    test.AuthorID,
		Author:      test.Author.Username,
		Groups:      toGroupDTOs(test.Groups),
		Questions:   make([]dto.QuestionDTO, 0, len(test.Questions)),
	}
	for _, q := range test.Questions {
		qd := dto.QuestionDTO{
			ID:           q.ID,
			Text:         q.Text,
			QuestionType: q.QuestionType,
			Answers:      make([]dto.AnswerDTO, 0, len(q.Answers)),
		}
		if withKey {
			qd.CorrectTextAnswer = q.CorrectTextAnswer
		}
		for _, a := range q.Answers {
			ad := dto.AnswerDTO{ID: a.ID, Text: a.Text}
			if withKey {
				correct := a.IsCorrect
				ad.IsCorrect = &correct
			}
			qd.Answers = append(qd.Answers, ad)
		}
		detail.Questions = append(detail.Questions, qd)
	}
	return detail
}
