package service

import (
	"context"

	"github.com/GanderM1/testforgenew/internal/apperror"
	"github.com/GanderM1/testforgenew/internal/auth"
	"github.com/GanderM1/testforgenew/internal/dto"
	"github.com/GanderM1/testforgenew/internal/grading"
	"github.com/GanderM1/testforgenew/internal/model"
	"github.com/GanderM1/testforgenew/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// TestSubmissionService grades submissions and stores their results.
type TestSubmissionService interface {
	SubmitTest(ctx context.Context, viewer auth.Identity, testID uint, req dto.TestSubmitDTO) (*dto.SubmitResultDTO, error)
}

type testSubmissionService struct {
	testRepo   repository.TestRepository
	resultRepo repository.TestResultRepository
	grader     grading.Grader
	db         *gorm.DB // Used for transactions within service methods
}

func NewTestSubmissionService(
	testRepo repository.TestRepository,
	resultRepo repository.TestResultRepository,
	grader grading.Grader,
	db *gorm.DB,
) TestSubmissionService {
	return &testSubmissionService{
		testRepo:   testRepo,
		resultRepo: resultRepo,
		grader:     grader,
		db:         db,
	}
}

// SubmitTest loads the answer key, grades the submission and inserts one
// result row, all inside a single transaction. Nothing is stored when any
// step fails.
func (s *testSubmissionService) SubmitTest(ctx context.Context, viewer auth.Identity, testID uint, req dto.TestSubmitDTO) (*dto.SubmitResultDTO, error) {
	var outcome grading.Outcome

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		test, err := s.testRepo.WithTx(tx).FindWithQuestions(ctx, testID)
		if err != nil {
			return err
		}
		if !canTake(viewer, test) {
			return apperror.Forbidden("test %d is not available to you", testID)
		}
		if len(test.Questions) == 0 {
			return apperror.Validation("test %d has no questions, submission is not possible", testID)
		}

		key, err := answerKey(test)
		if err != nil {
			return err
		}
		outcome, err = s.grader.Grade(key, toResponses(req.Answers))
		if err != nil {
			return err
		}

		result := &model.TestResult{
			UserID:         viewer.UserID,
			TestID:         testID,
			Score:          outcome.Score,
			TotalQuestions: outcome.TotalQuestions,
		}
		if err := s.resultRepo.WithTx(tx).Create(ctx, result); err != nil {
			return err
		}
		log.Info().Uint("testID", testID).Uint("userID", viewer.UserID).
			Int("score", outcome.Score).Int("total", outcome.TotalQuestions).
			Msg("SubmitTest: result stored")
		return nil
	})
	if err != nil {
		err = apperror.Storage(err, "submit test")
		if apperror.KindOf(err) == apperror.KindStorage {
			log.Error().Err(err).Uint("testID", testID).Uint("userID", viewer.UserID).Msg("SubmitTest: transaction rolled back")
		}
		return nil, err
	}

	return &dto.SubmitResultDTO{
		Success:        true,
		CorrectAnswers: outcome.Score,
		TotalQuestions: outcome.TotalQuestions,
		Percentage:     outcome.Percentage(),
	}, nil
}
