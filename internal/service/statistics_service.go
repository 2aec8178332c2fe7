package service

import (
	"context"
	"fmt"

	"github.com/GanderM1/testforgenew/internal/apperror"
	"github.com/GanderM1/testforgenew/internal/auth"
	"github.com/GanderM1/testforgenew/internal/dto"
	"github.com/GanderM1/testforgenew/internal/repository"
	"github.com/GanderM1/testforgenew/internal/statistics"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// StatisticsService builds the teacher and student statistics views. Results
// are aggregated on every call; nothing is cached.
type StatisticsService interface {
	TestStatistics(ctx context.Context, viewer auth.Identity, testID uint) (*dto.TestStatisticsDTO, error)
	MyStatistics(ctx context.Context, viewer auth.Identity) ([]dto.MyStatDTO, error)
}

type statisticsService struct {
	testRepo   repository.TestRepository
	resultRepo repository.TestResultRepository
}

func NewStatisticsService(testRepo repository.TestRepository, resultRepo repository.TestResultRepository) StatisticsService {
	return &statisticsService{testRepo: testRepo, resultRepo: resultRepo}
}

// TestStatistics is available to admins and to the teacher who wrote the
// test.
func (s *statisticsService) TestStatistics(ctx context.Context, viewer auth.Identity, testID uint) (*dto.TestStatisticsDTO, error) {
	if !viewer.Role.CanAuthor() {
		return nil, apperror.Forbidden("teacher or admin role required")
	}
	test, err := s.testRepo.FindByID(ctx, testID)
	if err != nil {
		return nil, err
	}
	if !viewer.CanManage(test.AuthorID) {
		return nil, apperror.Forbidden("no access to statistics of test %d", testID)
	}

	rows, err := s.resultRepo.RowsForTest(ctx, testID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("TestStatistics: failed to load results")
		return nil, err
	}
	summary := statistics.AggregateByUser(rows)

	userStats := make([]dto.UserStatDTO, 0, len(summary.UserStats))
	if err := copier.Copy(&userStats, &summary.UserStats); err != nil {
		return nil, fmt.Errorf("error preparing statistics response: %w", err)
	}
	if userStats == nil {
		userStats = []dto.UserStatDTO{}
	}
	return &dto.TestStatisticsDTO{
		UserStats:     userStats,
		TotalUsers:    summary.TotalUsers,
		TotalAttempts: summary.TotalAttempts,
	}, nil
}

// MyStatistics summarises the caller's own results per test.
func (s *statisticsService) MyStatistics(ctx context.Context, viewer auth.Identity) ([]dto.MyStatDTO, error) {
	rows, err := s.resultRepo.RowsForUser(ctx, viewer.UserID)
	if err != nil {
		log.Error().Err(err).Uint("userID", viewer.UserID).Msg("MyStatistics: failed to load results")
		return nil, err
	}
	stats := statistics.AggregateByTest(rows)

	out := make([]dto.MyStatDTO, 0, len(stats))
	if err := copier.Copy(&out, &stats); err != nil {
		return nil, fmt.Errorf("error preparing statistics response: %w", err)
	}
	if out == nil {
		out = []dto.MyStatDTO{}
	}
	return out, nil
}
