// Package statistics folds stored test results into summary views.
//
// Every metric starts from the per-result percentage score/total*100. Best
// and worst compare the rounded per-result percentages; the average is the
// rounded mean of the unrounded per-result percentages.
package statistics

import (
	"math/big"
	"sort"
	"time"

	"github.com/GanderM1/testforgenew/internal/grading"
)

// DefaultGroupName is reported for users that belong to no group.
const DefaultGroupName = "Не указана"

// AttemptRow is one stored result joined with the user, group and test it
// belongs to.
type AttemptRow struct {
	UserID         uint
	Username       string
	Group          string
	TestID         uint
	TestTitle      string
	Author         string
	Score          int
	TotalQuestions int
	CompletedAt    time.Time
}

// UserStat summarises one user's results on one test.
type UserStat struct {
	UserID       uint
	Username     string
	Group        string
	Attempts     int
	BestScore    int
	WorstScore   int
	AverageScore int
}

// TestSummary is the per-test view for teachers.
type TestSummary struct {
	UserStats     []UserStat
	TotalUsers    int
	TotalAttempts int
}

// TestStat summarises one learner's results on one test.
type TestStat struct {
	TestID       uint
	TestTitle    string
	Author       string
	Attempts     int
	BestScore    int
	WorstScore   int
	AverageScore int
	LastAttempt  time.Time
}

// accumulator folds the percentages of one group of rows.
type accumulator struct {
	attempts int
	best     int
	worst    int
	sum      *big.Rat
}

func newAccumulator() *accumulator {
	return &accumulator{sum: new(big.Rat)}
}

func (a *accumulator) add(score, total int) {
	pct := grading.Percentage(score, total)
	if a.attempts == 0 || pct > a.best {
		a.best = pct
	}
	if a.attempts == 0 || pct < a.worst {
		a.worst = pct
	}
	if total > 0 {
		a.sum.Add(a.sum, big.NewRat(int64(score)*100, int64(total)))
	}
	a.attempts++
}

// average rounds the mean half up using exact rational arithmetic.
func (a *accumulator) average() int {
	if a.attempts == 0 {
		return 0
	}
	mean := new(big.Rat).Quo(a.sum, big.NewRat(int64(a.attempts), 1))
	// floor(mean + 1/2) for a non-negative mean
	shifted := new(big.Rat).Add(mean, big.NewRat(1, 2))
	q := new(big.Int).Quo(shifted.Num(), shifted.Denom())
	return int(q.Int64())
}

// AggregateByUser groups the results of a single test by user. An empty input
// yields an empty, non-nil list and zero totals.
func AggregateByUser(rows []AttemptRow) TestSummary {
	type group struct {
		stat UserStat
		acc  *accumulator
	}
	groups := make(map[uint]*group)
	order := make([]*group, 0)

	for _, r := range rows {
		g, ok := groups[r.UserID]
		if !ok {
			g = &group{
				stat: UserStat{UserID: r.UserID, Username: r.Username, Group: r.Group},
				acc:  newAccumulator(),
			}
			groups[r.UserID] = g
			order = append(order, g)
		}
		g.acc.add(r.Score, r.TotalQuestions)
	}

	// Users without a group come first, then by group name and username.
	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i].stat, order[j].stat
		if a.Group != b.Group {
			return a.Group < b.Group
		}
		if a.Username != b.Username {
			return a.Username < b.Username
		}
		return a.UserID < b.UserID
	})

	stats := make([]UserStat, 0, len(order))
	for _, g := range order {
		g.stat.Attempts = g.acc.attempts
		g.stat.BestScore = g.acc.best
		g.stat.WorstScore = g.acc.worst
		g.stat.AverageScore = g.acc.average()
		if g.stat.Group == "" {
			g.stat.Group = DefaultGroupName
		}
		stats = append(stats, g.stat)
	}

	return TestSummary{
		UserStats:     stats,
		TotalUsers:    len(stats),
		TotalAttempts: len(rows),
	}
}

// AggregateByTest groups the results of a single learner by test, most
// recently attempted test first.
func AggregateByTest(rows []AttemptRow) []TestStat {
	type group struct {
		stat TestStat
		acc  *accumulator
	}
	groups := make(map[uint]*group)
	order := make([]uint, 0)

	for _, r := range rows {
		g, ok := groups[r.TestID]
		if !ok {
			g = &group{
				stat: TestStat{TestID: r.TestID, TestTitle: r.TestTitle, Author: r.Author},
				acc:  newAccumulator(),
			}
			groups[r.TestID] = g
			order = append(order, r.TestID)
		}
		g.acc.add(r.Score, r.TotalQuestions)
		if r.CompletedAt.After(g.stat.LastAttempt) {
			g.stat.LastAttempt = r.CompletedAt
		}
	}

	stats := make([]TestStat, 0, len(order))
	for _, id := range order {
		g := groups[id]
		g.stat.Attempts = g.acc.attempts
		g.stat.BestScore = g.acc.best
		g.stat.WorstScore = g.acc.worst
		g.stat.AverageScore = g.acc.average()
		stats = append(stats, g.stat)
	}
	sort.SliceStable(stats, func(i, j int) bool {
		if !stats[i].LastAttempt.Equal(stats[j].LastAttempt) {
			return stats[i].LastAttempt.After(stats[j].LastAttempt)
		}
		if stats[i].TestTitle != stats[j].TestTitle {
			return stats[i].TestTitle < stats[j].TestTitle
		}
		return stats[i].TestID < stats[j].TestID
	})
	return stats
}
