package monitor

import (
	"sort"

	"github.com/botwatch-dev/botwatch/internal/typ"
)

// DashboardStats are the aggregates shown on the dashboard page.
type DashboardStats struct {
	TotalBots   int64       `json:"total_bots"`
	ActiveBots  int64       `json:"active_bots"`
	TotalTests  int64       `json:"total_tests"`
	SuccessRate float64     `json:"success_rate"`
	RecentTests []*typ.Test `json:"recent_tests"`
}

// DashboardStats computes bot counts, the test success rate in percent and
// the recentN most recent tests sorted newest first.
func (s *Service) DashboardStats(recentN int) (*DashboardStats, error) {
	bots, err := s.store.ListBots()
	if err != nil {
		return nil, err
	}
	tests, err := s.store.ListTests()
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalBots:  int64(len(bots)),
		TotalTests: int64(len(tests)),
	}
	for _, bot := range bots {
		if bot.Status == typ.BotStatusActive {
			stats.ActiveBots++
		}
	}

	var successful int64
	for _, test := range tests {
		if test.Result == typ.TestResultSuccess {
			successful++
		}
	}
	if stats.TotalTests > 0 {
		stats.SuccessRate = float64(successful) / float64(stats.TotalTests) * 100
	}

	sort.Slice(tests, func(i, j int) bool {
		return tests[i].Date.After(tests[j].Date)
	})
	if recentN > 0 && len(tests) > recentN {
		tests = tests[:recentN]
	}
	stats.RecentTests = tests

	return stats, nil
}
