package services

import (
	"testing"

	"github.com/alehson-uz/alehson/database/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type statisticsRepositoryStub struct {
	counts map[models.ApplicationStatus]int64
	err    error
}

func (s *statisticsRepositoryStub) CountApplications() (int64, error) { return 10, s.err }

func (s *statisticsRepositoryStub) CountApplicationsByStatus(status models.ApplicationStatus) (int64, error) {
	return s.counts[status], s.err
}

func (s *statisticsRepositoryStub) CountUsers() (int64, error)         { return 4, s.err }
func (s *statisticsRepositoryStub) CountBlogs() (int64, error)         { return 3, s.err }
func (s *statisticsRepositoryStub) CountCategories() (int64, error)    { return 2, s.err }
func (s *statisticsRepositoryStub) CountSubcategories() (int64, error) { return 5, s.err }

func TestCollect(t *testing.T) {
	t.Run("should aggregate all counters", func(t *testing.T) {
		svc := NewStatisticsService(&statisticsRepositoryStub{counts: map[models.ApplicationStatus]int64{
			models.ApplicationStatusAccepted: 6,
			models.ApplicationStatusDenied:   1,
		}})

		stats, err := svc.Collect()
		assert.NoError(t, err)
		assert.EqualValues(t, 10, stats.TotalApplications)
		assert.EqualValues(t, 6, stats.AcceptedApplications)
		assert.EqualValues(t, 1, stats.DeniedApplications)
		assert.EqualValues(t, 4, stats.TotalUsers)
		assert.EqualValues(t, 3, stats.TotalBlogs)
		assert.EqualValues(t, 2, stats.TotalCategories)
		assert.EqualValues(t, 5, stats.TotalSubcategories)
	})

	t.Run("should surface a failing counter", func(t *testing.T) {
		svc := NewStatisticsService(&statisticsRepositoryStub{err: errors.New("connection refused")})

		_, err := svc.Collect()
		assert.Error(t, err)
	})
}
