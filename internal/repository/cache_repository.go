package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/hireloop/interview-api/internal/dto"
	"github.com/hireloop/interview-api/pkg/cache"
	apperrors "github.com/hireloop/interview-api/pkg/errors"
)

// CacheRepository stores computed schedule reports in Redis.
type CacheRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

// NewCacheRepository creates a cache repository. A nil cache disables it.
func NewCacheRepository(c *cache.Cache, ttl time.Duration) *CacheRepository {
	return &CacheRepository{cache: c, ttl: ttl}
}

func reportKey(jobID int64) string {
	return fmt.Sprintf("report:job:%d", jobID)
}

// GetReport fetches a cached report. Returns ErrCacheMiss when absent or
// caching is disabled.
func (r *CacheRepository) GetReport(ctx context.Context, jobID int64) (*dto.ScheduleReport, error) {
	if r.cache == nil {
		return nil, apperrors.ErrCacheMiss
	}
	var report dto.ScheduleReport
	if err := r.cache.GetJSON(ctx, reportKey(jobID), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// SetReport stores a report with the configured TTL.
func (r *CacheRepository) SetReport(ctx context.Context, jobID int64, report *dto.ScheduleReport) error {
	if r.cache == nil {
		return nil
	}
	return r.cache.SetJSON(ctx, reportKey(jobID), report, r.ttl)
}

// InvalidateReport drops the cached report for a job.
func (r *CacheRepository) InvalidateReport(ctx context.Context, jobID int64) error {
	if r.cache == nil {
		return nil
	}
	return r.cache.Delete(ctx, reportKey(jobID))
}
