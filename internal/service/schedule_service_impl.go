package service

import (
	"context"
	"time"

	"github.com/menttor/menttor-cli/internal/domain"
	"github.com/menttor/menttor-cli/internal/schedule"
)

type scheduleService struct {
	roadmaps RoadmapService
	obs      UseCaseObserver
}

// NewScheduleService creates the schedule builder service on top of the
// roadmap library.
func NewScheduleService(roadmaps RoadmapService, observers ...UseCaseObserver) ScheduleService {
	return &scheduleService{
		roadmaps: roadmaps,
		obs:      useCaseObserverOrNoop(observers),
	}
}

func (s *scheduleService) BuildSchedule(ctx context.Context, ref string, start time.Time) (r *domain.Roadmap, entries []domain.ScheduleEntry, err error) {
	began := time.Now()
	defer func() {
		observe(ctx, s.obs, "schedule_build", began, err, map[string]any{
			"ref":     ref,
			"entries": len(entries),
		})
	}()

	r, err = s.roadmaps.Get(ctx, ref)
	if err != nil {
		return nil, nil, err
	}
	return r, schedule.Build(r, start), nil
}
