package services

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"hotel-ops-backend/models"
)

// HousekeepingService marks occupied rooms as needing cleaning on a schedule.
type HousekeepingService struct {
	Rooms *Repository[models.Room]
	cron  *cron.Cron
}

func NewHousekeepingService(db *gorm.DB) *HousekeepingService {
	return &HousekeepingService{Rooms: NewRepository[models.Room](db, "room")}
}

// Start schedules RunTurnDown with a standard five-field cron spec. An empty spec
// disables the job.
func (s *HousekeepingService) Start(spec string) error {
	if spec == "" {
		log.Println("⚠️ housekeeping schedule disabled")
		return nil
	}
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(spec, func() {
		if _, err := s.RunTurnDown(context.Background()); err != nil {
			log.Printf("❌ housekeeping turn-down failed: %v", err)
		}
	}); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("✅ housekeeping scheduler started (%s)", spec)
	return nil
}

// Stop waits for a running job to finish.
func (s *HousekeepingService) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}

// RunTurnDown flags every occupied, in-order room as not clean.
func (s *HousekeepingService) RunTurnDown(ctx context.Context) (UpdateSummary, error) {
	f := NewFilter().
		Eq("isOccupied", "is_occupied", true).
		Eq("isOutOfOrder", "is_out_of_order", false)
	summary, err := s.Rooms.Update(ctx, f, map[string]any{"is_clean": false})
	if err != nil {
		return summary, err
	}
	log.Printf("🧹 turn-down: %d occupied rooms, %d marked for cleaning", summary.Matched, summary.Modified)
	return summary, nil
}
