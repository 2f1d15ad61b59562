package background

import (
	"context"
	"log"
	"time"

	"hrhub/internal/services"

	"github.com/go-co-op/gocron/v2"
)

// JobScheduler runs the recurring background jobs.
type JobScheduler struct {
	scheduler     gocron.Scheduler
	attendanceSvc services.AttendanceService
}

func NewJobScheduler(attendanceSvc services.AttendanceService) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{
		scheduler:     scheduler,
		attendanceSvc: attendanceSvc,
	}

	if err := js.registerJobs(); err != nil {
		return nil, err
	}

	return js, nil
}

func (js *JobScheduler) Start() {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
}

func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs() error {
	// Absentee sweep shortly after midnight, marking employees with no
	// attendance record for the previous day as absent.
	_, err := js.scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 15, 0))),
		gocron.NewTask(js.sweepAbsentees),
		gocron.WithName("attendance-absentee-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	return err
}

func (js *JobScheduler) sweepAbsentees() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	if err := js.attendanceSvc.SweepAbsentees(ctx, yesterday); err != nil {
		log.Printf("ERROR: absentee sweep failed: %v", err)
	}
}
