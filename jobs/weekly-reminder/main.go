package main

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/kenzieke/sleepwell-backend/pkg/progress"
	wellnessTypes "github.com/kenzieke/sleepwell-backend/pkg/types/wellness"
	umTypes "github.com/kenzieke/sleepwell-backend/pkg/user-management/types"
)

func main() {
	slog.Info("Starting weekly reminder job")

	if conf.ReminderSchedule == "" {
		runReminderScan()
		return
	}

	scheduler := cron.New()
	_, err := scheduler.AddFunc(conf.ReminderSchedule, runReminderScan)
	if err != nil {
		slog.Error("Invalid reminder schedule", slog.String("schedule", conf.ReminderSchedule), slog.String("error", err.Error()))
		panic(err)
	}
	scheduler.Start()

	slog.Info("Reminder scan scheduled", slog.String("schedule", conf.ReminderSchedule))
	select {}
}

func runReminderScan() {
	start := time.Now()

	for _, instanceID := range conf.InstanceIDs {
		slog.Debug("Start scanning for due lessons", slog.String("instanceID", instanceID))

		count := 0
		filter := bson.M{"wellness.completedAssessment": true}

		err := wellnessDBService.FindAndExecuteOnUsers(
			context.Background(),
			instanceID,
			filter,
			nil,
			false,
			func(user umTypes.User, args ...interface{}) error {
				if remindUserIfLessonDue(instanceID, user) {
					count = count + 1
				}
				return nil
			},
		)
		if err != nil {
			slog.Error("Error scanning for due lessons", slog.String("instanceID", instanceID), slog.String("error", err.Error()))
			continue
		}

		slog.Info("Due lesson scan finished", slog.String("instanceID", instanceID), slog.Int("remindersDue", count))
	}

	slog.Info("Weekly reminder job completed", slog.Duration("duration", time.Since(start)))
}

// remindUserIfLessonDue reports whether the user's current program week has
// an uncompleted lesson. Users past the end of the program are skipped.
func remindUserIfLessonDue(instanceID string, user umTypes.User) bool {
	now := time.Now()
	createdAt := time.Unix(user.Timestamps.CreatedAt, 0)

	if progress.ProgramComplete(createdAt, now) {
		return false
	}
	currentWeek := progress.CurrentWeekNumber(createdAt, now)

	lessonProgress, err := wellnessDBService.GetLessonProgress(instanceID, user.ID.Hex())
	if err != nil && !errors.Is(err, wellnessTypes.ErrNotFound) {
		slog.Error("Error fetching lesson progress", slog.String("instanceID", instanceID), slog.String("userID", user.ID.Hex()), slog.String("error", err.Error()))
		return false
	}

	if lessonProgress.IsLessonComplete(currentWeek) {
		return false
	}

	slog.Info("Lesson reminder due",
		slog.String("instanceID", instanceID),
		slog.String("accountID", user.Account.AccountID),
		slog.Int("week", currentWeek),
	)
	return true
}
