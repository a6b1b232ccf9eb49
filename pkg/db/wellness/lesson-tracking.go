package wellness

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	wellnessTypes "github.com/kenzieke/sleepwell-backend/pkg/types/wellness"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (dbService *WellnessDBService) CreateDefaultIndexesForLessonTrackingCollection(instanceID string) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionLessonTracking(instanceID).Indexes().CreateMany(
		ctx, []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "userID", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
	)
	if err != nil {
		slog.Error("failed to create indexes for lessonTracking collection", slog.String("instanceID", instanceID), slog.String("error", err.Error()))
	}
}

func (dbService *WellnessDBService) GetLessonProgress(instanceID string, userID string) (wellnessTypes.LessonProgress, error) {
	var progress wellnessTypes.LessonProgress

	ctx, cancel := dbService.getContext()
	defer cancel()

	err := dbService.collectionLessonTracking(instanceID).FindOne(ctx, bson.M{"userID": userID}).Decode(&progress)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return progress, wellnessTypes.ErrNotFound
	}
	return progress, err
}

// MarkLessonComplete sets the completion flag for one week's lesson.
// Completion is monotonic: flags are only ever set, never cleared, and the
// document is created on first use.
func (dbService *WellnessDBService) MarkLessonComplete(instanceID string, userID string, week int) error {
	if week < 1 || week > wellnessTypes.PROGRAM_LENGTH_WEEKS {
		return fmt.Errorf("week %d outside program range", week)
	}

	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionLessonTracking(instanceID).UpdateOne(ctx,
		bson.M{"userID": userID},
		bson.M{"$set": bson.M{
			fmt.Sprintf("completed.%d", week): true,
			"updatedAt":                       time.Now().Unix(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}
