package wellness

import (
	"log/slog"

	wellnessTypes "github.com/kenzieke/sleepwell-backend/pkg/types/wellness"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (dbService *WellnessDBService) CreateDefaultIndexesForSleepDataCollection(instanceID string) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionSleepData(instanceID).Indexes().CreateMany(
		ctx, []mongo.IndexModel{
			{
				Keys: bson.D{
					{Key: "userID", Value: 1},
					{Key: "date", Value: 1},
				},
				Options: options.Index().SetUnique(true),
			},
		},
	)
	if err != nil {
		slog.Error("failed to create indexes for sleepData collection", slog.String("instanceID", instanceID), slog.String("error", err.Error()))
	}
}

// UpsertSleepEntry writes the nightly sleep log for the entry's user and
// date, replacing any previous entry for that day.
func (dbService *WellnessDBService) UpsertSleepEntry(instanceID string, entry wellnessTypes.SleepEntry) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	entry.ID = primitive.NilObjectID
	_, err := dbService.collectionSleepData(instanceID).ReplaceOne(ctx,
		bson.M{"userID": entry.UserID, "date": entry.Date},
		entry,
		options.Replace().SetUpsert(true),
	)
	return err
}

// FindSleepEntries returns the user's sleep logs with date inside
// [startDate, endDate], oldest first.
func (dbService *WellnessDBService) FindSleepEntries(instanceID string, userID string, startDate string, endDate string) ([]wellnessTypes.SleepEntry, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"userID": userID,
		"date":   bson.M{"$gte": startDate, "$lte": endDate},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := dbService.collectionSleepData(instanceID).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []wellnessTypes.SleepEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
