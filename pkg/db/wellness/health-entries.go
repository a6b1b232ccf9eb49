package wellness

import (
	"log/slog"

	wellnessTypes "github.com/kenzieke/sleepwell-backend/pkg/types/wellness"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (dbService *WellnessDBService) CreateDefaultIndexesForHealthDataCollection(instanceID string) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionHealthData(instanceID).Indexes().CreateMany(
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
		slog.Error("failed to create indexes for healthData collection", slog.String("instanceID", instanceID), slog.String("error", err.Error()))
	}
}

// UpsertHealthEntry writes the daily tracker entry for the entry's user and
// date, replacing any previous entry for that day.
func (dbService *WellnessDBService) UpsertHealthEntry(instanceID string, entry wellnessTypes.DailyHealthEntry) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	entry.ID = primitive.NilObjectID
	_, err := dbService.collectionHealthData(instanceID).ReplaceOne(ctx,
		bson.M{"userID": entry.UserID, "date": entry.Date},
		entry,
		options.Replace().SetUpsert(true),
	)
	return err
}

// FindHealthEntries returns the user's daily entries with date inside
// [startDate, endDate], oldest first. Dates are ISO strings, so the range
// match is a plain lexical comparison.
func (dbService *WellnessDBService) FindHealthEntries(instanceID string, userID string, startDate string, endDate string) ([]wellnessTypes.DailyHealthEntry, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"userID": userID,
		"date":   bson.M{"$gte": startDate, "$lte": endDate},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := dbService.collectionHealthData(instanceID).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []wellnessTypes.DailyHealthEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetHealthEntriesHistory returns a paginated page of the user's tracker
// history, newest first.
func (dbService *WellnessDBService) GetHealthEntriesHistory(instanceID string, userID string, page int64, limit int64) (entries []wellnessTypes.DailyHealthEntry, paginationInfo *PaginationInfos, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"userID": userID}

	count, err := dbService.collectionHealthData(instanceID).CountDocuments(ctx, filter)
	if err != nil {
		return entries, nil, err
	}

	paginationInfo = prepPaginationInfos(
		count,
		page,
		limit,
	)

	skip := (paginationInfo.CurrentPage - 1) * paginationInfo.PageSize

	opts := options.Find()
	opts.SetSort(bson.D{{Key: "date", Value: -1}})
	opts.SetSkip(skip)
	opts.SetLimit(paginationInfo.PageSize)

	cursor, err := dbService.collectionHealthData(instanceID).Find(ctx, filter, opts)
	if err != nil {
		return entries, nil, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &entries)
	return entries, paginationInfo, err
}
