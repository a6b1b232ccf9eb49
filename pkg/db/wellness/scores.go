package wellness

import (
	"errors"
	"log/slog"

	wellnessTypes "github.com/kenzieke/sleepwell-backend/pkg/types/wellness"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (dbService *WellnessDBService) CreateDefaultIndexesForScoresCollection(instanceID string) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionScores(instanceID).Indexes().CreateMany(
		ctx, []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "userID", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
	)
	if err != nil {
		slog.Error("failed to create indexes for scores collection", slog.String("instanceID", instanceID), slog.String("error", err.Error()))
	}
}

// SaveScoreResult writes the assessment score document for a user. One
// document per user; a re-submit replaces it wholesale.
func (dbService *WellnessDBService) SaveScoreResult(instanceID string, result wellnessTypes.ScoreResult) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	result.ID = primitive.NilObjectID
	_, err := dbService.collectionScores(instanceID).ReplaceOne(ctx,
		bson.M{"userID": result.UserID},
		result,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (dbService *WellnessDBService) GetScoreResult(instanceID string, userID string) (wellnessTypes.ScoreResult, error) {
	var result wellnessTypes.ScoreResult

	ctx, cancel := dbService.getContext()
	defer cancel()

	err := dbService.collectionScores(instanceID).FindOne(ctx, bson.M{"userID": userID}).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return result, wellnessTypes.ErrNotFound
	}
	return result, err
}
