package wellness

import (
	"context"
	"errors"
	"log/slog"
	"time"

	wellnessTypes "github.com/kenzieke/sleepwell-backend/pkg/types/wellness"
	umTypes "github.com/kenzieke/sleepwell-backend/pkg/user-management/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (dbService *WellnessDBService) CreateDefaultIndexesForUsersCollection(instanceID string) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionUsers(instanceID).Indexes().CreateMany(
		ctx, []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "account.accountID", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys: bson.D{{Key: "timestamps.createdAt", Value: 1}},
			},
		},
	)
	if err != nil {
		slog.Error("failed to create indexes for users collection", slog.String("instanceID", instanceID), slog.String("error", err.Error()))
	}
}

func (dbService *WellnessDBService) CreateUser(instanceID string, user umTypes.User) (umTypes.User, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	res, err := dbService.collectionUsers(instanceID).InsertOne(ctx, user)
	if err != nil {
		return user, err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (dbService *WellnessDBService) GetUser(instanceID string, userID string) (umTypes.User, error) {
	var user umTypes.User

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return user, wellnessTypes.ErrNotFound
	}

	ctx, cancel := dbService.getContext()
	defer cancel()

	err = dbService.collectionUsers(instanceID).FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return user, wellnessTypes.ErrNotFound
	}
	return user, err
}

func (dbService *WellnessDBService) GetUserByAccountID(instanceID string, accountID string) (umTypes.User, error) {
	var user umTypes.User

	ctx, cancel := dbService.getContext()
	defer cancel()

	err := dbService.collectionUsers(instanceID).FindOne(ctx, bson.M{"account.accountID": accountID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return user, wellnessTypes.ErrNotFound
	}
	return user, err
}

func (dbService *WellnessDBService) UpdateLoginTime(instanceID string, userID string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return err
	}

	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err = dbService.collectionUsers(instanceID).UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"timestamps.lastLoginAt": time.Now().Unix()}},
	)
	return err
}

// MarkAssessmentCompleted records the baseline assessment on the user doc.
// The flag is write-once; callers check CompletedAssessment before scoring.
func (dbService *WellnessDBService) MarkAssessmentCompleted(instanceID string, userID string, initialWeightKg float64) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return err
	}

	ctx, cancel := dbService.getContext()
	defer cancel()

	now := time.Now().Unix()
	_, err = dbService.collectionUsers(instanceID).UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"wellness.completedAssessment":   true,
			"wellness.assessmentCompletedAt": now,
			"wellness.initialWeightKg":       initialWeightKg,
			"timestamps.updatedAt":           now,
		}},
	)
	return err
}

func (dbService *WellnessDBService) FindAndExecuteOnUsers(
	ctx context.Context,
	instanceID string,
	filter bson.M,
	sort bson.M,
	returnOnErr bool,
	fn func(user umTypes.User, args ...interface{}) error,
	args ...interface{},
) error {
	opts := options.Find()
	opts.SetSort(sort)

	cursor, err := dbService.collectionUsers(instanceID).Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var user umTypes.User
		if err = cursor.Decode(&user); err != nil {
			return err
		}
		if err = fn(user, args...); err != nil {
			slog.Error("Error executing function on user", slog.String("userID", user.ID.Hex()), slog.String("error", err.Error()))
			if returnOnErr {
				return err
			}
			continue
		}
	}
	return nil
}

func (dbService *WellnessDBService) AddFailedLoginAttempt(instanceID string, userID string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return err
	}

	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err = dbService.collectionUsers(instanceID).UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"account.failedLoginAttempts": time.Now().Unix()}},
	)
	return err
}
