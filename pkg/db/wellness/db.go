package wellness

import (
	"context"
	"log/slog"
	"time"

	"github.com/kenzieke/sleepwell-backend/pkg/db"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collection names
const (
	COLLECTION_NAME_USERS           = "users"
	COLLECTION_NAME_SCORES          = "scores"
	COLLECTION_NAME_HEALTH_DATA     = "healthData"
	COLLECTION_NAME_SLEEP_DATA      = "sleepData"
	COLLECTION_NAME_LESSON_TRACKING = "lessonTracking"
)

type WellnessDBService struct {
	DBClient        *mongo.Client
	timeout         int
	noCursorTimeout bool
	DBNamePrefix    string
	InstanceIDs     []string
}

func NewWellnessDBService(configs db.DBConfig) (*WellnessDBService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	defer cancel()

	dbClient, err := mongo.Connect(ctx,
		options.Client().ApplyURI(configs.URI),
		options.Client().SetMaxConnIdleTime(time.Duration(configs.IdleConnTimeout)*time.Second),
		options.Client().SetMaxPoolSize(configs.MaxPoolSize),
	)

	if err != nil {
		return nil, err
	}

	ctx, conCancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	err = dbClient.Ping(ctx, nil)
	defer conCancel()

	if err != nil {
		return nil, err
	}

	wDBSc := &WellnessDBService{
		DBClient:        dbClient,
		timeout:         configs.Timeout,
		noCursorTimeout: configs.NoCursorTimeout,
		DBNamePrefix:    configs.DBNamePrefix,
		InstanceIDs:     configs.InstanceIDs,
	}

	if configs.RunIndexCreation {
		wDBSc.CreateDefaultIndexes()
	}
	return wDBSc, nil
}

func (dbService *WellnessDBService) getDBName(instanceID string) string {
	return dbService.DBNamePrefix + instanceID + "_wellness"
}

func (dbService *WellnessDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *WellnessDBService) collectionUsers(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_USERS)
}

func (dbService *WellnessDBService) collectionScores(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_SCORES)
}

func (dbService *WellnessDBService) collectionHealthData(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_HEALTH_DATA)
}

func (dbService *WellnessDBService) collectionSleepData(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_SLEEP_DATA)
}

func (dbService *WellnessDBService) collectionLessonTracking(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_LESSON_TRACKING)
}

func (dbService *WellnessDBService) CreateDefaultIndexes() {
	for _, instanceID := range dbService.InstanceIDs {
		dbService.CreateDefaultIndexesForUsersCollection(instanceID)
		dbService.CreateDefaultIndexesForScoresCollection(instanceID)
		dbService.CreateDefaultIndexesForHealthDataCollection(instanceID)
		dbService.CreateDefaultIndexesForSleepDataCollection(instanceID)
		dbService.CreateDefaultIndexesForLessonTrackingCollection(instanceID)
	}
}

// DropIndexes removes all non-_id indexes; with CreateDefaultIndexes this
// supports rebuilding indexes after definition changes.
func (dbService *WellnessDBService) DropIndexes() {
	for _, instanceID := range dbService.InstanceIDs {
		database := dbService.DBClient.Database(dbService.getDBName(instanceID))
		for _, collectionName := range []string{
			COLLECTION_NAME_USERS,
			COLLECTION_NAME_SCORES,
			COLLECTION_NAME_HEALTH_DATA,
			COLLECTION_NAME_SLEEP_DATA,
			COLLECTION_NAME_LESSON_TRACKING,
		} {
			dbService.dropCollectionIndexes(database.Collection(collectionName), instanceID)
		}
	}
}

func (dbService *WellnessDBService) dropCollectionIndexes(collection *mongo.Collection, instanceID string) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	indexes, err := db.ListCollectionIndexes(ctx, collection)
	if err != nil {
		slog.Error("failed to list indexes", slog.String("collection", collection.Name()), slog.String("instanceID", instanceID), slog.String("error", err.Error()))
		return
	}

	for _, index := range indexes {
		name, ok := index["name"].(string)
		if !ok || name == "_id_" {
			continue
		}
		if _, err := collection.Indexes().DropOne(ctx, name); err != nil {
			slog.Error("failed to drop index", slog.String("collection", collection.Name()), slog.String("index", name), slog.String("error", err.Error()))
		}
	}
}
