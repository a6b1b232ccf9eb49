package wellness

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WatchUserData opens a change stream over the user's tracker and lesson
// documents and invokes onChange for every write to them. This is the push
// channel behind live progress views: the consumer re-aggregates whenever
// it fires. The returned function unsubscribes; after it returns no further
// onChange calls are made. The stream also ends when ctx is done.
func (dbService *WellnessDBService) WatchUserData(ctx context.Context, instanceID string, userID string, onChange func()) (unsubscribe func(), err error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"ns.coll": bson.M{"$in": []string{
				COLLECTION_NAME_HEALTH_DATA,
				COLLECTION_NAME_SLEEP_DATA,
				COLLECTION_NAME_LESSON_TRACKING,
			}},
			"fullDocument.userID": userID,
		}}},
	}

	streamCtx, cancel := context.WithCancel(ctx)

	stream, err := dbService.DBClient.Database(dbService.getDBName(instanceID)).Watch(
		streamCtx,
		pipeline,
		options.ChangeStream().SetFullDocument(options.UpdateLookup),
	)
	if err != nil {
		cancel()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer stream.Close(context.Background())

		for stream.Next(streamCtx) {
			onChange()
		}
		if err := stream.Err(); err != nil && streamCtx.Err() == nil {
			slog.Warn("change stream ended with error", slog.String("userID", userID), slog.String("error", err.Error()))
		}
	}()

	return func() {
		cancel()
		<-done
	}, nil
}
