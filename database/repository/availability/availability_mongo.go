// File: database/repository/availability/availability_mongo.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mentorly/models"
)

// ReplaceForExpert swaps an expert's entire weekly setup in one call: the
// previous windows are removed and the new set inserted with fresh IDs.
func (r *mongoAvailabilityRepo) ReplaceForExpert(ctx context.Context, expertID string, windows []models.AvailabilityWindow) ([]models.AvailabilityWindow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"expertId": expertID}); err != nil {
		return nil, fmt.Errorf("clearing windows for expert %s: %w", expertID, err)
	}
	if len(windows) == 0 {
		return []models.AvailabilityWindow{}, nil
	}

	docs := make([]interface{}, len(windows))
	out := make([]models.AvailabilityWindow, len(windows))
	for i, w := range windows {
		w.ID = uuid.New().String()
		w.ExpertID = expertID
		docs[i] = w
		out[i] = w
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return nil, fmt.Errorf("inserting windows for expert %s: %w", expertID, err)
	}
	return out, nil
}

func (r *mongoAvailabilityRepo) GetByExpert(ctx context.Context, expertID string) ([]models.AvailabilityWindow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "weekday", Value: 1}, {Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"expertId": expertID}, opts)
	if err != nil {
		return nil, fmt.Errorf("fetching windows for expert %s: %w", expertID, err)
	}
	defer cursor.Close(ctx)

	var windows []models.AvailabilityWindow
	if err := cursor.All(ctx, &windows); err != nil {
		return nil, fmt.Errorf("decoding windows for expert %s: %w", expertID, err)
	}
	return windows, nil
}

// GetActiveByWeekday returns only the windows the engine may generate slots
// from: the given recurring weekday, isActive true. Window order follows the
// stored sort (startTime ascending).
func (r *mongoAvailabilityRepo) GetActiveByWeekday(ctx context.Context, expertID string, weekday int) ([]models.AvailabilityWindow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"expertId": expertID, "weekday": weekday, "isActive": true}
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("fetching weekday %d windows for expert %s: %w", weekday, expertID, err)
	}
	defer cursor.Close(ctx)

	var windows []models.AvailabilityWindow
	if err := cursor.All(ctx, &windows); err != nil {
		return nil, fmt.Errorf("decoding weekday %d windows for expert %s: %w", weekday, expertID, err)
	}
	return windows, nil
}

func (r *mongoAvailabilityRepo) SetActive(ctx context.Context, expertID, windowID string, active bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": windowID, "expertId": expertID}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"isActive": active}})
	if err != nil {
		return fmt.Errorf("updating window %s: %w", windowID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoAvailabilityRepo) DeleteByID(ctx context.Context, expertID, windowID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": windowID, "expertId": expertID})
	if err != nil {
		return fmt.Errorf("deleting window %s: %w", windowID, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
