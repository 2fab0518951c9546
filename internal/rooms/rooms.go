package rooms

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Room documents are maintained by an external catalog. This service only
// reads them and passes every field through untouched.

type Service struct {
	collection *mongo.Collection
}

func New(collection *mongo.Collection) *Service {
	return &Service{collection: collection}
}

// bookingViewProjection limits a room lookup to the fields the booking entry
// page renders.
var bookingViewProjection = bson.D{
	{Key: "name", Value: 1},
	{Key: "price", Value: 1},
	{Key: "img", Value: 1},
	{Key: "id", Value: 1},
}

// List returns every room in store iteration order. An empty collection
// yields an empty slice, never nil.
func (s *Service) List(ctx context.Context, logger *zerolog.Logger) ([]bson.M, error) {
	cursor, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	result := []bson.M{}
	if err = cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("label", "rooms").
		Int("count", len(result)).
		Msg("listed rooms")

	return result, nil
}

// Get returns the full room document, or nil without error when no document
// matches.
func (s *Service) Get(ctx context.Context, id primitive.ObjectID, logger *zerolog.Logger) (bson.M, error) {
	var result bson.M

	err := s.collection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&result)
	if err == mongo.ErrNoDocuments {
		logger.Debug().
			Str("label", "rooms").
			Str("id", id.Hex()).
			Msg("room not found")

		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return result, nil
}

// BookingView is Get with the booking page projection applied.
func (s *Service) BookingView(ctx context.Context, id primitive.ObjectID, logger *zerolog.Logger) (bson.M, error) {
	var result bson.M

	opts := options.FindOne().SetProjection(bookingViewProjection)

	err := s.collection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}, opts).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return result, nil
}
