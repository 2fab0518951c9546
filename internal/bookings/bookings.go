package bookings

import (
	"context"

	"bitbucket.org/crgw/stayzen-backend/internal/schema"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Service struct {
	collection *mongo.Collection
}

func New(collection *mongo.Collection) *Service {
	return &Service{collection: collection}
}

// List returns bookings for one user when email is non-empty, otherwise all
// bookings. An empty result is an empty slice, never nil.
func (s *Service) List(ctx context.Context, email string, logger *zerolog.Logger) ([]bson.M, error) {
	filter := bson.D{}
	if email != "" {
		filter = bson.D{{Key: "email", Value: email}}
	}

	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := []bson.M{}
	if err = cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("label", "bookings").
		Str("email", email).
		Int("count", len(result)).
		Msg("listed bookings")

	return result, nil
}

// Get returns one booking, or nil without error when no document matches.
func (s *Service) Get(ctx context.Context, id primitive.ObjectID, logger *zerolog.Logger) (bson.M, error) {
	var result bson.M

	err := s.collection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Create inserts the booking document as-is. No field validation happens
// here; the collection accepts whatever the client sent.
func (s *Service) Create(ctx context.Context, booking bson.M, logger *zerolog.Logger) (*schema.InsertResult, error) {
	result, err := s.collection.InsertOne(ctx, booking)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("label", "bookings").
		Interface("insertedId", result.InsertedID).
		Msg("created booking")

	insert := schema.NewInsertResult(result)

	return &insert, nil
}

// Update replaces the writable field set on the matching booking. A missing
// document gets created instead (upsert), matching the contract the frontend
// relies on.
func (s *Service) Update(ctx context.Context, id primitive.ObjectID, fields schema.BookingUpdate, logger *zerolog.Logger) (*schema.UpdateResult, error) {
	filter := bson.D{{Key: "_id", Value: id}}

	change := bson.D{{Key: "$set", Value: bson.D{
		{Key: "room_name", Value: fields.RoomName},
		{Key: "price", Value: fields.Price},
		{Key: "img", Value: fields.Img},
		{Key: "cheakIn", Value: fields.CheckIn},
		{Key: "cheakOut", Value: fields.CheckOut},
		{Key: "number", Value: fields.Number},
	}}}

	result, err := s.collection.UpdateOne(ctx, filter, change, options.Update().SetUpsert(true))
	if err != nil {
		return nil, err
	}

	update := schema.NewUpdateResult(result)

	return &update, nil
}

// Delete removes the matching booking. Deleting an id that is already gone
// reports a zero count, not an error.
func (s *Service) Delete(ctx context.Context, id primitive.ObjectID, logger *zerolog.Logger) (*schema.DeleteResult, error) {
	result, err := s.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("label", "bookings").
		Str("id", id.Hex()).
		Int64("deleted", result.DeletedCount).
		Msg("deleted booking")

	deletion := schema.NewDeleteResult(result)

	return &deletion, nil
}
