package schema

import "go.mongodb.org/mongo-driver/mongo"

// Acknowledgement bodies mirror the shapes the node driver used to return,
// which is what the frontend still consumes.

type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

func NewInsertResult(result *mongo.InsertOneResult) InsertResult {
	return InsertResult{
		Acknowledged: true,
		InsertedID:   result.InsertedID,
	}
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

func NewDeleteResult(result *mongo.DeleteResult) DeleteResult {
	return DeleteResult{
		Acknowledged: true,
		DeletedCount: result.DeletedCount,
	}
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId,omitempty"`
}

func NewUpdateResult(result *mongo.UpdateResult) UpdateResult {
	return UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedCount: result.UpsertedCount,
		UpsertedID:    result.UpsertedID,
	}
}
