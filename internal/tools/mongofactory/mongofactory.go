package mongofactory

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Both collections live in one database. If they ever get split across
// deployments, introduce a dedicated factory method per collection.

type Factory struct {
	client   *mongo.Client
	database string
}

func New() *Factory {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = fmt.Sprintf(
			"mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASS"),
			os.Getenv("DB_HOST"),
		)
	}

	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetConnectTimeout(4 * time.Second).
		SetTimeout(10 * time.Second)

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		panic(err)
	}

	database := os.Getenv("DB_NAME")
	if database == "" {
		database = "stayZen"
	}

	return &Factory{
		client:   client,
		database: database,
	}
}

func (f *Factory) Rooms() *mongo.Collection {
	return f.client.Database(f.database).Collection("rooms")
}

func (f *Factory) Bookings() *mongo.Collection {
	return f.client.Database(f.database).Collection("bookings")
}

func (f *Factory) Ping(ctx context.Context) error {
	return f.client.Ping(ctx, readpref.Primary())
}

func (f *Factory) Disconnect(ctx context.Context) error {
	return f.client.Disconnect(ctx)
}
