package repository

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultMongoDatabase = "street-dog-service"

	dogsCollection     = "dogs"
	usersCollection    = "users"
	contactsCollection = "contacts"
)

func openMongo(ctx context.Context, uri string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("repository: connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("repository: ping mongo: %w", err)
	}

	db := client.Database(mongoDatabaseName(uri))
	return &Store{
		Dogs:     NewMongoDogRepository(db.Collection(dogsCollection)),
		Users:    NewMongoUserRepository(db.Collection(usersCollection)),
		Contacts: NewMongoContactRepository(db.Collection(contactsCollection)),
		Backend:  "mongo",
		db:       mongoPinger{client},
		close:    client.Disconnect,
	}, nil
}

// mongoDatabaseName takes the database from the URI path, e.g. mongodb://host/shelter.
func mongoDatabaseName(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return defaultMongoDatabase
	}
	if name := strings.Trim(u.Path, "/"); name != "" {
		return name
	}
	return defaultMongoDatabase
}

type mongoPinger struct {
	client *mongo.Client
}

func (p mongoPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}
