package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/streetdogs/backend/internal/model"
)

type contactDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Message   string             `bson:"message"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// MongoContactRepository stores contact form submissions.
type MongoContactRepository struct {
	coll *mongo.Collection
}

func NewMongoContactRepository(coll *mongo.Collection) *MongoContactRepository {
	return &MongoContactRepository{coll: coll}
}

var _ ContactRepository = (*MongoContactRepository)(nil)

func (r *MongoContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	doc := contactDocument{
		ID:        primitive.NewObjectID(),
		Name:      msg.Name,
		Email:     msg.Email,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return err
	}
	msg.ID = doc.ID.Hex()
	return nil
}
