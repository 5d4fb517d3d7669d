package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/streetdogs/backend/internal/model"
)

// dogDocument is the stored shape of a dog; field names follow the site's JSON.
type dogDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Breed          string             `bson:"breed"`
	Age            float64            `bson:"age"`
	Gender         string             `bson:"gender,omitempty"`
	Size           string             `bson:"size"`
	Color          string             `bson:"color,omitempty"`
	Vaccinated     bool               `bson:"vaccinated"`
	AdoptionStatus string             `bson:"adoptionStatus"`
	Location       string             `bson:"location,omitempty"`
	ImageURL       string             `bson:"imageUrl,omitempty"`
	Description    string             `bson:"description,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt"`
}

func toDogDocument(d *model.Dog) dogDocument {
	return dogDocument{
		Name:           d.Name,
		Breed:          d.Breed,
		Age:            d.Age,
		Gender:         d.Gender,
		Size:           string(d.Size),
		Color:          d.Color,
		Vaccinated:     d.Vaccinated,
		AdoptionStatus: string(d.AdoptionStatus),
		Location:       d.Location,
		ImageURL:       d.ImageURL,
		Description:    d.Description,
		CreatedAt:      d.CreatedAt,
	}
}

func (doc dogDocument) toModel() *model.Dog {
	return &model.Dog{
		ID:             doc.ID.Hex(),
		Name:           doc.Name,
		Breed:          doc.Breed,
		Age:            doc.Age,
		Gender:         doc.Gender,
		Size:           model.Size(doc.Size),
		Color:          doc.Color,
		Vaccinated:     doc.Vaccinated,
		AdoptionStatus: model.AdoptionStatus(doc.AdoptionStatus),
		Location:       doc.Location,
		ImageURL:       doc.ImageURL,
		Description:    doc.Description,
		CreatedAt:      doc.CreatedAt,
	}
}

// MongoDogRepository stores dogs in a MongoDB collection.
type MongoDogRepository struct {
	coll *mongo.Collection
}

func NewMongoDogRepository(coll *mongo.Collection) *MongoDogRepository {
	return &MongoDogRepository{coll: coll}
}

var _ DogRepository = (*MongoDogRepository)(nil)

func (r *MongoDogRepository) Create(ctx context.Context, d *model.Dog) error {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	doc := toDogDocument(d)
	doc.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return err
	}
	d.ID = doc.ID.Hex()
	return nil
}

// List returns every document in natural (insertion) order.
func (r *MongoDogRepository) List(ctx context.Context) ([]*model.Dog, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	var docs []dogDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	dogs := make([]*model.Dog, 0, len(docs))
	for _, doc := range docs {
		dogs = append(dogs, doc.toModel())
	}
	return dogs, nil
}

func (r *MongoDogRepository) InsertMany(ctx context.Context, dogs []*model.Dog) error {
	if len(dogs) == 0 {
		return nil
	}
	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(dogs))
	for _, d := range dogs {
		if d.CreatedAt.IsZero() {
			d.CreatedAt = now
		}
		doc := toDogDocument(d)
		doc.ID = primitive.NewObjectID()
		d.ID = doc.ID.Hex()
		docs = append(docs, doc)
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return err
}

func (r *MongoDogRepository) DeleteAll(ctx context.Context) error {
	_, err := r.coll.DeleteMany(ctx, bson.D{})
	return err
}
