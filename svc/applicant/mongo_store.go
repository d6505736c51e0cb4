package applicant

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ApplicantsCollection is the collection MongoStore writes to.
const ApplicantsCollection = "applicants"

// MongoStore is a Repository backed by one document per subject.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(ApplicantsCollection)}
}

func (s *MongoStore) Upsert(ctx context.Context, app *Application) error {
	rec := app.Record
	rec.Pronouns = nonNil(rec.Pronouns)
	rec.Sexuality = nonNil(rec.Sexuality)

	set := bson.M{
		"record":    rec,
		"status":    app.Status,
		"updatedAt": app.UpdatedAt,
	}
	if app.ResumeURL != "" {
		set["resumeUrl"] = app.ResumeURL
	}

	_, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": app.Subject},
		bson.M{
			"$set":         set,
			"$setOnInsert": bson.M{"createdAt": app.CreatedAt},
		},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert application: %w", err)
	}
	return nil
}

func (s *MongoStore) Get(ctx context.Context, subject string) (*Application, error) {
	var app Application
	if err := s.coll.FindOne(ctx, bson.M{"_id": subject}).Decode(&app); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get application: %w", err)
	}
	return &app, nil
}

var _ Repository = (*MongoStore)(nil)
