package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/edudesk/school-admin-api/internal/models"
)

// caseInsensitive matches the collation on the unique name index, so lookups
// and the constraint agree on what counts as a duplicate.
var caseInsensitive = &options.Collation{Locale: "en", Strength: 2}

// MongoCourseRepository stores courses in the "courses" collection.
type MongoCourseRepository struct {
	coll *mongo.Collection
}

func NewMongoCourseRepository(db *mongo.Database) *MongoCourseRepository {
	return &MongoCourseRepository{coll: db.Collection("courses")}
}

func (r *MongoCourseRepository) Create(ctx context.Context, course *models.Course) error {
	if course.ID.IsZero() {
		course.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, course)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (r *MongoCourseRepository) List(ctx context.Context) ([]models.Course, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	if courses == nil {
		courses = make([]models.Course, 0)
	}
	return courses, nil
}

func (r *MongoCourseRepository) FindByName(ctx context.Context, name string) (*models.Course, error) {
	findOptions := options.FindOne().SetCollation(caseInsensitive)
	var course models.Course
	err := r.coll.FindOne(ctx, bson.M{"name": name}, findOptions).Decode(&course)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// Replace swaps the full document, keeping the _id.
func (r *MongoCourseRepository) Replace(ctx context.Context, id primitive.ObjectID, course *models.Course) error {
	course.ID = id
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id}, course)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoCourseRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
