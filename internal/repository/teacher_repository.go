package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/edudesk/school-admin-api/internal/models"
)

// MongoTeacherRepository stores teachers in the "teachers" collection.
type MongoTeacherRepository struct {
	coll *mongo.Collection
}

func NewMongoTeacherRepository(db *mongo.Database) *MongoTeacherRepository {
	return &MongoTeacherRepository{coll: db.Collection("teachers")}
}

func (r *MongoTeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	if teacher.ID.IsZero() {
		teacher.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, teacher)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (r *MongoTeacherRepository) List(ctx context.Context) ([]models.Teacher, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var teachers []models.Teacher
	if err := cursor.All(ctx, &teachers); err != nil {
		return nil, err
	}
	if teachers == nil {
		teachers = make([]models.Teacher, 0)
	}
	return teachers, nil
}

func (r *MongoTeacherRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&teacher)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *MongoTeacherRepository) FindByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&teacher)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

// Replace swaps the full document, keeping the _id.
func (r *MongoTeacherRepository) Replace(ctx context.Context, id primitive.ObjectID, teacher *models.Teacher) error {
	teacher.ID = id
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id}, teacher)
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

func (r *MongoTeacherRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
