package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/edudesk/school-admin-api/internal/models"
)

// MongoStudentRepository stores students in the "students" collection.
type MongoStudentRepository struct {
	coll *mongo.Collection
}

func NewMongoStudentRepository(db *mongo.Database) *MongoStudentRepository {
	return &MongoStudentRepository{coll: db.Collection("students")}
}

func (r *MongoStudentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.ID.IsZero() {
		student.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, student)
	return err
}

func (r *MongoStudentRepository) List(ctx context.Context) ([]models.Student, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var students []models.Student
	if err := cursor.All(ctx, &students); err != nil {
		return nil, err
	}
	if students == nil {
		students = make([]models.Student, 0)
	}
	return students, nil
}

// Replace swaps the full document, keeping the _id.
func (r *MongoStudentRepository) Replace(ctx context.Context, id primitive.ObjectID, student *models.Student) error {
	student.ID = id
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id}, student)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoStudentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
