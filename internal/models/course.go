package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Course struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"` // Unique across courses, case-insensitively
	Institute string             `bson:"institute" json:"institute"`
	Price     float64            `bson:"price" json:"price"`
}
