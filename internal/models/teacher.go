package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Teacher struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"` // Unique across teachers
	Course  string             `bson:"course" json:"course"`
	Charges float64            `bson:"charges" json:"charges"`
}
