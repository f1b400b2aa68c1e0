package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Student statuses.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Student carries course names as plain strings copied at enrollment time.
// There is no foreign key into the courses collection: renaming or deleting
// a course leaves enrolled students pointing at the old name.
type Student struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name       string             `bson:"Name" json:"Name"`
	Department string             `bson:"Department" json:"Department"`
	Grade      string             `bson:"grade" json:"grade"`     // Normalized to uppercase, e.g. "A", "B+"
	Courses    []string           `bson:"courses" json:"courses"` // At most 3 entries
	Status     string             `bson:"status" json:"status"`   // "Active" or "Inactive"
}
