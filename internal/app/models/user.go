package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Email          string             `bson:"email"`
	Password       string             `bson:"password"`
	Role           string             `bson:"role"`
	Specialization string             `bson:"specialization,omitempty"`
	TimeModel      `bson:",inline"`
}

func (u *User) HasRole(role string) bool {
	return u != nil && u.Role == role
}
