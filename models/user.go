package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered author account.
// Collection: users
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Name     string             `bson:"name" json:"name"`

	// PasswordHash is the bcrypt digest of the password. Never serialized
	// outward.
	PasswordHash string `bson:"password_hash" json:"-"`

	// Blogs holds the ids of the blogs this user owns, appended on every
	// successful authorized create.
	Blogs []primitive.ObjectID `bson:"blogs" json:"blogs"`
}

// UserRef is the subset of user fields embedded in blog listings.
type UserRef struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Username string             `bson:"username" json:"username"`
	Name     string             `bson:"name" json:"name"`
}
