package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog is a single blog entry owned by a user.
// Collection: blogs
type Blog struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title  string             `bson:"title" json:"title"`
	Author string             `bson:"author,omitempty" json:"author,omitempty"`
	URL    string             `bson:"url,omitempty" json:"url,omitempty"`
	Likes  int                `bson:"likes" json:"likes"`
	UserID primitive.ObjectID `bson:"user,omitempty" json:"user,omitempty"`
}

// BlogWithOwner is the read-side projection of a blog joined with its owner.
// Owner shadows the embedded UserID under the "user" key, so listings carry
// the resolved owner object instead of the raw reference.
type BlogWithOwner struct {
	Blog  `bson:",inline"`
	Owner *UserRef `bson:"owner,omitempty" json:"user,omitempty"`
}
