package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bloglist/models"
)

// BlogStore is the blog persistence surface the services depend on.
// Implemented by repositories.BlogRepository.
type BlogStore interface {
	ListWithOwners(ctx context.Context) ([]models.BlogWithOwner, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	Insert(ctx context.Context, b *models.Blog) (*models.Blog, error)
	Replace(ctx context.Context, id primitive.ObjectID, b models.Blog) (*models.Blog, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// UserStore is the user persistence surface the services depend on.
// Implemented by repositories.UserRepository.
type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Insert(ctx context.Context, u *models.User) (*models.User, error)
	AppendBlog(ctx context.Context, userID, blogID primitive.ObjectID) (*models.User, error)
}

// TokenVerifier checks a bearer token and returns the user id it is bound to.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// TokenIssuer signs a token bound to a user identity.
type TokenIssuer interface {
	Sign(userID, username string) (string, error)
}
