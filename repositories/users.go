package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bloglist/models"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

// List returns all users.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID finds a user by its id.
func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByUsername finds a user by its unique username.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Insert persists a new user. Username uniqueness is enforced by the unique
// index, so the duplicate check is atomic against concurrent registrations.
func (r *UserRepository) Insert(ctx context.Context, u *models.User) (*models.User, error) {
	if u.Blogs == nil {
		u.Blogs = []primitive.ObjectID{}
	}
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return u, nil
}

// AppendBlog atomically appends a blog id to the user's blogs array and
// returns the updated user. $push never loses a concurrent append for a
// different blog.
func (r *UserRepository) AppendBlog(ctx context.Context, userID, blogID primitive.ObjectID) (*models.User, error) {
	update := bson.M{"$push": bson.M{"blogs": blogID}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var u models.User
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": userID}, update, opts).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
