package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bloglist/models"
)

type BlogRepository struct {
	col *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{col: db.Collection("blogs")}
}

// ListWithOwners returns all blogs with the owning user's username and name
// resolved. Store natural order, no pagination.
func (r *BlogRepository) ListWithOwners(ctx context.Context) ([]models.BlogWithOwner, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "user",
			"foreignField": "_id",
			"as":           "owner",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$owner",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"owner.password_hash": 0,
			"owner.blogs":         0,
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	blogs := []models.BlogWithOwner{}
	if err := cur.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// FindByID finds a blog by its id.
func (r *BlogRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	var b models.Blog
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// Insert persists a new blog and assigns its id.
func (r *BlogRepository) Insert(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	res, err := r.col.InsertOne(ctx, b)
	if err != nil {
		return nil, err
	}
	b.ID = res.InsertedID.(primitive.ObjectID)
	return b, nil
}

// Replace sets the mutable fields wholesale and returns the updated blog.
// The owning user reference is never touched here.
func (r *BlogRepository) Replace(ctx context.Context, id primitive.ObjectID, b models.Blog) (*models.Blog, error) {
	update := bson.M{"$set": bson.M{
		"title":  b.Title,
		"author": b.Author,
		"url":    b.URL,
		"likes":  b.Likes,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Blog
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

// Delete removes a blog by id. Zero matches is still success, delete is
// idempotent.
func (r *BlogRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
