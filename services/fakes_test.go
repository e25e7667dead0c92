package services_test

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bloglist/models"
	"bloglist/repositories"
)

// fakeDB backs the in-memory store fakes. Blogs keep insertion order so
// listings are deterministic.
type fakeDB struct {
	users []models.User
	blogs []models.Blog

	appendErr error
}

func (d *fakeDB) addUser(u models.User) models.User {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if u.Blogs == nil {
		u.Blogs = []primitive.ObjectID{}
	}
	d.users = append(d.users, u)
	return u
}

func (d *fakeDB) addBlog(b models.Blog) models.Blog {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	d.blogs = append(d.blogs, b)
	return b
}

func (d *fakeDB) userByID(id primitive.ObjectID) (*models.User, bool) {
	for i := range d.users {
		if d.users[i].ID == id {
			return &d.users[i], true
		}
	}
	return nil, false
}

type fakeBlogStore struct {
	db *fakeDB
}

func (s *fakeBlogStore) ListWithOwners(ctx context.Context) ([]models.BlogWithOwner, error) {
	out := make([]models.BlogWithOwner, 0, len(s.db.blogs))
	for _, b := range s.db.blogs {
		joined := models.BlogWithOwner{Blog: b}
		if owner, ok := s.db.userByID(b.UserID); ok {
			joined.Owner = &models.UserRef{ID: owner.ID, Username: owner.Username, Name: owner.Name}
		}
		out = append(out, joined)
	}
	return out, nil
}

func (s *fakeBlogStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	for _, b := range s.db.blogs {
		if b.ID == id {
			found := b
			return &found, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *fakeBlogStore) Insert(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	created := s.db.addBlog(*b)
	return &created, nil
}

func (s *fakeBlogStore) Replace(ctx context.Context, id primitive.ObjectID, b models.Blog) (*models.Blog, error) {
	for i := range s.db.blogs {
		if s.db.blogs[i].ID == id {
			s.db.blogs[i].Title = b.Title
			s.db.blogs[i].Author = b.Author
			s.db.blogs[i].URL = b.URL
			s.db.blogs[i].Likes = b.Likes
			updated := s.db.blogs[i]
			return &updated, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *fakeBlogStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i := range s.db.blogs {
		if s.db.blogs[i].ID == id {
			s.db.blogs = append(s.db.blogs[:i], s.db.blogs[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeUserStore struct {
	db *fakeDB
}

func (s *fakeUserStore) List(ctx context.Context) ([]models.User, error) {
	return append([]models.User{}, s.db.users...), nil
}

func (s *fakeUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if u, ok := s.db.userByID(id); ok {
		found := *u
		return &found, nil
	}
	return nil, repositories.ErrNotFound
}

func (s *fakeUserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range s.db.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *fakeUserStore) Insert(ctx context.Context, u *models.User) (*models.User, error) {
	for _, existing := range s.db.users {
		if existing.Username == u.Username {
			return nil, repositories.ErrDuplicateUsername
		}
	}
	created := s.db.addUser(*u)
	return &created, nil
}

func (s *fakeUserStore) AppendBlog(ctx context.Context, userID, blogID primitive.ObjectID) (*models.User, error) {
	if s.db.appendErr != nil {
		return nil, s.db.appendErr
	}
	u, ok := s.db.userByID(userID)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	u.Blogs = append(u.Blogs, blogID)
	updated := *u
	return &updated, nil
}
