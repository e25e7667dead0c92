package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bloglist/logger"
	"bloglist/models"
	"bloglist/repositories"
)

// BlogService orchestrates blog mutations: it verifies the caller's token,
// resolves the owning user, validates the input, persists the blog and keeps
// the owner's blog list in sync.
type BlogService struct {
	blogs  BlogStore
	users  UserStore
	tokens TokenVerifier
	policy Policy
}

func NewBlogService(blogs BlogStore, users UserStore, tokens TokenVerifier, policy Policy) *BlogService {
	return &BlogService{
		blogs:  blogs,
		users:  users,
		tokens: tokens,
		policy: policy,
	}
}

// BlogInput carries the mutable blog fields of a create or update request.
// Likes is a pointer so an omitted value is distinguishable from zero.
type BlogInput struct {
	Title  string
	Author string
	URL    string
	Likes  *int
}

func (in BlogInput) likesOrZero() int {
	if in.Likes == nil {
		return 0
	}
	return *in.Likes
}

func (in BlogInput) validateLikes() error {
	if in.Likes != nil && *in.Likes < 0 {
		return validationErr("`likes` must be a non-negative integer")
	}
	return nil
}

// List returns all blogs with their owners resolved. Reads need no token.
func (s *BlogService) List(ctx context.Context) ([]models.BlogWithOwner, error) {
	return s.blogs.ListWithOwners(ctx)
}

// Get returns a single blog by id.
func (s *BlogService) Get(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	b, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// Create runs the authorized write sequence: verify the token, resolve the
// owner, validate, persist the blog, then link it into the owner's blog list.
func (s *BlogService) Create(ctx context.Context, token string, in BlogInput) (*models.Blog, error) {
	owner, err := s.resolveOwner(ctx, token)
	if err != nil {
		return nil, err
	}

	if in.Title == "" {
		return nil, validationErr("`title` is required")
	}
	if err := in.validateLikes(); err != nil {
		return nil, err
	}

	blog := &models.Blog{
		Title:  in.Title,
		Author: in.Author,
		URL:    in.URL,
		Likes:  in.likesOrZero(),
		UserID: owner.ID,
	}
	created, err := s.blogs.Insert(ctx, blog)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.AppendBlog(ctx, owner.ID, created.ID); err != nil {
		// The blog is already persisted and there is no compensating delete,
		// so a failure here leaves an orphan. Log it and surface the error.
		logger.Log.Errorf("blog %s created but not linked to user %s: %v",
			created.ID.Hex(), owner.ID.Hex(), err)
		return nil, fmt.Errorf("link blog to user: %w", err)
	}

	return created, nil
}

// Update replaces the mutable fields wholesale. Fields omitted from the
// request are cleared, not preserved. Ownership never changes.
func (s *BlogService) Update(ctx context.Context, token string, id primitive.ObjectID, in BlogInput) (*models.Blog, error) {
	if s.policy.OwnerUpdate {
		if err := s.requireOwner(ctx, token, id); err != nil {
			return nil, err
		}
	}

	if err := in.validateLikes(); err != nil {
		return nil, err
	}

	updated, err := s.blogs.Replace(ctx, id, models.Blog{
		Title:  in.Title,
		Author: in.Author,
		URL:    in.URL,
		Likes:  in.likesOrZero(),
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a blog by id. Removing an id that no longer exists is
// still success.
func (s *BlogService) Delete(ctx context.Context, token string, id primitive.ObjectID) error {
	if s.policy.OwnerDelete {
		if err := s.requireOwner(ctx, token, id); err != nil {
			return err
		}
	}
	return s.blogs.Delete(ctx, id)
}

// resolveOwner verifies the token and loads the user it is bound to. A valid
// token whose user is gone counts as an invalid session, not a missing
// resource.
func (s *BlogService) resolveOwner(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	idHex, err := s.tokens.Verify(token)
	if err != nil {
		return nil, ErrUnauthorized
	}
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrUnauthorized
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

func (s *BlogService) requireOwner(ctx context.Context, token string, id primitive.ObjectID) error {
	owner, err := s.resolveOwner(ctx, token)
	if err != nil {
		return err
	}

	blog, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if blog.UserID != owner.ID {
		return ErrUnauthorized
	}
	return nil
}
