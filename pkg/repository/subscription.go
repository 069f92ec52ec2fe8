package repository

import (
	"context"

	"droscher.com/Foodgram/pkg/model"
)

type SubscriptionRepository interface {
	GetAuthor(ctx context.Context, viewer *model.User, authorID uint) (*model.User, error)
	ListSubscriptions(ctx context.Context, user model.User, page model.Page) ([]*model.User, int64, error)
	Subscribe(ctx context.Context, userID uint, authorID uint) error
	Unsubscribe(ctx context.Context, userID uint, authorID uint) error
}

func (r *Repository) Subscribe(ctx context.Context, userID uint, authorID uint) error {
	if err := r.requireUser(ctx, authorID); err != nil {
		return err
	}

	edge := model.Subscription{UserID: userID, AuthorID: authorID}

	return addEdge(ctx, r, &edge, model.SubscriptionConstraint, ErrAlreadySubscribed, ErrUserNotFound)
}

func (r *Repository) Unsubscribe(ctx context.Context, userID uint, authorID uint) error {
	if err := r.requireUser(ctx, authorID); err != nil {
		return err
	}

	return removeEdge[model.Subscription](ctx, r, "author_id", userID, authorID, ErrNotSubscribed)
}

// GetAuthor returns the user annotated with is_subscribed and recipes_count, with their recipes preloaded.
func (r *Repository) GetAuthor(ctx context.Context, viewer *model.User, authorID uint) (*model.User, error) {
	var author model.User

	result := annotateAuthors(r.DB.WithContext(ctx), model.ViewerID(viewer)).
		Where("users.id = ?", authorID).
		Take(&author)
	if result.Error != nil {
		return nil, notFound(result.Error, ErrUserNotFound)
	}

	return &author, nil
}

// ListSubscriptions returns the authors the user follows, each annotated like GetAuthor.
func (r *Repository) ListSubscriptions(ctx context.Context, user model.User, page model.Page) ([]*model.User, int64, error) {
	var (
		authors []*model.User
		total   int64
	)

	const followedBy = "users.id IN (SELECT s.author_id FROM subscriptions s WHERE s.user_id = ?)"

	if result := r.DB.WithContext(ctx).Model(&model.User{}).Where(followedBy, user.ID).Count(&total); result.Error != nil {
		return nil, 0, result.Error
	}

	query := annotateAuthors(r.DB.WithContext(ctx), user.ID).
		Where(followedBy, user.ID).
		Order("users.id ASC")

	if result := paginate(query, page).Find(&authors); result.Error != nil {
		return nil, 0, result.Error
	}

	return authors, total, nil
}

func (r *Repository) requireUser(ctx context.Context, userID uint) error {
	var count int64

	if err := r.DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return ErrUserNotFound
	}

	return nil
}
