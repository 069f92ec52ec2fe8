package repository

import (
	"context"

	"droscher.com/Foodgram/pkg/model"
)

type UserRepository interface {
	GetUser(ctx context.Context, viewer *model.User, userID uint) (*model.User, error)
	GetUserFromEmail(ctx context.Context, email string) (*model.User, error)
	ListUsers(ctx context.Context, viewer *model.User, page model.Page) ([]*model.User, int64, error)
}

func (r *Repository) GetUserFromEmail(ctx context.Context, email string) (*model.User, error) {
	var user *model.User

	result := r.DB.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, notFound(result.Error, ErrUserNotFound)
	}

	return user, nil
}

func (r *Repository) AddUser(ctx context.Context, user model.User) (*model.User, error) {
	if result := r.DB.WithContext(ctx).Omit("Recipes").Create(&user); result.Error != nil {
		return nil, result.Error
	}

	return &user, nil
}

// GetUser returns the user annotated with is_subscribed for the viewer.
func (r *Repository) GetUser(ctx context.Context, viewer *model.User, userID uint) (*model.User, error) {
	var user model.User

	result := annotateUsers(r.DB.WithContext(ctx).Model(&model.User{}), model.ViewerID(viewer)).
		Where("users.id = ?", userID).
		Take(&user)
	if result.Error != nil {
		return nil, notFound(result.Error, ErrUserNotFound)
	}

	return &user, nil
}

func (r *Repository) ListUsers(ctx context.Context, viewer *model.User, page model.Page) ([]*model.User, int64, error) {
	var (
		users []*model.User
		total int64
	)

	if result := r.DB.WithContext(ctx).Model(&model.User{}).Count(&total); result.Error != nil {
		return nil, 0, result.Error
	}

	query := annotateUsers(r.DB.WithContext(ctx).Model(&model.User{}), model.ViewerID(viewer)).Order("users.id ASC")

	if result := paginate(query, page).Find(&users); result.Error != nil {
		return nil, 0, result.Error
	}

	return users, total, nil
}
