package service

import (
	"context"

	"SmartNotes/dao"
	"SmartNotes/pkg/response"
	"SmartNotes/types"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Profile(ctx context.Context, userID uint64) (*types.Profile, error)
	UpdateProfile(ctx context.Context, userID uint64, req *types.UpdateProfileRequest) (*types.Profile, error)
}

type UserService struct {
	UserDAO *dao.UserDAO
}

func (s *UserService) Profile(ctx context.Context, userID uint64) (*types.Profile, error) {
	user, err := s.UserDAO.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.NewNotFound("User not found")
	}
	return &types.Profile{
		Email:      user.Email,
		Username:   user.Username,
		ProfileURL: user.ProfileURL,
	}, nil
}

// UpdateProfile 设置页只允许改 profile_url email/username 只读
func (s *UserService) UpdateProfile(ctx context.Context, userID uint64, req *types.UpdateProfileRequest) (*types.Profile, error) {
	if req.ProfileURL != nil {
		if err := s.UserDAO.UpdateProfileURL(ctx, userID, *req.ProfileURL); err != nil {
			return nil, err
		}
	}
	return s.Profile(ctx, userID)
}
