package service

import (
	"context"
	"time"

	"SmartNotes/config"
	"SmartNotes/dao"
	"SmartNotes/models"
	"SmartNotes/pkg/jwt"
	"SmartNotes/pkg/response"
	"SmartNotes/pkg/snowflake"
	"SmartNotes/types"

	"golang.org/x/crypto/bcrypt"
)

// token 有效期 7 天
const tokenExpire = 7 * 24 * time.Hour

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error)
}

type AuthService struct {
	UserDAO *dao.UserDAO
	Config  *config.Config
}

func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*models.User, error) {
	fields := map[string]string{}

	exists, err := s.UserDAO.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		fields["username"] = "Username already exists"
	}

	exists, err = s.UserDAO.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		fields["email"] = "Email already exists"
	}

	if len(fields) > 0 {
		return nil, response.NewFieldError(fields)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:        uint64(snowflake.GenID()),
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashed),
		CreatedAt: time.Now(),
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login 不区分用户不存在与密码错误
func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	user, err := s.UserDAO.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, response.NewFieldError(map[string]string{"error": "Invalid credentials"})
	}

	token, expireAt, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.ID, user.Email, tokenExpire)
	if err != nil {
		return nil, err
	}
	return &types.LoginResponse{Token: token, ExpireAt: expireAt}, nil
}
