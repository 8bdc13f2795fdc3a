package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/Pratyush-Px/Gatherly/internal/entity"
	"github.com/Pratyush-Px/Gatherly/internal/model"
	"github.com/Pratyush-Px/Gatherly/internal/repository"
	"github.com/Pratyush-Px/Gatherly/pkg/crypto"
	"github.com/Pratyush-Px/Gatherly/pkg/errorx"
	"github.com/Pratyush-Px/Gatherly/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthDomain interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}

type authDomain struct {
	userRepo repository.UserRepository
}

func NewAuthDomain(userRepo repository.UserRepository) *authDomain {
	return &authDomain{userRepo: userRepo}
}

func (d *authDomain) Register(
	ctx context.Context, req *model.RegisterRequest,
) (*model.RegisterResponse, error) {
	_, err := d.userRepo.GetByUsernameOrEmail(ctx, req.Username, req.Email)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyExists,
			"Username or email already exists. Try logging in.")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot check for an existing user: %v", err)
		return nil, errorx.Unknown
	}

	hashed, err := crypto.HashPassword(req.Password)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot hash the password: %v", err)
		return nil, errorx.Unknown
	}

	err = d.userRepo.Create(ctx, &entity.User{
		Base:     entity.Base{ID: uuid.NewString()},
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RegisterResponse{Message: "User registered successfully"}, nil
}

func (d *authDomain) Login(
	ctx context.Context, req *model.LoginRequest,
) (*model.LoginResponse, error) {
	user, err := d.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "User not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user by email: %v", err)
		return nil, errorx.Unknown
	}

	if !crypto.ComparePassword(user.Password, req.Password) {
		return nil, errorx.New(errorx.BadRequest, "Incorrect password")
	}

	token, err := xcontext.TokenEngine(ctx).Generate(
		xcontext.Configs(ctx).Auth.AccessToken.Expiration,
		model.AccessToken{ID: user.ID, Username: user.Username},
	)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.LoginResponse{
		Message: fmt.Sprintf("Welcome back %s!", user.Username),
		Token:   token,
		User:    model.LoginUser{Username: user.Username, Name: user.Name},
	}, nil
}
