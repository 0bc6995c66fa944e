package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ucb-bank/banking-core/internal/commons"
	"github.com/ucb-bank/banking-core/internal/domain"
	"github.com/ucb-bank/banking-core/internal/logger"
	"github.com/ucb-bank/banking-core/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo domain.UserRepository
}

func NewUserService(userRepo domain.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) Register(ctx context.Context, req models.RegisterUserRequest) (commons.Response[models.RegisterUserResponse], error) {
	logger.Info("user service register request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("user service register validation failed", err, nil)
		return commons.ErrorResponse[models.RegisterUserResponse]("validation failed", err.Error()), err
	}

	username := strings.TrimSpace(req.Username)

	exists, err := s.userRepo.Exists(ctx, username)
	if err != nil {
		logger.Error("user service register existing user check failed", err, logger.Fields{
			"username": username,
		})
		return commons.ErrorResponse[models.RegisterUserResponse]("failed to register user", "Unable to register user right now"), err
	}
	if exists {
		logger.Info("user service register username taken", logger.Fields{
			"username": username,
		})
		return commons.ErrorResponse[models.RegisterUserResponse]("Username already exists", "Please choose a different username"), domain.ErrRecordAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("user service register hash password failed", err, nil)
		return commons.ErrorResponse[models.RegisterUserResponse]("failed to register user", "failed to hash password"), err
	}

	created, err := s.userRepo.Create(ctx, domain.User{
		Username:     username,
		PasswordHash: string(hashed),
	})
	if err != nil {
		logger.Error("user service register repository failed", err, logger.Fields{
			"username": username,
		})
		if errors.Is(err, domain.ErrRecordAlreadyExists) {
			return commons.ErrorResponse[models.RegisterUserResponse]("Username already exists", "Please choose a different username"), err
		}
		return commons.ErrorResponse[models.RegisterUserResponse]("failed to register user", "Unable to register user right now"), err
	}

	response := models.RegisterUserResponse{
		Username:  created.Username,
		CreatedAt: created.CreatedAt.Format(time.RFC3339),
	}

	logger.Info("user service register success", logger.Fields{
		"username": response.Username,
	})

	return commons.SuccessResponse("user registered successfully", response), nil
}

func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (commons.Response[models.LoginResponse], error) {
	logger.Info("user service login request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("user service login validation failed", err, nil)
		return commons.ErrorResponse[models.LoginResponse]("validation failed", err.Error()), err
	}

	username := strings.TrimSpace(req.Username)

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		logger.Error("user service login lookup failed", err, logger.Fields{
			"username": username,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.LoginResponse]("User not found"), err
		}
		return commons.ErrorResponse[models.LoginResponse]("failed to login", "Unable to login right now"), err
	}

	// A wrong password is an unauthenticated result, not an error kind.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			logger.Info("user service login invalid password", logger.Fields{
				"username": username,
			})
			return commons.SuccessResponse("invalid password", models.LoginResponse{
				Username:      username,
				Authenticated: false,
			}), nil
		}
		logger.Error("user service login compare failed", err, logger.Fields{
			"username": username,
		})
		return commons.ErrorResponse[models.LoginResponse]("failed to login", "Unable to login right now"), err
	}

	logger.Info("user service login success", logger.Fields{
		"username": username,
	})

	return commons.SuccessResponse("login successful", models.LoginResponse{
		Username:      username,
		Authenticated: true,
	}), nil
}
