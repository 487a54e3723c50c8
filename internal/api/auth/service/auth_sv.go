package authService

import (
	"YeloSoul/internal/api/auth"
	"YeloSoul/internal/entity"
	contextPkg "YeloSoul/pkg/context"
	jwtPkg "YeloSoul/pkg/jwt"
	"context"
	"errors"
	"github.com/sirupsen/logrus"
	"time"
)

const accessTokenTTL = time.Hour * 24 * 7

func (s *authDomainImpl) Signup(c context.Context, req auth.SignupRequest) (auth.AuthResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.AuthResponse{}, err
	}

	hashedPass, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return auth.AuthResponse{}, err
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate user ID")
		return auth.AuthResponse{}, err
	}

	user := entity.User{
		ID:        id,
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashedPass,
		IsAdmin:   false,
		CreatedAt: time.Now(),
	}

	if err := repo.Users.CreateUser(c, user); err != nil {
		if errors.Is(err, auth.ErrEmailAlreadyExists) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"email":      req.Email,
			}).Warn("Signup rejected, email already registered")
			return auth.AuthResponse{}, auth.ErrEmailAlreadyExists
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return auth.AuthResponse{}, err
	}

	token, _, err := jwtPkg.Sign(MakeUserData(user), accessTokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.AuthResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
	}).Info("User registered")

	return auth.AuthResponse{
		Token: token,
		User:  MakeUserResponse(user),
	}, nil
}

func (s *authDomainImpl) Login(c context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.AuthResponse{}, err
	}

	user, err := repo.Users.GetByEmail(c, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to get user by email")
			return auth.AuthResponse{}, auth.ErrInvalidCredentials
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return auth.AuthResponse{}, err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Password comparison failed")
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	token, _, err := jwtPkg.Sign(MakeUserData(user), accessTokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.AuthResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
	}).Info("Token created")

	return auth.AuthResponse{
		Token: token,
		User:  MakeUserResponse(user),
	}, nil
}
