package authService

import (
	"YeloSoul/internal/api/auth"
	contextPkg "YeloSoul/pkg/context"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const otpTTL = 10 * time.Minute

func otpKey(email string) string {
	return fmt.Sprintf("password-reset:%s", email)
}

func newOTP() string {
	return fmt.Sprintf("%05d", rand.Intn(100000))
}

func (s *passwordDomainImpl) ForgotPassword(c context.Context, req auth.ForgotPasswordRequest) error {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	user, err := repo.Users.GetByEmail(c, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"email":      req.Email,
			}).Warn("Password reset requested for unknown email")
			return auth.ErrUserNotFound
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return err
	}

	code := newOTP()
	if err := s.redisServer.SetOTP(c, otpKey(user.Email), code, otpTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to store OTP in Redis")
		return err
	}

	if err := s.smtpMailer.SendOTP(user.Email, code); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to send OTP email")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
	}).Info("Password reset OTP sent")

	return nil
}

func (s *passwordDomainImpl) ResetPassword(c context.Context, req auth.ResetPasswordRequest) error {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	storedOTP, err := s.redisServer.GetOTP(c, otpKey(req.Email))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"email":      req.Email,
			}).Warn("OTP expired or never issued")
			return auth.ErrOTPExpired
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get OTP from Redis")
		return err
	}

	if storedOTP != req.Code {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      "Invalid OTP",
		}).Warn("Invalid OTP provided")
		return auth.ErrInvalidOTP
	}

	if _, err := repo.Users.GetByEmail(c, req.Email); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"email":      req.Email,
			}).Warn("User not found")
			return auth.ErrUserNotFound
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return err
	}

	hashedPass, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return err
	}

	if err := repo.Users.UpdateUserPassword(c, req.Email, hashedPass); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update user password")
		return err
	}

	if err := s.redisServer.DeleteOTP(c, otpKey(req.Email)); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to delete consumed OTP")
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"email":      req.Email,
	}).Info("Password updated")

	return nil
}
