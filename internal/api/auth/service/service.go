package authService

import (
	"YeloSoul/internal/api/auth"
	authRepository "YeloSoul/internal/api/auth/repository"
	"YeloSoul/pkg/bcrypt"
	"YeloSoul/pkg/redis"
	"YeloSoul/pkg/smtp"
	"YeloSoul/pkg/utils"
	"context"
	"github.com/sirupsen/logrus"
)

type AuthService interface {
	Auth() AuthDomain
	Password() PasswordDomain
	GetRepository() authRepository.Repository
}

type AuthDomain interface {
	Signup(c context.Context, req auth.SignupRequest) (auth.AuthResponse, error)
	Login(c context.Context, req auth.LoginRequest) (auth.AuthResponse, error)
}

type PasswordDomain interface {
	ForgotPassword(c context.Context, req auth.ForgotPasswordRequest) error
	ResetPassword(c context.Context, req auth.ResetPasswordRequest) error
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository
	smtpMailer     smtp.ItfSmtp
	redisServer    redis.IRedis
	bcryptUtils    bcrypt.IBcrypt
	utils          utils.IUtils

	authDomain     AuthDomain
	passwordDomain PasswordDomain
}

func (a *authService) Auth() AuthDomain {
	return a.authDomain
}

func (a *authService) Password() PasswordDomain {
	return a.passwordDomain
}

func (a *authService) GetRepository() authRepository.Repository {
	return a.authRepository
}

type authDomainImpl struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	bcryptUtils bcrypt.IBcrypt
	utils       utils.IUtils
}

type passwordDomainImpl struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	smtpMailer  smtp.ItfSmtp
	redisServer redis.IRedis
	bcryptUtils bcrypt.IBcrypt
}

func New(log *logrus.Logger,
	authRepo authRepository.Repository,
	smtpMailer smtp.ItfSmtp,
	redisServer redis.IRedis,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) AuthService {
	return &authService{
		log:            log,
		authRepository: authRepo,
		smtpMailer:     smtpMailer,
		redisServer:    redisServer,
		bcryptUtils:    bcryptUtils,
		utils:          utils,

		authDomain:     &authDomainImpl{log: log, repo: authRepo, bcryptUtils: bcryptUtils, utils: utils},
		passwordDomain: &passwordDomainImpl{log: log, repo: authRepo, smtpMailer: smtpMailer, redisServer: redisServer, bcryptUtils: bcryptUtils},
	}
}
