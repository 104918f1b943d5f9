// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "shopauth/internal/delivery/context"
	"shopauth/internal/domain/entity"
	domainerrors "shopauth/internal/domain/errors"
	"shopauth/internal/domain/repository"
	"shopauth/internal/domain/service"
	"shopauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	addressRepo  repository.AddressRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	AddressRepo  repository.AddressRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		addressRepo:  params.AddressRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration process: hash the password,
// insert the user, issue a token for the new identity.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	// bcrypt is CPU-bound; hash before opening the transaction so the
	// connection is not held across the hashing work.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		DisplayName:  input.DisplayName,
		PhoneNumber:  input.PhoneNumber,
	}

	// The insert relies on the storage-level unique constraint on email.
	// Concurrent registrations with the same email race to this point and
	// exactly one create succeeds; the rest surface the duplicate error.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewUserRepository().Create(ctx, newUser)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrEmailTaken) {
			srv.log(ctx).Warn("Registration rejected, email already taken", slog.String("email", input.Email))

			return nil, errors.Wrap(err, "registration failed")
		}
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	token, err := srv.tokenService.GenerateToken(newUser.ID, newUser.Email, newUser.DisplayName)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after registration", slog.Any("userID", newUser.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, "failed to issue token after registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	// A fresh account has no addresses yet; the profile still carries an
	// empty slice rather than nil.
	return &usecase.AuthOutput{
		User:  toProfile(newUser, []*entity.Address{}),
		Token: token,
	}, nil
}

// Login verifies credentials and issues a token together with the sanitized
// profile and the user's addresses.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same error as a wrong password; never reveal which factor failed.
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	addresses, err := srv.addressRepo.FindAddressesByUserID(ctx, user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to load addresses during login", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load addresses during login")
	}

	token, err := srv.tokenService.GenerateToken(user.ID, user.Email, user.DisplayName)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token during login", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, "failed to issue token during login")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{
		User:  toProfile(user, addresses),
		Token: token,
	}, nil
}

// VerifyToken validates the given token and returns its claims.
// The token service already collapses every failure cause into the single
// invalid-token error, so nothing is added here.
func (srv *authService) VerifyToken(token string) (*service.Claims, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token verification failed")
	}

	return claims, nil
}

// GetUserByID returns the sanitized profile for a uid. An unknown uid yields
// (nil, nil): absence is a normal outcome, not a failure.
func (srv *authService) GetUserByID(ctx context.Context, userID uuid.UUID) (*usecase.Profile, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	addresses, err := srv.addressRepo.FindAddressesByUserID(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load addresses for user")
	}

	return toProfile(user, addresses), nil
}

// toProfile strips the password hash and attaches addresses.
func toProfile(user *entity.User, addresses []*entity.Address) *usecase.Profile {
	if addresses == nil {
		addresses = []*entity.Address{}
	}

	return &usecase.Profile{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		PhoneNumber: user.PhoneNumber,
		PhotoURL:    user.PhotoURL,
		Addresses:   addresses,
	}
}
