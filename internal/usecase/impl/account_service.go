package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode"

	"clinic/config"
	deliverycontext "clinic/internal/delivery/context"
	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/repository"
	"clinic/internal/domain/service"
	"clinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMinPasswordLength = 8

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	profileRepo       repository.ProfileRepository
	sessionRepo       repository.SessionRepository
	identity          usecase.IdentityResolver
	hasher            service.PasswordHasher
	tokens            service.TokenService
	phones            service.PhoneNormalizer
	minPasswordLength int
	logger            *slog.Logger
	now               func() time.Time
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	ProfileRepo  repository.ProfileRepository
	SessionRepo  repository.SessionRepository
	Identity     usecase.IdentityResolver
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Phones       service.PhoneNormalizer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	minLength := defaultMinPasswordLength
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.MinPasswordLength > 0 {
		minLength = params.Config.Auth.MinPasswordLength
	}

	return &accountService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		profileRepo:       params.ProfileRepo,
		sessionRepo:       params.SessionRepo,
		identity:          params.Identity,
		hasher:            params.Hasher,
		tokens:            params.TokenService,
		phones:            params.Phones,
		minPasswordLength: minLength,
		logger:            params.Logger,
		now:               time.Now,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the user and its profile atomically.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	cleaned := *input
	if err := usecase.Validate(&cleaned); err != nil {
		return nil, err
	}
	if cleaned.Password1 != cleaned.Password2 {
		return nil, domainerrors.ErrPasswordMismatch
	}
	if err := srv.checkPasswordStrength(cleaned.Password1); err != nil {
		return nil, err
	}

	phone, err := srv.normalizePhone(cleaned.Phone)
	if err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(cleaned.Password1)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user := &entity.User{
		Username:     cleaned.Username,
		Email:        cleaned.Email,
		FirstName:    cleaned.FirstName,
		LastName:     cleaned.LastName,
		PasswordHash: hash,
	}
	role := entity.Role(cleaned.Role)

	srv.log(ctx).Info("Starting registration", slog.String("username", user.Username), slog.String("role", role.String()))

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		taken, err := userRepo.ExistsByUsername(ctx, user.Username)
		if err != nil {
			return errors.Wrap(err, "failed to check username")
		}
		if taken {
			return domainerrors.ErrUsernameTaken
		}

		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUsernameTaken) {
				return domainerrors.ErrUsernameTaken
			}

			return errors.Wrap(err, "failed to create user")
		}

		profile := &entity.Profile{UserID: user.ID, Role: role, Phone: phone}
		if err := repoFactory.ProfileRepo().Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create profile")
		}
		user.Profile = profile

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", user.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Registration completed", slog.Any("user_id", user.ID))

	return user, nil
}

func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.String("username", username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	role, err := srv.identity.Resolve(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	session := &entity.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		ExpiresAt: now.Add(srv.tokens.SessionTTL()),
	}

	token, err := srv.tokens.Issue(user.ID, session.ID, session.ExpiresAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}
	session.TokenHash = srv.tokens.Hash(token)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()

		if _, err := sessionRepo.DeleteExpiredByUser(ctx, user.ID, now); err != nil {
			return errors.Wrap(err, "failed to prune expired sessions")
		}

		return errors.Wrap(sessionRepo.Create(ctx, session), "failed to store session")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("user_id", user.ID), slog.String("role", role.String()))

	return &usecase.LoginOutput{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		Principal: &entity.Principal{
			UserID:    user.ID,
			Username:  user.Username,
			Role:      role,
			SessionID: session.ID,
		},
	}, nil
}

func (srv *accountService) Authenticate(ctx context.Context, token string) (*entity.Principal, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	claims, err := srv.tokens.Validate(token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, err.Error())
	}

	session, err := srv.sessionRepo.FindByID(ctx, claims.SessionID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "session ended")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}
	if session.UserID != claims.UserID || session.TokenHash != srv.tokens.Hash(token) {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "session does not match token")
	}
	if session.IsExpired(srv.now()) {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "session expired")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "account removed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}

	role, err := srv.identity.Resolve(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &entity.Principal{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      role,
		SessionID: session.ID,
	}, nil
}

func (srv *accountService) Logout(ctx context.Context, principal *entity.Principal) error {
	if principal == nil {
		return domainerrors.ErrUnauthenticated
	}

	if err := srv.sessionRepo.Delete(ctx, principal.SessionID); err != nil {
		return errors.Wrap(err, "failed to end session")
	}

	srv.log(ctx).Info("Logged out", slog.Any("user_id", principal.UserID))

	return nil
}

// CompleteProfile repairs an account that was left without a role.
func (srv *accountService) CompleteProfile(ctx context.Context, principal *entity.Principal, input *usecase.CompleteProfileInput) (*entity.Principal, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	cleaned := *input
	if err := usecase.Validate(&cleaned); err != nil {
		return nil, err
	}

	phone, err := srv.normalizePhone(cleaned.Phone)
	if err != nil {
		return nil, err
	}

	profile := &entity.Profile{UserID: principal.UserID, Role: entity.Role(cleaned.Role), Phone: phone}
	if err := srv.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrProfileExists) {
			return nil, domainerrors.ErrProfileExists
		}

		return nil, errors.Wrap(err, "failed to create profile")
	}

	srv.log(ctx).Info("Profile completed", slog.Any("user_id", principal.UserID), slog.String("role", cleaned.Role))

	updated := *principal
	updated.Role = profile.Role

	return &updated, nil
}

func (srv *accountService) checkPasswordStrength(password string) error {
	if len([]rune(password)) < srv.minPasswordLength {
		return domainerrors.ErrValidationFailed.WithDetails("password1 must be at least " + strconv.Itoa(srv.minPasswordLength) + " characters")
	}
	if strings.IndexFunc(password, func(r rune) bool { return !unicode.IsDigit(r) }) == -1 {
		return domainerrors.ErrValidationFailed.WithDetails("password1 must not be entirely numeric")
	}

	return nil
}

func (srv *accountService) normalizePhone(raw string) (*string, error) {
	if raw == "" {
		return nil, nil
	}

	normalized, err := srv.phones.Normalize(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("phone must be a valid phone number")
	}

	return &normalized, nil
}
