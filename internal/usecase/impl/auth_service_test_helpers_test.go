package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"shopauth/internal/domain/entity"
	domainerrors "shopauth/internal/domain/errors"
	"shopauth/internal/domain/repository"
	"shopauth/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryUserRepo is an in-memory UserRepository. Create enforces email
// uniqueness under a lock, mirroring the storage-level unique constraint.
type memoryUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*entity.User
	byID    map[uuid.UUID]*entity.User

	findErr   error
	createErr error
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{
		byEmail: make(map[string]*entity.User),
		byID:    make(map[uuid.UUID]*entity.User),
	}
}

func (r *memoryUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	clone := *user

	return &clone, nil
}

func (r *memoryUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	clone := *user

	return &clone, nil
}

func (r *memoryUserRepo) Create(ctx context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return domainerrors.ErrEmailTaken.WrapMessage("email already exists")
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	clone := *user
	r.byEmail[user.Email] = &clone
	r.byID[user.ID] = &clone

	return nil
}

// memoryAddressRepo is an in-memory AddressRepository.
type memoryAddressRepo struct {
	byUserID map[uuid.UUID][]*entity.Address
	findErr  error
}

func newMemoryAddressRepo() *memoryAddressRepo {
	return &memoryAddressRepo{byUserID: make(map[uuid.UUID][]*entity.Address)}
}

func (r *memoryAddressRepo) FindAddressesByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}

	addresses, ok := r.byUserID[userID]
	if !ok {
		return []*entity.Address{}, nil
	}

	return addresses, nil
}

// memoryTxManager runs the transactional function directly against the
// in-memory repositories. Rollback semantics are not simulated; the tests
// only exercise commit and error propagation paths.
type memoryTxManager struct {
	userRepo    *memoryUserRepo
	addressRepo *memoryAddressRepo
}

func (m *memoryTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(&memoryRepoFactory{userRepo: m.userRepo, addressRepo: m.addressRepo})
}

type memoryRepoFactory struct {
	userRepo    *memoryUserRepo
	addressRepo *memoryAddressRepo
}

func (f *memoryRepoFactory) NewUserRepository() repository.UserRepository {
	return f.userRepo
}

func (f *memoryRepoFactory) NewAddressRepository() repository.AddressRepository {
	return f.addressRepo
}

// plainHasher is a deterministic PasswordHasher for tests that do not care
// about bcrypt itself.
type plainHasher struct {
	hashErr error
}

func (h *plainHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *plainHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// stubTokenService issues predictable tokens and remembers the claims behind
// them so ValidateToken can replay them.
type stubTokenService struct {
	mu       sync.Mutex
	issued   map[string]*service.Claims
	issueErr error
}

func newStubTokenService() *stubTokenService {
	return &stubTokenService{issued: make(map[string]*service.Claims)}
}

func (s *stubTokenService) GenerateToken(userID uuid.UUID, email, displayName string) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	token := "token-" + uuid.NewString()
	s.issued[token] = &service.Claims{
		UserID:      userID,
		Email:       email,
		DisplayName: displayName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.GetTokenDuration())),
		},
	}

	return token, nil
}

func (s *stubTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	claims, ok := s.issued[tokenString]
	if !ok {
		return nil, domainerrors.ErrInvalidToken
	}

	return claims, nil
}

func (s *stubTokenService) GetTokenDuration() time.Duration {
	return 7 * 24 * time.Hour
}

// testAuthService bundles the service under test with its fakes.
type testAuthService struct {
	svc         *authService
	userRepo    *memoryUserRepo
	addressRepo *memoryAddressRepo
	hasher      *plainHasher
	tokens      *stubTokenService
}

func newTestAuthService() *testAuthService {
	userRepo := newMemoryUserRepo()
	addressRepo := newMemoryAddressRepo()
	hasher := &plainHasher{}
	tokens := newStubTokenService()

	svc := &authService{
		txManager:    &memoryTxManager{userRepo: userRepo, addressRepo: addressRepo},
		userRepo:     userRepo,
		addressRepo:  addressRepo,
		hasher:       hasher,
		tokenService: tokens,
		logger:       newDiscardLogger(),
	}

	return &testAuthService{
		svc:         svc,
		userRepo:    userRepo,
		addressRepo: addressRepo,
		hasher:      hasher,
		tokens:      tokens,
	}
}

var errBoom = errors.New("boom")
