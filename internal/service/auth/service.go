package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-ShopService/internal/domain"
	directoryRepo "github.com/m04kA/SMC-ShopService/internal/infra/storage/directory"
)

// Service authenticates manager and shop accounts. Managers are tried first;
// a username that matches no manager falls through to the shop accounts.
type Service struct {
	directoryRepo DirectoryRepository
	tokenIssuer   TokenIssuer
	logger        Logger
}

// LoginResult is the outcome of a successful sign-in.
type LoginResult struct {
	Token  string
	UserID int64
	Role   domain.Role
	Name   string
}

// NewService creates an auth service.
func NewService(directoryRepo DirectoryRepository, tokenIssuer TokenIssuer, logger Logger) *Service {
	return &Service{
		directoryRepo: directoryRepo,
		tokenIssuer:   tokenIssuer,
		logger:        logger,
	}
}

// Login verifies the credentials and issues an access token.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	s.logger.Info("Login: attempt for username=%q", username)

	manager, err := s.directoryRepo.GetManagerByUsername(ctx, username)
	if err == nil {
		return s.loginManager(manager, password)
	}
	if !errors.Is(err, directoryRepo.ErrManagerNotFound) {
		s.logger.Error("Login: repository error for username=%q: %v", username, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	shop, passwordHash, err := s.directoryRepo.GetShopByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, directoryRepo.ErrShopNotFound) {
			s.logger.Warn("Login: unknown username=%q", username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for username=%q: %v", username, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	return s.loginShop(shop, passwordHash, password)
}

func (s *Service) loginManager(manager *domain.Manager, password string) (*LoginResult, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(manager.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login: wrong password for manager id=%d", manager.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokenIssuer.GenerateToken(manager.ID, domain.RoleManager)
	if err != nil {
		s.logger.Error("Login: failed to issue token for manager id=%d: %v", manager.ID, err)
		return nil, fmt.Errorf("%w: Login - failed to issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: manager id=%d signed in", manager.ID)
	return &LoginResult{
		Token:  token,
		UserID: manager.ID,
		Role:   domain.RoleManager,
		Name:   manager.Name,
	}, nil
}

func (s *Service) loginShop(shop *domain.Shop, passwordHash, password string) (*LoginResult, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)); err != nil {
		s.logger.Warn("Login: wrong password for shop id=%d", shop.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokenIssuer.GenerateToken(shop.ID, domain.RoleShop)
	if err != nil {
		s.logger.Error("Login: failed to issue token for shop id=%d: %v", shop.ID, err)
		return nil, fmt.Errorf("%w: Login - failed to issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: shop id=%d signed in", shop.ID)
	return &LoginResult{
		Token:  token,
		UserID: shop.ID,
		Role:   domain.RoleShop,
		Name:   shop.Name,
	}, nil
}
