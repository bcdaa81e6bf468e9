package bookinglinks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ShopService/internal/domain"
	linkRepo "github.com/m04kA/SMC-ShopService/internal/infra/storage/bookinglink"
	customerRepo "github.com/m04kA/SMC-ShopService/internal/infra/storage/customer"
	directoryRepo "github.com/m04kA/SMC-ShopService/internal/infra/storage/directory"
)

// Service issues and validates one-time booking links. A link carries an
// opaque token, belongs to one customer and one shop, and stays valid for a
// fixed lifetime or until consumed, whichever comes first.
type Service struct {
	linkRepo     LinkRepository
	customerRepo CustomerRepository
	directory    DirectoryRepository
	timeProvider TimeProvider
	ttl          time.Duration
	logger       Logger
}

// NewService creates a booking link service.
func NewService(
	linkRepo LinkRepository,
	customerRepo CustomerRepository,
	directory DirectoryRepository,
	timeProvider TimeProvider,
	ttl time.Duration,
	logger Logger,
) *Service {
	return &Service{
		linkRepo:     linkRepo,
		customerRepo: customerRepo,
		directory:    directory,
		timeProvider: timeProvider,
		ttl:          ttl,
		logger:       logger,
	}
}

// Generate issues a fresh booking link for the given phone and shop. The
// customer is looked up by phone and created on first contact.
func (s *Service) Generate(ctx context.Context, phone string, shopID int64) (*domain.BookingLink, error) {
	s.logger.Info("Generate: issuing link for phone=%s shop=%d", phone, shopID)

	if phone == "" {
		s.logger.Warn("Generate: empty phone")
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if _, err := s.directory.GetShopByID(ctx, shopID); err != nil {
		if errors.Is(err, directoryRepo.ErrShopNotFound) {
			s.logger.Warn("Generate: shop id=%d not found", shopID)
			return nil, ErrShopNotFound
		}
		s.logger.Error("Generate: repository error for shop id=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: Generate - repository error: %v", ErrInternal, err)
	}

	customer, err := s.ensureCustomer(ctx, phone)
	if err != nil {
		return nil, err
	}

	link := &domain.BookingLink{
		Token:      uuid.NewString(),
		Phone:      phone,
		CustomerID: customer.ID,
		ShopID:     shopID,
		CreatedAt:  s.timeProvider.Now(),
		Used:       false,
	}

	created, err := s.linkRepo.Create(ctx, link)
	if err != nil {
		s.logger.Error("Generate: failed to create link for phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: Generate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Generate: issued link id=%d for customer=%d shop=%d", created.ID, customer.ID, shopID)
	return created, nil
}

// Validate resolves a token into a live booking link. Expired and consumed
// links are rejected with distinct errors so callers can report why.
func (s *Service) Validate(ctx context.Context, token string) (*domain.BookingLink, error) {
	link, err := s.linkRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, linkRepo.ErrLinkNotFound) {
			s.logger.Warn("Validate: token not found")
			return nil, ErrLinkNotFound
		}
		s.logger.Error("Validate: repository error: %v", err)
		return nil, fmt.Errorf("%w: Validate - repository error: %v", ErrInternal, err)
	}

	if link.Used {
		s.logger.Warn("Validate: link id=%d already used", link.ID)
		return nil, ErrLinkUsed
	}
	if link.IsExpired(s.timeProvider.Now(), s.ttl) {
		s.logger.Warn("Validate: link id=%d expired", link.ID)
		return nil, ErrLinkExpired
	}

	return link, nil
}

// Consume marks a link as used. Runs inside the booking transaction so the
// link is burned exactly when the booking commits.
func (s *Service) Consume(ctx context.Context, id int64) error {
	if err := s.linkRepo.MarkUsed(ctx, id); err != nil {
		if errors.Is(err, linkRepo.ErrLinkNotFound) {
			s.logger.Warn("Consume: link id=%d not found", id)
			return ErrLinkNotFound
		}
		s.logger.Error("Consume: repository error for link id=%d: %v", id, err)
		return fmt.Errorf("%w: Consume - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Consume: link id=%d marked used", id)
	return nil
}

// CleanupExpired deletes every link past its lifetime and returns the count.
// Invoked on a schedule from the cron runner.
func (s *Service) CleanupExpired(ctx context.Context) (int64, error) {
	cutoff := s.timeProvider.Now().Add(-s.ttl)

	deleted, err := s.linkRepo.DeleteExpired(ctx, cutoff)
	if err != nil {
		s.logger.Error("CleanupExpired: repository error: %v", err)
		return 0, fmt.Errorf("%w: CleanupExpired - repository error: %v", ErrInternal, err)
	}

	if deleted > 0 {
		s.logger.Info("CleanupExpired: deleted %d expired links", deleted)
	}
	return deleted, nil
}

func (s *Service) ensureCustomer(ctx context.Context, phone string) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByPhone(ctx, phone)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, customerRepo.ErrCustomerNotFound) {
		s.logger.Error("ensureCustomer: repository error for phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: ensureCustomer - repository error: %v", ErrInternal, err)
	}

	created, err := s.customerRepo.Create(ctx, &domain.Customer{Phone: phone, Status: domain.CustomerStatusActive})
	if err != nil {
		s.logger.Error("ensureCustomer: failed to create customer for phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: ensureCustomer - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ensureCustomer: created customer id=%d for phone=%s", created.ID, phone)
	return created, nil
}
