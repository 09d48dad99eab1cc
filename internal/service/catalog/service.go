package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog/models"
)

// Service сервис каталога услуг компании
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Create добавляет услугу в каталог компании
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service %q for company=%d", req.Name, req.CompanyID)

	req.Name = strings.TrimSpace(req.Name)
	if err := validateService(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	service, err := s.serviceRepo.Create(ctx, &domain.Service{
		CompanyID:       req.CompanyID,
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalogRepo.ErrAlreadyExists):
			s.logger.Warn("Create: service %q already exists in company=%d", req.Name, req.CompanyID)
			return nil, ErrAlreadyExists
		case errors.Is(err, catalogRepo.ErrInvalidReference):
			s.logger.Warn("Create: company id=%d not found", req.CompanyID)
			return nil, ErrCompanyNotFound
		default:
			s.logger.Error("Create: repository error for company=%d: %v", req.CompanyID, err)
			return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Create: successfully created service id=%d", service.ID)
	return models.FromDomainService(service), nil
}

// GetByID получает услугу компании по ID
func (s *Service) GetByID(ctx context.Context, companyID, id int64) (*models.ServiceResponse, error) {
	s.logger.Info("GetByID: fetching service id=%d of company=%d", id, companyID)

	service, err := s.serviceRepo.GetByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%d not found in company=%d", id, companyID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(service), nil
}

// List возвращает страницу услуг компании
func (s *Service) List(ctx context.Context, companyID int64, page domain.Page) (*models.ServiceListResponse, error) {
	page = page.Normalize()
	s.logger.Info("List: fetching services for company=%d, offset=%d, limit=%d", companyID, page.Offset, page.Limit)

	services, err := s.serviceRepo.List(ctx, companyID, page)
	if err != nil {
		s.logger.Error("List: repository error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// validateService проверяет имя, длительность и цену услуги
func validateService(req *models.CreateServiceRequest) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.Name) < domain.MinServiceNameLength {
		return fmt.Errorf("%w: name must be at least %d characters", ErrInvalidInput, domain.MinServiceNameLength)
	}

	if req.DurationMinutes <= 0 || req.DurationMinutes > domain.MaxServiceDuration {
		return fmt.Errorf("%w: durationMinutes must be between 1 and %d", ErrInvalidInput, domain.MaxServiceDuration)
	}

	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	return nil
}
