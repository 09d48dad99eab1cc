package companies

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	companyRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/company"
	"github.com/m04kA/SMC-AppointmentService/internal/service/companies/models"
)

// Service сервис для работы с компаниями
type Service struct {
	companyRepo CompanyRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса компаний
func NewService(companyRepo CompanyRepository, logger Logger) *Service {
	return &Service{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

// Create создает компанию. Имя обязательно и уникально.
func (s *Service) Create(ctx context.Context, req *models.CreateCompanyRequest) (*models.CompanyResponse, error) {
	s.logger.Info("Create: creating company name=%q", req.Name)

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		s.logger.Warn("Create: empty company name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	company, err := s.companyRepo.Create(ctx, req.ToDomain())
	if err != nil {
		if errors.Is(err, companyRepo.ErrAlreadyExists) {
			s.logger.Warn("Create: company name=%q already exists", req.Name)
			return nil, ErrAlreadyExists
		}
		s.logger.Error("Create: repository error for company name=%q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created company id=%d", company.ID)
	return models.FromDomainCompany(company), nil
}

// GetByID получает компанию по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CompanyResponse, error) {
	s.logger.Info("GetByID: fetching company id=%d", id)

	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, companyRepo.ErrCompanyNotFound) {
			s.logger.Warn("GetByID: company id=%d not found", id)
			return nil, ErrCompanyNotFound
		}
		s.logger.Error("GetByID: repository error for company id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCompany(company), nil
}

// List возвращает страницу компаний
func (s *Service) List(ctx context.Context, page domain.Page) (*models.CompanyListResponse, error) {
	page = page.Normalize()
	s.logger.Info("List: fetching companies offset=%d, limit=%d", page.Offset, page.Limit)

	companies, err := s.companyRepo.List(ctx, page)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d companies", len(companies))
	return models.FromDomainCompanyList(companies), nil
}
