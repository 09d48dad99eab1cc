package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модели

// CreateCompanyRequest запрос на создание компании
type CreateCompanyRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	URL     string `json:"url"`
}

// ToDomain конвертирует запрос в domain модель
func (r *CreateCompanyRequest) ToDomain() *domain.Company {
	return &domain.Company{
		Name:    r.Name,
		Address: r.Address,
		Phone:   r.Phone,
		URL:     r.URL,
	}
}

// Response модели

// CompanyResponse ответ с данными компании
type CompanyResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

// CompanyListResponse ответ со списком компаний
type CompanyListResponse struct {
	Companies []CompanyResponse `json:"companies"`
}

// FromDomainCompany конвертирует domain модель в DTO
func FromDomainCompany(c *domain.Company) *CompanyResponse {
	if c == nil {
		return nil
	}

	return &CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		Phone:     c.Phone,
		URL:       c.URL,
		CreatedAt: c.CreatedAt,
	}
}

// FromDomainCompanyList конвертирует список domain моделей в DTO
func FromDomainCompanyList(companies []*domain.Company) *CompanyListResponse {
	resp := &CompanyListResponse{
		Companies: make([]CompanyResponse, 0, len(companies)),
	}

	for _, c := range companies {
		resp.Companies = append(resp.Companies, *FromDomainCompany(c))
	}

	return resp
}
