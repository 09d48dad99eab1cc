package companies

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	companyRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/company"
	"github.com/m04kA/SMC-AppointmentService/internal/service/companies/models"
)

type mockCompanyRepo struct {
	companies []*domain.Company
	lastPage  domain.Page
	err       error
}

func (m *mockCompanyRepo) Create(_ context.Context, c *domain.Company) (*domain.Company, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, existing := range m.companies {
		if existing.Name == c.Name {
			return nil, companyRepo.ErrAlreadyExists
		}
	}
	c.ID = int64(len(m.companies) + 1)
	m.companies = append(m.companies, c)
	return c, nil
}

func (m *mockCompanyRepo) GetByID(_ context.Context, id int64) (*domain.Company, error) {
	for _, c := range m.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, companyRepo.ErrCompanyNotFound
}

func (m *mockCompanyRepo) List(_ context.Context, page domain.Page) ([]*domain.Company, error) {
	m.lastPage = page
	return m.companies, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_Create(t *testing.T) {
	repo := &mockCompanyRepo{}
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateCompanyRequest{Name: "  Barber Shop ", Phone: "+7 999"})
	require.NoError(t, err)
	assert.Equal(t, "Barber Shop", created.Name)

	_, err = svc.Create(ctx, &models.CreateCompanyRequest{Name: "Barber Shop"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = svc.Create(ctx, &models.CreateCompanyRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo.err = errors.New("connection refused")
	_, err = svc.Create(ctx, &models.CreateCompanyRequest{Name: "Other"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_GetByIDAndList(t *testing.T) {
	repo := &mockCompanyRepo{}
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateCompanyRequest{Name: "Barber Shop"})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetByID(ctx, 42)
	assert.ErrorIs(t, err, ErrCompanyNotFound)

	list, err := svc.List(ctx, domain.Page{Limit: 10000})
	require.NoError(t, err)
	assert.Len(t, list.Companies, 1)
	assert.Equal(t, uint64(domain.MaxPageLimit), repo.lastPage.Limit)
}
