package list_appointments

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// ToServiceRequest собирает запрос к сервису из query параметров
func ToServiceRequest(companyID int64, query url.Values, page domain.Page) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{
		CompanyID: companyID,
		Page:      page,
	}

	var err error
	if req.Date, err = optionalDate(query, "date"); err != nil {
		return nil, err
	}
	if req.From, err = optionalDate(query, "from"); err != nil {
		return nil, err
	}
	if req.To, err = optionalDate(query, "to"); err != nil {
		return nil, err
	}

	if raw := query.Get("serviceId"); raw != "" {
		serviceID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("serviceId: %w", err)
		}
		req.ServiceID = ptr.Ptr(serviceID)
	}

	return req, nil
}

func optionalDate(query url.Values, key string) (*types.Date, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}
	d, err := types.NewDateFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return ptr.Ptr(d), nil
}
