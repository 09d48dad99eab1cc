package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

func TestPathInt64(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "42", want: 42},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"companyId": tt.raw})

			got, err := PathInt64(r, "companyId")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPathParam)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePage(t *testing.T) {
	page, err := ParsePage(httptest.NewRequest(http.MethodGet, "/?offset=20&limit=10", nil))
	require.NoError(t, err)
	assert.Equal(t, domain.Page{Offset: 20, Limit: 10}, page)

	page, err = ParsePage(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, uint64(domain.DefaultPageLimit), page.Limit)

	page, err = ParsePage(httptest.NewRequest(http.MethodGet, "/?limit=100000", nil))
	require.NoError(t, err)
	assert.Equal(t, uint64(domain.MaxPageLimit), page.Limit)

	_, err = ParsePage(httptest.NewRequest(http.MethodGet, "/?offset=-1", nil))
	assert.ErrorIs(t, err, ErrInvalidPagination)
}

func TestVerdictStatus(t *testing.T) {
	assert.Equal(t, http.StatusConflict, VerdictStatus(domain.VerdictRejectedOverlap))
	assert.Equal(t, http.StatusNotFound, VerdictStatus(domain.VerdictRejectedUnknownService))
	assert.Equal(t, http.StatusBadRequest, VerdictStatus(domain.VerdictRejectedClosedDay))
	assert.Equal(t, http.StatusBadRequest, VerdictStatus(domain.VerdictRejectedNoBusinessHours))
	assert.Equal(t, http.StatusBadRequest, VerdictStatus(domain.VerdictRejectedOutsideBusinessHours))
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondConflict(rec, "занято")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"занято"}`, rec.Body.String())
}
