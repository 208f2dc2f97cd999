package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	crmapp "github.com/merza/backend/internal/application/crm"
	"github.com/merza/backend/internal/domain/crm"
	"github.com/merza/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLeadRepository is a mock implementation of crm.LeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) List(ctx context.Context) ([]crm.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]crm.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id int) (*crm.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crm.Lead), args.Error(1)
}

func (m *MockLeadRepository) Add(ctx context.Context, lead crm.Lead) (crm.Lead, error) {
	args := m.Called(ctx, lead)
	return args.Get(0).(crm.Lead), args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, id int, patch crm.LeadPatch) (*crm.Lead, bool, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*crm.Lead), args.Bool(1), args.Error(2)
}

func (m *MockLeadRepository) Remove(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockCustomerRepository is a mock implementation of crm.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]crm.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]crm.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id int) (*crm.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crm.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Add(ctx context.Context, customer crm.Customer) (crm.Customer, error) {
	args := m.Called(ctx, customer)
	return args.Get(0).(crm.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, id int, patch crm.CustomerPatch) (*crm.Customer, bool, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*crm.Customer), args.Bool(1), args.Error(2)
}

func (m *MockCustomerRepository) Remove(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer crm.Customer) (bool, error) {
	args := m.Called(ctx, customer)
	return args.Bool(0), args.Error(1)
}

func newLeadTestContext(t *testing.T, method, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	c.Request = httptest.NewRequest(method, target, &buf)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestLeadHandler_List(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	customerRepo := new(MockCustomerRepository)
	h := NewLeadHandler(crmapp.NewLeadService(leadRepo, customerRepo))

	leads := []crm.Lead{
		{ID: 1, Name: "Dana", Status: crm.LeadStatusNew},
		{ID: 2, Name: "Omar", Status: crm.LeadStatusWon},
	}
	leadRepo.On("List", mock.Anything).Return(leads, nil)

	c, w := newLeadTestContext(t, "GET", "/api/v1/leads", nil)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool       `json:"success"`
		Data    []crm.Lead `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 2)
	leadRepo.AssertExpectations(t)
}

func TestLeadHandler_Add_UnknownFieldRejected(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	h := NewLeadHandler(crmapp.NewLeadService(leadRepo, new(MockCustomerRepository)))

	body := map[string]any{"name": "Dana", "company": "Acme", "bogusField": 1}
	c, w := newLeadTestContext(t, "POST", "/api/v1/leads", body)
	h.Add(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeInvalidInput, resp.Error.Code)
	leadRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestLeadHandler_Edit_MissingLeadEchoesPayload(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	customerRepo := new(MockCustomerRepository)
	h := NewLeadHandler(crmapp.NewLeadService(leadRepo, customerRepo))

	leadRepo.On("Update", mock.Anything, 99, mock.Anything).Return(nil, false, nil)

	body := map[string]any{"id": 99, "name": "Ghost Lead", "status": "contacted"}
	c, w := newLeadTestContext(t, "POST", "/api/v1/leads/edit", body)
	h.Edit(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool     `json:"success"`
		Data    crm.Lead `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 99, resp.Data.ID)
	assert.Equal(t, "Ghost Lead", resp.Data.Name)
	assert.Equal(t, crm.LeadStatusContacted, resp.Data.Status)
	leadRepo.AssertExpectations(t)
}

func TestLeadHandler_Edit_InvalidBody(t *testing.T) {
	h := NewLeadHandler(crmapp.NewLeadService(new(MockLeadRepository), new(MockCustomerRepository)))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/v1/leads/edit", bytes.NewBufferString("{not json"))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Edit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeInvalidInput, resp.Error.Code)
}

func TestLeadHandler_Delete_NotFound(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	h := NewLeadHandler(crmapp.NewLeadService(leadRepo, new(MockCustomerRepository)))

	leadRepo.On("Remove", mock.Anything, 7).Return(false, nil)

	c, w := newLeadTestContext(t, "DELETE", "/api/v1/leads/7", nil)
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	h.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
	leadRepo.AssertExpectations(t)
}

func TestLeadHandler_Delete_Success(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	h := NewLeadHandler(crmapp.NewLeadService(leadRepo, new(MockCustomerRepository)))

	leadRepo.On("Remove", mock.Anything, 3).Return(true, nil)

	c, w := newLeadTestContext(t, "DELETE", "/api/v1/leads/3", nil)
	c.Params = gin.Params{{Key: "id", Value: "3"}}
	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Lead deleted", resp.Message)
	leadRepo.AssertExpectations(t)
}
