package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/hackteams/internal/joinrequest/model"
	"github.com/festy23/hackteams/internal/middleware"
	teamModel "github.com/festy23/hackteams/internal/team/model"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Submit(ctx context.Context, teamID, userID string) (*model.JoinRequest, error) {
	args := m.Called(ctx, teamID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JoinRequest), args.Error(1)
}

func (m *mockService) Accept(ctx context.Context, requestID, callerID string) (*teamModel.TeamResponse, error) {
	args := m.Called(ctx, requestID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*teamModel.TeamResponse), args.Error(1)
}

func (m *mockService) Reject(ctx context.Context, requestID, callerID string) error {
	args := m.Called(ctx, requestID, callerID)
	return args.Error(0)
}

func (m *mockService) ListPending(ctx context.Context, teamID, callerID string) ([]model.JoinRequest, error) {
	args := m.Called(ctx, teamID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.JoinRequest), args.Error(1)
}

func setupRouter(svc *mockService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Next()
	})

	h := New(svc, zap.NewNop().Sugar())
	r.POST("/teams/:id/requests", h.Submit)
	r.GET("/teams/:id/requests", h.ListPending)
	r.POST("/requests/:id/accept", h.Accept)
	r.POST("/requests/:id/reject", h.Reject)
	return r
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Error.Code
}

func TestHandler_Submit(t *testing.T) {
	t.Run("created request comes back as 201", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Submit", mock.Anything, "team-1", "bob").
			Return(&model.JoinRequest{ID: "req-1", TeamID: "team-1", UserID: "bob", Status: model.StatusPending}, nil)

		r := setupRouter(svc, "bob")
		req := httptest.NewRequest(http.MethodPost, "/teams/team-1/requests", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var got model.JoinRequest
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "req-1", got.ID)
		assert.Equal(t, model.StatusPending, got.Status)
	})

	t.Run("duplicate pending maps to 409", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Submit", mock.Anything, "team-1", "bob").Return(nil, model.ErrDuplicatePending)

		r := setupRouter(svc, "bob")
		req := httptest.NewRequest(http.MethodPost, "/teams/team-1/requests", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "DUPLICATE_PENDING", errorCode(t, w.Body.Bytes()))
	})

	t.Run("unknown team maps to 404", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Submit", mock.Anything, "ghost", "bob").Return(nil, teamModel.ErrTeamNotFound)

		r := setupRouter(svc, "bob")
		req := httptest.NewRequest(http.MethodPost, "/teams/ghost/requests", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_Accept(t *testing.T) {
	t.Run("returns the updated team", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Accept", mock.Anything, "req-1", "alice").
			Return(&teamModel.TeamResponse{ID: "team-1", ActiveCount: 2}, nil)

		r := setupRouter(svc, "alice")
		req := httptest.NewRequest(http.MethodPost, "/requests/req-1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var got teamModel.TeamResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, 2, got.ActiveCount)
	})

	t.Run("error mapping", func(t *testing.T) {
		tests := []struct {
			name       string
			err        error
			wantStatus int
			wantCode   string
		}{
			{"non-leader caller", teamModel.ErrNotLeader, http.StatusForbidden, "NOT_LEADER"},
			{"full team", teamModel.ErrTeamFull, http.StatusConflict, "TEAM_FULL"},
			{"already resolved", model.ErrRequestNotPending, http.StatusConflict, "REQUEST_NOT_PENDING"},
			{"missing request", model.ErrRequestNotFound, http.StatusNotFound, "NOT_FOUND"},
			{"write conflict", teamModel.ErrVersionConflict, http.StatusConflict, "CONFLICT"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := new(mockService)
				svc.On("Accept", mock.Anything, "req-1", "alice").Return(nil, tt.err)

				r := setupRouter(svc, "alice")
				req := httptest.NewRequest(http.MethodPost, "/requests/req-1/accept", nil)
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				assert.Equal(t, tt.wantStatus, w.Code)
				assert.Equal(t, tt.wantCode, errorCode(t, w.Body.Bytes()))
			})
		}
	})
}

func TestHandler_Reject(t *testing.T) {
	t.Run("rejection returns 204", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Reject", mock.Anything, "req-1", "alice").Return(nil)

		r := setupRouter(svc, "alice")
		req := httptest.NewRequest(http.MethodPost, "/requests/req-1/reject", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("internal errors stay opaque", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Reject", mock.Anything, "req-1", "alice").Return(assert.AnError)

		r := setupRouter(svc, "alice")
		req := httptest.NewRequest(http.MethodPost, "/requests/req-1/reject", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	})
}

func TestHandler_ListPending(t *testing.T) {
	t.Run("wraps requests in an object", func(t *testing.T) {
		svc := new(mockService)
		svc.On("ListPending", mock.Anything, "team-1", "alice").
			Return([]model.JoinRequest{{ID: "req-1"}, {ID: "req-2"}}, nil)

		r := setupRouter(svc, "alice")
		req := httptest.NewRequest(http.MethodGet, "/teams/team-1/requests", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var got struct {
			Requests []model.JoinRequest `json:"requests"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(t, got.Requests, 2)
	})

	t.Run("non-leader is forbidden", func(t *testing.T) {
		svc := new(mockService)
		svc.On("ListPending", mock.Anything, "team-1", "mallory").Return(nil, teamModel.ErrNotLeader)

		r := setupRouter(svc, "mallory")
		req := httptest.NewRequest(http.MethodGet, "/teams/team-1/requests", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
