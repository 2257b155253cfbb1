//go:build e2e
// +build e2e

package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	postgresDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/festy23/hackteams/internal/cleanup"
	"github.com/festy23/hackteams/internal/config"
	"github.com/festy23/hackteams/internal/database/migrate"
	hackathonRouter "github.com/festy23/hackteams/internal/hackathon/router"
	"github.com/festy23/hackteams/internal/health"
	joinrequestModel "github.com/festy23/hackteams/internal/joinrequest/model"
	joinrequestRouter "github.com/festy23/hackteams/internal/joinrequest/router"
	"github.com/festy23/hackteams/internal/middleware"
	teamModel "github.com/festy23/hackteams/internal/team/model"
	teamRepository "github.com/festy23/hackteams/internal/team/repository"
	teamRouter "github.com/festy23/hackteams/internal/team/router"
	teamService "github.com/festy23/hackteams/internal/team/service"
	userRepository "github.com/festy23/hackteams/internal/user/repository"
	userRouter "github.com/festy23/hackteams/internal/user/router"
)

const e2eSecret = "e2e-secret"

// E2ETestSuite runs the API in-process against a real PostgreSQL
// container, exercising the SQL migrations and the optimistic locking
// path that the sqlite-backed tests cannot.
type E2ETestSuite struct {
	suite.Suite
	ctx         context.Context
	pgContainer *postgres.PostgresContainer
	db          *gorm.DB
	server      *httptest.Server
	httpClient  *http.Client
}

// SetupSuite runs once before all tests
func (s *E2ETestSuite) SetupSuite() {
	s.ctx = context.Background()

	pgContainer, err := postgres.Run(s.ctx,
		"postgres:12-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(s.T(), err, "failed to start PostgreSQL container")
	s.pgContainer = pgContainer

	connStr, err := pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err, "failed to get connection string")

	db, err := gorm.Open(postgresDriver.Open(connStr), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(s.T(), err, "failed to connect to database")
	s.db = db

	// Apply the real SQL migrations, not AutoMigrate
	require.NoError(s.T(), os.Setenv("MIGRATIONS_PATH", "../../migrations"))
	require.NoError(s.T(), migrate.Migrate(db), "failed to apply migrations")

	s.server = httptest.NewServer(s.buildRouter())
	s.httpClient = &http.Client{Timeout: 30 * time.Second}
}

// buildRouter wires the same surface cmd/server exposes.
func (s *E2ETestSuite) buildRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop().Sugar()
	authCfg := config.AuthConfig{JWTSecret: e2eSecret}

	r := gin.New()
	r.Use(gin.Recovery())

	healthHandler := health.New(s.db, logger)
	r.GET("/health", healthHandler.Check)

	teamRouter.RegisterRoutes(r, s.db, logger, authCfg)
	joinrequestRouter.RegisterRoutes(r, s.db, logger, authCfg)
	userRouter.RegisterRoutes(r, s.db, logger, authCfg)
	hackathonRouter.RegisterRoutes(r, s.db, logger, authCfg)

	teamRepo := teamRepository.New(s.db)
	mutate := teamService.New(teamRepo, logger)
	userRepo := userRepository.New(s.db, logger)
	cleanupSvc := cleanup.New(teamRepo, mutate, userRepo, logger)

	internal := r.Group("/internal", middleware.AuthRequired(authCfg))
	internal.POST("/sweep", func(c *gin.Context) {
		stats, err := cleanupSvc.RunSweep(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{
				"code":    "INTERNAL_ERROR",
				"message": "internal server error",
			}})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	return r
}

// TearDownSuite runs once after all tests
func (s *E2ETestSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(s.ctx)
	}
}

// SetupTest runs before each test
func (s *E2ETestSuite) SetupTest() {
	s.cleanDatabase()
}

// cleanDatabase truncates all tables
func (s *E2ETestSuite) cleanDatabase() {
	s.db.Exec("TRUNCATE TABLE team_members CASCADE")
	s.db.Exec("TRUNCATE TABLE teams CASCADE")
	s.db.Exec("TRUNCATE TABLE join_requests CASCADE")
	s.db.Exec("TRUNCATE TABLE users CASCADE")
	s.db.Exec("TRUNCATE TABLE hackathons CASCADE")
}

// token signs an identity token for the given user.
func (s *E2ETestSuite) token(userID string) string {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(e2eSecret))
	require.NoError(s.T(), err, "failed to sign token")
	return signed
}

// doRequest performs an HTTP request as the given user and returns
// the response plus its body.
func (s *E2ETestSuite) doRequest(method, path, userID string, body interface{}) (*http.Response, []byte) {
	var reader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(s.T(), err, "failed to marshal request body")
		reader = strings.NewReader(string(bodyBytes))
	}

	req, err := http.NewRequest(method, s.server.URL+path, reader)
	require.NoError(s.T(), err, "failed to create request")
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+s.token(userID))
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err, "failed to perform request")

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err, "failed to read response body")
	resp.Body.Close()

	return resp, respBody
}

// doRequestNoFail performs an HTTP request and returns an error instead
// of failing the test. Safe to use in goroutines.
func (s *E2ETestSuite) doRequestNoFail(method, path, userID string, body interface{}) (*http.Response, []byte, error) {
	var reader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, nil, err
		}
		reader = strings.NewReader(string(bodyBytes))
	}

	req, err := http.NewRequest(method, s.server.URL+path, reader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+s.token(userID))
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}

	respBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return resp, nil, err
	}

	return resp, respBody, nil
}

// createTeam creates a team via the HTTP API
func (s *E2ETestSuite) createTeam(leaderID, hackathonID, name string, maxMembers int) *teamModel.TeamResponse {
	resp, respBody := s.doRequest("POST", "/teams", leaderID, map[string]interface{}{
		"hackathon_id": hackathonID,
		"name":         name,
		"max_members":  maxMembers,
	})
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode, "create team: %s", string(respBody))

	var result teamModel.TeamResponse
	require.NoError(s.T(), json.Unmarshal(respBody, &result), "failed to unmarshal team response")
	return &result
}

// getTeam reads the public roster
func (s *E2ETestSuite) getTeam(teamID string) (*http.Response, *teamModel.TeamResponse) {
	resp, respBody := s.doRequest("GET", "/teams/"+teamID, "", nil)
	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}

	var result teamModel.TeamResponse
	require.NoError(s.T(), json.Unmarshal(respBody, &result), "failed to unmarshal team response")
	return resp, &result
}

// submitRequest files a join request as the given user
func (s *E2ETestSuite) submitRequest(teamID, userID string) *joinrequestModel.JoinRequest {
	resp, respBody := s.doRequest("POST", fmt.Sprintf("/teams/%s/requests", teamID), userID, nil)
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode, "submit request: %s", string(respBody))

	var result joinrequestModel.JoinRequest
	require.NoError(s.T(), json.Unmarshal(respBody, &result), "failed to unmarshal request")
	return &result
}

// parseErrorResponse parses the error envelope
func (s *E2ETestSuite) parseErrorResponse(respBody []byte) (string, string) {
	var errResp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(s.T(), json.Unmarshal(respBody, &errResp), "failed to unmarshal error response")
	return errResp.Error.Code, errResp.Error.Message
}
