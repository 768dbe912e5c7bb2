package routes

import (
	"net/http/httptest"
	"strings"
	"testing"

	"usana-backend/domain"
	"usana-backend/internal/api/handlers"
	"usana-backend/internal/middleware"
	"usana-backend/internal/utils"
	"usana-backend/pkg/insight"
	"usana-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSupplyChainApp() (*fiber.App, jwt.JWTService) {
	utils.InitValidator()
	app := fiber.New()
	jwtService := jwt.NewJWTService()

	cfg := &Config{
		App:            app,
		InsightHandler: handlers.NewInsightHandler(insight.NewInsightService(insight.NewDataset(), 0), utils.Validate),
		Middleware:     middleware.NewMiddleware(),
		JWTService:     jwtService,
	}
	cfg.SupplyChain()
	return app, jwtService
}

func doRequest(t *testing.T, app *fiber.App, method, target, token, body string) int {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()
	return res.StatusCode
}

func TestSupplyChainWriteRoutesRequireAdmin(t *testing.T) {
	app, jwtService := newSupplyChainApp()
	adminToken := jwtService.GenerateTokenUser(uuid.NewString(), domain.RoleAdmin)
	userToken := jwtService.GenerateTokenUser(uuid.NewString(), domain.RoleUser)

	statusBody := `{"status":"delivered"}`

	t.Run("delivery status update is admin only", func(t *testing.T) {
		code := doRequest(t, app, fiber.MethodPut, "/api/v1/supply-chain/deliveries/DEL-001/status", userToken, statusBody)
		assert.Equal(t, fiber.StatusForbidden, code)

		code = doRequest(t, app, fiber.MethodPut, "/api/v1/supply-chain/deliveries/DEL-001/status", adminToken, statusBody)
		assert.Equal(t, fiber.StatusOK, code)
	})

	t.Run("route optimization is admin only", func(t *testing.T) {
		code := doRequest(t, app, fiber.MethodPost, "/api/v1/supply-chain/optimize-routes", userToken, `{}`)
		assert.Equal(t, fiber.StatusForbidden, code)

		code = doRequest(t, app, fiber.MethodPost, "/api/v1/supply-chain/optimize-routes", adminToken, `{}`)
		assert.Equal(t, fiber.StatusOK, code)
	})

	t.Run("read routes stay open to any authenticated user", func(t *testing.T) {
		code := doRequest(t, app, fiber.MethodGet, "/api/v1/supply-chain/deliveries", userToken, "")
		assert.Equal(t, fiber.StatusOK, code)

		code = doRequest(t, app, fiber.MethodGet, "/api/v1/supply-chain/analytics", userToken, "")
		assert.Equal(t, fiber.StatusOK, code)
	})
}
