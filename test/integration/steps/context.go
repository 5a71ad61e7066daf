// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bakehouse/backend/internal/application/usecase/auth"
	"github.com/bakehouse/backend/internal/application/usecase/catalog"
	"github.com/bakehouse/backend/internal/application/usecase/expense"
	"github.com/bakehouse/backend/internal/application/usecase/finance"
	"github.com/bakehouse/backend/internal/application/usecase/order"
	"github.com/bakehouse/backend/internal/domain/entity"
	"github.com/bakehouse/backend/internal/infra/server/router"
	"github.com/bakehouse/backend/internal/integration/adapters"
	"github.com/bakehouse/backend/internal/integration/entrypoint/controller"
	"github.com/bakehouse/backend/internal/integration/entrypoint/middleware"
	"github.com/bakehouse/backend/internal/integration/persistence"
	"github.com/bakehouse/backend/internal/integration/persistence/model"
)

const testJWTSecret = "integration-test-secret"

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken string

	// Wiring shared with seeding steps
	db        *gorm.DB
	orderRepo persistenceOrderRepo
}

type persistenceOrderRepo interface {
	Create(ctx context.Context, order *entity.Order) error
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		// Disables the login rate limiter.
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			requestHeaders: make(map[string]string),
		}

		if err := tc.startServer(); err != nil {
			return ctx, err
		}

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerSeedSteps(ctx)
	registerResponseSteps(ctx)
}

// startServer wires the full application against a fresh in-memory database.
func (tc *TestContext) startServer() error {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to open test database: %w", err)
	}
	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
		&model.ExpenseModel{},
		&model.BreadCategoryModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate test database: %w", err)
	}
	tc.db = db

	userRepo := persistence.NewUserRepository(db)
	orderRepo := persistence.NewOrderRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	breadRepo := persistence.NewBreadRepository(db)
	financeRepo := persistence.NewFinanceRepository(db)
	tc.orderRepo = orderRepo

	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(testJWTSecret, time.Hour)
	allocator := order.NewNumberAllocator(orderRepo, "TB")

	authController := controller.NewAuthController(
		auth.NewRegisterUserUseCase(userRepo, passwordService),
		auth.NewLoginUserUseCase(userRepo, passwordService, tokenService),
		auth.NewListUsersUseCase(userRepo),
		auth.NewUpdateUserUseCase(userRepo, passwordService),
		auth.NewDeleteUserUseCase(userRepo),
	)
	financeController := controller.NewFinanceController(
		finance.NewGetMonthlySummaryUseCase(financeRepo, nil),
		finance.NewGetTrendsUseCase(financeRepo, nil),
		finance.NewGetIncomeCompositionUseCase(financeRepo),
		finance.NewGetExpenseCompositionUseCase(financeRepo),
		finance.NewGetTransactionsUseCase(financeRepo),
	)
	orderController := controller.NewOrderController(
		order.NewCreateOrderUseCase(orderRepo, allocator),
		order.NewListOrdersUseCase(orderRepo),
		order.NewUpdateOrderUseCase(orderRepo),
		order.NewUpdateOrderStatusUseCase(orderRepo),
		order.NewDeleteOrderUseCase(orderRepo),
	)
	expenseController := controller.NewExpenseController(
		expense.NewCreateExpenseUseCase(expenseRepo),
		expense.NewListExpensesUseCase(expenseRepo),
		expense.NewListCategoriesUseCase(expenseRepo),
		expense.NewUpdateExpenseUseCase(expenseRepo),
		expense.NewDeleteExpenseUseCase(expenseRepo),
	)
	catalogController := controller.NewCatalogController(
		catalog.NewListCategoriesUseCase(categoryRepo),
		catalog.NewCreateCategoryUseCase(categoryRepo),
		catalog.NewCreateBreadUseCase(breadRepo, categoryRepo),
		catalog.NewListBreadsUseCase(breadRepo),
		catalog.NewUpdateBreadUseCase(breadRepo),
		catalog.NewDeleteBreadUseCase(breadRepo),
	)
	healthController := controller.NewHealthController(func() bool { return true })

	r := router.NewRouter(
		healthController,
		authController,
		financeController,
		orderController,
		expenseController,
		catalogController,
		middleware.NewRateLimiter(),
		middleware.NewAuthMiddleware(tokenService),
	)
	tc.engine = r.Setup("test")
	tc.server = httptest.NewServer(tc.engine)
	return nil
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^I am authenticated as an admin$`, iAmAuthenticatedAsAnAdmin)
	ctx.Step(`^I am authenticated as staff$`, iAmAuthenticatedAsStaff)
}

// registerSeedSteps registers database seeding steps.
func registerSeedSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the following completed orders exist:$`, theFollowingCompletedOrdersExist)
	ctx.Step(`^the following expenses exist:$`, theFollowingExpensesExist)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	return doRequest(ctx, method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	return doRequest(ctx, method, endpoint, bytes.NewBufferString(body.Content))
}

func doRequest(ctx context.Context, method, endpoint string, body io.Reader) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	req, err := http.NewRequest(method, tc.server.URL+endpoint, body)
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return ctx, fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return ctx, fmt.Errorf("failed to read response body: %w", err)
	}

	return SetTestContext(ctx, tc), nil
}

func iSetHeaderTo(ctx context.Context, header, value string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return SetTestContext(ctx, tc), nil
}

func iAmAuthenticatedAsAnAdmin(ctx context.Context) (context.Context, error) {
	return authenticate(ctx, "admin", "admin")
}

func iAmAuthenticatedAsStaff(ctx context.Context) (context.Context, error) {
	return authenticate(ctx, "clerk", "staff")
}

// authenticate registers a user through the real endpoints and keeps the
// issued token for subsequent requests.
func authenticate(ctx context.Context, username, role string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	register := fmt.Sprintf(`{
		"username": %q,
		"email": "%s@bakehouse.test",
		"password": "password1234",
		"role": %q
	}`, username, username, role)
	ctx, err := doRequest(ctx, http.MethodPost, "/api/auth/register", bytes.NewBufferString(register))
	if err != nil {
		return ctx, err
	}
	tc = GetTestContext(ctx)
	if tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("failed to register %s: %s", username, string(tc.responseBody))
	}

	login := fmt.Sprintf(`{"username": %q, "password": "password1234"}`, username)
	ctx, err = doRequest(ctx, http.MethodPost, "/api/auth/login", bytes.NewBufferString(login))
	if err != nil {
		return ctx, err
	}
	tc = GetTestContext(ctx)
	if tc.response.StatusCode != http.StatusOK {
		return ctx, fmt.Errorf("failed to log in %s: %s", username, string(tc.responseBody))
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(tc.responseBody, &payload); err != nil {
		return ctx, fmt.Errorf("failed to parse login response: %w", err)
	}
	tc.accessToken = payload.Token
	return SetTestContext(ctx, tc), nil
}

func theFollowingCompletedOrdersExist(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		orderDate, err := time.ParseInLocation("2006-01-02", row["date"], time.UTC)
		if err != nil {
			return fmt.Errorf("bad order date %q: %w", row["date"], err)
		}
		total, err := decimal.NewFromString(row["total"])
		if err != nil {
			return fmt.Errorf("bad order total %q: %w", row["total"], err)
		}

		breadType := row["bread_type"]
		if breadType == "" {
			breadType = "sourdough"
		}

		seeded := &entity.Order{
			Number:       row["number"],
			CustomerName: "Seeded customer",
			OrderDate:    orderDate,
			Status:       entity.OrderStatusCompleted,
			Discount:     decimal.Zero,
			DeliveryFee:  decimal.Zero,
			TotalAmount:  total,
			Items: []entity.OrderItem{
				{Name: breadType, BreadType: breadType, Price: total, Quantity: 1},
			},
		}
		if err := tc.orderRepo.Create(context.Background(), seeded); err != nil {
			return fmt.Errorf("failed to seed order %s: %w", row["number"], err)
		}
	}
	return nil
}

func theFollowingExpensesExist(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		expenseDate, err := time.ParseInLocation("2006-01-02", row["date"], time.UTC)
		if err != nil {
			return fmt.Errorf("bad expense date %q: %w", row["date"], err)
		}
		amount, err := decimal.NewFromString(row["amount"])
		if err != nil {
			return fmt.Errorf("bad expense amount %q: %w", row["amount"], err)
		}

		seeded := model.ExpenseModel{
			ExpenseDate: expenseDate,
			Category:    row["category"],
			Amount:      amount,
			Note:        row["note"],
			CreatedBy:   "seed",
			CreatedAt:   time.Now().UTC(),
		}
		if err := tc.db.Create(&seeded).Error; err != nil {
			return fmt.Errorf("failed to seed expense: %w", err)
		}
	}
	return nil
}

// tableRows maps a godog table's data rows onto its header row.
func tableRows(table *godog.Table) ([]map[string]string, error) {
	if len(table.Rows) < 2 {
		return nil, fmt.Errorf("table needs a header row and at least one data row")
	}

	header := make([]string, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		header[i] = cell.Value
	}

	rows := make([]map[string]string, 0, len(table.Rows)-1)
	for _, tableRow := range table.Rows[1:] {
		row := make(map[string]string, len(header))
		for i, cell := range tableRow.Cells {
			row[header[i]] = cell.Value
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	value, ok := data[field]
	if !ok {
		return fmt.Errorf("field '%s' not found in response", field)
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}

	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	if _, ok := data[field]; !ok {
		return fmt.Errorf("field '%s' not found in response", field)
	}

	return nil
}
