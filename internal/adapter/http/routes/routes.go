package routes

import (
	"context"
	"fmt"

	_ "smart_laundry/docs" // swagger spec registration
	"smart_laundry/internal/adapter/http/handlers"
	"smart_laundry/internal/adapter/persistence/repository"
	"smart_laundry/internal/config"
	"smart_laundry/internal/infrastructure/database"
	"smart_laundry/internal/infrastructure/messaging"
	"smart_laundry/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Orders    *handlers.OrderHandler
	Expenses  *handlers.ExpenseHandler
	Dashboard *handlers.DashboardHandler
	Settings  *handlers.SettingsHandler
	Auth      *handlers.AuthHandler
}

// Run connects the store, wires the use cases and serves HTTP until the
// listener fails. Any store initialization error is fatal.
func Run(cfg config.Config) {
	h, err := buildHandlers(context.Background(), cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize the data store")
	}

	router := NewRouter(h)
	addr := ":" + cfg.Port
	logrus.WithField("addr", addr).Info("starting http server")
	if err := router.Run(addr); err != nil {
		logrus.WithError(err).Fatal("failed to startup the application")
	}
}

// NewRouter builds the gin engine with middlewares, swagger and /v1 routes.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLaundryRoutes(v1, h)
	return router
}

func buildHandlers(ctx context.Context, cfg config.Config) (Handlers, error) {
	initCtx, cancel := context.WithTimeout(ctx, cfg.StoreInitTimeout)
	defer cancel()

	ddb, err := database.ConnectDynamoDB(initCtx, cfg)
	if err != nil {
		return Handlers{}, fmt.Errorf("connect dynamodb: %w", err)
	}
	if err := database.EnsureTables(initCtx, ddb, cfg.Tables(), cfg.StoreInitTimeout); err != nil {
		return Handlers{}, err
	}

	orderRepo := repository.NewOrderDynamoRepository(ddb, cfg.OrdersTable)
	expenseRepo := repository.NewExpenseDynamoRepository(ddb, cfg.TransactionsTable)
	settingsRepo := repository.NewSettingsDynamoRepository(ddb, cfg.SettingsTable)
	userRepo := repository.NewUserDynamoRepository(ddb, cfg.UsersTable)

	authUseCase := usecase.NewAuthUseCase(userRepo)
	if err := authUseCase.SeedAdmin(initCtx); err != nil {
		return Handlers{}, fmt.Errorf("seed admin: %w", err)
	}

	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo, usecase.IntegrationDefaults{
		Token:   cfg.FonnteToken,
		Enabled: cfg.WAEnabledDefault,
	})
	gateway := messaging.NewFonnteGateway(cfg.FonnteBaseURL, cfg.WAGatewayTimeout)
	dispatcher := usecase.NewNotificationDispatcher(gateway)

	orderUseCase := usecase.NewOrderUseCase(orderRepo, settingsUseCase, dispatcher)
	expenseUseCase := usecase.NewExpenseUseCase(expenseRepo)
	summaryUseCase := usecase.NewSummaryUseCase(orderRepo, expenseRepo)

	return Handlers{
		Orders:    handlers.NewOrderHandler(orderUseCase),
		Expenses:  handlers.NewExpenseHandler(expenseUseCase),
		Dashboard: handlers.NewDashboardHandler(summaryUseCase),
		Settings:  handlers.NewSettingsHandler(settingsUseCase),
		Auth:      handlers.NewAuthHandler(authUseCase),
	}, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(RequestID())
	router.Use(RequestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logrus.WithField("panic", recovered).Error("recovered from panic")
		c.AbortWithStatus(500)
	}))
}
