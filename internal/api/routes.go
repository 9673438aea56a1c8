package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "catalog_api/docs"
	"catalog_api/internal/api/handlers"
	"catalog_api/internal/service"
)

// Options 建立路由時需要的其他依賴
type Options struct {
	Welcome string
	DB      handlers.Pinger
	Logger  *slog.Logger
}

type route struct {
	method  string
	path    string
	handler gin.HandlerFunc
}

func SetupRoutes(r *gin.Engine, services *service.Services, opts Options) error {
	handlers.RegisterFieldNames()

	// 初始化 handlers
	foodHandler := handlers.NewFoodHandler(services.FoodService, opts.Logger)
	companyHandler := handlers.NewCompanyHandler(services.CompanyService, opts.Logger)
	studentHandler := handlers.NewStudentHandler(services.StudentService, opts.Logger)
	sayHandler := handlers.NewSayHandler(services.EchoClient, opts.Logger)
	healthHandler := handlers.NewHealthHandler(opts.DB, opts.Logger)

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "Route not found")
	})

	return registerRoutes(r, []route{
		{http.MethodGet, "/", handlers.Welcome(opts.Welcome)},
		{http.MethodGet, "/health", healthHandler.Health},

		// foods 有完整的 CRUD
		{http.MethodGet, "/foods", foodHandler.ListFoods},
		{http.MethodPost, "/foods", foodHandler.CreateFood},
		{http.MethodPut, "/foods/:id", foodHandler.UpdateFood},
		{http.MethodDelete, "/foods/:id", foodHandler.DeleteFood},

		// companies 與 students 只有查詢與新增
		{http.MethodGet, "/companies", companyHandler.ListCompanies},
		{http.MethodPost, "/companies", companyHandler.CreateCompany},
		{http.MethodGet, "/students", studentHandler.ListStudents},
		{http.MethodPost, "/students", studentHandler.CreateStudent},

		{http.MethodGet, "/say", sayHandler.Say},

		// API 文件
		{http.MethodGet, "/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler)},
	})
}

// registerRoutes 先檢查整張路由表，沒有重複才註冊
func registerRoutes(r gin.IRoutes, routes []route) error {
	seen := make(map[string]bool, len(routes))
	for _, rt := range routes {
		key := rt.method + " " + rt.path
		if seen[key] {
			return fmt.Errorf("duplicate route: %s", key)
		}
		seen[key] = true
	}

	for _, rt := range routes {
		r.Handle(rt.method, rt.path, rt.handler)
	}
	return nil
}
