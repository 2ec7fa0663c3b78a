package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/stockroom/inventory-api/docs"
	v1 "github.com/stockroom/inventory-api/internal/api/handler/v1"
	"github.com/stockroom/inventory-api/internal/api/middleware"
	"github.com/stockroom/inventory-api/internal/config"
	"github.com/stockroom/inventory-api/internal/repository"
	"github.com/stockroom/inventory-api/internal/repository/dao"
	"github.com/stockroom/inventory-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	itemHandler := s.initItemHandler(db)
	reportHandler := s.initReportHandler(db)
	s.MountHandlers(itemHandler, reportHandler)

	return s
}

func (s *Server) initItemHandler(db *gorm.DB) *v1.ItemHandler {
	itemDAO := dao.NewItemDAO(db)
	repo := repository.NewItemRepository(itemDAO)
	svc := service.NewItemService(repo)
	handler := v1.NewItemHandler(svc)

	return handler
}

func (s *Server) initReportHandler(db *gorm.DB) *v1.ReportHandler {
	itemDAO := dao.NewItemDAO(db)
	repo := repository.NewItemRepository(itemDAO)
	svc := service.NewReportService(repo)
	handler := v1.NewReportHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(itemHandler *v1.ItemHandler, reportHandler *v1.ReportHandler) {
	items := s.Router.Group("/items")
	{
		items.POST("", itemHandler.HandleCreateItem)
		items.GET("", itemHandler.HandleListItems)
		items.PUT("/:itemID", itemHandler.HandleUpdateItem)
		items.PUT("/:itemID/quantity", itemHandler.HandleAdjustQuantity)
		items.DELETE("/:itemID", itemHandler.HandleDeleteItem)
	}

	reports := s.Router.Group("/reports")
	{
		reports.GET("/summary", reportHandler.HandleGetSummary)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.Title = "Inventory API"
	docs.SwaggerInfo.Description = "Inventory tracking service with item CRUD and summary reports."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
