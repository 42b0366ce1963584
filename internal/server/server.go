package server

import (
	"errors"
	"net/http"

	"github.com/geekysharma31/closet-api/internal/config"
	"github.com/geekysharma31/closet-api/internal/handler"
	"github.com/geekysharma31/closet-api/internal/mail"
	"github.com/geekysharma31/closet-api/internal/repository"
	"github.com/geekysharma31/closet-api/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type Server struct {
	e        *echo.Echo
	itemRepo repository.ItemRepository
}

func New(repo repository.ItemRepository, cfg *config.Config, sender mail.Sender) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())
	e.HTTPErrorHandler = errorHandler

	catalogSvc := service.NewCatalogService(repo)
	itemHandler := handler.NewItemHandler(catalogSvc)

	enquirySvc := service.NewEnquiryService(sender, cfg.EnquiryFrom, cfg.EnquiryTo)
	enquiryHandler := handler.NewEnquiryHandler(enquirySvc)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	})

	e.Static("/public/uploads", cfg.UploadsDir)

	api := e.Group("/api")
	api.POST("/items", itemHandler.Create)
	api.GET("/items", itemHandler.List)
	api.POST("/enquire", enquiryHandler.Send)

	return &Server{e: e, itemRepo: repo}
}

// errorHandler turns every unhandled failure into a {"message": ...} body,
// keeping internals out of responses. Unmatched routes come through here as
// echo's 404.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	message := "Something went wrong"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if code == http.StatusNotFound {
			message = "Not Found"
		} else if s, ok := he.Message.(string); ok {
			message = s
		}
	}
	if err := c.JSON(code, handler.NewMessageResponse(message)); err != nil {
		c.Logger().Error(err)
	}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// SetDB injects a late-arriving database connection into the item repository.
func (s *Server) SetDB(db *gorm.DB) {
	if s.itemRepo != nil {
		s.itemRepo.SetDB(db)
	}
}

// Handler exposes the underlying mux for tests.
func (s *Server) Handler() http.Handler {
	return s.e
}
