package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/shift-reminder/internal/api/handlers/reminder"
	"github.com/aliskhannn/shift-reminder/internal/middlewares"
)

func New(handler *reminder.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	e.GET("/api/health", handler.Health)

	api := e.Group("/api/reminders")
	{
		api.POST("/trigger", handler.Trigger)
		api.GET("/failures", handler.Failures)
		api.GET("/history/:userId", handler.History)
	}

	return e
}
