package handlers

import (
	"github.com/SAP-F-2025/submission-relay/internal/services"
	"github.com/SAP-F-2025/submission-relay/internal/utils"
	"github.com/gin-gonic/gin"
)

// RelayPaths are the paths the relay answers on: the root and the path the
// test client used when this ran as a serverless function.
var RelayPaths = []string{"/", "/api/telegram"}

type HandlerManager struct {
	relayHandler *RelayHandler
	logger       utils.Logger
}

func NewHandlerManager(relayService services.RelayService, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		relayHandler: NewRelayHandler(relayService, logger),
		logger:       logger,
	}
}

// NewRouter builds a gin engine with the middleware stack and all routes
func (hm *HandlerManager) NewRouter() *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		utils.RequestID(hm.logger),
		utils.LoggerMiddleware(hm.logger),
		CORSMiddleware(),
	)
	hm.SetupRoutes(router)
	return router
}

// SetupRoutes sets up all routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", hm.relayHandler.HealthCheck)

	for _, path := range RelayPaths {
		router.OPTIONS(path, hm.relayHandler.Preflight)
		router.POST(path, hm.relayHandler.SubmitTest)
	}

	// Any other method on a relay path gets 405 instead of 404.
	router.HandleMethodNotAllowed = true
	router.NoMethod(hm.relayHandler.MethodNotAllowed)
}
