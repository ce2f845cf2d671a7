package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/catalog"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/config"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/logger"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/observability"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/gateways/assistant"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/gateways/cropvision"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/gateways/weather"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/schemes"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/synthetic"
)

// WeatherService is what the weather and chat handlers need from the weather
// gateway.
type WeatherService interface {
	Fetch(ctx context.Context, lat, lon float64, haveCoords bool) (*weather.Snapshot, string)
}

// PriceService fetches rows from the government price API.
type PriceService interface {
	Fetch(ctx context.Context, state, commodity string) ([]synthetic.PriceQuantum, error)
}

// MarketService fetches rows from the market portal scrape.
type MarketService interface {
	FetchCommodity(ctx context.Context, commodity, stateName string) ([]synthetic.PriceQuantum, error)
	FetchOverview(ctx context.Context, stateName string, commodities []catalog.Commodity) []synthetic.PriceQuantum
}

// AssistantService answers chat messages.
type AssistantService interface {
	Answer(ctx context.Context, req assistant.AnswerRequest) (reply string, source string)
}

// VisionService diagnoses crop photos.
type VisionService interface {
	Analyze(ctx context.Context, imageData []byte, mimeType, language string) (*cropvision.Assessment, string)
}

// Dependencies collects everything the handlers use. Tests swap individual
// services for stubs.
type Dependencies struct {
	Weather   WeatherService
	Prices    PriceService
	Market    MarketService
	Assistant AssistantService
	Vision    VisionService
	Schemes   *schemes.Service
	Generator *synthetic.Generator
	Config    *config.Config
	Logger    logger.Logger
	Obs       *observability.Observability
}

// Server wraps the gin engine and the underlying HTTP server.
type Server struct {
	engine *gin.Engine
	http   *http.Server
	deps   *Dependencies
	logger logger.Logger
}

func New(deps *Dependencies) *Server {
	if deps.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestID())
	engine.Use(CORS(deps.Config.Server.CORSOrigins))
	engine.Use(RequestLogger(deps.Logger))
	engine.Use(Metrics(deps.Obs))

	s := &Server{
		engine: engine,
		deps:   deps,
		logger: deps.Logger,
		http: &http.Server{
			Addr:              ":" + deps.Config.Server.Port,
			Handler:           engine,
			ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeoutDuration(),
		},
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", s.handleHealth)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.engine.Group("/api")
	api.POST("/chat", s.handleChat)
	api.POST("/crop-image", s.handleCropImage)
	api.GET("/weather", s.handleWeather)
	api.GET("/prices", s.handlePrices)
	api.GET("/prices/live", s.handleLivePrices)
	api.GET("/prices/market", s.handleMarketPrices)
	api.GET("/schemes", s.handleSchemes)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", map[string]interface{}{
		"addr": s.http.Addr,
	})
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	timeout := s.deps.Config.Server.ShutdownTimeoutDuration()
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}
