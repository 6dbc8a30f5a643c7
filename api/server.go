package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/dan13ram/mint-queue/app"
	"github.com/dan13ram/mint-queue/models"
	"github.com/dan13ram/mint-queue/payment"
	"github.com/dan13ram/mint-queue/queue"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const (
	HTTPServiceName = "http"

	shutdownTimeout = 10 * time.Second
	maxBodyBytes    = 1 << 20
)

type Enqueuer interface {
	Enqueue(ctx context.Context, event *payment.Event) (*models.MintRequest, bool, error)
}

type Dispatcher interface {
	ProcessNext(ctx context.Context) (models.DispatchResult, error)
}

type Poller interface {
	PollNext(ctx context.Context) (models.PollResult, error)
}

type HealthReporter interface {
	ServiceHealths() []models.ServiceHealth
}

type Server struct {
	store      queue.Store
	enqueuer   Enqueuer
	dispatcher Dispatcher
	poller     Poller
	health     HealthReporter
	verifier   *payment.Verifier
	adminToken string

	engine     *gin.Engine
	httpServer *http.Server
	wg         *sync.WaitGroup
	startedAt  time.Time
}

var _ app.Service = &Server{}

func (s *Server) routes() {
	r := s.engine

	r.GET("/health", s.handleHealth)
	r.GET("/metrics", gin.WrapH(app.Metrics.Handler()))

	v1 := r.Group("/v1")
	v1.POST("/webhooks/payment", s.handlePaymentWebhook)
	v1.POST("/pubsub/dispatch", s.handlePubSubDispatch)
	v1.GET("/mints/:ref", s.handleQueryStatus)

	admin := v1.Group("", s.requireAdmin())
	admin.GET("/mints", s.handleList)
	admin.POST("/mints/dispatch", s.handleDispatch)
	admin.POST("/mints/poll", s.handlePoll)
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Start() {
	log.Info("[API] Listening on ", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("[API] Server stopped: ", err)
	}
}

func (s *Server) Stop() {
	log.Debug("[API] Stopping server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error("[API] Error shutting down server: ", err)
	}
	log.Info("[API] Stopped server")
	s.wg.Done()
}

func (s *Server) Health() models.ServiceHealth {
	return models.ServiceHealth{
		Name:         HTTPServiceName,
		LastSyncTime: s.startedAt,
		NextSyncTime: time.Now(),
		Healthy:      true,
	}
}

func newEngine(allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())

	corsConfig := cors.DefaultConfig()
	if len(allowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowedOrigins
	}
	corsConfig.AddAllowHeaders("Authorization", payment.HeaderSignature, payment.HeaderTimestamp)
	r.Use(cors.New(corsConfig))

	return r
}

func NewServer(
	wg *sync.WaitGroup,
	store queue.Store,
	enqueuer Enqueuer,
	dispatcher Dispatcher,
	poller Poller,
	health HealthReporter,
) app.Service {
	if !app.Config.HTTP.Enabled {
		log.Debug("[API] HTTP server disabled")
		return app.NewEmptyService(wg)
	}
	return newServer(wg, store, enqueuer, dispatcher, poller, health)
}

func newServer(
	wg *sync.WaitGroup,
	store queue.Store,
	enqueuer Enqueuer,
	dispatcher Dispatcher,
	poller Poller,
	health HealthReporter,
) *Server {
	config := app.Config.HTTP

	s := &Server{
		store:      store,
		enqueuer:   enqueuer,
		dispatcher: dispatcher,
		poller:     poller,
		health:     health,
		verifier: &payment.Verifier{
			Secret:  config.WebhookSecret,
			MaxSkew: time.Duration(config.WebhookMaxSkewMillis) * time.Millisecond,
		},
		adminToken: config.AdminToken,
		engine:     newEngine(config.AllowedOrigins),
		wg:         wg,
		startedAt:  time.Now(),
	}
	s.routes()

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Port),
		Handler:           s.engine,
		ReadHeaderTimeout: 15 * time.Second,
	}

	log.Debug("[API] Initialized server")
	return s
}
