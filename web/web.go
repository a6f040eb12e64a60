// Package web provides the HTTP server for the portal: routing, middleware
// wiring, and the background checkpoint job.
package web

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"

	"github.com/affaneka/portal/config"
	"github.com/affaneka/portal/database"
	"github.com/affaneka/portal/logger"
	"github.com/affaneka/portal/util/common"
	"github.com/affaneka/portal/web/controller"
	"github.com/affaneka/portal/web/job"
	"github.com/affaneka/portal/web/middleware"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// Server is the portal web server: gin engine, listener and cron scheduler.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	auth     *controller.AuthController
	account  *controller.AccountController
	prestasi *controller.ContentController
	karya    *controller.ContentController
	server   *controller.ServerController

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance with a cancellable context.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// initRouter initializes Gin, registers middleware and controllers and
// returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	engine.Use(middleware.Cors())
	engine.Use(middleware.RequestId())
	engine.Use(middleware.BodySizeLimit(maxBodyBytes))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	g := engine.Group("/")
	s.auth = controller.NewAuthController(g)
	s.account = controller.NewAccountController(g)
	s.prestasi = controller.NewContentController(g, "prestasi", database.AchievementTable)
	s.karya = controller.NewContentController(g, "karya", database.WorkTable)
	s.server = controller.NewServerController(g)

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

// startTask schedules background jobs.
func (s *Server) startTask() {
	// fold the sqlite WAL back into the db file once a day
	s.cron.AddJob("@daily", job.NewCheckpointJob())
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.cron = cron.New()
	s.cron.Start()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort("", strconv.Itoa(config.GetPort()))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return common.NewErrorf("listen on %s failed: %v", listenAddr, err)
	}
	logger.Info("web server running HTTP on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		defer common.Recover("serve http")
		_ = s.httpServer.Serve(listener)
	}()

	s.startTask()

	return nil
}

// Stop gracefully shuts down the web server and the cron scheduler.
func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}
