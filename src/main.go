package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlog "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/hibiken/asynq"

	_ "Backend-FormCraft/docs"
	"Backend-FormCraft/src/config"
	"Backend-FormCraft/src/controllers"
	"Backend-FormCraft/src/database"
	"Backend-FormCraft/src/logger"
	"Backend-FormCraft/src/routes"
	"Backend-FormCraft/src/services/analytics"
	"Backend-FormCraft/src/services/auth"
	"Backend-FormCraft/src/services/forms"
	"Backend-FormCraft/src/services/notifications"
	"Backend-FormCraft/src/services/responses"
	"Backend-FormCraft/src/services/templates"
	"Backend-FormCraft/src/services/uploads"
	"Backend-FormCraft/src/services/views"
	"Backend-FormCraft/src/utils"
)

// @title           FormCraft API
// @version         1.0
// @description     Form builder with public submissions and analytics.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("❌ %v", err)
	}
	logger.SetLevel(cfg.LogLevel)
	utils.ConfigureJWT(cfg.JWTSecret, cfg.JWTTTL())

	// เชื่อมต่อกับ MongoDB
	db, err := database.ConnectMongoDB(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Fatalf("❌ Error connecting to the database: %v", err)
	}
	rdb := database.InitRedis(cfg.RedisURI)
	queue := database.InitAsynq()

	catalogue, err := templates.Load()
	if err != nil {
		logger.Fatalf("❌ %v", err)
	}
	blobs, err := uploads.NewDiskStore(cfg.UploadDir, cfg.PublicBaseURL, cfg.MaxUploadMB)
	if err != nil {
		logger.Fatalf("❌ %v", err)
	}

	cache := analytics.NewCache(rdb, cfg.AnalyticsCacheTTL())
	formSvc := forms.NewService(db)
	dispatcher := newDispatcher(cfg, queue, notifications.NewMongoStore(db))
	responseSvc := responses.NewService(db, formSvc, dispatcher, cache)
	viewSvc := views.NewService(db, formSvc, cache)
	analyticsSvc := analytics.NewService(db, formSvc, cache)
	authSvc := auth.NewService(db)

	app := fiber.New(fiber.Config{
		AppName:      "FormCraft API",
		BodyLimit:    (cfg.MaxUploadMB + 1) << 20,
		ErrorHandler: controllers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(helmet.New(helmet.Config{CrossOriginResourcePolicy: "cross-origin"}))
	app.Use(compress.New())
	app.Use(fiberlog.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ต้องเป็น false ถ้าใช้ "*"
	}))
	if cfg.RateLimitPerMinute > 0 {
		app.Use("/api", limiter.New(limiter.Config{
			Max:        cfg.RateLimitPerMinute,
			Expiration: time.Minute,
		}))
	}

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app, routes.Controllers{
		Auth:      controllers.NewAuthController(authSvc),
		Form:      controllers.NewFormController(formSvc, catalogue),
		Share:     controllers.NewShareController(formSvc, cfg.ShareURL),
		Template:  controllers.NewTemplateController(catalogue),
		Response:  controllers.NewResponseController(responseSvc),
		Analytics: controllers.NewAnalyticsController(analyticsSvc, viewSvc),
		Upload:    controllers.NewUploadController(blobs),
	}, cfg.UploadDir)

	go func() {
		logger.Infof("Server is running on port %s", cfg.AppPort)
		if err := app.Listen(fmt.Sprintf(":%s", cfg.AppPort)); err != nil {
			logger.Fatalf("❌ %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infof("Shutting down...")
	_ = app.ShutdownWithTimeout(10 * time.Second)
	if queue != nil {
		_ = queue.Close()
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = database.Disconnect(ctx)
}

// newDispatcher queues notifications when Redis is up and otherwise sends
// them inline. Without SMTP settings inline delivery is disabled.
func newDispatcher(cfg *config.Config, queue *asynq.Client, store notifications.Store) *notifications.Dispatcher {
	if queue != nil {
		return notifications.NewDispatcher(queue, nil)
	}
	logger.Warnf("⚠️ Redis not available → submission emails are sent inline")
	sender, err := notifications.NewSMTPSender(cfg)
	if err != nil {
		logger.Warnf("⚠️ %v. Submission emails are disabled", err)
		return notifications.NewDispatcher(nil, nil)
	}
	return notifications.NewDispatcher(nil, notifications.HandleNotifySubmission(sender, store, cfg.ResultsURL))
}
