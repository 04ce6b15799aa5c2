package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"procuredesk/internal/adapter/http/handlers"
	repository2 "procuredesk/internal/adapter/persistence/repository"
	"procuredesk/internal/infrastructure/database"
	"procuredesk/internal/infrastructure/evaluation"
	"procuredesk/internal/infrastructure/notification"
	"procuredesk/internal/usecase"
	"procuredesk/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

var router = gin.Default()

const (
	defaultPort     = "8080"
	shutdownTimeout = 5 * time.Second
)

// Run wires the store, the evaluator and the scheduler, starts the
// background watch loop and serves the operator API. Cancelling ctx
// (SIGINT/SIGTERM in main) stops the scheduler and shuts the server
// down gracefully, so Run returns and the process can exit.
func Run(ctx context.Context) {
	setMiddlewares()

	scheduler := getRoutes()

	go func() {
		if err := scheduler.Run(ctx); err != nil {
			log.Printf("[scheduler] stopped: %v", err)
		}
	}()

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = defaultPort
	}
	srv := &http.Server{Addr: ":" + port, Handler: router}
	if err := serve(ctx, srv); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
	log.Printf("[http] server stopped")
}

// serve runs srv until it fails on its own or ctx is cancelled, in which
// case the server is drained and ctx's error is returned.
func serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	<-errCh
	return ctx.Err()
}

func getRoutes() *usecase.RequirementScheduler {
	ddb := database.ConnectDynamoDB()

	requirementRepo := repository2.NewRequirementDynamoRepository(ddb)

	var evaluator interfaces.IVendorEvaluator
	openaiEvaluator, err := evaluation.NewOpenAIEvaluator(os.Getenv("OPENAI_API_KEY"))
	if err != nil {
		log.Printf("OpenAI evaluator not configured: %v", err)
	} else {
		evaluator = openaiEvaluator
	}

	notifier := notification.NewWebhookNotifier(os.Getenv("VENDOR_WEBHOOK_URL"))

	clock := usecase.NewRealClock()
	evaluationUseCase := usecase.NewEvaluationUseCase(requirementRepo, evaluator, clock)
	scheduler := usecase.NewRequirementScheduler(
		requirementRepo,
		notifier,
		evaluationUseCase,
		clock,
		usecase.SchedulerConfig{
			PollInterval:    envSeconds("POLL_INTERVAL_SECONDS"),
			DiscoveryWindow: envSeconds("DISCOVERY_WINDOW_SECONDS"),
		},
	)

	requirementHandler := handlers.NewRequirementHandler(evaluationUseCase)
	schedulerHandler := handlers.NewSchedulerHandler(scheduler)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProcurementRoutes(v1, requirementHandler, schedulerHandler)

	return scheduler
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// envSeconds reads a duration in whole seconds; zero means "use the
// scheduler default".
func envSeconds(key string) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return 0
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		log.Printf("[config] ignoring invalid %s=%q", key, raw)
		return 0
	}
	return time.Duration(secs) * time.Second
}
