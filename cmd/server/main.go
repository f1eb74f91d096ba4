package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"teamsync/internal/catalog"
	"teamsync/internal/config"
	"teamsync/internal/db"
	mcpserver "teamsync/internal/mcp"
	"teamsync/internal/site"
)

//go:embed static
var staticFS embed.FS

var (
	configPath string
	portFlag   string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "teamsync",
	Short: "TeamSync Pro marketing site",
	Long:  "Serves the TeamSync Pro site: landing page, activity and event listings, pricing and testimonials.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if portFlag != "" {
			cfg.Server.Port = portFlag
		}
		logger, err = cfg.Logging.NewLogger()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file")
	rootCmd.PersistentFlags().StringVarP(&portFlag, "port", "p", "", "Listen port (overrides config and PORT)")

	rootCmd.AddCommand(serveCmd, activitiesCmd, eventsCmd, quoteCmd, seedCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openCatalog loads the catalog from the configured source.
func openCatalog(ctx context.Context) (*catalog.Service, func(), error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var (
		src     catalog.Source
		cleanup = func() {}
	)
	switch cfg.Catalog.Source {
	case config.SourceMongo:
		logger.Info("connecting to MongoDB", zap.String("database", cfg.Mongo.Database))
		database, err := db.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() {
			dctx, dcancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer dcancel()
			if err := db.Disconnect(dctx, database); err != nil {
				logger.Warn("mongo disconnect", zap.Error(err))
			}
		}
		src = catalog.NewMongoSource(database)
	default:
		embedded, err := catalog.NewEmbeddedSource()
		if err != nil {
			return nil, nil, err
		}
		src = embedded
	}

	svc, err := catalog.NewService(ctx, src)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}

func serve(ctx context.Context) error {
	catalogSvc, closeCatalog, err := openCatalog(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	defer closeCatalog()
	logger.Info("catalog loaded", zap.String("source", cfg.Catalog.Source))

	content, err := site.Load()
	if err != nil {
		return err
	}

	router, err := newRouter(catalogSvc, content, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()

		logger.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", zap.Error(err))
		}
	}()

	logger.Info("server starting", zap.String("port", cfg.Server.Port))
	logger.Info("endpoints available",
		zap.String("web", "http://localhost:"+cfg.Server.Port),
		zap.String("api", "http://localhost:"+cfg.Server.Port+"/api"),
		zap.String("mcp", "http://localhost:"+cfg.Server.Port+"/mcp"),
	)

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// newRouter mounts every route behind the request ID and access log
// middleware.
func newRouter(catalogSvc *catalog.Service, content *site.Content, log *zap.Logger) (*mux.Router, error) {
	// Wire dependencies
	catalogHandler := catalog.NewHandler(catalogSvc, content.HeaderView, log)
	siteHandler := site.NewHandler(content, catalogHandler.FeaturedViews, log)

	// Create MCP server
	mcpSrv := mcpserver.NewServer(catalogSvc, content)

	router := mux.NewRouter()
	router.Use(requestID, accessLog(log))

	// Static files
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static fs: %w", err)
	}
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(sub)))).Methods(http.MethodGet)

	siteHandler.Register(router)
	catalogHandler.Register(router)

	// MCP endpoint (HTTP transport)
	// MCP uses POST for requests and GET for SSE streams
	mcpHTTP := server.NewStreamableHTTPServer(mcpSrv)
	router.Handle("/mcp", mcpHTTP).Methods(http.MethodPost, http.MethodGet, http.MethodDelete)

	// Health check
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// mux skips Use middleware when no route matches.
	router.NotFoundHandler = requestID(accessLog(log)(http.HandlerFunc(siteHandler.NotFound)))

	return router, nil
}
