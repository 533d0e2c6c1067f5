package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/supermom/supermom-api/internal/config"
	"github.com/supermom/supermom-api/internal/domain/auth"
	"github.com/supermom/supermom-api/internal/domain/share"
	"github.com/supermom/supermom-api/internal/domain/submission"
	"github.com/supermom/supermom-api/internal/domain/swap"
	"github.com/supermom/supermom-api/internal/domain/theme"
	uploadDomain "github.com/supermom/supermom-api/internal/domain/upload"
	"github.com/supermom/supermom-api/internal/domain/user"
	"github.com/supermom/supermom-api/internal/middleware"
	"github.com/supermom/supermom-api/internal/pkg/card"
	"github.com/supermom/supermom-api/internal/pkg/database"
	"github.com/supermom/supermom-api/internal/pkg/email"
	"github.com/supermom/supermom-api/internal/pkg/faceswap"
	"github.com/supermom/supermom-api/internal/pkg/googleauth"
	"github.com/supermom/supermom-api/internal/pkg/imaging"
	"github.com/supermom/supermom-api/internal/pkg/jwt"
	pkgresponse "github.com/supermom/supermom-api/internal/pkg/response"
	"github.com/supermom/supermom-api/internal/pkg/sms"
	"github.com/supermom/supermom-api/internal/pkg/storage"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Super Mom Maker API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		// The app still serves uploads and swaps without a database;
		// listings and submission records are simply skipped
		log.Warn().Err(err).Msg("PostgreSQL unavailable, persistence disabled")
		db = nil
	} else {
		defer database.ClosePostgres(db)
		if err := database.Migrate(db); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	redisClient, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, using in-memory OTP store")
		redisClient = nil
	} else if redisClient != nil {
		defer database.CloseRedis(redisClient)
	}

	// ---------- Shared infrastructure ----------
	uploads, err := storage.NewLocalStorage(cfg.UploadDir, "/uploads")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create upload directory")
	}
	results, err := storage.NewLocalStorage(cfg.ResultDir, "/results")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create result directory")
	}

	blobs := storage.NewR2Storage(storage.R2Config{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		AccessKeySecret: cfg.R2AccessKeySecret,
		BucketName:      cfg.R2BucketName,
		PublicURL:       cfg.R2PublicURL,
	})

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTTTL)
	googleVerifier := googleauth.NewVerifier(cfg.GoogleClientID)

	mailService := email.NewService(email.SMTPConfig{
		Host:      cfg.SMTPHost,
		Port:      cfg.SMTPPort,
		Username:  cfg.SMTPUser,
		Password:  cfg.SMTPPass,
		FromEmail: cfg.SMTPFrom,
		FromName:  cfg.SMTPFromName,
	})
	defer mailService.Close()

	smsClient := sms.NewClient(sms.Config{
		BaseURL:  cfg.TermiiBaseURL,
		APIKey:   cfg.TermiiAPIKey,
		SenderID: cfg.TermiiSenderID,
	})

	transformer := faceswap.NewRunner(cfg.PythonBin, cfg.FaceSwapScript)
	transformer.Probe(context.Background())

	cardGenerator := card.NewGenerator()
	processor := imaging.NewProcessor(imaging.DefaultConfig())

	// ---------- Repositories ----------
	var userRepo *user.Repository
	var submissionRepo *submission.Repository
	var shareRepo *share.Repository
	if db != nil {
		userRepo = user.NewRepository(db)
		submissionRepo = submission.NewRepository(db)
		shareRepo = share.NewRepository(db)
	}

	// ---------- Services ----------
	var otpStore auth.OTPStore
	if redisClient != nil {
		otpStore = auth.NewRedisStore(redisClient)
	} else {
		otpStore = auth.NewMemoryStore()
	}

	authService := auth.NewService(
		otpStore, mailService, smsClient, jwtService,
		userRecorder(userRepo), googleVerifier, cfg.IsDevelopment(),
	)

	themeService := theme.NewService(cfg.TemplateDir, "/templates", cfg.ThemeCacheTTL)

	var submissions swap.SubmissionRecorder
	if submissionRepo != nil {
		submissions = submissionRepo
	}
	var blobUploader storage.BlobUploader
	if blobs != nil {
		blobUploader = blobs
	}

	swapService := swap.NewService(
		themeService, uploads, results, transformer,
		cardGenerator, blobUploader, submissions, cfg.SwapTimeout,
	)

	shareService := share.NewService(mailService, shareRepo)

	// ---------- Handlers ----------
	authHandler := auth.NewHandler(authService)
	themeHandler := theme.NewHandler(themeService)
	uploadHandler := uploadDomain.NewHandler(uploads, results, processor, uploadDomain.NewLimiter(cfg.MaxConcurrentUploads))
	swapHandler := swap.NewHandler(swapService, results)
	shareHandler := share.NewHandler(shareService)

	authMiddleware := middleware.Auth(jwtService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]interface{}{
			"status":  "ok",
			"version": "1.0.0",
			"ai":      transformer.Available(),
		})
	})

	// Static serving for stored images
	fileServer(r, "/uploads", cfg.UploadDir)
	fileServer(r, "/results", cfg.ResultDir)
	fileServer(r, "/templates", cfg.TemplateDir)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			pkgresponse.OK(w, map[string]interface{}{
				"status":    "ok",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
				"ai":        transformer.Available(),
			})
		})

		r.Mount("/auth", auth.Routes(authHandler, authMiddleware))
		r.Mount("/themes", theme.Routes(themeHandler))
		uploadDomain.Routes(uploadHandler)(r)
		swap.Routes(swapHandler)(r)
		share.Routes(shareHandler)(r)

		if submissionRepo != nil {
			r.Mount("/submissions", submission.Routes(submission.NewHandler(submissionRepo)))
		} else {
			r.Get("/submissions", func(w http.ResponseWriter, r *http.Request) {
				pkgresponse.OK(w, map[string]interface{}{
					"submissions": []submission.Submission{},
					"count":       0,
				})
			})
		}
	})

	// ---------- Cleanup sweeper ----------
	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	sweeper := uploadDomain.NewSweeper(cfg.UploadMaxAge, cfg.CleanupInterval, uploads, results)
	go sweeper.Run(sweepCtx)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}
}

func fileServer(r chi.Router, path, dir string) {
	fs := http.StripPrefix(path, http.FileServer(http.Dir(dir)))
	r.Get(path+"/*", func(w http.ResponseWriter, req *http.Request) {
		fs.ServeHTTP(w, req)
	})
}

// userRecorder returns a no-op recorder when the database is unavailable
func userRecorder(repo *user.Repository) auth.UserRecorder {
	if repo == nil {
		return noopUserRecorder{}
	}
	return repo
}

type noopUserRecorder struct{}

func (noopUserRecorder) Upsert(ctx context.Context, identifier, channel string) error {
	return nil
}
