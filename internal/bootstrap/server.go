package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	app "github.com/mafiaidola/leads-manager-sub001/internal/application/lead"
	"github.com/mafiaidola/leads-manager-sub001/internal/infrastructure/repository"
	"github.com/mafiaidola/leads-manager-sub001/internal/infrastructure/revalidate"
	httpecho "github.com/mafiaidola/leads-manager-sub001/internal/interfaces/http/echo"
)

type Config struct {
	BodyLimit     string
	RevalidateURL string
}

func NewHTTPServer(db *gorm.DB, pool *pgxpool.Pool, logger *zap.Logger, cfg Config) *echo.Echo {
	if cfg.BodyLimit == "" {
		cfg.BodyLimit = "10M"
	}

	server := echo.New()
	server.HideBanner = true

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	server.Use(middleware.BodyLimit(cfg.BodyLimit))

	users := repository.NewUserDirectoryRepository(db)
	snapshots := repository.NewLeadSnapshotRepository(db)
	writer := repository.NewLeadBulkInsertRepository(pool)
	auditLog := repository.NewAuditLogRepository(db)
	revalidator := revalidate.NewHTTPRevalidator(cfg.RevalidateURL)

	previewImport := app.NewPreviewImport()
	commitImport := app.NewCommitImport(snapshots, users, writer, auditLog, revalidator, logger)
	importHandler := httpecho.NewImportHandler(previewImport, commitImport)

	httpecho.RegisterRoutes(server, importHandler, users)

	server.GET("/healthz", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	return server
}
