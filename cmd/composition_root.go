package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "deliveryproof/internal/adapters/in/http"
	"deliveryproof/internal/adapters/out/filestore"
	"deliveryproof/internal/adapters/out/imageproc"
	"deliveryproof/internal/adapters/out/postgres/ledgerrepo"
	"deliveryproof/internal/adapters/out/postgres/orderrepo"
	"deliveryproof/internal/adapters/out/prometheus"
	"deliveryproof/internal/adapters/out/s3archive"
	"deliveryproof/internal/adapters/out/smtp"
	"deliveryproof/internal/core/application/usecases/commands"
	"deliveryproof/internal/core/application/usecases/queries"
	"deliveryproof/internal/core/domain/model/kernel"
	"deliveryproof/internal/core/ports"
	"deliveryproof/internal/jobs"
	"deliveryproof/internal/pkg/logging"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg     Config
	gormDB  *gorm.DB
	logger  *slog.Logger
	clock   kernel.SystemClock
	sender  *smtp.Sender
	archive ports.PhotoArchive
	metrics *prometheus.Metrics
}

// NewCompositionRoot builds the shared adapters. The S3 archive is created
// only when a bucket is configured.
func NewCompositionRoot(ctx context.Context, cfg Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	loc, err := kernel.LoadZone(cfg.TimeZone)
	if err != nil {
		return CompositionRoot{}, err
	}

	sender, err := smtp.NewSender(smtp.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		TLS:      cfg.SMTPTLS,
		Timeout:  cfg.SMTPTimeout,
	}, logger)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("smtp sender: %w", err)
	}

	metrics, err := prometheus.New()
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("metrics: %w", err)
	}

	root := CompositionRoot{
		cfg:     cfg,
		gormDB:  gormDB,
		logger:  logger,
		clock:   kernel.NewSystemClock(loc),
		sender:  sender,
		metrics: metrics,
	}

	if cfg.ArchiveEnabled() {
		archive, err := s3archive.New(ctx, s3archive.Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Prefix:    cfg.S3Prefix,
		})
		if err != nil {
			return CompositionRoot{}, fmt.Errorf("s3 archive: %w", err)
		}
		root.archive = archive
	}

	return root, nil
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() (*commands.ConfirmDeliveryCommandHandler, error) {
	return commands.NewConfirmDeliveryCommandHandler(commands.ConfirmDeliveryDeps{
		Orders:  orderrepo.NewGormOrderRepository(c.gormDB),
		Photos:  filestore.NewLocalPhotoStore(c.cfg.UploadDir, c.logger),
		Images:  imageproc.NewProcessor(),
		Sender:  c.sender,
		Ledger:  ledgerrepo.NewGormDeliveryLedger(c.gormDB),
		Clock:   c.clock,
		Archive: c.archive,
		Metrics: c.metrics,
		Logger:  c.logger,
	})
}

func (c *CompositionRoot) CreateGetCustomerDataQueryHandler() queries.GetCustomerDataQueryHandler {
	return queries.NewGetCustomerDataQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.cfg.UploadDir, c.cfg.UploadSweepSchedule, c.cfg.UploadSweepMaxAge, c.logger)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	confirmDelivery, err := c.CreateConfirmDeliveryCommandHandler()
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(c.cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	server := httpin.NewServer(confirmDelivery, c.CreateGetCustomerDataQueryHandler(), c.logger)

	return httpin.NewRouter(server, httpin.RouterConfig{
		UploadDir:      c.cfg.UploadDir,
		MaxUploadSize:  c.cfg.MaxUploadSize,
		LogLevel:       httpin.ParseLogLevel(level),
		Observer:       c.metrics,
		MetricsHandler: c.metrics.Handler(),
	})
}
