package container

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/FACorreiaa/go-eje-planner/app/observability/metrics"
	"github.com/FACorreiaa/go-eje-planner/config"
	"github.com/FACorreiaa/go-eje-planner/internal/api/budget"
	"github.com/FACorreiaa/go-eje-planner/internal/api/catalog"
	"github.com/FACorreiaa/go-eje-planner/internal/api/chat"
	"github.com/FACorreiaa/go-eje-planner/internal/api/selection"
	"github.com/FACorreiaa/go-eje-planner/internal/api/session"
	"github.com/FACorreiaa/go-eje-planner/internal/types"
)

// Container holds all application dependencies
type Container struct {
	Config           *config.Config
	Logger           *slog.Logger
	SessionService   *session.ServiceImpl
	SessionHandler   *session.HandlerImpl
	BudgetHandler    *budget.HandlerImpl
	CatalogHandler   *catalog.HandlerImpl
	SelectionHandler *selection.HandlerImpl
	ChatHandler      *chat.HandlerImpl
}

// NewContainer initializes and returns a new dependency container
func NewContainer(ctx context.Context, cfg *config.Config, m *metrics.AppMetrics, logger *slog.Logger) (*Container, error) {
	sessionService := session.NewServiceImpl(session.Config{
		Secret:   []byte(cfg.Session.Secret),
		Issuer:   cfg.Session.Issuer,
		Audience: cfg.Session.Audience,
		TokenTTL: cfg.Session.TokenTTL,
	}, logger)

	formatter, err := budget.NewFormatter(cfg.Planner.Locale, cfg.Planner.Currency)
	if err != nil {
		return nil, fmt.Errorf("failed to create currency formatter: %w", err)
	}
	limits := budget.Limits{
		MinDays:      cfg.Planner.MinDays,
		MaxDays:      cfg.Planner.MaxDays,
		MaxTravelers: cfg.Planner.MaxTravelers,
		DefaultStyle: types.StyleID(cfg.Planner.DefaultStyle),
	}
	budgetService := budget.NewServiceImpl(limits, formatter, m, logger)

	catalogService := catalog.NewServiceImpl(logger)

	selectionStore := selection.NewStore(cfg.Selection.SessionTTL, cfg.Selection.NotificationTTL)
	selectionService := selection.NewServiceImpl(selectionStore, catalogService, m, logger)

	generator, err := newGenerator(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if generator == nil {
		logger.Warn("GOOGLE_GEMINI_API_KEY not set, chat will answer with the configuration error")
	}
	chatService := chat.NewServiceImpl(generator, chat.NewHistoryStore(cfg.Selection.SessionTTL), cfg.Chat.Timeout, m, logger)

	return &Container{
		Config:           cfg,
		Logger:           logger,
		SessionService:   sessionService,
		SessionHandler:   session.NewHandlerImpl(sessionService, logger),
		BudgetHandler:    budget.NewHandlerImpl(budgetService, logger),
		CatalogHandler:   catalog.NewHandlerImpl(catalogService, logger),
		SelectionHandler: selection.NewHandlerImpl(selectionService, logger),
		ChatHandler:      chat.NewHandlerImpl(chatService, logger),
	}, nil
}

// newGenerator returns a nil Generator, not a nil *GeminiClient, when no key
// is configured.
func newGenerator(ctx context.Context, cfg *config.Config) (chat.Generator, error) {
	client, err := chat.NewGeminiClient(ctx, cfg.Chat.APIKey, cfg.Chat.Model, cfg.Chat.ThinkingBudget)
	if errors.Is(err, chat.ErrMissingAPIKey) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return client, nil
}
