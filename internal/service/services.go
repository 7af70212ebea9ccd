package service

import (
	"strings"

	"github.com/MKhiriev/invest-portal/internal/config"
	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/internal/store"
	"github.com/MKhiriev/invest-portal/internal/validators"
)

type Services struct {
	AuthService            AuthService
	TeamService            TeamService
	NewsService            NewsService
	AboutService           AboutService
	ContactService         ContactService
	CommentService         CommentService
	InvestmentGroupService InvestmentGroupService
	InvestmentService      InvestmentService
	AppInfoService         AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewContentValidator()
	sanitizer := validators.NewContentSanitizer()

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:            NewAuthService(storages.Users, validator, sanitizer, cfg.App, logger),
		TeamService:            NewTeamService(storages.Team, validator, sanitizer, logger),
		NewsService:            NewNewsService(storages.News, validator, sanitizer, logger),
		AboutService:           NewAboutService(storages.About, validator, sanitizer, logger),
		ContactService:         NewContactService(storages.Contact, validator, sanitizer, logger),
		CommentService:         NewCommentService(storages.Comments, validator, sanitizer, logger),
		InvestmentGroupService: NewInvestmentGroupService(storages.InvestmentGroups, validator, sanitizer, logger),
		InvestmentService:      NewInvestmentService(storages.Investments, storages.InvestmentGroups, validator, sanitizer, logger),
		AppInfoService:         appInfoService,
	}, nil
}

// optionalText applies fn to an optional field. Values that clean down to an
// empty string are stored as NULL.
func optionalText(fn func(string) string, s *string) *string {
	if s == nil {
		return nil
	}

	cleaned := fn(*s)
	if cleaned == "" {
		return nil
	}

	return &cleaned
}

func trimSpace(s string) string {
	return strings.TrimSpace(s)
}
