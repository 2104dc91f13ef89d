package settings

import (
	"context"

	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	"github.com/palepusrinivas/guava-adminpanel-sub002/upstream"
)

// SettingsForm is the business settings page.
type SettingsForm struct {
	BusinessName   string  `json:"businessName" validate:"required,max=120"`
	SupportEmail   string  `json:"supportEmail" validate:"required,email"`
	SupportPhone   string  `json:"supportPhone" validate:"required,min=7,max=15"`
	Currency       string  `json:"currency" validate:"required,len=3,alpha"`
	CommissionRate float64 `json:"commissionRate" validate:"gte=0,lte=100"`
}

// SettingsService reads and writes platform-wide settings.
type SettingsService interface {
	Get(ctx context.Context) (*entity.BusinessSettings, error)
	Update(ctx context.Context, f SettingsForm) (*entity.BusinessSettings, error)
	UploadLogo(ctx context.Context, file upstream.File) (*entity.BusinessSettings, error)
}
