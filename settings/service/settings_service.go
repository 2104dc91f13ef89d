package service

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	"github.com/palepusrinivas/guava-adminpanel-sub002/form"
	"github.com/palepusrinivas/guava-adminpanel-sub002/logging"
	"github.com/palepusrinivas/guava-adminpanel-sub002/resource"
	settingspkg "github.com/palepusrinivas/guava-adminpanel-sub002/settings"
	"github.com/palepusrinivas/guava-adminpanel-sub002/upstream"
)

const (
	settingsPath = "/api/admin/settings/business"
	logoPath     = settingsPath + "/logo"
)

type settingsService struct {
	client    *upstream.Client
	log       *zap.Logger
	listeners []resource.ChangeFunc

	submitting sync.Mutex
}

// NewSettingsService constructs a SettingsService; listeners are told about
// every successful change.
func NewSettingsService(client *upstream.Client, log *zap.Logger, listeners ...resource.ChangeFunc) settingspkg.SettingsService {
	return &settingsService{client: client, log: log.With(zap.String("resource", "settings")), listeners: listeners}
}

func (s *settingsService) Get(ctx context.Context) (*entity.BusinessSettings, error) {
	var out entity.BusinessSettings
	if err := s.client.Do(ctx, http.MethodGet, settingsPath, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *settingsService) Update(ctx context.Context, f settingspkg.SettingsForm) (*entity.BusinessSettings, error) {
	f.BusinessName = strings.TrimSpace(f.BusinessName)
	f.SupportEmail = strings.ToLower(strings.TrimSpace(f.SupportEmail))
	f.Currency = form.UpperCode(f.Currency)
	if err := form.Validate(f); err != nil {
		return nil, err
	}
	var out entity.BusinessSettings
	err := s.submit(ctx, "update", func(ctx context.Context) error {
		return s.client.Do(ctx, http.MethodPut, settingsPath, nil, f, &out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *settingsService) UploadLogo(ctx context.Context, file upstream.File) (*entity.BusinessSettings, error) {
	if err := form.CheckImage(file, form.MaxLogoSize); err != nil {
		return nil, err
	}
	if file.Field == "" {
		file.Field = "logo"
	}
	var out entity.BusinessSettings
	err := s.submit(ctx, "upload_logo", func(ctx context.Context) error {
		return s.client.Upload(ctx, http.MethodPost, logoPath, nil, file, &out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// submit is the single-object counterpart of resource.Manager.Mutate.
func (s *settingsService) submit(ctx context.Context, action string, fn func(context.Context) error) error {
	if !s.submitting.TryLock() {
		return resource.ErrSubmissionInFlight
	}
	err := fn(ctx)
	s.submitting.Unlock()

	log := logging.For(ctx, s.log).With(zap.String("action", action))
	if err != nil {
		log.Warn("settings change failed", zap.Error(err))
		return err
	}
	log.Info("settings changed")
	for _, l := range s.listeners {
		l(ctx, "settings", action)
	}
	return nil
}
