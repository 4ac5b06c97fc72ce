// Package firebase shares one Firebase app between the identity and push adapters.
package firebase

import (
	"context"
	"sync"

	firebasesdk "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/forcollegesake07/food-bridge/config"
	"github.com/forcollegesake07/food-bridge/internal/errors"
)

// ErrNotConfigured is returned when no Firebase credentials are configured.
var ErrNotConfigured = errors.New("firebase is not configured")

// AppProvider initializes the Firebase app on first use.
type AppProvider struct {
	cfg  *config.FirebaseConfig
	once sync.Once
	app  *firebasesdk.App
	err  error
}

// NewAppProvider creates a lazy Firebase app provider.
func NewAppProvider(cfg *config.Config) *AppProvider {
	fc := cfg.Firebase
	if fc == nil {
		fc = &config.FirebaseConfig{}
	}

	return &AppProvider{cfg: fc}
}

// Configured reports whether credentials were provided.
func (p *AppProvider) Configured() bool {
	return p.cfg.CredentialsPath != ""
}

// App returns the shared Firebase app.
func (p *AppProvider) App(ctx context.Context) (*firebasesdk.App, error) {
	if !p.Configured() {
		return nil, ErrNotConfigured
	}

	p.once.Do(func() {
		var appCfg *firebasesdk.Config
		if p.cfg.ProjectID != "" {
			appCfg = &firebasesdk.Config{ProjectID: p.cfg.ProjectID}
		}

		p.app, p.err = firebasesdk.NewApp(ctx, appCfg, option.WithCredentialsFile(p.cfg.CredentialsPath))
		if p.err != nil {
			p.err = errors.Wrap(p.err, "failed to initialize Firebase app")
		}
	})

	return p.app, p.err
}
