package firebase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forcollegesake07/food-bridge/config"
)

func TestAppProvider_NotConfigured(t *testing.T) {
	p := NewAppProvider(&config.Config{})

	assert.False(t, p.Configured())
	_, err := p.App(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)
}
