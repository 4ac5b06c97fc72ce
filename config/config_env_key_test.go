package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"changeFeed": map[string]any{
			"redisUrl": "",
		},
		"email": map[string]any{
			"apiKey":          "",
			"claimTemplateId": 1,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "CHANGEFEED_REDISURL", want: "changeFeed.redisUrl"},
		{envKey: "EMAIL_APIKEY", want: "email.apiKey"},
		{envKey: "EMAIL_CLAIMTEMPLATEID", want: "email.claimTemplateId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	require.NotNil(t, cfg.Email)
	assert.Equal(t, defaultBrevoBaseURL, cfg.Email.BaseURL)
	assert.Equal(t, int64(defaultClaimTemplateID), cfg.Email.ClaimTemplateID)
	assert.Equal(t, int64(defaultConfirmTemplateID), cfg.Email.ConfirmTemplateID)
	assert.Equal(t, defaultChangeFeedChannel, cfg.ChangeFeed.Channel)
	assert.Equal(t, defaultMetricsPath, cfg.Metrics.Path)
	assert.NotNil(t, cfg.Auth)
	assert.NotNil(t, cfg.PubSub)
	assert.NotNil(t, cfg.QRCode)
	assert.NotNil(t, cfg.TestRoutes)
	assert.NotNil(t, cfg.Notifier)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{ChangeFeed: &ChangeFeedConfig{Provider: "redis", Channel: "custom"}}
	applyDefaults(cfg)

	assert.Equal(t, "redis", cfg.ChangeFeed.Provider)
	assert.Equal(t, "custom", cfg.ChangeFeed.Channel)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-0", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
}
