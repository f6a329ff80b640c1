package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"hook": map[string]any{
			"secret":    "",
			"jwtSecret": "",
		},
		"geofence": map[string]any{
			"notifyOnExit": false,
		},
		"push": map[string]any{
			"ratePerSecond":        6,
			"cleanupInvalidTokens": true,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "HOOK_SECRET", want: "hook.secret"},
		{envKey: "HOOK_JWTSECRET", want: "hook.jwtSecret"},
		{envKey: "GEOFENCE_NOTIFYONEXIT", want: "geofence.notifyOnExit"},
		{envKey: "PUSH_RATEPERSECOND", want: "push.ratePerSecond"},
		{envKey: "PUSH__CLEANUPINVALIDTOKENS", want: "push.cleanupInvalidTokens"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
