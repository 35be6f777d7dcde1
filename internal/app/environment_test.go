package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMustGetEnvAsStrings(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  []string
	}{
		{name: "single", value: "auth0", want: []string{"auth0"}},
		{name: "multiple_with_spaces", value: "auth0, api_token", want: []string{"auth0", "api_token"}},
		{name: "empty", value: "", want: nil},
		{name: "blank_entries_dropped", value: "auth0,,", want: []string{"auth0"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TEST_AUTH_DRIVERS", tc.value)
			assert.Equal(t, tc.want, MustGetEnvAsStrings(context.Background(), "TEST_AUTH_DRIVERS"))
		})
	}
}

func TestMustGetEnv_Panics(t *testing.T) {
	t.Setenv("TEST_PORT", "eighty")
	t.Setenv("TEST_TLS_DISABLED", "yes")
	t.Setenv("TEST_MAX_AGE", "5")

	ctx := context.Background()
	assert.Panics(t, func() { MustGetEnvAsString(ctx, "TEST_DEFINITELY_UNSET_VARIABLE") })
	assert.Panics(t, func() { MustGetEnvAsInt(ctx, "TEST_PORT") })
	assert.Panics(t, func() { MustGetEnvAsBoolean(ctx, "TEST_TLS_DISABLED") })
	assert.Panics(t, func() { MustGetEnvAsDuration(ctx, "TEST_MAX_AGE") })
}

func TestMustGetEnv_Parses(t *testing.T) {
	t.Setenv("TEST_PORT", "8080")
	t.Setenv("TEST_TLS_DISABLED", "TRUE")
	t.Setenv("TEST_MAX_AGE", "5m")

	ctx := context.Background()
	assert.Equal(t, 8080, MustGetEnvAsInt(ctx, "TEST_PORT"))
	assert.True(t, MustGetEnvAsBoolean(ctx, "TEST_TLS_DISABLED"))
	assert.Equal(t, 5*time.Minute, MustGetEnvAsDuration(ctx, "TEST_MAX_AGE"))
}
