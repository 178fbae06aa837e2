package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// chdir changes the working directory for the test and restores it on
// cleanup, like testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "hm_facebook_domain_verification_code", cfg.Verification.OptionName)
	assert.Equal(t, "general", cfg.Verification.Page)
	assert.Equal(t, "Facebook Domain Verification", cfg.Verification.SectionTitle)
	assert.Equal(t, "Verification code", cfg.Verification.Label)
	assert.Equal(t, "Enter your domain verification code from Facebook.", cfg.Verification.Description)
	assert.Equal(t, time.Minute, cfg.Admin.LoginWindow)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9000")
	t.Setenv("ADMIN_EMAIL", "ops@example.com")
	t.Setenv("ADMIN_LOGIN_LIMIT", "3")
	t.Setenv("FB_VERIFICATION_OPTION", "fb_code")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "ops@example.com", cfg.Admin.Email)
	assert.Equal(t, 3, cfg.Admin.LoginLimit)
	assert.Equal(t, "fb_code", cfg.Verification.OptionName)
}
