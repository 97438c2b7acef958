package handlers

import (
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestShowSettings(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	cfg := deps.Services.Settings.Get()
	cfg.Name = "Jane Smith"
	cfg.APIKey = "sk-ant-12345678"
	if err := deps.Services.Settings.Update(cfg); err != nil {
		t.Fatalf("saving settings: %v", err)
	}

	ShowSettings(deps)

	if *exitCode != 0 {
		t.Errorf("exit code = %d, expected 0", *exitCode)
	}
	out := stdout.String()
	if !strings.Contains(out, "Name:        Jane Smith") {
		t.Errorf("output = %q", out)
	}
	if strings.Contains(out, "sk-ant-12345678") {
		t.Error("output shows the raw API key")
	}
	if !strings.Contains(out, "5678") {
		t.Error("output missing the masked key tail")
	}
	if !strings.Contains(out, "Designation: (not set)") {
		t.Errorf("output = %q, expected unset fields marked", out)
	}
}

func TestUpdateSettings(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	UpdateSettings(deps, SettingsUpdate{
		Name: strPtr("Jane Smith"),
		Year: strPtr("2025"),
	})

	if *exitCode != 0 {
		t.Errorf("exit code = %d, expected 0", *exitCode)
	}
	if !strings.Contains(stdout.String(), "Settings saved") {
		t.Errorf("output = %q", stdout.String())
	}

	got := deps.Services.Settings.Get()
	if got.Name != "Jane Smith" || got.Year != "2025" {
		t.Errorf("settings after update = %+v", got)
	}
}

func TestUpdateSettings_LeavesOtherFields(t *testing.T) {
	deps, _, _, _ := setupTestDeps(t)

	UpdateSettings(deps, SettingsUpdate{Name: strPtr("Jane")})
	UpdateSettings(deps, SettingsUpdate{Department: strPtr("Platform")})

	got := deps.Services.Settings.Get()
	if got.Name != "Jane" {
		t.Errorf("Name = %q, expected earlier update preserved", got.Name)
	}
	if got.Department != "Platform" {
		t.Errorf("Department = %q", got.Department)
	}
}

func TestUpdateSettings_CanClearField(t *testing.T) {
	deps, _, _, _ := setupTestDeps(t)

	UpdateSettings(deps, SettingsUpdate{APIKey: strPtr("sk-test")})
	UpdateSettings(deps, SettingsUpdate{APIKey: strPtr("")})

	if got := deps.Services.Settings.Get(); got.APIKey != "" {
		t.Errorf("APIKey = %q, expected empty string to clear it", got.APIKey)
	}
}

func TestUpdateSettings_NoFields(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	UpdateSettings(deps, SettingsUpdate{})

	if *exitCode != 1 {
		t.Errorf("exit code = %d, expected 1", *exitCode)
	}
	if !strings.Contains(stderr.String(), "No settings specified") {
		t.Errorf("stderr = %q", stderr.String())
	}
}
