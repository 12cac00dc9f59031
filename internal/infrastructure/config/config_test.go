package config

import (
	"reflect"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.StorageDriver != DriverMemory || cfg.MetricsNamespace != "voyagebj" {
		t.Fatalf("cfg=%+v", cfg)
	}
	if !reflect.DeepEqual(cfg.QuotaRetryKeys, []string{"vb_users"}) {
		t.Fatalf("QuotaRetryKeys=%v", cfg.QuotaRetryKeys)
	}
	if cfg.GmailEnabled() || cfg.WhatsAppEnabled() {
		t.Fatal("notification channels enabled without credentials")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", DriverFile)
	t.Setenv("STORAGE_QUOTA_BYTES", "1024")
	t.Setenv("STORAGE_QUOTA_RETRY_KEYS", " vb_users, ,vb_reservations ")
	t.Setenv("WHATSAPP_SERVICE_URL", "http://wa.local")
	t.Setenv("WHATSAPP_TOKEN", "token")
	t.Setenv("READ_TIMEOUT", "not-a-number")

	cfg, _ := LoadConfig()
	if cfg.StorageDriver != DriverFile || cfg.StorageQuota != 1024 {
		t.Fatalf("storage=(%s, %d)", cfg.StorageDriver, cfg.StorageQuota)
	}
	if !reflect.DeepEqual(cfg.QuotaRetryKeys, []string{"vb_users", "vb_reservations"}) {
		t.Fatalf("QuotaRetryKeys=%v", cfg.QuotaRetryKeys)
	}
	if !cfg.WhatsAppEnabled() {
		t.Fatal("WhatsApp should be enabled")
	}
	if cfg.ReadTimeout.Seconds() != 30 {
		t.Fatalf("ReadTimeout=%v, want default", cfg.ReadTimeout)
	}
}
