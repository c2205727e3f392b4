package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestResolveHostKey(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := resolveHostKey("")
	if err != nil {
		t.Fatalf("resolveHostKey failed: %v", err)
	}
	if want := filepath.Join(home, ".kitchen", "host_key"); path != want {
		t.Errorf("path = %q, expected %q", path, want)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Errorf("key directory not created: %v", err)
	}

	custom := filepath.Join(t.TempDir(), "keys", "server_key")
	if path, err = resolveHostKey(custom); err != nil || path != custom {
		t.Errorf("custom path = %q, %v", path, err)
	}
}

func TestNewSSHServerDefaults(t *testing.T) {
	dir := t.TempDir()
	srv, err := NewSSHServer(SSHServerConfig{
		HostKeyPath: filepath.Join(dir, "host_key"),
		DBPath:      filepath.Join(dir, "scores.db"),
		Logger:      log.New(io.Discard),
	})
	if err != nil {
		t.Fatalf("NewSSHServer failed: %v", err)
	}
	if srv.Addr() != ":23235" {
		t.Errorf("Addr = %q, expected default", srv.Addr())
	}
	if srv.config.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", srv.config.TickRate)
	}
	if srv.store == nil {
		t.Error("scores database not opened")
	}
	if srv.Sessions() != 0 {
		t.Errorf("Sessions = %d", srv.Sessions())
	}
	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown failed: %v", err)
	}
	if srv.store != nil {
		t.Error("store still open after shutdown")
	}
}
