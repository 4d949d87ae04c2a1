package app

import (
	"os"
	"path/filepath"
	"testing"

	"goodgame/internal/config"
	"goodgame/internal/registry"
)

// chdir is t.Chdir for toolchains predating Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func newTestApp(t *testing.T, cfg config.Config) *App {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	games, err := registry.Load()
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}
	return New(games, cfg)
}

// addGame registers a game backed by fresh temp directories, with one save
// file seeded at <save>/slot0.sav.
func addGame(t *testing.T, a *App, name string) registry.Game {
	t.Helper()
	root := t.TempDir()
	save := t.TempDir()
	if err := os.WriteFile(filepath.Join(save, "slot0.sav"), []byte("v1"), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := a.Add(AddParams{Name: name, Root: root, SaveLocation: save, SkipCloud: true})
	if err != nil {
		t.Fatalf("add %s: %v", name, err)
	}
	return g
}

func writeSave(t *testing.T, g registry.Game, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(g.SaveLocation, "slot0.sav"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readSave(t *testing.T, g registry.Game) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(g.SaveLocation, "slot0.sav"))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func backupNames(t *testing.T, g registry.Game) []string {
	t.Helper()
	entries, err := os.ReadDir(g.BackupsPath())
	if err != nil {
		t.Fatal(err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names
}
