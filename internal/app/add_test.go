package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"goodgame/internal/config"
	"goodgame/internal/registry"
)

func TestAddRegistersGame(t *testing.T) {
	a := newTestApp(t, config.Config{})
	g := addGame(t, a, "Celeste")

	if _, err := a.Games.GetByName("Celeste"); err != nil {
		t.Fatalf("game not registered: %v", err)
	}
	if info, err := os.Stat(g.BackupsPath()); err != nil || !info.IsDir() {
		t.Fatalf("backups directory not created: %v", err)
	}
	link, err := os.Readlink(g.SaveSymlinkPath())
	if err != nil {
		t.Fatalf("save symlink not created: %v", err)
	}
	if link != g.SaveLocation {
		t.Fatalf("symlink target %q, want %q", link, g.SaveLocation)
	}
}

func TestAddCanonicalizesPaths(t *testing.T) {
	a := newTestApp(t, config.Config{})
	root := t.TempDir()
	save := t.TempDir()

	chdir(t, root)
	g, err := a.Add(AddParams{Name: "A", Root: ".", SaveLocation: save, SkipCloud: true})
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(g.Root) || g.Root == "." {
		t.Fatalf("root not canonicalized: %q", g.Root)
	}
}

func TestAddRejectsDuplicates(t *testing.T) {
	a := newTestApp(t, config.Config{})
	g := addGame(t, a, "Celeste")

	cases := []struct {
		name   string
		params AddParams
	}{
		{"name", AddParams{Name: "Celeste", Root: t.TempDir(), SaveLocation: t.TempDir()}},
		{"root", AddParams{Name: "Other", Root: g.Root, SaveLocation: t.TempDir()}},
		{"save", AddParams{Name: "Other", Root: t.TempDir(), SaveLocation: g.SaveLocation}},
	}
	for _, tc := range cases {
		tc.params.SkipCloud = true
		if _, err := a.Add(tc.params); !errors.Is(err, registry.ErrDuplicate) {
			t.Fatalf("%s collision: expected ErrDuplicate, got %v", tc.name, err)
		}
	}
}

func TestAddRootMustBeDirectory(t *testing.T) {
	a := newTestApp(t, config.Config{})
	root := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(root, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := a.Add(AddParams{Name: "A", Root: root, SaveLocation: t.TempDir(), SkipCloud: true})
	if err == nil {
		t.Fatal("expected error for file root")
	}
}

func TestAddRejectsEqualRootAndSave(t *testing.T) {
	a := newTestApp(t, config.Config{})
	dir := t.TempDir()
	if _, err := a.Add(AddParams{Name: "A", Root: dir, SaveLocation: dir, SkipCloud: true}); err == nil {
		t.Fatal("expected error for root == save location")
	}
}
