package registry

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
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

func tempRegistry(t *testing.T) *Games {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	gs, err := Load()
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}
	return gs
}

func TestLoadMissingFileYieldsEmptyRegistry(t *testing.T) {
	gs := tempRegistry(t)
	if len(gs.Games()) != 0 {
		t.Fatalf("expected empty registry, got %d entries", len(gs.Games()))
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	path := filepath.Join(dir, "goodgame", "games.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); !errors.Is(err, ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
}

func TestPushKeepsSortedAndUnique(t *testing.T) {
	gs := tempRegistry(t)
	for _, name := range []string{"Outer Wilds", "Celeste", "Hades", "Celeste", "Anodyne"} {
		gs.Push(Game{Name: name, Root: "/games/" + name, SaveLocation: "/saves/" + name})
	}

	names := gs.Names()
	want := []string{"Anodyne", "Celeste", "Hades", "Outer Wilds"}
	if !slices.Equal(names, want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
}

func TestPushMergePreservesUnsetFields(t *testing.T) {
	gs := tempRegistry(t)
	gs.Push(Game{Name: "A", Root: "/r1", SaveLocation: "/s1", Executable: "/r1/a.bin"})

	got := gs.Push(Game{Name: "A", Root: "/r2", SaveLocation: "/s1"})
	if got.Root != "/r2" {
		t.Fatalf("expected root overwrite, got %q", got.Root)
	}
	if got.Executable != "/r1/a.bin" {
		t.Fatalf("expected executable preserved, got %q", got.Executable)
	}
}

func TestPushRootCollisionMergesIntoExisting(t *testing.T) {
	gs := tempRegistry(t)
	gs.Push(Game{Name: "Hades", Root: "/games/hades", SaveLocation: "/saves/hades"})

	// Same root under a different name still identifies the same entry.
	got := gs.Push(Game{Name: "Hades II", Root: "/games/hades", SaveLocation: "/saves/hades2"})
	if got.Name != "Hades" {
		t.Fatalf("expected merge to keep the existing name, got %q", got.Name)
	}
	if got.SaveLocation != "/saves/hades2" {
		t.Fatalf("expected save location overwrite, got %q", got.SaveLocation)
	}
	if len(gs.Games()) != 1 {
		t.Fatalf("expected one entry, got %d", len(gs.Games()))
	}
}

func TestDeleteThenGetByNameNotFound(t *testing.T) {
	gs := tempRegistry(t)
	gs.Push(Game{Name: "Celeste", Root: "/r", SaveLocation: "/s"})

	if _, err := gs.Delete("Celeste"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := gs.GetByName("Celeste"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := gs.Delete("Celeste"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataDir)

	gs, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	gs.Push(Game{
		Name:            "Celeste",
		Root:            "/games/celeste",
		SaveLocation:    "/saves/celeste",
		ExecutableArgs:  []string{"--fullscreen"},
		EnvironmentVars: [][2]string{{"MANGOHUD", "1"}},
		RunCommands:     []string{"$RUN --windowed"},
	})
	if err := gs.Store(); err != nil {
		t.Fatal(err)
	}

	reloaded, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	got := reloaded.Games()
	if len(got) != 1 {
		t.Fatalf("expected one entry, got %d", len(got))
	}
	want := gs.Games()[0]
	g := got[0]
	if g.Name != want.Name || g.Root != want.Root || g.SaveLocation != want.SaveLocation {
		t.Fatalf("round trip mismatch: %+v vs %+v", g, want)
	}
	if !slices.Equal(g.ExecutableArgs, want.ExecutableArgs) || !slices.Equal(g.RunCommands, want.RunCommands) {
		t.Fatalf("round trip lost optional fields: %+v", g)
	}
	if len(g.EnvironmentVars) != 1 || g.EnvironmentVars[0] != [2]string{"MANGOHUD", "1"} {
		t.Fatalf("round trip lost environment vars: %+v", g.EnvironmentVars)
	}
}

func TestStoreEmptyRegistryLeavesZeroLengthFile(t *testing.T) {
	gs := tempRegistry(t)
	gs.Push(Game{Name: "A", Root: "/r", SaveLocation: "/s"})
	if err := gs.Store(); err != nil {
		t.Fatal(err)
	}
	if _, err := gs.Delete("A"); err != nil {
		t.Fatal(err)
	}
	if err := gs.Store(); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(gs.Path())
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Fatalf("expected zero-length file, got %d bytes", info.Size())
	}
}

func TestResolveByCurrentDir(t *testing.T) {
	gs := tempRegistry(t)
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	gs.Push(Game{Name: "Hades", Root: root, SaveLocation: "/saves/hades"})

	chdir(t, root)
	g, err := gs.Resolve("")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if g.Name != "Hades" {
		t.Fatalf("expected Hades, got %q", g.Name)
	}
}

func TestResolveNoMatchNamesCurrentDir(t *testing.T) {
	gs := tempRegistry(t)
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	_, err = gs.Resolve("")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "could not infer game") || !strings.Contains(err.Error(), dir) {
		t.Fatalf("error should name the current directory: %v", err)
	}
}
