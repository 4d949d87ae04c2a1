package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	dataDirName   = "goodgame"
	gamesFileName = "games.json"
)

var (
	// ErrNotFound marks lookups for games or backups that do not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate marks an add that collides with an existing entry by
	// name, root or save location.
	ErrDuplicate = errors.New("already exists")
	// ErrConfig marks an unreadable or unparsable registry file.
	ErrConfig = errors.New("invalid registry file")
)

// Games is the full, name-sorted collection of managed games. It owns its
// entries and the backing file for the lifetime of one process invocation.
type Games struct {
	games []Game
	path  string
}

// DataDir resolves (and creates) the per-user data directory:
// $XDG_DATA_HOME/goodgame, falling back to $HOME/.local/share/goodgame.
func DataDir() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home := os.Getenv("HOME")
		if home == "" {
			return "", errors.New("could not obtain data directory: neither XDG_DATA_HOME nor HOME is set")
		}
		base = filepath.Join(home, ".local", "share")
	}
	dir := filepath.Join(base, dataDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create data directory %s: %w", dir, err)
	}
	return dir, nil
}

// Load opens the registry file, creating an empty one if absent. An empty
// file yields an empty registry.
func Load() (*Games, error) {
	dir, err := DataDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, gamesFileName)

	f, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: could not open %s: %v", ErrConfig, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: could not read %s: %v", ErrConfig, path, err)
	}

	gs := &Games{path: path}
	if info.Size() == 0 {
		return gs, nil
	}
	if err := json.NewDecoder(f).Decode(&gs.games); err != nil {
		return nil, fmt.Errorf("%w: could not parse %s: %v", ErrConfig, path, err)
	}
	// Name-keyed lookups binary-search, so the order invariant must hold
	// even if the file was edited by hand.
	slices.SortFunc(gs.games, compareByName)
	return gs, nil
}

// Store truncates the backing file and rewrites the full registry. An empty
// registry leaves a zero-length file behind.
func (gs *Games) Store() error {
	if len(gs.games) == 0 {
		if err := os.WriteFile(gs.path, nil, 0o644); err != nil {
			return fmt.Errorf("could not save to %s: %w", gs.path, err)
		}
		return nil
	}
	data, err := json.Marshal(gs.games)
	if err != nil {
		return fmt.Errorf("could not encode registry: %w", err)
	}
	if err := os.WriteFile(gs.path, data, 0o644); err != nil {
		return fmt.Errorf("could not save to %s: %w", gs.path, err)
	}
	return nil
}

// Push inserts the game at its sorted position, or merges it into the entry
// it collides with. Any collision under the OR identity rule counts; the
// surviving entry keeps its name and position. The resulting entry is
// returned.
func (gs *Games) Push(g Game) Game {
	// A root or save-location collision with an unrelated name still
	// identifies an existing entry. Check those two keys up front so the
	// name-keyed search below never has to, keeping it a plain binary
	// search over a name-sorted slice.
	for i := range gs.games {
		if gs.games[i].Name != g.Name && gs.games[i].Same(&g) {
			gs.games[i].merge(g)
			return gs.games[i]
		}
	}
	i, found := slices.BinarySearchFunc(gs.games, g, compareByName)
	if found {
		gs.games[i].merge(g)
		return gs.games[i]
	}
	gs.games = slices.Insert(gs.games, i, g)
	return g
}

// Delete removes the game with the exact name and returns it.
func (gs *Games) Delete(name string) (Game, error) {
	i, found := slices.BinarySearchFunc(gs.games, Game{Name: name}, compareByName)
	if !found {
		return Game{}, fmt.Errorf("the game %q is not being managed: %w", name, ErrNotFound)
	}
	g := gs.games[i]
	gs.games = slices.Delete(gs.games, i, i+1)
	return g, nil
}

// GetByName looks the game up by its exact name.
func (gs *Games) GetByName(name string) (*Game, error) {
	i, found := slices.BinarySearchFunc(gs.games, Game{Name: name}, compareByName)
	if !found {
		return nil, fmt.Errorf("the game %q does not exist: %w", name, ErrNotFound)
	}
	return &gs.games[i], nil
}

// GetByRoot scans for a game with the exact root path.
func (gs *Games) GetByRoot(path string) *Game {
	for i := range gs.games {
		if gs.games[i].Root == path {
			return &gs.games[i]
		}
	}
	return nil
}

// GetBySave scans for a game with the exact save location.
func (gs *Games) GetBySave(path string) *Game {
	for i := range gs.games {
		if gs.games[i].SaveLocation == path {
			return &gs.games[i]
		}
	}
	return nil
}

// GetByCurrentDir matches the process working directory against the root or
// save location of any entry.
func (gs *Games) GetByCurrentDir() *Game {
	cwd, err := os.Getwd()
	if err != nil {
		return nil
	}
	for i := range gs.games {
		if gs.games[i].Root == cwd || gs.games[i].SaveLocation == cwd {
			return &gs.games[i]
		}
	}
	return nil
}

// Resolve returns the named game, or, when name is empty, the game inferred
// from the current directory.
func (gs *Games) Resolve(name string) (*Game, error) {
	if name != "" {
		return gs.GetByName(name)
	}
	if g := gs.GetByCurrentDir(); g != nil {
		return g, nil
	}
	cwd, _ := os.Getwd()
	return nil, fmt.Errorf("could not infer game from the current directory %s", cwd)
}

// Games exposes the ordered entries for listing.
func (gs *Games) Games() []Game {
	return gs.games
}

// Names returns all game names in sorted order.
func (gs *Games) Names() []string {
	names := make([]string, len(gs.games))
	for i := range gs.games {
		names[i] = gs.games[i].Name
	}
	return names
}

// Path is the location of the backing file.
func (gs *Games) Path() string {
	return gs.path
}

func compareByName(a, b Game) int {
	return strings.Compare(a.Name, b.Name)
}
