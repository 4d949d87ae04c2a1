package app

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"

	"goodgame/internal/registry"
)

// EditParams configures an edit. Zero-valued fields leave the record
// untouched; with no field set at all, the record is opened as editable
// JSON in the user's editor.
type EditParams struct {
	// Game names the record to edit; empty means "infer from the current
	// directory".
	Game string

	Name         string
	Root         string
	SaveLocation string
	Executable   string
	RunCommands  []string
}

// Edit merges the provided fields into the resolved record. The caller
// stores the registry afterwards.
func (a *App) Edit(p EditParams) (registry.Game, error) {
	g, err := a.Games.Resolve(p.Game)
	if err != nil {
		return registry.Game{}, err
	}

	var patch registry.Game
	if p.Name == "" && p.Root == "" && p.SaveLocation == "" && p.Executable == "" && p.RunCommands == nil {
		patch, err = editInEditor(*g)
		if err != nil {
			return registry.Game{}, err
		}
	} else {
		patch = *g
		if p.Name != "" {
			patch.Name = p.Name
		}
		if p.Root != "" {
			if patch.Root, err = canonicalize(p.Root); err != nil {
				return registry.Game{}, fmt.Errorf("failed to get root %q: %w", p.Root, err)
			}
		}
		if p.SaveLocation != "" {
			if patch.SaveLocation, err = canonicalize(p.SaveLocation); err != nil {
				return registry.Game{}, fmt.Errorf("failed to get save location %q: %w", p.SaveLocation, err)
			}
		}
		if p.Executable != "" {
			patch.Executable = p.Executable
		}
		if p.RunCommands != nil {
			patch.RunCommands = p.RunCommands
		}
	}

	// A rename moves the record to a new sorted position; drop the old
	// entry first so the merge-on-push cannot resurrect it.
	if patch.Name != g.Name {
		if _, err := a.Games.Delete(g.Name); err != nil {
			return registry.Game{}, err
		}
	}
	return a.Games.Push(patch), nil
}

// editInEditor round-trips the record through $EDITOR as indented JSON.
func editInEditor(g registry.Game) (registry.Game, error) {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return registry.Game{}, err
	}

	tmp, err := os.CreateTemp("", "gg-edit-*.json")
	if err != nil {
		return registry.Game{}, fmt.Errorf("could not create edit file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return registry.Game{}, fmt.Errorf("could not write edit file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return registry.Game{}, fmt.Errorf("could not write edit file: %w", err)
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	cmd := exec.Command(editor, tmp.Name())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return registry.Game{}, fmt.Errorf("editor %s failed: %w", editor, err)
	}

	edited, err := os.ReadFile(tmp.Name())
	if err != nil {
		return registry.Game{}, fmt.Errorf("could not read edit file: %w", err)
	}
	var out registry.Game
	if err := json.Unmarshal(edited, &out); err != nil {
		return registry.Game{}, fmt.Errorf("edited record is not valid JSON: %w", err)
	}
	return out, nil
}
