package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/game"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <game.json>\n", os.Args[0])
		os.Exit(1)
	}

	filename := os.Args[1]
	validator := &GameValidator{}

	if err := validator.validateFile(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Game definition file is valid!")
}

type GameValidator struct {
	errors []string
}

func (v *GameValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	// Validate filename format
	baseName := filepath.Base(filename)
	if !strings.HasSuffix(baseName, ".json") {
		return fmt.Errorf("game file must have .json extension: %s", baseName)
	}

	nameWithoutExt := strings.TrimSuffix(baseName, ".json")
	if !isValidGameFilename(nameWithoutExt) {
		return fmt.Errorf("game filename '%s' must be lowercase snake_case (e.g., haunted_mansion.json, not HauntedMansion.json)", baseName)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	v.errors = nil

	if !json.Valid(data) {
		return fmt.Errorf("file %s contains invalid JSON", filename)
	}

	var g game.Game
	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&g); err != nil {
		return fmt.Errorf("file %s failed strict JSON unmarshaling: %w", filename, err)
	}

	if g.ID == "" {
		g.ID = nameWithoutExt
	}

	v.validateGame(&g)

	// Referential checks (exits, items, start room) come from the
	// engine's own load-time validation.
	var vErr *game.ValidationError
	if err := g.Validate(); errors.As(err, &vErr) {
		for _, problem := range vErr.Problems {
			v.addError(problem)
		}
	}

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}

	return nil
}

func (v *GameValidator) validateGame(g *game.Game) {
	// Validate room IDs
	for roomID := range g.Rooms {
		v.validateIDFormat("room ID", roomID)
	}

	// Validate item IDs
	for itemID := range g.Items {
		v.validateIDFormat("item ID", itemID)
	}
	for _, room := range g.Rooms {
		for _, itemID := range room.Items {
			v.validateIDFormat("room item ID", itemID)
		}
		for direction := range room.Exits {
			v.validateIDFormat("exit direction", direction)
		}
	}
}

func (v *GameValidator) validateIDFormat(fieldName, id string) {
	if id == "" {
		return
	}

	if !isValidID(id) {
		v.addError(fmt.Sprintf("%s '%s' should be lowercase snake_case", fieldName, id))
	}
}

func (v *GameValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

var (
	validIDRegex       = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)
	validFilenameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)
)

func isValidID(id string) bool {
	return validIDRegex.MatchString(id)
}

func isValidGameFilename(name string) bool {
	// Allow 'x.' prefix for experimental games
	name = strings.TrimPrefix(name, "x.")
	return validFilenameRegex.MatchString(name)
}
