package command

import (
	"fmt"
	"os"

	"github.com/clawedcode/voidmud/internal/game"
	"github.com/clawedcode/voidmud/internal/storage"
	"github.com/pixil98/go-errors"
)

type StorageConfig struct {
	Rooms AssetConfig[*game.Room] `json:"rooms"`
	Items AssetConfig[*game.Item] `json:"items"`
	Lore  AssetConfig[*game.Lore] `json:"lore"`
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Rooms.Validate("rooms"))
	el.Add(c.Items.Validate("items"))
	el.Add(c.Lore.Validate("lore"))
	return el.Err()
}

// BuildWorldBuilder loads the content catalogs once and returns a builder
// that stamps out fresh worlds from them. Every session, and every reset,
// gets its own mutable copy of the same static content.
func (c *StorageConfig) BuildWorldBuilder() (game.WorldBuilder, error) {
	rooms, err := c.Rooms.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating room store: %w", err)
	}
	items, err := c.Items.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating item store: %w", err)
	}
	lore, err := c.Lore.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating lore store: %w", err)
	}

	build := func() (*game.World, error) {
		return game.NewWorld(rooms, items, lore)
	}

	// Fail now on broken cross-references, not on first connect.
	if _, err := build(); err != nil {
		return nil, fmt.Errorf("validating world content: %w", err)
	}

	return build, nil
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
