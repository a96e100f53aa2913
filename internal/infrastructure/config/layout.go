package config

import "github.com/younwookim/hollow/internal/domain/entity"

// LayoutConfig is a map file: rows of tile bytes as read from disk
type LayoutConfig struct {
	Name string
	Rows []string
}

// Grid builds the domain grid for this layout
func (c *LayoutConfig) Grid() (*entity.Grid, error) {
	return entity.NewGrid(c.Rows)
}
