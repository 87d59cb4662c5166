package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/tfive/internal/models"
)

var _ list.Item = meditationItem{}

// meditationItem wraps [models.Meditation] to implement [list.Item].
type meditationItem struct {
	meditation models.Meditation
}

func (i meditationItem) FilterValue() string { return i.meditation.Title }
func (i meditationItem) Title() string       { return i.meditation.Title }
func (i meditationItem) Description() string {
	return fmt.Sprintf("%d min • %s", i.meditation.Duration, i.meditation.Description)
}

// NewMeditationList builds a picker over the guided meditation catalog.
func NewMeditationList(meditations []models.Meditation) list.Model {
	items := make([]list.Item, len(meditations))
	for i, m := range meditations {
		items[i] = meditationItem{meditation: m}
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Guided meditations"
	l.SetShowStatusBar(false)
	return l
}
