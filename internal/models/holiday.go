package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Holiday is a named date the user tracks, optionally taken off work.
type Holiday struct {
	DefaultModel
	Name      string
	Date      time.Time
	TakingOff bool
	Note      string
}

func (h *Holiday) BeforeSave(_ *gorm.DB) error {
	h.Name = strings.TrimSpace(h.Name)
	h.Note = strings.TrimSpace(h.Note)

	if h.Date.IsZero() {
		h.Date = time.Now().In(time.UTC)
	} else {
		h.Date = h.Date.In(time.UTC)
	}

	return nil
}

func (h *Holiday) AfterFind(tx *gorm.DB) error {
	err := h.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	h.Date = h.Date.In(time.UTC)
	return nil
}
