package dto

import (
	"time"

	"github.com/GlebRadaev/digimarket/internal/domain"
)

type AddKeysRequestDTO struct {
	Keys []string `json:"keys" example:"AAAA-BBBB-CCCC,DDDD-EEEE-FFFF"`
}

type AddKeysResponseDTO struct {
	Added int `json:"added" example:"2"`
}

type KeyUsageDTO struct {
	ID       int        `json:"id" example:"1"`
	KeyValue string     `json:"key_value" example:"AAAA-BBBB-CCCC"`
	UsedBy   *int       `json:"used_by,omitempty" example:"5"`
	UsedAt   *time.Time `json:"used_at,omitempty" example:"2024-05-01T12:00:00Z"`
}

type KeyInventoryResponseDTO struct {
	UnusedCount int           `json:"unused_count" example:"4"`
	History     []KeyUsageDTO `json:"history"`
}

func NewKeyInventoryDTO(inv *domain.KeyInventory) KeyInventoryResponseDTO {
	history := make([]KeyUsageDTO, len(inv.History))
	for i, k := range inv.History {
		history[i] = KeyUsageDTO{
			ID:       k.ID,
			KeyValue: k.KeyValue,
			UsedBy:   k.UsedBy,
			UsedAt:   k.UsedAt,
		}
	}
	return KeyInventoryResponseDTO{
		UnusedCount: inv.UnusedCount,
		History:     history,
	}
}
