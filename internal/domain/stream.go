package domain

import (
	"time"

	"github.com/google/uuid"
)

// StreamFleetEvents - стрим изменений справочников флота
const StreamFleetEvents = "stream:fleet:events"

// FleetAction - тип изменения сущности
type FleetAction string

const (
	ActionCreated    FleetAction = "created"
	ActionUpdated    FleetAction = "updated"
	ActionDeleted    FleetAction = "deleted"
	ActionAssigned   FleetAction = "assigned"
	ActionUnassigned FleetAction = "unassigned"
	ActionImported   FleetAction = "imported"
)

// FleetEvent - событие об изменении сущности, публикуется после успешной мутации
type FleetEvent struct {
	ID         uuid.UUID   `json:"id"`
	Entity     string      `json:"entity"`
	Action     FleetAction `json:"action"`
	EntityIDs  []string    `json:"entity_ids"`
	StationID  *string     `json:"station_id,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// NewFleetEvent создаёт событие с новым идентификатором и текущим временем
func NewFleetEvent(entity string, action FleetAction, ids ...string) *FleetEvent {
	return &FleetEvent{
		ID:         uuid.New(),
		Entity:     entity,
		Action:     action,
		EntityIDs:  ids,
		OccurredAt: time.Now().UTC(),
	}
}

// TouchesStations сообщает, может ли событие изменить статистику станций
func (e *FleetEvent) TouchesStations() bool {
	return e.Entity == EntityStation
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
