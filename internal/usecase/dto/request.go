package dto

import "strings"

// AssignStationRequest - привязка актива к станции
type AssignStationRequest struct {
	StationID string `json:"stationId" validate:"required"`
}

func (r *AssignStationRequest) Normalize() {
	r.StationID = strings.TrimSpace(r.StationID)
}

// DeleteManyRequest - массовое удаление, тело {"id": [...]}
type DeleteManyRequest struct {
	IDs []string `json:"id"`
}

// ListQuery - параметры фильтрации списков из query string
type ListQuery struct {
	StationID   string   `query:"stationId"`
	Type        string   `query:"type"`
	Search      string   `query:"search"`
	MaxDistance *float64 `query:"maxDistance"`
}

// ScheduleQuery - точные фильтры расписаний; даты в RFC3339
type ScheduleQuery struct {
	TypePoint     string `query:"type_point"`
	EnterDatetime string `query:"enter_datetime"`
	ExitDatetime  string `query:"exit_datetime"`
}

// TimelineQuery - необязательные фильтры таймлайна
type TimelineQuery struct {
	TugboatID string `query:"tugboatId"`
	OrderID   string `query:"orderId"`
}

func trim(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

func upper(s *string) {
	if s != nil {
		*s = strings.ToUpper(strings.TrimSpace(*s))
	}
}

func lower(s *string) {
	if s != nil {
		*s = strings.ToLower(strings.TrimSpace(*s))
	}
}
