package dto

import "github.com/fleet-logistics-service/internal/pkg/csvimport"

// ImportResponse - результат загрузки файла
type ImportResponse[T any] struct {
	Imported int               `json:"imported"`
	Items    []T               `json:"items"`
	Issues   []csvimport.Issue `json:"issues,omitempty"`
}

// ScheduleParameter - параметры запроса, которые возвращаются вместе с расписанием
type ScheduleParameter struct {
	TugboatID     string `json:"tugboatId"`
	OrderID       string `json:"orderId"`
	TypePoint     string `json:"type_point,omitempty"`
	EnterDatetime string `json:"enter_datetime,omitempty"`
	ExitDatetime  string `json:"exit_datetime,omitempty"`
}
