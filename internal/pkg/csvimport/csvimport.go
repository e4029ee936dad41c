// Package csvimport читает табличные файлы загрузки (заказы, буксиры).
//
// Ошибки потока (битый CSV, разное число колонок) прерывают всю загрузку.
// Ошибки отдельных значений не прерывают чтение: значение приводится к нулю,
// а проблема записывается в список Issue. Что делать с этим списком, решает вызывающий.
package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Issue - проблема качества данных в конкретной ячейке
type Issue struct {
	Line   int    `json:"line"`
	Column string `json:"column"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

func (i Issue) String() string {
	return fmt.Sprintf("line %d, column %s: %s (%q)", i.Line, i.Column, i.Reason, i.Value)
}

// ErrEmptyFile - в файле нет строки заголовков
var ErrEmptyFile = errors.New("csv file has no header row")

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
}

// Row - одна строка данных с доступом к колонкам по имени заголовка
type Row struct {
	Line   int
	values map[string]string
	issues []Issue
}

// Issues возвращает проблемы, накопленные при чтении значений строки
func (r *Row) Issues() []Issue {
	return r.issues
}

// String возвращает значение колонки без пробелов по краям
func (r *Row) String(column string) string {
	return strings.TrimSpace(r.values[strings.ToLower(column)])
}

// Has сообщает, заполнена ли колонка
func (r *Row) Has(column string) bool {
	return r.String(column) != ""
}

// Float разбирает число; при ошибке возвращает 0 и пишет Issue
func (r *Row) Float(column string) float64 {
	raw := r.String(column)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		r.addIssue(column, raw, "not a number")
		return 0
	}
	return v
}

// Int разбирает целое; дробная часть отбрасывается
func (r *Row) Int(column string) int {
	raw := r.String(column)
	if i, err := strconv.Atoi(raw); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(f)
	}
	r.addIssue(column, raw, "not an integer")
	return 0
}

// Time разбирает дату в одном из поддерживаемых форматов; при ошибке - нулевое время
func (r *Row) Time(column string) time.Time {
	raw := r.String(column)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	r.addIssue(column, raw, "not a date")
	return time.Time{}
}

func (r *Row) addIssue(column, value, reason string) {
	if value == "" {
		reason = "empty value"
	}
	r.issues = append(r.issues, Issue{Line: r.Line, Column: column, Value: value, Reason: reason})
}

// Read читает CSV с заголовком и вызывает fn для каждой непустой строки.
// Возвращает все Issue, накопленные в строках.
func Read(src io.Reader, fn func(row *Row) error) ([]Issue, error) {
	reader := csv.NewReader(src)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		columns[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var issues []Issue
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		if isBlank(record) {
			continue
		}

		line, _ := reader.FieldPos(0)
		row := &Row{Line: line, values: make(map[string]string, len(columns))}
		for i, col := range columns {
			row.values[col] = record[i]
		}

		if err := fn(row); err != nil {
			return nil, err
		}
		issues = append(issues, row.issues...)
	}

	return issues, nil
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
