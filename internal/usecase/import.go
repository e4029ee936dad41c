package usecase

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/fleet-logistics-service/internal/pkg/csvimport"
	"github.com/fleet-logistics-service/internal/pkg/errors"
)

// ImportMode - поведение загрузки при нераспознанных значениях
type ImportMode struct {
	// Strict отклоняет загрузку целиком при любой проблеме в ячейке
	Strict bool
}

// readUpload читает CSV и применяет режим загрузки к накопленным проблемам
func (m ImportMode) readUpload(src io.Reader, fn func(row *csvimport.Row) error) ([]csvimport.Issue, error) {
	issues, err := csvimport.Read(src, fn)
	if err != nil {
		if _, ok := errors.As(err); ok {
			return nil, err
		}
		if stderrors.Is(err, csvimport.ErrEmptyFile) {
			return nil, errors.ErrInvalidRequest.WithMessage("uploaded file is empty")
		}
		return nil, errors.ErrInvalidRequest.WithMessage("failed to parse CSV: %v", err).Wrap(err)
	}

	if m.Strict && len(issues) > 0 {
		return nil, errors.Validation("upload rejected: %d value(s) could not be parsed", len(issues)).
			WithDetails(map[string]interface{}{"issues": issues})
	}
	return issues, nil
}

// rowError - ошибка строки, которая отклоняет загрузку в любом режиме
func rowError(row *csvimport.Row, format string, args ...interface{}) error {
	return errors.Validation("line %d: %s", row.Line, fmt.Sprintf(format, args...))
}
