package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/fleet-logistics-service/internal/domain"
	"github.com/fleet-logistics-service/internal/pkg/errors"
)

// uniqueViolation - SQLSTATE нарушения уникальности
const uniqueViolation = "23505"

// isUniqueViolation распознаёт ошибку уникальности от pgx и от lib/pq
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}

// violatedConstraint возвращает имя нарушенного ограничения, если драйвер его сообщил
func violatedConstraint(err error) string {
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}

func isNoRows(err error) bool {
	return stderrors.Is(err, sql.ErrNoRows)
}

// dbError оборачивает ошибку драйвера в DATABASE_ERROR
func dbError(err error) *errors.AppError {
	return errors.ErrDatabaseError.Wrap(err)
}

// queryBuilder собирает WHERE и SET с позиционными параметрами $N
type queryBuilder struct {
	conds []string
	sets  []string
	args  []interface{}
}

func (b *queryBuilder) arg(v interface{}) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

// where добавляет условие, каждый "?" заменяется очередным параметром
func (b *queryBuilder) where(cond string, v interface{}) {
	b.conds = append(b.conds, strings.ReplaceAll(cond, "?", b.arg(v)))
}

func (b *queryBuilder) set(column string, v interface{}) {
	b.sets = append(b.sets, column+" = "+b.arg(v))
}

func (b *queryBuilder) whereClause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

func (b *queryBuilder) setClause() string {
	return strings.Join(b.sets, ", ")
}

// setIf пишет колонку только если значение передано
func setIf[T any](b *queryBuilder, column string, v *T) {
	if v != nil {
		b.set(column, *v)
	}
}

// stationColumns - колонки станции для LEFT JOIN stations s
const stationColumns = `
	s.id AS s_id, s.name AS s_name, s.type AS s_type,
	s.latitude AS s_latitude, s.longitude AS s_longitude, s.distance_km AS s_distance_km`

// stationJoin - раскрытая связь со станцией (все поля NULL, если привязки нет)
type stationJoin struct {
	SID         sql.NullString  `db:"s_id"`
	SName       sql.NullString  `db:"s_name"`
	SType       sql.NullString  `db:"s_type"`
	SLatitude   sql.NullFloat64 `db:"s_latitude"`
	SLongitude  sql.NullFloat64 `db:"s_longitude"`
	SDistanceKm sql.NullFloat64 `db:"s_distance_km"`
}

func (j stationJoin) toStation() *domain.Station {
	if !j.SID.Valid {
		return nil
	}
	return &domain.Station{
		ID:         j.SID.String,
		Name:       j.SName.String,
		Type:       domain.WaterType(j.SType.String),
		Latitude:   j.SLatitude.Float64,
		Longitude:  j.SLongitude.Float64,
		DistanceKm: j.SDistanceKm.Float64,
	}
}

// existsByID проверяет наличие строки с заданным id
func existsByID(ctx context.Context, q querier, table, id string) (bool, error) {
	var exists bool
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)", table)
	if err := q.GetContext(ctx, &exists, query, id); err != nil {
		return false, err
	}
	return exists, nil
}

// deleteByID удаляет одну строку, NotFound если её нет
func deleteByID(ctx context.Context, q querier, table, entity, id string) error {
	res, err := q.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), id)
	if err != nil {
		return dbError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return dbError(err)
	}
	if n == 0 {
		return errors.NotFound(entity, id)
	}
	return nil
}

// deleteMany проверяет все id по порядку и только потом удаляет их одним запросом.
// Первый отсутствующий id прерывает операцию без удалений.
func deleteMany(ctx context.Context, q querier, table, entity string, ids []string) error {
	if len(ids) == 0 {
		return errors.ErrNoIDsProvided
	}

	for _, id := range ids {
		exists, err := existsByID(ctx, q, table, id)
		if err != nil {
			return dbError(err)
		}
		if !exists {
			return errors.NotFound(entity, id)
		}
	}

	query, args, err := sqlx.In(fmt.Sprintf("DELETE FROM %s WHERE id IN (?)", table), ids)
	if err != nil {
		return dbError(err)
	}
	if _, err := q.ExecContext(ctx, q.Rebind(query), args...); err != nil {
		return dbError(err)
	}
	return nil
}

// setStation меняет только station_id актива
func setStation(ctx context.Context, q querier, table, entity, id string, stationID *string) error {
	res, err := q.ExecContext(ctx,
		fmt.Sprintf("UPDATE %s SET station_id = $1 WHERE id = $2", table), stationID, id)
	if err != nil {
		return dbError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return dbError(err)
	}
	if n == 0 {
		return errors.NotFound(entity, id)
	}
	return nil
}

// searchPattern экранирует спецсимволы ILIKE
func searchPattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.TrimSpace(s)) + "%"
}
