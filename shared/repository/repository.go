package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/shared/constant"
	"hotelops/shared/dto"
	"hotelops/shared/failure"
	"hotelops/shared/logger"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	errRequiredFilter = errors.New("required filter")
)

type column struct {
	name  string
	table string
	alias string
}

// expression renders the column for a SELECT list.
func (c column) expression() string {
	switch {
	case c.table == "":
		return c.name
	case c.alias != "":
		return fmt.Sprintf("%s.%s AS %s", c.table, c.name, c.alias)
	default:
		return fmt.Sprintf("%s.%s", c.table, c.name)
	}
}

// execer and preparer are satisfied by both *sqlx.DB and *sqlx.Tx.
type execer interface {
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

type preparer interface {
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

// Row lock modes appended to SELECT statements run inside a transaction.
const (
	lockNone      = ""
	lockForUpdate = "FOR UPDATE OF %s NOWAIT"
	lockForShare  = "FOR SHARE OF %s NOWAIT"
)

// Repository is the table gateway embedded by every domain repository. Columns come from the
// db/table/column tags of T; an optional GetJoinQuery method on T supplies the JOIN clause.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entitas       string
	primaryColumn string
	columns       []column
	join          string
	insertQuery   string
	InsertColumns []string
}

func NewRepository[T any](entitasName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(tableName, reflect.TypeOf(zero))

	join := ""
	if method := reflect.ValueOf(zero).MethodByName("GetJoinQuery"); method.IsValid() {
		if out := method.Call(nil); len(out) > 0 {
			join = out[0].String()
		}
	}

	placeholders := make([]string, 0, len(insertColumns))
	for _, col := range insertColumns {
		placeholders = append(placeholders, ":"+col)
	}

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entitas:       entitasName,
		primaryColumn: primaryColumn,
		columns:       columns,
		join:          join,
		insertQuery:   fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", tableName, strings.Join(insertColumns, ", "), strings.Join(placeholders, ", ")),
		InsertColumns: insertColumns,
	}
}

func (repo *Repository[T]) scope(ctx context.Context, operation string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entitas, operation))
}

// fail traces err and returns either its domain translation or a wrapped infrastructure error.
func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	scope.TraceError(err)

	if translated := repo.translateError(err); translated != nil {
		return translated
	}

	logger.ErrorWithStack(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entitas, err)
}

// queryRow runs a named single-row query into dest.
func (repo *Repository[T]) queryRow(ctx context.Context, prep preparer, query string, args map[string]any, dest any) error {
	stmt, err := prep.PrepareNamedContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	return stmt.GetContext(ctx, dest, args) //nolint:wrapcheck
}

func (repo *Repository[T]) insert(ctx context.Context, exec execer, model T) error {
	ctx, scope := repo.scope(ctx, "insert")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, repo.insertQuery)

	if _, err := exec.NamedExecContext(ctx, repo.insertQuery, model); err != nil {
		return repo.fail(scope, "insert data", err)
	}

	return nil
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	return repo.insert(ctx, repo.db.Write, model)
}

func (repo *Repository[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) error {
	return repo.insert(ctx, sqltx, model)
}

// InsertBulkTx writes all models with one multi-row statement.
func (repo *Repository[T]) InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []T) error {
	if len(models) == 0 {
		return nil
	}

	ctx, scope := repo.scope(ctx, "InsertBulkTx")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		constant.OtelQueryAttributeKey: repo.insertQuery,
		"rows":                         len(models),
	})

	if _, err := sqltx.NamedExecContext(ctx, repo.insertQuery, models); err != nil {
		return repo.fail(scope, "bulk insert data", err)
	}

	return nil
}

func (repo *Repository[T]) exist(ctx context.Context, prep preparer, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.scope(ctx, "exist")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return false, errRequiredFilter
	}

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s)", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var exist bool
	if err := repo.queryRow(ctx, prep, query, args, &exist); err != nil {
		return false, repo.fail(scope, "check exist data", err)
	}

	return exist, nil
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	return repo.exist(ctx, repo.db.Read, filter)
}

// ExistTx sees rows written earlier in the same transaction.
func (repo *Repository[T]) ExistTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup) (bool, error) {
	return repo.exist(ctx, sqltx, filter)
}

// get returns the zero T when nothing matches; callers check the primary key.
func (repo *Repository[T]) get(ctx context.Context, prep preparer, lock string, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.scope(ctx, "get")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	query := fmt.Sprintf("SELECT %s FROM %s %s %s %s", repo.getSelectQuery(ctx, columns...), repo.table, repo.join, where, repo.lockClause(lock))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var model T

	err := repo.queryRow(ctx, prep, query, args, &model)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		return model, repo.fail(scope, "get data", err)
	}

	return model, nil
}

func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	return repo.get(ctx, repo.db.Read, lockNone, filter, columns...)
}

func (repo *Repository[T]) GetTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup, columns ...string) (T, error) {
	return repo.get(ctx, sqltx, lockNone, filter, columns...)
}

// GetForUpdateTx locks the matched row until the transaction ends. A row already locked by another
// transaction fails immediately with a concurrent modification failure instead of waiting.
func (repo *Repository[T]) GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup, columns ...string) (T, error) {
	return repo.get(ctx, sqltx, lockForUpdate, filter, columns...)
}

// GetForShareTx takes a shared row lock; it conflicts only with writers holding FOR UPDATE.
func (repo *Repository[T]) GetForShareTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup, columns ...string) (T, error) {
	return repo.get(ctx, sqltx, lockForShare, filter, columns...)
}

func (repo *Repository[T]) getAll(ctx context.Context, prep preparer, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.scope(ctx, "getAll")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)

	clauses := []string{fmt.Sprintf("SELECT %s FROM %s %s %s", repo.getSelectQuery(ctx, columns...), repo.table, repo.join, where)}

	if params.SortBy != "" && params.SortDir != "" {
		clauses = append(clauses, fmt.Sprintf("ORDER BY %s %s", params.SortBy, params.SortDir))
	}

	if params.Limit > 0 {
		args["limit"] = params.Limit
		args["offset"] = params.Offset()

		clauses = append(clauses, "LIMIT :limit OFFSET :offset")
	}

	query := strings.Join(clauses, " ")
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := prep.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, repo.fail(scope, "prepare statement", err)
	}
	defer stmt.Close()

	var models []T
	if err = stmt.SelectContext(ctx, &models, args); err != nil {
		return nil, repo.fail(scope, "get all data", err)
	}

	return models, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	return repo.getAll(ctx, repo.db.Read, params, filter, columns...)
}

func (repo *Repository[T]) GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	return repo.getAll(ctx, sqltx, params, filter, columns...)
}

func (repo *Repository[T]) count(ctx context.Context, prep preparer, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.scope(ctx, "count")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)

	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s %s %s", repo.table, repo.primaryColumn, repo.table, repo.join, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int
	if err := repo.queryRow(ctx, prep, query, args, &count); err != nil {
		return 0, repo.fail(scope, "count data", err)
	}

	return count, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	return repo.count(ctx, repo.db.Read, filter)
}

func (repo *Repository[T]) CountTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup) (int, error) {
	return repo.count(ctx, sqltx, filter)
}

func (repo *Repository[T]) update(ctx context.Context, exec execer, mod map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.scope(ctx, "update")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return errRequiredFilter
	}

	assignments := make([]string, 0, len(mod))
	for _, col := range slices.Sorted(maps.Keys(mod)) {
		assignments = append(assignments, fmt.Sprintf("%s = :%s", col, col))
	}

	query := fmt.Sprintf("UPDATE %s SET %s %s", repo.table, strings.Join(assignments, ", "), where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	maps.Copy(args, mod)

	if _, err := exec.NamedExecContext(ctx, query, args); err != nil {
		return repo.fail(scope, "update data", err)
	}

	return nil
}

func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	return repo.update(ctx, repo.db.Write, mod, filter)
}

func (repo *Repository[T]) UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter dto.FilterGroup) error {
	return repo.update(ctx, sqltx, mod, filter)
}

func (repo *Repository[T]) getSelectQuery(ctx context.Context, only ...string) string {
	_, scope := repo.scope(ctx, "getSelectQuery")
	defer scope.End()

	selected := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col.name) {
			continue
		}

		selected = append(selected, col.expression())
	}

	return strings.Join(selected, ", ")
}

func (repo *Repository[T]) lockClause(lock string) string {
	if lock == lockNone {
		return ""
	}

	return fmt.Sprintf(lock, repo.table)
}

// translateError maps lock and serialization failures to a retryable concurrent modification
// failure and unique violations to a conflict. Other errors return nil.
func (repo *Repository[T]) translateError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}

	switch string(pqErr.Code) {
	case constant.PqErrorCodeLockNotAvailable, constant.PqErrorCodeSerializationFailure, constant.PqErrorCodeDeadlockDetected:
		return failure.ConcurrentModification(fmt.Sprintf("%s is being modified by another request, retry later", repo.entitas)) //nolint:wrapcheck
	case constant.PqErrorCodeUniqueViolation:
		return failure.Conflict(fmt.Sprintf("%s already exists", repo.entitas)) //nolint:wrapcheck
	default:
		return nil
	}
}

func (repo *Repository[T]) BuildWhereClause(ctx context.Context, filter dto.FilterGroup) (string, map[string]any) {
	_, scope := repo.scope(ctx, "BuildWhereClause")
	defer scope.End()

	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return fmt.Sprintf(" WHERE %s ", where), args
}

// getColumns walks T's fields, descending into embedded structs. Only columns of the base table
// are insertable; joined columns are read-only.
func getColumns(table string, reflectType reflect.Type) (columns []column, insertColumns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			nested, nestedInsert := getColumns(table, field.Type)
			columns = append(columns, nested...)
			insertColumns = append(insertColumns, nestedInsert...)
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" {
			continue
		}

		source := field.Tag.Get("table")
		if source == "" {
			source = table
		}

		if source == table {
			insertColumns = append(insertColumns, dbTag)
		}

		if name := field.Tag.Get("column"); name != "" {
			columns = append(columns, column{name: name, table: source, alias: dbTag})
		} else {
			columns = append(columns, column{name: dbTag, table: source})
		}
	}

	return columns, insertColumns
}
