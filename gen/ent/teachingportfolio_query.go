// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/campushr/docparser/gen/ent/employee"
	"github.com/campushr/docparser/gen/ent/predicate"
	"github.com/campushr/docparser/gen/ent/teachingportfolio"
	"github.com/google/uuid"
)

// TeachingPortfolioQuery is the builder for querying TeachingPortfolio entities.
type TeachingPortfolioQuery struct {
	config
	ctx          *QueryContext
	order        []teachingportfolio.OrderOption
	inters       []Interceptor
	predicates   []predicate.TeachingPortfolio
	withEmployee *EmployeeQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TeachingPortfolioQuery builder.
func (_q *TeachingPortfolioQuery) Where(ps ...predicate.TeachingPortfolio) *TeachingPortfolioQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *TeachingPortfolioQuery) Limit(limit int) *TeachingPortfolioQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *TeachingPortfolioQuery) Offset(offset int) *TeachingPortfolioQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *TeachingPortfolioQuery) Unique(unique bool) *TeachingPortfolioQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *TeachingPortfolioQuery) Order(o ...teachingportfolio.OrderOption) *TeachingPortfolioQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryEmployee chains the current query on the "employee" edge.
func (_q *TeachingPortfolioQuery) QueryEmployee() *EmployeeQuery {
	query := (&EmployeeClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(teachingportfolio.Table, teachingportfolio.FieldID, selector),
			sqlgraph.To(employee.Table, employee.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, teachingportfolio.EmployeeTable, teachingportfolio.EmployeeColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first TeachingPortfolio entity from the query.
// Returns a *NotFoundError when no TeachingPortfolio was found.
func (_q *TeachingPortfolioQuery) First(ctx context.Context) (*TeachingPortfolio, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{teachingportfolio.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *TeachingPortfolioQuery) FirstX(ctx context.Context) *TeachingPortfolio {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TeachingPortfolio ID from the query.
// Returns a *NotFoundError when no TeachingPortfolio ID was found.
func (_q *TeachingPortfolioQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{teachingportfolio.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *TeachingPortfolioQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TeachingPortfolio entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TeachingPortfolio entity is found.
// Returns a *NotFoundError when no TeachingPortfolio entities are found.
func (_q *TeachingPortfolioQuery) Only(ctx context.Context) (*TeachingPortfolio, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{teachingportfolio.Label}
	default:
		return nil, &NotSingularError{teachingportfolio.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *TeachingPortfolioQuery) OnlyX(ctx context.Context) *TeachingPortfolio {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TeachingPortfolio ID in the query.
// Returns a *NotSingularError when more than one TeachingPortfolio ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *TeachingPortfolioQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{teachingportfolio.Label}
	default:
		err = &NotSingularError{teachingportfolio.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *TeachingPortfolioQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TeachingPortfolios.
func (_q *TeachingPortfolioQuery) All(ctx context.Context) ([]*TeachingPortfolio, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TeachingPortfolio, *TeachingPortfolioQuery]()
	return withInterceptors[[]*TeachingPortfolio](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *TeachingPortfolioQuery) AllX(ctx context.Context) []*TeachingPortfolio {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TeachingPortfolio IDs.
func (_q *TeachingPortfolioQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(teachingportfolio.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *TeachingPortfolioQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *TeachingPortfolioQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*TeachingPortfolioQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *TeachingPortfolioQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *TeachingPortfolioQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *TeachingPortfolioQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TeachingPortfolioQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *TeachingPortfolioQuery) Clone() *TeachingPortfolioQuery {
	if _q == nil {
		return nil
	}
	return &TeachingPortfolioQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]teachingportfolio.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.TeachingPortfolio{}, _q.predicates...),
		withEmployee: _q.withEmployee.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithEmployee tells the query-builder to eager-load the nodes that are connected to
// the "employee" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TeachingPortfolioQuery) WithEmployee(opts ...func(*EmployeeQuery)) *TeachingPortfolioQuery {
	query := (&EmployeeClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEmployee = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		EmployeeID uuid.UUID `json:"employee_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.TeachingPortfolio.Query().
//		GroupBy(teachingportfolio.FieldEmployeeID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *TeachingPortfolioQuery) GroupBy(field string, fields ...string) *TeachingPortfolioGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TeachingPortfolioGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = teachingportfolio.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		EmployeeID uuid.UUID `json:"employee_id,omitempty"`
//	}
//
//	client.TeachingPortfolio.Query().
//		Select(teachingportfolio.FieldEmployeeID).
//		Scan(ctx, &v)
func (_q *TeachingPortfolioQuery) Select(fields ...string) *TeachingPortfolioSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &TeachingPortfolioSelect{TeachingPortfolioQuery: _q}
	sbuild.label = teachingportfolio.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TeachingPortfolioSelect configured with the given aggregations.
func (_q *TeachingPortfolioQuery) Aggregate(fns ...AggregateFunc) *TeachingPortfolioSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *TeachingPortfolioQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !teachingportfolio.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *TeachingPortfolioQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TeachingPortfolio, error) {
	var (
		nodes       = []*TeachingPortfolio{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withEmployee != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TeachingPortfolio).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TeachingPortfolio{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withEmployee; query != nil {
		if err := _q.loadEmployee(ctx, query, nodes, nil,
			func(n *TeachingPortfolio, e *Employee) { n.Edges.Employee = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *TeachingPortfolioQuery) loadEmployee(ctx context.Context, query *EmployeeQuery, nodes []*TeachingPortfolio, init func(*TeachingPortfolio), assign func(*TeachingPortfolio, *Employee)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*TeachingPortfolio)
	for i := range nodes {
		fk := nodes[i].EmployeeID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(employee.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "employee_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *TeachingPortfolioQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *TeachingPortfolioQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(teachingportfolio.Table, teachingportfolio.Columns, sqlgraph.NewFieldSpec(teachingportfolio.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, teachingportfolio.FieldID)
		for i := range fields {
			if fields[i] != teachingportfolio.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withEmployee != nil {
			_spec.Node.AddColumnOnce(teachingportfolio.FieldEmployeeID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *TeachingPortfolioQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(teachingportfolio.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = teachingportfolio.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// TeachingPortfolioGroupBy is the group-by builder for TeachingPortfolio entities.
type TeachingPortfolioGroupBy struct {
	selector
	build *TeachingPortfolioQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *TeachingPortfolioGroupBy) Aggregate(fns ...AggregateFunc) *TeachingPortfolioGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *TeachingPortfolioGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TeachingPortfolioQuery, *TeachingPortfolioGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *TeachingPortfolioGroupBy) sqlScan(ctx context.Context, root *TeachingPortfolioQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// TeachingPortfolioSelect is the builder for selecting fields of TeachingPortfolio entities.
type TeachingPortfolioSelect struct {
	*TeachingPortfolioQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *TeachingPortfolioSelect) Aggregate(fns ...AggregateFunc) *TeachingPortfolioSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *TeachingPortfolioSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TeachingPortfolioQuery, *TeachingPortfolioSelect](ctx, _s.TeachingPortfolioQuery, _s, _s.inters, v)
}

func (_s *TeachingPortfolioSelect) sqlScan(ctx context.Context, root *TeachingPortfolioQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
