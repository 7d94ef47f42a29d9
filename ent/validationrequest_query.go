// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeflow/forgeflow/ent/predicate"
	"github.com/forgeflow/forgeflow/ent/run"
	"github.com/forgeflow/forgeflow/ent/validationrequest"
	"github.com/forgeflow/forgeflow/ent/validationresponse"
)

// ValidationRequestQuery is the builder for querying ValidationRequest entities.
type ValidationRequestQuery struct {
	config
	ctx          *QueryContext
	order        []validationrequest.OrderOption
	inters       []Interceptor
	predicates   []predicate.ValidationRequest
	withRun      *RunQuery
	withResponse *ValidationResponseQuery
	modifiers    []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ValidationRequestQuery builder.
func (_q *ValidationRequestQuery) Where(ps ...predicate.ValidationRequest) *ValidationRequestQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ValidationRequestQuery) Limit(limit int) *ValidationRequestQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ValidationRequestQuery) Offset(offset int) *ValidationRequestQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ValidationRequestQuery) Unique(unique bool) *ValidationRequestQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ValidationRequestQuery) Order(o ...validationrequest.OrderOption) *ValidationRequestQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryRun chains the current query on the "run" edge.
func (_q *ValidationRequestQuery) QueryRun() *RunQuery {
	query := (&RunClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(validationrequest.Table, validationrequest.FieldID, selector),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, validationrequest.RunTable, validationrequest.RunColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryResponse chains the current query on the "response" edge.
func (_q *ValidationRequestQuery) QueryResponse() *ValidationResponseQuery {
	query := (&ValidationResponseClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(validationrequest.Table, validationrequest.FieldID, selector),
			sqlgraph.To(validationresponse.Table, validationresponse.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, validationrequest.ResponseTable, validationrequest.ResponseColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ValidationRequest entity from the query.
// Returns a *NotFoundError when no ValidationRequest was found.
func (_q *ValidationRequestQuery) First(ctx context.Context) (*ValidationRequest, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{validationrequest.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ValidationRequestQuery) FirstX(ctx context.Context) *ValidationRequest {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ValidationRequest ID from the query.
// Returns a *NotFoundError when no ValidationRequest ID was found.
func (_q *ValidationRequestQuery) FirstID(ctx context.Context) (id int64, err error) {
	var ids []int64
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{validationrequest.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ValidationRequestQuery) FirstIDX(ctx context.Context) int64 {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ValidationRequest entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ValidationRequest entity is found.
// Returns a *NotFoundError when no ValidationRequest entities are found.
func (_q *ValidationRequestQuery) Only(ctx context.Context) (*ValidationRequest, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{validationrequest.Label}
	default:
		return nil, &NotSingularError{validationrequest.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ValidationRequestQuery) OnlyX(ctx context.Context) *ValidationRequest {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ValidationRequest ID in the query.
// Returns a *NotSingularError when more than one ValidationRequest ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ValidationRequestQuery) OnlyID(ctx context.Context) (id int64, err error) {
	var ids []int64
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{validationrequest.Label}
	default:
		err = &NotSingularError{validationrequest.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ValidationRequestQuery) OnlyIDX(ctx context.Context) int64 {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ValidationRequests.
func (_q *ValidationRequestQuery) All(ctx context.Context) ([]*ValidationRequest, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ValidationRequest, *ValidationRequestQuery]()
	return withInterceptors[[]*ValidationRequest](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ValidationRequestQuery) AllX(ctx context.Context) []*ValidationRequest {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ValidationRequest IDs.
func (_q *ValidationRequestQuery) IDs(ctx context.Context) (ids []int64, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(validationrequest.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ValidationRequestQuery) IDsX(ctx context.Context) []int64 {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ValidationRequestQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ValidationRequestQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ValidationRequestQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ValidationRequestQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ValidationRequestQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ValidationRequestQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ValidationRequestQuery) Clone() *ValidationRequestQuery {
	if _q == nil {
		return nil
	}
	return &ValidationRequestQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]validationrequest.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.ValidationRequest{}, _q.predicates...),
		withRun:      _q.withRun.Clone(),
		withResponse: _q.withResponse.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithRun tells the query-builder to eager-load the nodes that are connected to
// the "run" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ValidationRequestQuery) WithRun(opts ...func(*RunQuery)) *ValidationRequestQuery {
	query := (&RunClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRun = query
	return _q
}

// WithResponse tells the query-builder to eager-load the nodes that are connected to
// the "response" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ValidationRequestQuery) WithResponse(opts ...func(*ValidationResponseQuery)) *ValidationRequestQuery {
	query := (&ValidationResponseClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withResponse = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		RunID int64 `json:"run_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ValidationRequest.Query().
//		GroupBy(validationrequest.FieldRunID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ValidationRequestQuery) GroupBy(field string, fields ...string) *ValidationRequestGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ValidationRequestGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = validationrequest.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		RunID int64 `json:"run_id,omitempty"`
//	}
//
//	client.ValidationRequest.Query().
//		Select(validationrequest.FieldRunID).
//		Scan(ctx, &v)
func (_q *ValidationRequestQuery) Select(fields ...string) *ValidationRequestSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ValidationRequestSelect{ValidationRequestQuery: _q}
	sbuild.label = validationrequest.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ValidationRequestSelect configured with the given aggregations.
func (_q *ValidationRequestQuery) Aggregate(fns ...AggregateFunc) *ValidationRequestSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ValidationRequestQuery) prepareQuery(ctx context.Context) error {
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
		if !validationrequest.ValidColumn(f) {
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

func (_q *ValidationRequestQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ValidationRequest, error) {
	var (
		nodes       = []*ValidationRequest{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withRun != nil,
			_q.withResponse != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ValidationRequest).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ValidationRequest{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
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
	if query := _q.withRun; query != nil {
		if err := _q.loadRun(ctx, query, nodes, nil,
			func(n *ValidationRequest, e *Run) { n.Edges.Run = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withResponse; query != nil {
		if err := _q.loadResponse(ctx, query, nodes, nil,
			func(n *ValidationRequest, e *ValidationResponse) { n.Edges.Response = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ValidationRequestQuery) loadRun(ctx context.Context, query *RunQuery, nodes []*ValidationRequest, init func(*ValidationRequest), assign func(*ValidationRequest, *Run)) error {
	ids := make([]int64, 0, len(nodes))
	nodeids := make(map[int64][]*ValidationRequest)
	for i := range nodes {
		fk := nodes[i].RunID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(run.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "run_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ValidationRequestQuery) loadResponse(ctx context.Context, query *ValidationResponseQuery, nodes []*ValidationRequest, init func(*ValidationRequest), assign func(*ValidationRequest, *ValidationResponse)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int64]*ValidationRequest)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(validationresponse.FieldValidationRequestID)
	}
	query.Where(predicate.ValidationResponse(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(validationrequest.ResponseColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ValidationRequestID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "validation_request_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ValidationRequestQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ValidationRequestQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(validationrequest.Table, validationrequest.Columns, sqlgraph.NewFieldSpec(validationrequest.FieldID, field.TypeInt64))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, validationrequest.FieldID)
		for i := range fields {
			if fields[i] != validationrequest.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withRun != nil {
			_spec.Node.AddColumnOnce(validationrequest.FieldRunID)
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

func (_q *ValidationRequestQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(validationrequest.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = validationrequest.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
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

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *ValidationRequestQuery) ForUpdate(opts ...sql.LockOption) *ValidationRequestQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *ValidationRequestQuery) ForShare(opts ...sql.LockOption) *ValidationRequestQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// ValidationRequestGroupBy is the group-by builder for ValidationRequest entities.
type ValidationRequestGroupBy struct {
	selector
	build *ValidationRequestQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ValidationRequestGroupBy) Aggregate(fns ...AggregateFunc) *ValidationRequestGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ValidationRequestGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ValidationRequestQuery, *ValidationRequestGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ValidationRequestGroupBy) sqlScan(ctx context.Context, root *ValidationRequestQuery, v any) error {
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

// ValidationRequestSelect is the builder for selecting fields of ValidationRequest entities.
type ValidationRequestSelect struct {
	*ValidationRequestQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ValidationRequestSelect) Aggregate(fns ...AggregateFunc) *ValidationRequestSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ValidationRequestSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ValidationRequestQuery, *ValidationRequestSelect](ctx, _s.ValidationRequestQuery, _s, _s.inters, v)
}

func (_s *ValidationRequestSelect) sqlScan(ctx context.Context, root *ValidationRequestQuery, v any) error {
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
