// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/petarmilev/invoice-recon/gen/ent/documentpair"
	"github.com/petarmilev/invoice-recon/gen/ent/predicate"
	"github.com/petarmilev/invoice-recon/gen/ent/validationresult"
	"github.com/petarmilev/invoice-recon/gen/ent/validationsummary"
)

// DocumentPairQuery is the builder for querying DocumentPair entities.
type DocumentPairQuery struct {
	config
	ctx             *QueryContext
	order           []documentpair.OrderOption
	inters          []Interceptor
	predicates      []predicate.DocumentPair
	withValidations *ValidationResultQuery
	withSummary     *ValidationSummaryQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DocumentPairQuery builder.
func (_q *DocumentPairQuery) Where(ps ...predicate.DocumentPair) *DocumentPairQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *DocumentPairQuery) Limit(limit int) *DocumentPairQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *DocumentPairQuery) Offset(offset int) *DocumentPairQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *DocumentPairQuery) Unique(unique bool) *DocumentPairQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *DocumentPairQuery) Order(o ...documentpair.OrderOption) *DocumentPairQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryValidations chains the current query on the "validations" edge.
func (_q *DocumentPairQuery) QueryValidations() *ValidationResultQuery {
	query := (&ValidationResultClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(documentpair.Table, documentpair.FieldID, selector),
			sqlgraph.To(validationresult.Table, validationresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, documentpair.ValidationsTable, documentpair.ValidationsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySummary chains the current query on the "summary" edge.
func (_q *DocumentPairQuery) QuerySummary() *ValidationSummaryQuery {
	query := (&ValidationSummaryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(documentpair.Table, documentpair.FieldID, selector),
			sqlgraph.To(validationsummary.Table, validationsummary.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, documentpair.SummaryTable, documentpair.SummaryColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first DocumentPair entity from the query.
// Returns a *NotFoundError when no DocumentPair was found.
func (_q *DocumentPairQuery) First(ctx context.Context) (*DocumentPair, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{documentpair.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *DocumentPairQuery) FirstX(ctx context.Context) *DocumentPair {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DocumentPair ID from the query.
// Returns a *NotFoundError when no DocumentPair ID was found.
func (_q *DocumentPairQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{documentpair.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *DocumentPairQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DocumentPair entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DocumentPair entity is found.
// Returns a *NotFoundError when no DocumentPair entities are found.
func (_q *DocumentPairQuery) Only(ctx context.Context) (*DocumentPair, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{documentpair.Label}
	default:
		return nil, &NotSingularError{documentpair.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *DocumentPairQuery) OnlyX(ctx context.Context) *DocumentPair {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DocumentPair ID in the query.
// Returns a *NotSingularError when more than one DocumentPair ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *DocumentPairQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{documentpair.Label}
	default:
		err = &NotSingularError{documentpair.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *DocumentPairQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DocumentPairs.
func (_q *DocumentPairQuery) All(ctx context.Context) ([]*DocumentPair, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DocumentPair, *DocumentPairQuery]()
	return withInterceptors[[]*DocumentPair](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *DocumentPairQuery) AllX(ctx context.Context) []*DocumentPair {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DocumentPair IDs.
func (_q *DocumentPairQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(documentpair.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *DocumentPairQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *DocumentPairQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*DocumentPairQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *DocumentPairQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *DocumentPairQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *DocumentPairQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DocumentPairQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *DocumentPairQuery) Clone() *DocumentPairQuery {
	if _q == nil {
		return nil
	}
	return &DocumentPairQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]documentpair.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.DocumentPair{}, _q.predicates...),
		withValidations: _q.withValidations.Clone(),
		withSummary:     _q.withSummary.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithValidations tells the query-builder to eager-load the nodes that are connected to
// the "validations" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DocumentPairQuery) WithValidations(opts ...func(*ValidationResultQuery)) *DocumentPairQuery {
	query := (&ValidationResultClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withValidations = query
	return _q
}

// WithSummary tells the query-builder to eager-load the nodes that are connected to
// the "summary" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DocumentPairQuery) WithSummary(opts ...func(*ValidationSummaryQuery)) *DocumentPairQuery {
	query := (&ValidationSummaryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSummary = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		OrderID uuid.UUID `json:"order_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.DocumentPair.Query().
//		GroupBy(documentpair.FieldOrderID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *DocumentPairQuery) GroupBy(field string, fields ...string) *DocumentPairGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DocumentPairGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = documentpair.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		OrderID uuid.UUID `json:"order_id,omitempty"`
//	}
//
//	client.DocumentPair.Query().
//		Select(documentpair.FieldOrderID).
//		Scan(ctx, &v)
func (_q *DocumentPairQuery) Select(fields ...string) *DocumentPairSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &DocumentPairSelect{DocumentPairQuery: _q}
	sbuild.label = documentpair.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DocumentPairSelect configured with the given aggregations.
func (_q *DocumentPairQuery) Aggregate(fns ...AggregateFunc) *DocumentPairSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *DocumentPairQuery) prepareQuery(ctx context.Context) error {
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
		if !documentpair.ValidColumn(f) {
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

func (_q *DocumentPairQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DocumentPair, error) {
	var (
		nodes       = []*DocumentPair{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withValidations != nil,
			_q.withSummary != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DocumentPair).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DocumentPair{config: _q.config}
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
	if query := _q.withValidations; query != nil {
		if err := _q.loadValidations(ctx, query, nodes,
			func(n *DocumentPair) { n.Edges.Validations = []*ValidationResult{} },
			func(n *DocumentPair, e *ValidationResult) { n.Edges.Validations = append(n.Edges.Validations, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSummary; query != nil {
		if err := _q.loadSummary(ctx, query, nodes, nil,
			func(n *DocumentPair, e *ValidationSummary) { n.Edges.Summary = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *DocumentPairQuery) loadValidations(ctx context.Context, query *ValidationResultQuery, nodes []*DocumentPair, init func(*DocumentPair), assign func(*DocumentPair, *ValidationResult)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*DocumentPair)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(validationresult.FieldPairID)
	}
	query.Where(predicate.ValidationResult(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(documentpair.ValidationsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.PairID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "pair_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DocumentPairQuery) loadSummary(ctx context.Context, query *ValidationSummaryQuery, nodes []*DocumentPair, init func(*DocumentPair), assign func(*DocumentPair, *ValidationSummary)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*DocumentPair)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(validationsummary.FieldPairID)
	}
	query.Where(predicate.ValidationSummary(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(documentpair.SummaryColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.PairID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "pair_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *DocumentPairQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *DocumentPairQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(documentpair.Table, documentpair.Columns, sqlgraph.NewFieldSpec(documentpair.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentpair.FieldID)
		for i := range fields {
			if fields[i] != documentpair.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *DocumentPairQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(documentpair.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = documentpair.Columns
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

// DocumentPairGroupBy is the group-by builder for DocumentPair entities.
type DocumentPairGroupBy struct {
	selector
	build *DocumentPairQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *DocumentPairGroupBy) Aggregate(fns ...AggregateFunc) *DocumentPairGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *DocumentPairGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DocumentPairQuery, *DocumentPairGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *DocumentPairGroupBy) sqlScan(ctx context.Context, root *DocumentPairQuery, v any) error {
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

// DocumentPairSelect is the builder for selecting fields of DocumentPair entities.
type DocumentPairSelect struct {
	*DocumentPairQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *DocumentPairSelect) Aggregate(fns ...AggregateFunc) *DocumentPairSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *DocumentPairSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DocumentPairQuery, *DocumentPairSelect](ctx, _s.DocumentPairQuery, _s, _s.inters, v)
}

func (_s *DocumentPairSelect) sqlScan(ctx context.Context, root *DocumentPairQuery, v any) error {
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
