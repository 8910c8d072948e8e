// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/petarmilev/invoice-recon/gen/ent/document"
	"github.com/petarmilev/invoice-recon/gen/ent/documentfile"
	"github.com/petarmilev/invoice-recon/gen/ent/lineitem"
	"github.com/petarmilev/invoice-recon/gen/ent/predicate"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocNumber sets the "doc_number" field.
func (_u *DocumentUpdate) SetDocNumber(v string) *DocumentUpdate {
	_u.mutation.SetDocNumber(v)
	return _u
}

// SetNillableDocNumber sets the "doc_number" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDocNumber(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDocNumber(*v)
	}
	return _u
}

// ClearDocNumber clears the value of the "doc_number" field.
func (_u *DocumentUpdate) ClearDocNumber() *DocumentUpdate {
	_u.mutation.ClearDocNumber()
	return _u
}

// SetDocDate sets the "doc_date" field.
func (_u *DocumentUpdate) SetDocDate(v string) *DocumentUpdate {
	_u.mutation.SetDocDate(v)
	return _u
}

// SetNillableDocDate sets the "doc_date" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDocDate(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDocDate(*v)
	}
	return _u
}

// ClearDocDate clears the value of the "doc_date" field.
func (_u *DocumentUpdate) ClearDocDate() *DocumentUpdate {
	_u.mutation.ClearDocDate()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *DocumentUpdate) SetDueDate(v string) *DocumentUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDueDate(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *DocumentUpdate) ClearDueDate() *DocumentUpdate {
	_u.mutation.ClearDueDate()
	return _u
}

// SetSupplier sets the "supplier" field.
func (_u *DocumentUpdate) SetSupplier(v string) *DocumentUpdate {
	_u.mutation.SetSupplier(v)
	return _u
}

// SetNillableSupplier sets the "supplier" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSupplier(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetSupplier(*v)
	}
	return _u
}

// ClearSupplier clears the value of the "supplier" field.
func (_u *DocumentUpdate) ClearSupplier() *DocumentUpdate {
	_u.mutation.ClearSupplier()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *DocumentUpdate) SetCurrency(v string) *DocumentUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCurrency(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// AddItemIDs adds the "items" edge to the LineItem entity by IDs.
func (_u *DocumentUpdate) AddItemIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the LineItem entity.
func (_u *DocumentUpdate) AddItems(v ...*LineItem) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddFileIDs adds the "files" edge to the DocumentFile entity by IDs.
func (_u *DocumentUpdate) AddFileIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the DocumentFile entity.
func (_u *DocumentUpdate) AddFiles(v ...*DocumentFile) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the LineItem entity.
func (_u *DocumentUpdate) ClearItems() *DocumentUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to LineItem entities by IDs.
func (_u *DocumentUpdate) RemoveItemIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to LineItem entities.
func (_u *DocumentUpdate) RemoveItems(v ...*LineItem) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearFiles clears all "files" edges to the DocumentFile entity.
func (_u *DocumentUpdate) ClearFiles() *DocumentUpdate {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to DocumentFile entities by IDs.
func (_u *DocumentUpdate) RemoveFileIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to DocumentFile entities.
func (_u *DocumentUpdate) RemoveFiles(v ...*DocumentFile) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.Currency(); ok {
		if err := document.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Document.currency": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocNumber(); ok {
		_spec.SetField(document.FieldDocNumber, field.TypeString, value)
	}
	if _u.mutation.DocNumberCleared() {
		_spec.ClearField(document.FieldDocNumber, field.TypeString)
	}
	if value, ok := _u.mutation.DocDate(); ok {
		_spec.SetField(document.FieldDocDate, field.TypeString, value)
	}
	if _u.mutation.DocDateCleared() {
		_spec.ClearField(document.FieldDocDate, field.TypeString)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(document.FieldDueDate, field.TypeString, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(document.FieldDueDate, field.TypeString)
	}
	if value, ok := _u.mutation.Supplier(); ok {
		_spec.SetField(document.FieldSupplier, field.TypeString, value)
	}
	if _u.mutation.SupplierCleared() {
		_spec.ClearField(document.FieldSupplier, field.TypeString)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(document.FieldCurrency, field.TypeString, value)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ItemsTable,
			Columns: []string{document.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ItemsTable,
			Columns: []string{document.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ItemsTable,
			Columns: []string{document.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.FilesTable,
			Columns: []string{document.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.FilesTable,
			Columns: []string{document.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.FilesTable,
			Columns: []string{document.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetDocNumber sets the "doc_number" field.
func (_u *DocumentUpdateOne) SetDocNumber(v string) *DocumentUpdateOne {
	_u.mutation.SetDocNumber(v)
	return _u
}

// SetNillableDocNumber sets the "doc_number" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDocNumber(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDocNumber(*v)
	}
	return _u
}

// ClearDocNumber clears the value of the "doc_number" field.
func (_u *DocumentUpdateOne) ClearDocNumber() *DocumentUpdateOne {
	_u.mutation.ClearDocNumber()
	return _u
}

// SetDocDate sets the "doc_date" field.
func (_u *DocumentUpdateOne) SetDocDate(v string) *DocumentUpdateOne {
	_u.mutation.SetDocDate(v)
	return _u
}

// SetNillableDocDate sets the "doc_date" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDocDate(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDocDate(*v)
	}
	return _u
}

// ClearDocDate clears the value of the "doc_date" field.
func (_u *DocumentUpdateOne) ClearDocDate() *DocumentUpdateOne {
	_u.mutation.ClearDocDate()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *DocumentUpdateOne) SetDueDate(v string) *DocumentUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDueDate(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *DocumentUpdateOne) ClearDueDate() *DocumentUpdateOne {
	_u.mutation.ClearDueDate()
	return _u
}

// SetSupplier sets the "supplier" field.
func (_u *DocumentUpdateOne) SetSupplier(v string) *DocumentUpdateOne {
	_u.mutation.SetSupplier(v)
	return _u
}

// SetNillableSupplier sets the "supplier" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSupplier(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetSupplier(*v)
	}
	return _u
}

// ClearSupplier clears the value of the "supplier" field.
func (_u *DocumentUpdateOne) ClearSupplier() *DocumentUpdateOne {
	_u.mutation.ClearSupplier()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *DocumentUpdateOne) SetCurrency(v string) *DocumentUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCurrency(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// AddItemIDs adds the "items" edge to the LineItem entity by IDs.
func (_u *DocumentUpdateOne) AddItemIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the LineItem entity.
func (_u *DocumentUpdateOne) AddItems(v ...*LineItem) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddFileIDs adds the "files" edge to the DocumentFile entity by IDs.
func (_u *DocumentUpdateOne) AddFileIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the DocumentFile entity.
func (_u *DocumentUpdateOne) AddFiles(v ...*DocumentFile) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the LineItem entity.
func (_u *DocumentUpdateOne) ClearItems() *DocumentUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to LineItem entities by IDs.
func (_u *DocumentUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to LineItem entities.
func (_u *DocumentUpdateOne) RemoveItems(v ...*LineItem) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearFiles clears all "files" edges to the DocumentFile entity.
func (_u *DocumentUpdateOne) ClearFiles() *DocumentUpdateOne {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to DocumentFile entities by IDs.
func (_u *DocumentUpdateOne) RemoveFileIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to DocumentFile entities.
func (_u *DocumentUpdateOne) RemoveFiles(v ...*DocumentFile) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.Currency(); ok {
		if err := document.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Document.currency": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocNumber(); ok {
		_spec.SetField(document.FieldDocNumber, field.TypeString, value)
	}
	if _u.mutation.DocNumberCleared() {
		_spec.ClearField(document.FieldDocNumber, field.TypeString)
	}
	if value, ok := _u.mutation.DocDate(); ok {
		_spec.SetField(document.FieldDocDate, field.TypeString, value)
	}
	if _u.mutation.DocDateCleared() {
		_spec.ClearField(document.FieldDocDate, field.TypeString)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(document.FieldDueDate, field.TypeString, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(document.FieldDueDate, field.TypeString)
	}
	if value, ok := _u.mutation.Supplier(); ok {
		_spec.SetField(document.FieldSupplier, field.TypeString, value)
	}
	if _u.mutation.SupplierCleared() {
		_spec.ClearField(document.FieldSupplier, field.TypeString)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(document.FieldCurrency, field.TypeString, value)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ItemsTable,
			Columns: []string{document.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ItemsTable,
			Columns: []string{document.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ItemsTable,
			Columns: []string{document.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.FilesTable,
			Columns: []string{document.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.FilesTable,
			Columns: []string{document.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.FilesTable,
			Columns: []string{document.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
