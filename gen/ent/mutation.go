// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/petarmilev/invoice-recon/gen/ent/document"
	"github.com/petarmilev/invoice-recon/gen/ent/documentfile"
	"github.com/petarmilev/invoice-recon/gen/ent/documentpair"
	"github.com/petarmilev/invoice-recon/gen/ent/lineitem"
	"github.com/petarmilev/invoice-recon/gen/ent/predicate"
	"github.com/petarmilev/invoice-recon/gen/ent/validationresult"
	"github.com/petarmilev/invoice-recon/gen/ent/validationsummary"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocument          = "Document"
	TypeDocumentFile      = "DocumentFile"
	TypeDocumentPair      = "DocumentPair"
	TypeLineItem          = "LineItem"
	TypeValidationResult  = "ValidationResult"
	TypeValidationSummary = "ValidationSummary"
)

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	_type         *string
	doc_number    *string
	doc_date      *string
	due_date      *string
	supplier      *string
	currency      *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	items         map[uuid.UUID]struct{}
	removeditems  map[uuid.UUID]struct{}
	cleareditems  bool
	files         map[uuid.UUID]struct{}
	removedfiles  map[uuid.UUID]struct{}
	clearedfiles  bool
	done          bool
	oldValue      func(context.Context) (*Document, error)
	predicates    []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetType sets the "type" field.
func (m *DocumentMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *DocumentMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *DocumentMutation) ResetType() {
	m._type = nil
}

// SetDocNumber sets the "doc_number" field.
func (m *DocumentMutation) SetDocNumber(s string) {
	m.doc_number = &s
}

// DocNumber returns the value of the "doc_number" field in the mutation.
func (m *DocumentMutation) DocNumber() (r string, exists bool) {
	v := m.doc_number
	if v == nil {
		return
	}
	return *v, true
}

// OldDocNumber returns the old "doc_number" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDocNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocNumber: %w", err)
	}
	return oldValue.DocNumber, nil
}

// ClearDocNumber clears the value of the "doc_number" field.
func (m *DocumentMutation) ClearDocNumber() {
	m.doc_number = nil
	m.clearedFields[document.FieldDocNumber] = struct{}{}
}

// DocNumberCleared returns if the "doc_number" field was cleared in this mutation.
func (m *DocumentMutation) DocNumberCleared() bool {
	_, ok := m.clearedFields[document.FieldDocNumber]
	return ok
}

// ResetDocNumber resets all changes to the "doc_number" field.
func (m *DocumentMutation) ResetDocNumber() {
	m.doc_number = nil
	delete(m.clearedFields, document.FieldDocNumber)
}

// SetDocDate sets the "doc_date" field.
func (m *DocumentMutation) SetDocDate(s string) {
	m.doc_date = &s
}

// DocDate returns the value of the "doc_date" field in the mutation.
func (m *DocumentMutation) DocDate() (r string, exists bool) {
	v := m.doc_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDocDate returns the old "doc_date" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDocDate(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocDate: %w", err)
	}
	return oldValue.DocDate, nil
}

// ClearDocDate clears the value of the "doc_date" field.
func (m *DocumentMutation) ClearDocDate() {
	m.doc_date = nil
	m.clearedFields[document.FieldDocDate] = struct{}{}
}

// DocDateCleared returns if the "doc_date" field was cleared in this mutation.
func (m *DocumentMutation) DocDateCleared() bool {
	_, ok := m.clearedFields[document.FieldDocDate]
	return ok
}

// ResetDocDate resets all changes to the "doc_date" field.
func (m *DocumentMutation) ResetDocDate() {
	m.doc_date = nil
	delete(m.clearedFields, document.FieldDocDate)
}

// SetDueDate sets the "due_date" field.
func (m *DocumentMutation) SetDueDate(s string) {
	m.due_date = &s
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *DocumentMutation) DueDate() (r string, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDueDate(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ClearDueDate clears the value of the "due_date" field.
func (m *DocumentMutation) ClearDueDate() {
	m.due_date = nil
	m.clearedFields[document.FieldDueDate] = struct{}{}
}

// DueDateCleared returns if the "due_date" field was cleared in this mutation.
func (m *DocumentMutation) DueDateCleared() bool {
	_, ok := m.clearedFields[document.FieldDueDate]
	return ok
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *DocumentMutation) ResetDueDate() {
	m.due_date = nil
	delete(m.clearedFields, document.FieldDueDate)
}

// SetSupplier sets the "supplier" field.
func (m *DocumentMutation) SetSupplier(s string) {
	m.supplier = &s
}

// Supplier returns the value of the "supplier" field in the mutation.
func (m *DocumentMutation) Supplier() (r string, exists bool) {
	v := m.supplier
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplier returns the old "supplier" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSupplier(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplier: %w", err)
	}
	return oldValue.Supplier, nil
}

// ClearSupplier clears the value of the "supplier" field.
func (m *DocumentMutation) ClearSupplier() {
	m.supplier = nil
	m.clearedFields[document.FieldSupplier] = struct{}{}
}

// SupplierCleared returns if the "supplier" field was cleared in this mutation.
func (m *DocumentMutation) SupplierCleared() bool {
	_, ok := m.clearedFields[document.FieldSupplier]
	return ok
}

// ResetSupplier resets all changes to the "supplier" field.
func (m *DocumentMutation) ResetSupplier() {
	m.supplier = nil
	delete(m.clearedFields, document.FieldSupplier)
}

// SetCurrency sets the "currency" field.
func (m *DocumentMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *DocumentMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *DocumentMutation) ResetCurrency() {
	m.currency = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddItemIDs adds the "items" edge to the LineItem entity by ids.
func (m *DocumentMutation) AddItemIDs(ids ...uuid.UUID) {
	if m.items == nil {
		m.items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the LineItem entity.
func (m *DocumentMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the LineItem entity was cleared.
func (m *DocumentMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the LineItem entity by IDs.
func (m *DocumentMutation) RemoveItemIDs(ids ...uuid.UUID) {
	if m.removeditems == nil {
		m.removeditems = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the LineItem entity.
func (m *DocumentMutation) RemovedItemsIDs() (ids []uuid.UUID) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *DocumentMutation) ItemsIDs() (ids []uuid.UUID) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *DocumentMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// AddFileIDs adds the "files" edge to the DocumentFile entity by ids.
func (m *DocumentMutation) AddFileIDs(ids ...uuid.UUID) {
	if m.files == nil {
		m.files = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.files[ids[i]] = struct{}{}
	}
}

// ClearFiles clears the "files" edge to the DocumentFile entity.
func (m *DocumentMutation) ClearFiles() {
	m.clearedfiles = true
}

// FilesCleared reports if the "files" edge to the DocumentFile entity was cleared.
func (m *DocumentMutation) FilesCleared() bool {
	return m.clearedfiles
}

// RemoveFileIDs removes the "files" edge to the DocumentFile entity by IDs.
func (m *DocumentMutation) RemoveFileIDs(ids ...uuid.UUID) {
	if m.removedfiles == nil {
		m.removedfiles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.files, ids[i])
		m.removedfiles[ids[i]] = struct{}{}
	}
}

// RemovedFiles returns the removed IDs of the "files" edge to the DocumentFile entity.
func (m *DocumentMutation) RemovedFilesIDs() (ids []uuid.UUID) {
	for id := range m.removedfiles {
		ids = append(ids, id)
	}
	return
}

// FilesIDs returns the "files" edge IDs in the mutation.
func (m *DocumentMutation) FilesIDs() (ids []uuid.UUID) {
	for id := range m.files {
		ids = append(ids, id)
	}
	return
}

// ResetFiles resets all changes to the "files" edge.
func (m *DocumentMutation) ResetFiles() {
	m.files = nil
	m.clearedfiles = false
	m.removedfiles = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m._type != nil {
		fields = append(fields, document.FieldType)
	}
	if m.doc_number != nil {
		fields = append(fields, document.FieldDocNumber)
	}
	if m.doc_date != nil {
		fields = append(fields, document.FieldDocDate)
	}
	if m.due_date != nil {
		fields = append(fields, document.FieldDueDate)
	}
	if m.supplier != nil {
		fields = append(fields, document.FieldSupplier)
	}
	if m.currency != nil {
		fields = append(fields, document.FieldCurrency)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldType:
		return m.GetType()
	case document.FieldDocNumber:
		return m.DocNumber()
	case document.FieldDocDate:
		return m.DocDate()
	case document.FieldDueDate:
		return m.DueDate()
	case document.FieldSupplier:
		return m.Supplier()
	case document.FieldCurrency:
		return m.Currency()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldType:
		return m.OldType(ctx)
	case document.FieldDocNumber:
		return m.OldDocNumber(ctx)
	case document.FieldDocDate:
		return m.OldDocDate(ctx)
	case document.FieldDueDate:
		return m.OldDueDate(ctx)
	case document.FieldSupplier:
		return m.OldSupplier(ctx)
	case document.FieldCurrency:
		return m.OldCurrency(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case document.FieldDocNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocNumber(v)
		return nil
	case document.FieldDocDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocDate(v)
		return nil
	case document.FieldDueDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case document.FieldSupplier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplier(v)
		return nil
	case document.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldDocNumber) {
		fields = append(fields, document.FieldDocNumber)
	}
	if m.FieldCleared(document.FieldDocDate) {
		fields = append(fields, document.FieldDocDate)
	}
	if m.FieldCleared(document.FieldDueDate) {
		fields = append(fields, document.FieldDueDate)
	}
	if m.FieldCleared(document.FieldSupplier) {
		fields = append(fields, document.FieldSupplier)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldDocNumber:
		m.ClearDocNumber()
		return nil
	case document.FieldDocDate:
		m.ClearDocDate()
		return nil
	case document.FieldDueDate:
		m.ClearDueDate()
		return nil
	case document.FieldSupplier:
		m.ClearSupplier()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldType:
		m.ResetType()
		return nil
	case document.FieldDocNumber:
		m.ResetDocNumber()
		return nil
	case document.FieldDocDate:
		m.ResetDocDate()
		return nil
	case document.FieldDueDate:
		m.ResetDueDate()
		return nil
	case document.FieldSupplier:
		m.ResetSupplier()
		return nil
	case document.FieldCurrency:
		m.ResetCurrency()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.items != nil {
		edges = append(edges, document.EdgeItems)
	}
	if m.files != nil {
		edges = append(edges, document.EdgeFiles)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.files))
		for id := range m.files {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeditems != nil {
		edges = append(edges, document.EdgeItems)
	}
	if m.removedfiles != nil {
		edges = append(edges, document.EdgeFiles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.removedfiles))
		for id := range m.removedfiles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareditems {
		edges = append(edges, document.EdgeItems)
	}
	if m.clearedfiles {
		edges = append(edges, document.EdgeFiles)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeItems:
		return m.cleareditems
	case document.EdgeFiles:
		return m.clearedfiles
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeItems:
		m.ResetItems()
		return nil
	case document.EdgeFiles:
		m.ResetFiles()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// DocumentFileMutation represents an operation that mutates the DocumentFile nodes in the graph.
type DocumentFileMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	file_name       *string
	file_type       *string
	storage_path    *string
	uploaded_at     *time.Time
	clearedFields   map[string]struct{}
	document        *uuid.UUID
	cleareddocument bool
	done            bool
	oldValue        func(context.Context) (*DocumentFile, error)
	predicates      []predicate.DocumentFile
}

var _ ent.Mutation = (*DocumentFileMutation)(nil)

// documentfileOption allows management of the mutation configuration using functional options.
type documentfileOption func(*DocumentFileMutation)

// newDocumentFileMutation creates new mutation for the DocumentFile entity.
func newDocumentFileMutation(c config, op Op, opts ...documentfileOption) *DocumentFileMutation {
	m := &DocumentFileMutation{
		config:        c,
		op:            op,
		typ:           TypeDocumentFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentFileID sets the ID field of the mutation.
func withDocumentFileID(id uuid.UUID) documentfileOption {
	return func(m *DocumentFileMutation) {
		var (
			err   error
			once  sync.Once
			value *DocumentFile
		)
		m.oldValue = func(ctx context.Context) (*DocumentFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocumentFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocumentFile sets the old DocumentFile of the mutation.
func withDocumentFile(node *DocumentFile) documentfileOption {
	return func(m *DocumentFileMutation) {
		m.oldValue = func(context.Context) (*DocumentFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DocumentFile entities.
func (m *DocumentFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocumentFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *DocumentFileMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *DocumentFileMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the DocumentFile entity.
// If the DocumentFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFileMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *DocumentFileMutation) ResetDocumentID() {
	m.document = nil
}

// SetFileName sets the "file_name" field.
func (m *DocumentFileMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *DocumentFileMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the DocumentFile entity.
// If the DocumentFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFileMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *DocumentFileMutation) ResetFileName() {
	m.file_name = nil
}

// SetFileType sets the "file_type" field.
func (m *DocumentFileMutation) SetFileType(s string) {
	m.file_type = &s
}

// FileType returns the value of the "file_type" field in the mutation.
func (m *DocumentFileMutation) FileType() (r string, exists bool) {
	v := m.file_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFileType returns the old "file_type" field's value of the DocumentFile entity.
// If the DocumentFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFileMutation) OldFileType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileType: %w", err)
	}
	return oldValue.FileType, nil
}

// ResetFileType resets all changes to the "file_type" field.
func (m *DocumentFileMutation) ResetFileType() {
	m.file_type = nil
}

// SetStoragePath sets the "storage_path" field.
func (m *DocumentFileMutation) SetStoragePath(s string) {
	m.storage_path = &s
}

// StoragePath returns the value of the "storage_path" field in the mutation.
func (m *DocumentFileMutation) StoragePath() (r string, exists bool) {
	v := m.storage_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoragePath returns the old "storage_path" field's value of the DocumentFile entity.
// If the DocumentFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFileMutation) OldStoragePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoragePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoragePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoragePath: %w", err)
	}
	return oldValue.StoragePath, nil
}

// ResetStoragePath resets all changes to the "storage_path" field.
func (m *DocumentFileMutation) ResetStoragePath() {
	m.storage_path = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *DocumentFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *DocumentFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the DocumentFile entity.
// If the DocumentFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *DocumentFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *DocumentFileMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[documentfile.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *DocumentFileMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *DocumentFileMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *DocumentFileMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the DocumentFileMutation builder.
func (m *DocumentFileMutation) Where(ps ...predicate.DocumentFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocumentFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocumentFile).
func (m *DocumentFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentFileMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.document != nil {
		fields = append(fields, documentfile.FieldDocumentID)
	}
	if m.file_name != nil {
		fields = append(fields, documentfile.FieldFileName)
	}
	if m.file_type != nil {
		fields = append(fields, documentfile.FieldFileType)
	}
	if m.storage_path != nil {
		fields = append(fields, documentfile.FieldStoragePath)
	}
	if m.uploaded_at != nil {
		fields = append(fields, documentfile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case documentfile.FieldDocumentID:
		return m.DocumentID()
	case documentfile.FieldFileName:
		return m.FileName()
	case documentfile.FieldFileType:
		return m.FileType()
	case documentfile.FieldStoragePath:
		return m.StoragePath()
	case documentfile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case documentfile.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case documentfile.FieldFileName:
		return m.OldFileName(ctx)
	case documentfile.FieldFileType:
		return m.OldFileType(ctx)
	case documentfile.FieldStoragePath:
		return m.OldStoragePath(ctx)
	case documentfile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DocumentFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case documentfile.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case documentfile.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case documentfile.FieldFileType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileType(v)
		return nil
	case documentfile.FieldStoragePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoragePath(v)
		return nil
	case documentfile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentFileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentFileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DocumentFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentFileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentFileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DocumentFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentFileMutation) ResetField(name string) error {
	switch name {
	case documentfile.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case documentfile.FieldFileName:
		m.ResetFileName()
		return nil
	case documentfile.FieldFileType:
		m.ResetFileType()
		return nil
	case documentfile.FieldStoragePath:
		m.ResetStoragePath()
		return nil
	case documentfile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown DocumentFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, documentfile.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case documentfile.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentFileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, documentfile.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentFileMutation) EdgeCleared(name string) bool {
	switch name {
	case documentfile.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentFileMutation) ClearEdge(name string) error {
	switch name {
	case documentfile.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown DocumentFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentFileMutation) ResetEdge(name string) error {
	switch name {
	case documentfile.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown DocumentFile edge %s", name)
}

// DocumentPairMutation represents an operation that mutates the DocumentPair nodes in the graph.
type DocumentPairMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	order_id           *uuid.UUID
	invoice_id         *uuid.UUID
	created_at         *time.Time
	clearedFields      map[string]struct{}
	validations        map[uuid.UUID]struct{}
	removedvalidations map[uuid.UUID]struct{}
	clearedvalidations bool
	summary            *uuid.UUID
	clearedsummary     bool
	done               bool
	oldValue           func(context.Context) (*DocumentPair, error)
	predicates         []predicate.DocumentPair
}

var _ ent.Mutation = (*DocumentPairMutation)(nil)

// documentpairOption allows management of the mutation configuration using functional options.
type documentpairOption func(*DocumentPairMutation)

// newDocumentPairMutation creates new mutation for the DocumentPair entity.
func newDocumentPairMutation(c config, op Op, opts ...documentpairOption) *DocumentPairMutation {
	m := &DocumentPairMutation{
		config:        c,
		op:            op,
		typ:           TypeDocumentPair,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentPairID sets the ID field of the mutation.
func withDocumentPairID(id uuid.UUID) documentpairOption {
	return func(m *DocumentPairMutation) {
		var (
			err   error
			once  sync.Once
			value *DocumentPair
		)
		m.oldValue = func(ctx context.Context) (*DocumentPair, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocumentPair.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocumentPair sets the old DocumentPair of the mutation.
func withDocumentPair(node *DocumentPair) documentpairOption {
	return func(m *DocumentPairMutation) {
		m.oldValue = func(context.Context) (*DocumentPair, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentPairMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentPairMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DocumentPair entities.
func (m *DocumentPairMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentPairMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentPairMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocumentPair.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrderID sets the "order_id" field.
func (m *DocumentPairMutation) SetOrderID(u uuid.UUID) {
	m.order_id = &u
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *DocumentPairMutation) OrderID() (r uuid.UUID, exists bool) {
	v := m.order_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the DocumentPair entity.
// If the DocumentPair object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentPairMutation) OldOrderID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *DocumentPairMutation) ResetOrderID() {
	m.order_id = nil
}

// SetInvoiceID sets the "invoice_id" field.
func (m *DocumentPairMutation) SetInvoiceID(u uuid.UUID) {
	m.invoice_id = &u
}

// InvoiceID returns the value of the "invoice_id" field in the mutation.
func (m *DocumentPairMutation) InvoiceID() (r uuid.UUID, exists bool) {
	v := m.invoice_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceID returns the old "invoice_id" field's value of the DocumentPair entity.
// If the DocumentPair object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentPairMutation) OldInvoiceID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceID: %w", err)
	}
	return oldValue.InvoiceID, nil
}

// ResetInvoiceID resets all changes to the "invoice_id" field.
func (m *DocumentPairMutation) ResetInvoiceID() {
	m.invoice_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentPairMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentPairMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DocumentPair entity.
// If the DocumentPair object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentPairMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentPairMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddValidationIDs adds the "validations" edge to the ValidationResult entity by ids.
func (m *DocumentPairMutation) AddValidationIDs(ids ...uuid.UUID) {
	if m.validations == nil {
		m.validations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.validations[ids[i]] = struct{}{}
	}
}

// ClearValidations clears the "validations" edge to the ValidationResult entity.
func (m *DocumentPairMutation) ClearValidations() {
	m.clearedvalidations = true
}

// ValidationsCleared reports if the "validations" edge to the ValidationResult entity was cleared.
func (m *DocumentPairMutation) ValidationsCleared() bool {
	return m.clearedvalidations
}

// RemoveValidationIDs removes the "validations" edge to the ValidationResult entity by IDs.
func (m *DocumentPairMutation) RemoveValidationIDs(ids ...uuid.UUID) {
	if m.removedvalidations == nil {
		m.removedvalidations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.validations, ids[i])
		m.removedvalidations[ids[i]] = struct{}{}
	}
}

// RemovedValidations returns the removed IDs of the "validations" edge to the ValidationResult entity.
func (m *DocumentPairMutation) RemovedValidationsIDs() (ids []uuid.UUID) {
	for id := range m.removedvalidations {
		ids = append(ids, id)
	}
	return
}

// ValidationsIDs returns the "validations" edge IDs in the mutation.
func (m *DocumentPairMutation) ValidationsIDs() (ids []uuid.UUID) {
	for id := range m.validations {
		ids = append(ids, id)
	}
	return
}

// ResetValidations resets all changes to the "validations" edge.
func (m *DocumentPairMutation) ResetValidations() {
	m.validations = nil
	m.clearedvalidations = false
	m.removedvalidations = nil
}

// SetSummaryID sets the "summary" edge to the ValidationSummary entity by id.
func (m *DocumentPairMutation) SetSummaryID(id uuid.UUID) {
	m.summary = &id
}

// ClearSummary clears the "summary" edge to the ValidationSummary entity.
func (m *DocumentPairMutation) ClearSummary() {
	m.clearedsummary = true
}

// SummaryCleared reports if the "summary" edge to the ValidationSummary entity was cleared.
func (m *DocumentPairMutation) SummaryCleared() bool {
	return m.clearedsummary
}

// SummaryID returns the "summary" edge ID in the mutation.
func (m *DocumentPairMutation) SummaryID() (id uuid.UUID, exists bool) {
	if m.summary != nil {
		return *m.summary, true
	}
	return
}

// SummaryIDs returns the "summary" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SummaryID instead. It exists only for internal usage by the builders.
func (m *DocumentPairMutation) SummaryIDs() (ids []uuid.UUID) {
	if id := m.summary; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSummary resets all changes to the "summary" edge.
func (m *DocumentPairMutation) ResetSummary() {
	m.summary = nil
	m.clearedsummary = false
}

// Where appends a list predicates to the DocumentPairMutation builder.
func (m *DocumentPairMutation) Where(ps ...predicate.DocumentPair) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentPairMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentPairMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocumentPair, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentPairMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentPairMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocumentPair).
func (m *DocumentPairMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentPairMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.order_id != nil {
		fields = append(fields, documentpair.FieldOrderID)
	}
	if m.invoice_id != nil {
		fields = append(fields, documentpair.FieldInvoiceID)
	}
	if m.created_at != nil {
		fields = append(fields, documentpair.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentPairMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case documentpair.FieldOrderID:
		return m.OrderID()
	case documentpair.FieldInvoiceID:
		return m.InvoiceID()
	case documentpair.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentPairMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case documentpair.FieldOrderID:
		return m.OldOrderID(ctx)
	case documentpair.FieldInvoiceID:
		return m.OldInvoiceID(ctx)
	case documentpair.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DocumentPair field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentPairMutation) SetField(name string, value ent.Value) error {
	switch name {
	case documentpair.FieldOrderID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	case documentpair.FieldInvoiceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceID(v)
		return nil
	case documentpair.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentPair field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentPairMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentPairMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentPairMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DocumentPair numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentPairMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentPairMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentPairMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DocumentPair nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentPairMutation) ResetField(name string) error {
	switch name {
	case documentpair.FieldOrderID:
		m.ResetOrderID()
		return nil
	case documentpair.FieldInvoiceID:
		m.ResetInvoiceID()
		return nil
	case documentpair.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DocumentPair field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentPairMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.validations != nil {
		edges = append(edges, documentpair.EdgeValidations)
	}
	if m.summary != nil {
		edges = append(edges, documentpair.EdgeSummary)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentPairMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case documentpair.EdgeValidations:
		ids := make([]ent.Value, 0, len(m.validations))
		for id := range m.validations {
			ids = append(ids, id)
		}
		return ids
	case documentpair.EdgeSummary:
		if id := m.summary; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentPairMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedvalidations != nil {
		edges = append(edges, documentpair.EdgeValidations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentPairMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case documentpair.EdgeValidations:
		ids := make([]ent.Value, 0, len(m.removedvalidations))
		for id := range m.removedvalidations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentPairMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedvalidations {
		edges = append(edges, documentpair.EdgeValidations)
	}
	if m.clearedsummary {
		edges = append(edges, documentpair.EdgeSummary)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentPairMutation) EdgeCleared(name string) bool {
	switch name {
	case documentpair.EdgeValidations:
		return m.clearedvalidations
	case documentpair.EdgeSummary:
		return m.clearedsummary
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentPairMutation) ClearEdge(name string) error {
	switch name {
	case documentpair.EdgeSummary:
		m.ClearSummary()
		return nil
	}
	return fmt.Errorf("unknown DocumentPair unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentPairMutation) ResetEdge(name string) error {
	switch name {
	case documentpair.EdgeValidations:
		m.ResetValidations()
		return nil
	case documentpair.EdgeSummary:
		m.ResetSummary()
		return nil
	}
	return fmt.Errorf("unknown DocumentPair edge %s", name)
}

// LineItemMutation represents an operation that mutates the LineItem nodes in the graph.
type LineItemMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	name            *string
	qty             *float64
	addqty          *float64
	unit_price      *float64
	addunit_price   *float64
	vat_percent     *float64
	addvat_percent  *float64
	clearedFields   map[string]struct{}
	document        *uuid.UUID
	cleareddocument bool
	done            bool
	oldValue        func(context.Context) (*LineItem, error)
	predicates      []predicate.LineItem
}

var _ ent.Mutation = (*LineItemMutation)(nil)

// lineitemOption allows management of the mutation configuration using functional options.
type lineitemOption func(*LineItemMutation)

// newLineItemMutation creates new mutation for the LineItem entity.
func newLineItemMutation(c config, op Op, opts ...lineitemOption) *LineItemMutation {
	m := &LineItemMutation{
		config:        c,
		op:            op,
		typ:           TypeLineItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLineItemID sets the ID field of the mutation.
func withLineItemID(id uuid.UUID) lineitemOption {
	return func(m *LineItemMutation) {
		var (
			err   error
			once  sync.Once
			value *LineItem
		)
		m.oldValue = func(ctx context.Context) (*LineItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LineItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLineItem sets the old LineItem of the mutation.
func withLineItem(node *LineItem) lineitemOption {
	return func(m *LineItemMutation) {
		m.oldValue = func(context.Context) (*LineItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LineItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LineItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LineItem entities.
func (m *LineItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LineItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LineItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LineItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *LineItemMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *LineItemMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the LineItem entity.
// If the LineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineItemMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *LineItemMutation) ResetDocumentID() {
	m.document = nil
}

// SetName sets the "name" field.
func (m *LineItemMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *LineItemMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the LineItem entity.
// If the LineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineItemMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *LineItemMutation) ResetName() {
	m.name = nil
}

// SetQty sets the "qty" field.
func (m *LineItemMutation) SetQty(f float64) {
	m.qty = &f
	m.addqty = nil
}

// Qty returns the value of the "qty" field in the mutation.
func (m *LineItemMutation) Qty() (r float64, exists bool) {
	v := m.qty
	if v == nil {
		return
	}
	return *v, true
}

// OldQty returns the old "qty" field's value of the LineItem entity.
// If the LineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineItemMutation) OldQty(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQty: %w", err)
	}
	return oldValue.Qty, nil
}

// AddQty adds f to the "qty" field.
func (m *LineItemMutation) AddQty(f float64) {
	if m.addqty != nil {
		*m.addqty += f
	} else {
		m.addqty = &f
	}
}

// AddedQty returns the value that was added to the "qty" field in this mutation.
func (m *LineItemMutation) AddedQty() (r float64, exists bool) {
	v := m.addqty
	if v == nil {
		return
	}
	return *v, true
}

// ResetQty resets all changes to the "qty" field.
func (m *LineItemMutation) ResetQty() {
	m.qty = nil
	m.addqty = nil
}

// SetUnitPrice sets the "unit_price" field.
func (m *LineItemMutation) SetUnitPrice(f float64) {
	m.unit_price = &f
	m.addunit_price = nil
}

// UnitPrice returns the value of the "unit_price" field in the mutation.
func (m *LineItemMutation) UnitPrice() (r float64, exists bool) {
	v := m.unit_price
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitPrice returns the old "unit_price" field's value of the LineItem entity.
// If the LineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineItemMutation) OldUnitPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitPrice: %w", err)
	}
	return oldValue.UnitPrice, nil
}

// AddUnitPrice adds f to the "unit_price" field.
func (m *LineItemMutation) AddUnitPrice(f float64) {
	if m.addunit_price != nil {
		*m.addunit_price += f
	} else {
		m.addunit_price = &f
	}
}

// AddedUnitPrice returns the value that was added to the "unit_price" field in this mutation.
func (m *LineItemMutation) AddedUnitPrice() (r float64, exists bool) {
	v := m.addunit_price
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnitPrice resets all changes to the "unit_price" field.
func (m *LineItemMutation) ResetUnitPrice() {
	m.unit_price = nil
	m.addunit_price = nil
}

// SetVatPercent sets the "vat_percent" field.
func (m *LineItemMutation) SetVatPercent(f float64) {
	m.vat_percent = &f
	m.addvat_percent = nil
}

// VatPercent returns the value of the "vat_percent" field in the mutation.
func (m *LineItemMutation) VatPercent() (r float64, exists bool) {
	v := m.vat_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldVatPercent returns the old "vat_percent" field's value of the LineItem entity.
// If the LineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineItemMutation) OldVatPercent(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVatPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVatPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVatPercent: %w", err)
	}
	return oldValue.VatPercent, nil
}

// AddVatPercent adds f to the "vat_percent" field.
func (m *LineItemMutation) AddVatPercent(f float64) {
	if m.addvat_percent != nil {
		*m.addvat_percent += f
	} else {
		m.addvat_percent = &f
	}
}

// AddedVatPercent returns the value that was added to the "vat_percent" field in this mutation.
func (m *LineItemMutation) AddedVatPercent() (r float64, exists bool) {
	v := m.addvat_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetVatPercent resets all changes to the "vat_percent" field.
func (m *LineItemMutation) ResetVatPercent() {
	m.vat_percent = nil
	m.addvat_percent = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *LineItemMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[lineitem.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *LineItemMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *LineItemMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *LineItemMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the LineItemMutation builder.
func (m *LineItemMutation) Where(ps ...predicate.LineItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LineItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LineItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LineItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LineItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LineItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LineItem).
func (m *LineItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LineItemMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.document != nil {
		fields = append(fields, lineitem.FieldDocumentID)
	}
	if m.name != nil {
		fields = append(fields, lineitem.FieldName)
	}
	if m.qty != nil {
		fields = append(fields, lineitem.FieldQty)
	}
	if m.unit_price != nil {
		fields = append(fields, lineitem.FieldUnitPrice)
	}
	if m.vat_percent != nil {
		fields = append(fields, lineitem.FieldVatPercent)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LineItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lineitem.FieldDocumentID:
		return m.DocumentID()
	case lineitem.FieldName:
		return m.Name()
	case lineitem.FieldQty:
		return m.Qty()
	case lineitem.FieldUnitPrice:
		return m.UnitPrice()
	case lineitem.FieldVatPercent:
		return m.VatPercent()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LineItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lineitem.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case lineitem.FieldName:
		return m.OldName(ctx)
	case lineitem.FieldQty:
		return m.OldQty(ctx)
	case lineitem.FieldUnitPrice:
		return m.OldUnitPrice(ctx)
	case lineitem.FieldVatPercent:
		return m.OldVatPercent(ctx)
	}
	return nil, fmt.Errorf("unknown LineItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LineItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lineitem.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case lineitem.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case lineitem.FieldQty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQty(v)
		return nil
	case lineitem.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitPrice(v)
		return nil
	case lineitem.FieldVatPercent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVatPercent(v)
		return nil
	}
	return fmt.Errorf("unknown LineItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LineItemMutation) AddedFields() []string {
	var fields []string
	if m.addqty != nil {
		fields = append(fields, lineitem.FieldQty)
	}
	if m.addunit_price != nil {
		fields = append(fields, lineitem.FieldUnitPrice)
	}
	if m.addvat_percent != nil {
		fields = append(fields, lineitem.FieldVatPercent)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LineItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lineitem.FieldQty:
		return m.AddedQty()
	case lineitem.FieldUnitPrice:
		return m.AddedUnitPrice()
	case lineitem.FieldVatPercent:
		return m.AddedVatPercent()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LineItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lineitem.FieldQty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQty(v)
		return nil
	case lineitem.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitPrice(v)
		return nil
	case lineitem.FieldVatPercent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVatPercent(v)
		return nil
	}
	return fmt.Errorf("unknown LineItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LineItemMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LineItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LineItemMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LineItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LineItemMutation) ResetField(name string) error {
	switch name {
	case lineitem.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case lineitem.FieldName:
		m.ResetName()
		return nil
	case lineitem.FieldQty:
		m.ResetQty()
		return nil
	case lineitem.FieldUnitPrice:
		m.ResetUnitPrice()
		return nil
	case lineitem.FieldVatPercent:
		m.ResetVatPercent()
		return nil
	}
	return fmt.Errorf("unknown LineItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LineItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, lineitem.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LineItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case lineitem.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LineItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LineItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LineItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, lineitem.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LineItemMutation) EdgeCleared(name string) bool {
	switch name {
	case lineitem.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LineItemMutation) ClearEdge(name string) error {
	switch name {
	case lineitem.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown LineItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LineItemMutation) ResetEdge(name string) error {
	switch name {
	case lineitem.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown LineItem edge %s", name)
}

// ValidationResultMutation represents an operation that mutates the ValidationResult nodes in the graph.
type ValidationResultMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	category      *string
	message       *string
	severity      *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	pair          *uuid.UUID
	clearedpair   bool
	done          bool
	oldValue      func(context.Context) (*ValidationResult, error)
	predicates    []predicate.ValidationResult
}

var _ ent.Mutation = (*ValidationResultMutation)(nil)

// validationresultOption allows management of the mutation configuration using functional options.
type validationresultOption func(*ValidationResultMutation)

// newValidationResultMutation creates new mutation for the ValidationResult entity.
func newValidationResultMutation(c config, op Op, opts ...validationresultOption) *ValidationResultMutation {
	m := &ValidationResultMutation{
		config:        c,
		op:            op,
		typ:           TypeValidationResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withValidationResultID sets the ID field of the mutation.
func withValidationResultID(id uuid.UUID) validationresultOption {
	return func(m *ValidationResultMutation) {
		var (
			err   error
			once  sync.Once
			value *ValidationResult
		)
		m.oldValue = func(ctx context.Context) (*ValidationResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ValidationResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withValidationResult sets the old ValidationResult of the mutation.
func withValidationResult(node *ValidationResult) validationresultOption {
	return func(m *ValidationResultMutation) {
		m.oldValue = func(context.Context) (*ValidationResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ValidationResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ValidationResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ValidationResult entities.
func (m *ValidationResultMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ValidationResultMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ValidationResultMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ValidationResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPairID sets the "pair_id" field.
func (m *ValidationResultMutation) SetPairID(u uuid.UUID) {
	m.pair = &u
}

// PairID returns the value of the "pair_id" field in the mutation.
func (m *ValidationResultMutation) PairID() (r uuid.UUID, exists bool) {
	v := m.pair
	if v == nil {
		return
	}
	return *v, true
}

// OldPairID returns the old "pair_id" field's value of the ValidationResult entity.
// If the ValidationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationResultMutation) OldPairID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPairID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPairID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPairID: %w", err)
	}
	return oldValue.PairID, nil
}

// ResetPairID resets all changes to the "pair_id" field.
func (m *ValidationResultMutation) ResetPairID() {
	m.pair = nil
}

// SetCategory sets the "category" field.
func (m *ValidationResultMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ValidationResultMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ValidationResult entity.
// If the ValidationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationResultMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *ValidationResultMutation) ResetCategory() {
	m.category = nil
}

// SetMessage sets the "message" field.
func (m *ValidationResultMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *ValidationResultMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the ValidationResult entity.
// If the ValidationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationResultMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *ValidationResultMutation) ResetMessage() {
	m.message = nil
}

// SetSeverity sets the "severity" field.
func (m *ValidationResultMutation) SetSeverity(s string) {
	m.severity = &s
}

// Severity returns the value of the "severity" field in the mutation.
func (m *ValidationResultMutation) Severity() (r string, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the ValidationResult entity.
// If the ValidationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationResultMutation) OldSeverity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *ValidationResultMutation) ResetSeverity() {
	m.severity = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ValidationResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ValidationResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ValidationResult entity.
// If the ValidationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ValidationResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearPair clears the "pair" edge to the DocumentPair entity.
func (m *ValidationResultMutation) ClearPair() {
	m.clearedpair = true
	m.clearedFields[validationresult.FieldPairID] = struct{}{}
}

// PairCleared reports if the "pair" edge to the DocumentPair entity was cleared.
func (m *ValidationResultMutation) PairCleared() bool {
	return m.clearedpair
}

// PairIDs returns the "pair" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PairID instead. It exists only for internal usage by the builders.
func (m *ValidationResultMutation) PairIDs() (ids []uuid.UUID) {
	if id := m.pair; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPair resets all changes to the "pair" edge.
func (m *ValidationResultMutation) ResetPair() {
	m.pair = nil
	m.clearedpair = false
}

// Where appends a list predicates to the ValidationResultMutation builder.
func (m *ValidationResultMutation) Where(ps ...predicate.ValidationResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ValidationResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ValidationResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ValidationResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ValidationResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ValidationResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ValidationResult).
func (m *ValidationResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ValidationResultMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.pair != nil {
		fields = append(fields, validationresult.FieldPairID)
	}
	if m.category != nil {
		fields = append(fields, validationresult.FieldCategory)
	}
	if m.message != nil {
		fields = append(fields, validationresult.FieldMessage)
	}
	if m.severity != nil {
		fields = append(fields, validationresult.FieldSeverity)
	}
	if m.created_at != nil {
		fields = append(fields, validationresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ValidationResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case validationresult.FieldPairID:
		return m.PairID()
	case validationresult.FieldCategory:
		return m.Category()
	case validationresult.FieldMessage:
		return m.Message()
	case validationresult.FieldSeverity:
		return m.Severity()
	case validationresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ValidationResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case validationresult.FieldPairID:
		return m.OldPairID(ctx)
	case validationresult.FieldCategory:
		return m.OldCategory(ctx)
	case validationresult.FieldMessage:
		return m.OldMessage(ctx)
	case validationresult.FieldSeverity:
		return m.OldSeverity(ctx)
	case validationresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ValidationResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ValidationResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case validationresult.FieldPairID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPairID(v)
		return nil
	case validationresult.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case validationresult.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case validationresult.FieldSeverity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case validationresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ValidationResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ValidationResultMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ValidationResultMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ValidationResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ValidationResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ValidationResultMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ValidationResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ValidationResultMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ValidationResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ValidationResultMutation) ResetField(name string) error {
	switch name {
	case validationresult.FieldPairID:
		m.ResetPairID()
		return nil
	case validationresult.FieldCategory:
		m.ResetCategory()
		return nil
	case validationresult.FieldMessage:
		m.ResetMessage()
		return nil
	case validationresult.FieldSeverity:
		m.ResetSeverity()
		return nil
	case validationresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ValidationResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ValidationResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.pair != nil {
		edges = append(edges, validationresult.EdgePair)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ValidationResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case validationresult.EdgePair:
		if id := m.pair; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ValidationResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ValidationResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ValidationResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpair {
		edges = append(edges, validationresult.EdgePair)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ValidationResultMutation) EdgeCleared(name string) bool {
	switch name {
	case validationresult.EdgePair:
		return m.clearedpair
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ValidationResultMutation) ClearEdge(name string) error {
	switch name {
	case validationresult.EdgePair:
		m.ClearPair()
		return nil
	}
	return fmt.Errorf("unknown ValidationResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ValidationResultMutation) ResetEdge(name string) error {
	switch name {
	case validationresult.EdgePair:
		m.ResetPair()
		return nil
	}
	return fmt.Errorf("unknown ValidationResult edge %s", name)
}

// ValidationSummaryMutation represents an operation that mutates the ValidationSummary nodes in the graph.
type ValidationSummaryMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	items_status  *string
	vat_status    *string
	dates_status  *string
	totals_status *string
	final_status  *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	pair          *uuid.UUID
	clearedpair   bool
	done          bool
	oldValue      func(context.Context) (*ValidationSummary, error)
	predicates    []predicate.ValidationSummary
}

var _ ent.Mutation = (*ValidationSummaryMutation)(nil)

// validationsummaryOption allows management of the mutation configuration using functional options.
type validationsummaryOption func(*ValidationSummaryMutation)

// newValidationSummaryMutation creates new mutation for the ValidationSummary entity.
func newValidationSummaryMutation(c config, op Op, opts ...validationsummaryOption) *ValidationSummaryMutation {
	m := &ValidationSummaryMutation{
		config:        c,
		op:            op,
		typ:           TypeValidationSummary,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withValidationSummaryID sets the ID field of the mutation.
func withValidationSummaryID(id uuid.UUID) validationsummaryOption {
	return func(m *ValidationSummaryMutation) {
		var (
			err   error
			once  sync.Once
			value *ValidationSummary
		)
		m.oldValue = func(ctx context.Context) (*ValidationSummary, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ValidationSummary.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withValidationSummary sets the old ValidationSummary of the mutation.
func withValidationSummary(node *ValidationSummary) validationsummaryOption {
	return func(m *ValidationSummaryMutation) {
		m.oldValue = func(context.Context) (*ValidationSummary, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ValidationSummaryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ValidationSummaryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ValidationSummary entities.
func (m *ValidationSummaryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ValidationSummaryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ValidationSummaryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ValidationSummary.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPairID sets the "pair_id" field.
func (m *ValidationSummaryMutation) SetPairID(u uuid.UUID) {
	m.pair = &u
}

// PairID returns the value of the "pair_id" field in the mutation.
func (m *ValidationSummaryMutation) PairID() (r uuid.UUID, exists bool) {
	v := m.pair
	if v == nil {
		return
	}
	return *v, true
}

// OldPairID returns the old "pair_id" field's value of the ValidationSummary entity.
// If the ValidationSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationSummaryMutation) OldPairID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPairID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPairID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPairID: %w", err)
	}
	return oldValue.PairID, nil
}

// ResetPairID resets all changes to the "pair_id" field.
func (m *ValidationSummaryMutation) ResetPairID() {
	m.pair = nil
}

// SetItemsStatus sets the "items_status" field.
func (m *ValidationSummaryMutation) SetItemsStatus(s string) {
	m.items_status = &s
}

// ItemsStatus returns the value of the "items_status" field in the mutation.
func (m *ValidationSummaryMutation) ItemsStatus() (r string, exists bool) {
	v := m.items_status
	if v == nil {
		return
	}
	return *v, true
}

// OldItemsStatus returns the old "items_status" field's value of the ValidationSummary entity.
// If the ValidationSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationSummaryMutation) OldItemsStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemsStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemsStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemsStatus: %w", err)
	}
	return oldValue.ItemsStatus, nil
}

// ResetItemsStatus resets all changes to the "items_status" field.
func (m *ValidationSummaryMutation) ResetItemsStatus() {
	m.items_status = nil
}

// SetVatStatus sets the "vat_status" field.
func (m *ValidationSummaryMutation) SetVatStatus(s string) {
	m.vat_status = &s
}

// VatStatus returns the value of the "vat_status" field in the mutation.
func (m *ValidationSummaryMutation) VatStatus() (r string, exists bool) {
	v := m.vat_status
	if v == nil {
		return
	}
	return *v, true
}

// OldVatStatus returns the old "vat_status" field's value of the ValidationSummary entity.
// If the ValidationSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationSummaryMutation) OldVatStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVatStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVatStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVatStatus: %w", err)
	}
	return oldValue.VatStatus, nil
}

// ResetVatStatus resets all changes to the "vat_status" field.
func (m *ValidationSummaryMutation) ResetVatStatus() {
	m.vat_status = nil
}

// SetDatesStatus sets the "dates_status" field.
func (m *ValidationSummaryMutation) SetDatesStatus(s string) {
	m.dates_status = &s
}

// DatesStatus returns the value of the "dates_status" field in the mutation.
func (m *ValidationSummaryMutation) DatesStatus() (r string, exists bool) {
	v := m.dates_status
	if v == nil {
		return
	}
	return *v, true
}

// OldDatesStatus returns the old "dates_status" field's value of the ValidationSummary entity.
// If the ValidationSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationSummaryMutation) OldDatesStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatesStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatesStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatesStatus: %w", err)
	}
	return oldValue.DatesStatus, nil
}

// ResetDatesStatus resets all changes to the "dates_status" field.
func (m *ValidationSummaryMutation) ResetDatesStatus() {
	m.dates_status = nil
}

// SetTotalsStatus sets the "totals_status" field.
func (m *ValidationSummaryMutation) SetTotalsStatus(s string) {
	m.totals_status = &s
}

// TotalsStatus returns the value of the "totals_status" field in the mutation.
func (m *ValidationSummaryMutation) TotalsStatus() (r string, exists bool) {
	v := m.totals_status
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalsStatus returns the old "totals_status" field's value of the ValidationSummary entity.
// If the ValidationSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationSummaryMutation) OldTotalsStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalsStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalsStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalsStatus: %w", err)
	}
	return oldValue.TotalsStatus, nil
}

// ResetTotalsStatus resets all changes to the "totals_status" field.
func (m *ValidationSummaryMutation) ResetTotalsStatus() {
	m.totals_status = nil
}

// SetFinalStatus sets the "final_status" field.
func (m *ValidationSummaryMutation) SetFinalStatus(s string) {
	m.final_status = &s
}

// FinalStatus returns the value of the "final_status" field in the mutation.
func (m *ValidationSummaryMutation) FinalStatus() (r string, exists bool) {
	v := m.final_status
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalStatus returns the old "final_status" field's value of the ValidationSummary entity.
// If the ValidationSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationSummaryMutation) OldFinalStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalStatus: %w", err)
	}
	return oldValue.FinalStatus, nil
}

// ResetFinalStatus resets all changes to the "final_status" field.
func (m *ValidationSummaryMutation) ResetFinalStatus() {
	m.final_status = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ValidationSummaryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ValidationSummaryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ValidationSummary entity.
// If the ValidationSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationSummaryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ValidationSummaryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearPair clears the "pair" edge to the DocumentPair entity.
func (m *ValidationSummaryMutation) ClearPair() {
	m.clearedpair = true
	m.clearedFields[validationsummary.FieldPairID] = struct{}{}
}

// PairCleared reports if the "pair" edge to the DocumentPair entity was cleared.
func (m *ValidationSummaryMutation) PairCleared() bool {
	return m.clearedpair
}

// PairIDs returns the "pair" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PairID instead. It exists only for internal usage by the builders.
func (m *ValidationSummaryMutation) PairIDs() (ids []uuid.UUID) {
	if id := m.pair; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPair resets all changes to the "pair" edge.
func (m *ValidationSummaryMutation) ResetPair() {
	m.pair = nil
	m.clearedpair = false
}

// Where appends a list predicates to the ValidationSummaryMutation builder.
func (m *ValidationSummaryMutation) Where(ps ...predicate.ValidationSummary) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ValidationSummaryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ValidationSummaryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ValidationSummary, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ValidationSummaryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ValidationSummaryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ValidationSummary).
func (m *ValidationSummaryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ValidationSummaryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.pair != nil {
		fields = append(fields, validationsummary.FieldPairID)
	}
	if m.items_status != nil {
		fields = append(fields, validationsummary.FieldItemsStatus)
	}
	if m.vat_status != nil {
		fields = append(fields, validationsummary.FieldVatStatus)
	}
	if m.dates_status != nil {
		fields = append(fields, validationsummary.FieldDatesStatus)
	}
	if m.totals_status != nil {
		fields = append(fields, validationsummary.FieldTotalsStatus)
	}
	if m.final_status != nil {
		fields = append(fields, validationsummary.FieldFinalStatus)
	}
	if m.updated_at != nil {
		fields = append(fields, validationsummary.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ValidationSummaryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case validationsummary.FieldPairID:
		return m.PairID()
	case validationsummary.FieldItemsStatus:
		return m.ItemsStatus()
	case validationsummary.FieldVatStatus:
		return m.VatStatus()
	case validationsummary.FieldDatesStatus:
		return m.DatesStatus()
	case validationsummary.FieldTotalsStatus:
		return m.TotalsStatus()
	case validationsummary.FieldFinalStatus:
		return m.FinalStatus()
	case validationsummary.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ValidationSummaryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case validationsummary.FieldPairID:
		return m.OldPairID(ctx)
	case validationsummary.FieldItemsStatus:
		return m.OldItemsStatus(ctx)
	case validationsummary.FieldVatStatus:
		return m.OldVatStatus(ctx)
	case validationsummary.FieldDatesStatus:
		return m.OldDatesStatus(ctx)
	case validationsummary.FieldTotalsStatus:
		return m.OldTotalsStatus(ctx)
	case validationsummary.FieldFinalStatus:
		return m.OldFinalStatus(ctx)
	case validationsummary.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ValidationSummary field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ValidationSummaryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case validationsummary.FieldPairID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPairID(v)
		return nil
	case validationsummary.FieldItemsStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemsStatus(v)
		return nil
	case validationsummary.FieldVatStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVatStatus(v)
		return nil
	case validationsummary.FieldDatesStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatesStatus(v)
		return nil
	case validationsummary.FieldTotalsStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalsStatus(v)
		return nil
	case validationsummary.FieldFinalStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalStatus(v)
		return nil
	case validationsummary.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ValidationSummary field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ValidationSummaryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ValidationSummaryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ValidationSummaryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ValidationSummary numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ValidationSummaryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ValidationSummaryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ValidationSummaryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ValidationSummary nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ValidationSummaryMutation) ResetField(name string) error {
	switch name {
	case validationsummary.FieldPairID:
		m.ResetPairID()
		return nil
	case validationsummary.FieldItemsStatus:
		m.ResetItemsStatus()
		return nil
	case validationsummary.FieldVatStatus:
		m.ResetVatStatus()
		return nil
	case validationsummary.FieldDatesStatus:
		m.ResetDatesStatus()
		return nil
	case validationsummary.FieldTotalsStatus:
		m.ResetTotalsStatus()
		return nil
	case validationsummary.FieldFinalStatus:
		m.ResetFinalStatus()
		return nil
	case validationsummary.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ValidationSummary field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ValidationSummaryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.pair != nil {
		edges = append(edges, validationsummary.EdgePair)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ValidationSummaryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case validationsummary.EdgePair:
		if id := m.pair; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ValidationSummaryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ValidationSummaryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ValidationSummaryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpair {
		edges = append(edges, validationsummary.EdgePair)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ValidationSummaryMutation) EdgeCleared(name string) bool {
	switch name {
	case validationsummary.EdgePair:
		return m.clearedpair
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ValidationSummaryMutation) ClearEdge(name string) error {
	switch name {
	case validationsummary.EdgePair:
		m.ClearPair()
		return nil
	}
	return fmt.Errorf("unknown ValidationSummary unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ValidationSummaryMutation) ResetEdge(name string) error {
	switch name {
	case validationsummary.EdgePair:
		m.ResetPair()
		return nil
	}
	return fmt.Errorf("unknown ValidationSummary edge %s", name)
}
