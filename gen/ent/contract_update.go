// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hsakoda/contract-analyzer/gen/ent/contract"
	"github.com/hsakoda/contract-analyzer/gen/ent/document"
	"github.com/hsakoda/contract-analyzer/gen/ent/predicate"
)

// ContractUpdate is the builder for updating Contract entities.
type ContractUpdate struct {
	config
	hooks    []Hook
	mutation *ContractMutation
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdate) Where(ps ...predicate.Contract) *ContractUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ContractUpdate) SetDocumentID(v uuid.UUID) *ContractUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableDocumentID(v *uuid.UUID) *ContractUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetPartyA sets the "party_a" field.
func (_u *ContractUpdate) SetPartyA(v string) *ContractUpdate {
	_u.mutation.SetPartyA(v)
	return _u
}

// SetNillablePartyA sets the "party_a" field if the given value is not nil.
func (_u *ContractUpdate) SetNillablePartyA(v *string) *ContractUpdate {
	if v != nil {
		_u.SetPartyA(*v)
	}
	return _u
}

// ClearPartyA clears the value of the "party_a" field.
func (_u *ContractUpdate) ClearPartyA() *ContractUpdate {
	_u.mutation.ClearPartyA()
	return _u
}

// SetPartyB sets the "party_b" field.
func (_u *ContractUpdate) SetPartyB(v string) *ContractUpdate {
	_u.mutation.SetPartyB(v)
	return _u
}

// SetNillablePartyB sets the "party_b" field if the given value is not nil.
func (_u *ContractUpdate) SetNillablePartyB(v *string) *ContractUpdate {
	if v != nil {
		_u.SetPartyB(*v)
	}
	return _u
}

// ClearPartyB clears the value of the "party_b" field.
func (_u *ContractUpdate) ClearPartyB() *ContractUpdate {
	_u.mutation.ClearPartyB()
	return _u
}

// SetContractDate sets the "contract_date" field.
func (_u *ContractUpdate) SetContractDate(v time.Time) *ContractUpdate {
	_u.mutation.SetContractDate(v)
	return _u
}

// SetNillableContractDate sets the "contract_date" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableContractDate(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetContractDate(*v)
	}
	return _u
}

// ClearContractDate clears the value of the "contract_date" field.
func (_u *ContractUpdate) ClearContractDate() *ContractUpdate {
	_u.mutation.ClearContractDate()
	return _u
}

// SetExpirationDate sets the "expiration_date" field.
func (_u *ContractUpdate) SetExpirationDate(v time.Time) *ContractUpdate {
	_u.mutation.SetExpirationDate(v)
	return _u
}

// SetNillableExpirationDate sets the "expiration_date" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableExpirationDate(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetExpirationDate(*v)
	}
	return _u
}

// ClearExpirationDate clears the value of the "expiration_date" field.
func (_u *ContractUpdate) ClearExpirationDate() *ContractUpdate {
	_u.mutation.ClearExpirationDate()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *ContractUpdate) SetTotalAmount(v float64) *ContractUpdate {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableTotalAmount(v *float64) *ContractUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *ContractUpdate) AddTotalAmount(v float64) *ContractUpdate {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *ContractUpdate) SetCurrencyCode(v string) *ContractUpdate {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableCurrencyCode(v *string) *ContractUpdate {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// ClearCurrencyCode clears the value of the "currency_code" field.
func (_u *ContractUpdate) ClearCurrencyCode() *ContractUpdate {
	_u.mutation.ClearCurrencyCode()
	return _u
}

// SetClauseCount sets the "clause_count" field.
func (_u *ContractUpdate) SetClauseCount(v int) *ContractUpdate {
	_u.mutation.ResetClauseCount()
	_u.mutation.SetClauseCount(v)
	return _u
}

// SetNillableClauseCount sets the "clause_count" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableClauseCount(v *int) *ContractUpdate {
	if v != nil {
		_u.SetClauseCount(*v)
	}
	return _u
}

// AddClauseCount adds value to the "clause_count" field.
func (_u *ContractUpdate) AddClauseCount(v int) *ContractUpdate {
	_u.mutation.AddClauseCount(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ContractUpdate) SetCreatedAt(v time.Time) *ContractUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableCreatedAt(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractUpdate) SetUpdatedAt(v time.Time) *ContractUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ContractUpdate) SetDocument(v *Document) *ContractUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdate) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ContractUpdate) ClearDocument() *ContractUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContractUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContractUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contract.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdate) check() error {
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := contract.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Contract.currency_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClauseCount(); ok {
		if err := contract.ClauseCountValidator(v); err != nil {
			return &ValidationError{Name: "clause_count", err: fmt.Errorf(`ent: validator failed for field "Contract.clause_count": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Contract.document"`)
	}
	return nil
}

func (_u *ContractUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PartyA(); ok {
		_spec.SetField(contract.FieldPartyA, field.TypeString, value)
	}
	if _u.mutation.PartyACleared() {
		_spec.ClearField(contract.FieldPartyA, field.TypeString)
	}
	if value, ok := _u.mutation.PartyB(); ok {
		_spec.SetField(contract.FieldPartyB, field.TypeString, value)
	}
	if _u.mutation.PartyBCleared() {
		_spec.ClearField(contract.FieldPartyB, field.TypeString)
	}
	if value, ok := _u.mutation.ContractDate(); ok {
		_spec.SetField(contract.FieldContractDate, field.TypeTime, value)
	}
	if _u.mutation.ContractDateCleared() {
		_spec.ClearField(contract.FieldContractDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpirationDate(); ok {
		_spec.SetField(contract.FieldExpirationDate, field.TypeTime, value)
	}
	if _u.mutation.ExpirationDateCleared() {
		_spec.ClearField(contract.FieldExpirationDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(contract.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(contract.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(contract.FieldCurrencyCode, field.TypeString, value)
	}
	if _u.mutation.CurrencyCodeCleared() {
		_spec.ClearField(contract.FieldCurrencyCode, field.TypeString)
	}
	if value, ok := _u.mutation.ClauseCount(); ok {
		_spec.SetField(contract.FieldClauseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClauseCount(); ok {
		_spec.AddField(contract.FieldClauseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contract.DocumentTable,
			Columns: []string{contract.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contract.DocumentTable,
			Columns: []string{contract.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContractUpdateOne is the builder for updating a single Contract entity.
type ContractUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContractMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ContractUpdateOne) SetDocumentID(v uuid.UUID) *ContractUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ContractUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetPartyA sets the "party_a" field.
func (_u *ContractUpdateOne) SetPartyA(v string) *ContractUpdateOne {
	_u.mutation.SetPartyA(v)
	return _u
}

// SetNillablePartyA sets the "party_a" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillablePartyA(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetPartyA(*v)
	}
	return _u
}

// ClearPartyA clears the value of the "party_a" field.
func (_u *ContractUpdateOne) ClearPartyA() *ContractUpdateOne {
	_u.mutation.ClearPartyA()
	return _u
}

// SetPartyB sets the "party_b" field.
func (_u *ContractUpdateOne) SetPartyB(v string) *ContractUpdateOne {
	_u.mutation.SetPartyB(v)
	return _u
}

// SetNillablePartyB sets the "party_b" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillablePartyB(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetPartyB(*v)
	}
	return _u
}

// ClearPartyB clears the value of the "party_b" field.
func (_u *ContractUpdateOne) ClearPartyB() *ContractUpdateOne {
	_u.mutation.ClearPartyB()
	return _u
}

// SetContractDate sets the "contract_date" field.
func (_u *ContractUpdateOne) SetContractDate(v time.Time) *ContractUpdateOne {
	_u.mutation.SetContractDate(v)
	return _u
}

// SetNillableContractDate sets the "contract_date" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableContractDate(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetContractDate(*v)
	}
	return _u
}

// ClearContractDate clears the value of the "contract_date" field.
func (_u *ContractUpdateOne) ClearContractDate() *ContractUpdateOne {
	_u.mutation.ClearContractDate()
	return _u
}

// SetExpirationDate sets the "expiration_date" field.
func (_u *ContractUpdateOne) SetExpirationDate(v time.Time) *ContractUpdateOne {
	_u.mutation.SetExpirationDate(v)
	return _u
}

// SetNillableExpirationDate sets the "expiration_date" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableExpirationDate(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetExpirationDate(*v)
	}
	return _u
}

// ClearExpirationDate clears the value of the "expiration_date" field.
func (_u *ContractUpdateOne) ClearExpirationDate() *ContractUpdateOne {
	_u.mutation.ClearExpirationDate()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *ContractUpdateOne) SetTotalAmount(v float64) *ContractUpdateOne {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableTotalAmount(v *float64) *ContractUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *ContractUpdateOne) AddTotalAmount(v float64) *ContractUpdateOne {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *ContractUpdateOne) SetCurrencyCode(v string) *ContractUpdateOne {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableCurrencyCode(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// ClearCurrencyCode clears the value of the "currency_code" field.
func (_u *ContractUpdateOne) ClearCurrencyCode() *ContractUpdateOne {
	_u.mutation.ClearCurrencyCode()
	return _u
}

// SetClauseCount sets the "clause_count" field.
func (_u *ContractUpdateOne) SetClauseCount(v int) *ContractUpdateOne {
	_u.mutation.ResetClauseCount()
	_u.mutation.SetClauseCount(v)
	return _u
}

// SetNillableClauseCount sets the "clause_count" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableClauseCount(v *int) *ContractUpdateOne {
	if v != nil {
		_u.SetClauseCount(*v)
	}
	return _u
}

// AddClauseCount adds value to the "clause_count" field.
func (_u *ContractUpdateOne) AddClauseCount(v int) *ContractUpdateOne {
	_u.mutation.AddClauseCount(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ContractUpdateOne) SetCreatedAt(v time.Time) *ContractUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableCreatedAt(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractUpdateOne) SetUpdatedAt(v time.Time) *ContractUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ContractUpdateOne) SetDocument(v *Document) *ContractUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdateOne) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ContractUpdateOne) ClearDocument() *ContractUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdateOne) Where(ps ...predicate.Contract) *ContractUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContractUpdateOne) Select(field string, fields ...string) *ContractUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Contract entity.
func (_u *ContractUpdateOne) Save(ctx context.Context) (*Contract, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdateOne) SaveX(ctx context.Context) *Contract {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContractUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contract.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdateOne) check() error {
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := contract.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Contract.currency_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClauseCount(); ok {
		if err := contract.ClauseCountValidator(v); err != nil {
			return &ValidationError{Name: "clause_count", err: fmt.Errorf(`ent: validator failed for field "Contract.clause_count": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Contract.document"`)
	}
	return nil
}

func (_u *ContractUpdateOne) sqlSave(ctx context.Context) (_node *Contract, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Contract.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contract.FieldID)
		for _, f := range fields {
			if !contract.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contract.FieldID {
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
	if value, ok := _u.mutation.PartyA(); ok {
		_spec.SetField(contract.FieldPartyA, field.TypeString, value)
	}
	if _u.mutation.PartyACleared() {
		_spec.ClearField(contract.FieldPartyA, field.TypeString)
	}
	if value, ok := _u.mutation.PartyB(); ok {
		_spec.SetField(contract.FieldPartyB, field.TypeString, value)
	}
	if _u.mutation.PartyBCleared() {
		_spec.ClearField(contract.FieldPartyB, field.TypeString)
	}
	if value, ok := _u.mutation.ContractDate(); ok {
		_spec.SetField(contract.FieldContractDate, field.TypeTime, value)
	}
	if _u.mutation.ContractDateCleared() {
		_spec.ClearField(contract.FieldContractDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpirationDate(); ok {
		_spec.SetField(contract.FieldExpirationDate, field.TypeTime, value)
	}
	if _u.mutation.ExpirationDateCleared() {
		_spec.ClearField(contract.FieldExpirationDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(contract.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(contract.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(contract.FieldCurrencyCode, field.TypeString, value)
	}
	if _u.mutation.CurrencyCodeCleared() {
		_spec.ClearField(contract.FieldCurrencyCode, field.TypeString)
	}
	if value, ok := _u.mutation.ClauseCount(); ok {
		_spec.SetField(contract.FieldClauseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClauseCount(); ok {
		_spec.AddField(contract.FieldClauseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contract.DocumentTable,
			Columns: []string{contract.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contract.DocumentTable,
			Columns: []string{contract.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Contract{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
