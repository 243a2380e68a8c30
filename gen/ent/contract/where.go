// Code generated by ent, DO NOT EDIT.

package contract

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/hsakoda/contract-analyzer/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldDocumentID, v))
}

// PartyA applies equality check predicate on the "party_a" field. It's identical to PartyAEQ.
func PartyA(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldPartyA, v))
}

// PartyB applies equality check predicate on the "party_b" field. It's identical to PartyBEQ.
func PartyB(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldPartyB, v))
}

// ContractDate applies equality check predicate on the "contract_date" field. It's identical to ContractDateEQ.
func ContractDate(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldContractDate, v))
}

// ExpirationDate applies equality check predicate on the "expiration_date" field. It's identical to ExpirationDateEQ.
func ExpirationDate(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldExpirationDate, v))
}

// TotalAmount applies equality check predicate on the "total_amount" field. It's identical to TotalAmountEQ.
func TotalAmount(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldTotalAmount, v))
}

// CurrencyCode applies equality check predicate on the "currency_code" field. It's identical to CurrencyCodeEQ.
func CurrencyCode(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCurrencyCode, v))
}

// ClauseCount applies equality check predicate on the "clause_count" field. It's identical to ClauseCountEQ.
func ClauseCount(v int) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldClauseCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldUpdatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldDocumentID, vs...))
}

// PartyAEQ applies the EQ predicate on the "party_a" field.
func PartyAEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldPartyA, v))
}

// PartyANEQ applies the NEQ predicate on the "party_a" field.
func PartyANEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldPartyA, v))
}

// PartyAIn applies the In predicate on the "party_a" field.
func PartyAIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldPartyA, vs...))
}

// PartyANotIn applies the NotIn predicate on the "party_a" field.
func PartyANotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldPartyA, vs...))
}

// PartyAGT applies the GT predicate on the "party_a" field.
func PartyAGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldPartyA, v))
}

// PartyAGTE applies the GTE predicate on the "party_a" field.
func PartyAGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldPartyA, v))
}

// PartyALT applies the LT predicate on the "party_a" field.
func PartyALT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldPartyA, v))
}

// PartyALTE applies the LTE predicate on the "party_a" field.
func PartyALTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldPartyA, v))
}

// PartyAContains applies the Contains predicate on the "party_a" field.
func PartyAContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldPartyA, v))
}

// PartyAHasPrefix applies the HasPrefix predicate on the "party_a" field.
func PartyAHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldPartyA, v))
}

// PartyAHasSuffix applies the HasSuffix predicate on the "party_a" field.
func PartyAHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldPartyA, v))
}

// PartyAIsNil applies the IsNil predicate on the "party_a" field.
func PartyAIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldPartyA))
}

// PartyANotNil applies the NotNil predicate on the "party_a" field.
func PartyANotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldPartyA))
}

// PartyAEqualFold applies the EqualFold predicate on the "party_a" field.
func PartyAEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldPartyA, v))
}

// PartyAContainsFold applies the ContainsFold predicate on the "party_a" field.
func PartyAContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldPartyA, v))
}

// PartyBEQ applies the EQ predicate on the "party_b" field.
func PartyBEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldPartyB, v))
}

// PartyBNEQ applies the NEQ predicate on the "party_b" field.
func PartyBNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldPartyB, v))
}

// PartyBIn applies the In predicate on the "party_b" field.
func PartyBIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldPartyB, vs...))
}

// PartyBNotIn applies the NotIn predicate on the "party_b" field.
func PartyBNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldPartyB, vs...))
}

// PartyBGT applies the GT predicate on the "party_b" field.
func PartyBGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldPartyB, v))
}

// PartyBGTE applies the GTE predicate on the "party_b" field.
func PartyBGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldPartyB, v))
}

// PartyBLT applies the LT predicate on the "party_b" field.
func PartyBLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldPartyB, v))
}

// PartyBLTE applies the LTE predicate on the "party_b" field.
func PartyBLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldPartyB, v))
}

// PartyBContains applies the Contains predicate on the "party_b" field.
func PartyBContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldPartyB, v))
}

// PartyBHasPrefix applies the HasPrefix predicate on the "party_b" field.
func PartyBHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldPartyB, v))
}

// PartyBHasSuffix applies the HasSuffix predicate on the "party_b" field.
func PartyBHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldPartyB, v))
}

// PartyBIsNil applies the IsNil predicate on the "party_b" field.
func PartyBIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldPartyB))
}

// PartyBNotNil applies the NotNil predicate on the "party_b" field.
func PartyBNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldPartyB))
}

// PartyBEqualFold applies the EqualFold predicate on the "party_b" field.
func PartyBEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldPartyB, v))
}

// PartyBContainsFold applies the ContainsFold predicate on the "party_b" field.
func PartyBContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldPartyB, v))
}

// ContractDateEQ applies the EQ predicate on the "contract_date" field.
func ContractDateEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldContractDate, v))
}

// ContractDateNEQ applies the NEQ predicate on the "contract_date" field.
func ContractDateNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldContractDate, v))
}

// ContractDateIn applies the In predicate on the "contract_date" field.
func ContractDateIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldContractDate, vs...))
}

// ContractDateNotIn applies the NotIn predicate on the "contract_date" field.
func ContractDateNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldContractDate, vs...))
}

// ContractDateGT applies the GT predicate on the "contract_date" field.
func ContractDateGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldContractDate, v))
}

// ContractDateGTE applies the GTE predicate on the "contract_date" field.
func ContractDateGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldContractDate, v))
}

// ContractDateLT applies the LT predicate on the "contract_date" field.
func ContractDateLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldContractDate, v))
}

// ContractDateLTE applies the LTE predicate on the "contract_date" field.
func ContractDateLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldContractDate, v))
}

// ContractDateIsNil applies the IsNil predicate on the "contract_date" field.
func ContractDateIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldContractDate))
}

// ContractDateNotNil applies the NotNil predicate on the "contract_date" field.
func ContractDateNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldContractDate))
}

// ExpirationDateEQ applies the EQ predicate on the "expiration_date" field.
func ExpirationDateEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldExpirationDate, v))
}

// ExpirationDateNEQ applies the NEQ predicate on the "expiration_date" field.
func ExpirationDateNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldExpirationDate, v))
}

// ExpirationDateIn applies the In predicate on the "expiration_date" field.
func ExpirationDateIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldExpirationDate, vs...))
}

// ExpirationDateNotIn applies the NotIn predicate on the "expiration_date" field.
func ExpirationDateNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldExpirationDate, vs...))
}

// ExpirationDateGT applies the GT predicate on the "expiration_date" field.
func ExpirationDateGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldExpirationDate, v))
}

// ExpirationDateGTE applies the GTE predicate on the "expiration_date" field.
func ExpirationDateGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldExpirationDate, v))
}

// ExpirationDateLT applies the LT predicate on the "expiration_date" field.
func ExpirationDateLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldExpirationDate, v))
}

// ExpirationDateLTE applies the LTE predicate on the "expiration_date" field.
func ExpirationDateLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldExpirationDate, v))
}

// ExpirationDateIsNil applies the IsNil predicate on the "expiration_date" field.
func ExpirationDateIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldExpirationDate))
}

// ExpirationDateNotNil applies the NotNil predicate on the "expiration_date" field.
func ExpirationDateNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldExpirationDate))
}

// TotalAmountEQ applies the EQ predicate on the "total_amount" field.
func TotalAmountEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldTotalAmount, v))
}

// TotalAmountNEQ applies the NEQ predicate on the "total_amount" field.
func TotalAmountNEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldTotalAmount, v))
}

// TotalAmountIn applies the In predicate on the "total_amount" field.
func TotalAmountIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldTotalAmount, vs...))
}

// TotalAmountNotIn applies the NotIn predicate on the "total_amount" field.
func TotalAmountNotIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldTotalAmount, vs...))
}

// TotalAmountGT applies the GT predicate on the "total_amount" field.
func TotalAmountGT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldTotalAmount, v))
}

// TotalAmountGTE applies the GTE predicate on the "total_amount" field.
func TotalAmountGTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldTotalAmount, v))
}

// TotalAmountLT applies the LT predicate on the "total_amount" field.
func TotalAmountLT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldTotalAmount, v))
}

// TotalAmountLTE applies the LTE predicate on the "total_amount" field.
func TotalAmountLTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldTotalAmount, v))
}

// CurrencyCodeEQ applies the EQ predicate on the "currency_code" field.
func CurrencyCodeEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCurrencyCode, v))
}

// CurrencyCodeNEQ applies the NEQ predicate on the "currency_code" field.
func CurrencyCodeNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCurrencyCode, v))
}

// CurrencyCodeIn applies the In predicate on the "currency_code" field.
func CurrencyCodeIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeNotIn applies the NotIn predicate on the "currency_code" field.
func CurrencyCodeNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeGT applies the GT predicate on the "currency_code" field.
func CurrencyCodeGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCurrencyCode, v))
}

// CurrencyCodeGTE applies the GTE predicate on the "currency_code" field.
func CurrencyCodeGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCurrencyCode, v))
}

// CurrencyCodeLT applies the LT predicate on the "currency_code" field.
func CurrencyCodeLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCurrencyCode, v))
}

// CurrencyCodeLTE applies the LTE predicate on the "currency_code" field.
func CurrencyCodeLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCurrencyCode, v))
}

// CurrencyCodeContains applies the Contains predicate on the "currency_code" field.
func CurrencyCodeContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldCurrencyCode, v))
}

// CurrencyCodeHasPrefix applies the HasPrefix predicate on the "currency_code" field.
func CurrencyCodeHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldCurrencyCode, v))
}

// CurrencyCodeHasSuffix applies the HasSuffix predicate on the "currency_code" field.
func CurrencyCodeHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldCurrencyCode, v))
}

// CurrencyCodeIsNil applies the IsNil predicate on the "currency_code" field.
func CurrencyCodeIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldCurrencyCode))
}

// CurrencyCodeNotNil applies the NotNil predicate on the "currency_code" field.
func CurrencyCodeNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldCurrencyCode))
}

// CurrencyCodeEqualFold applies the EqualFold predicate on the "currency_code" field.
func CurrencyCodeEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldCurrencyCode, v))
}

// CurrencyCodeContainsFold applies the ContainsFold predicate on the "currency_code" field.
func CurrencyCodeContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldCurrencyCode, v))
}

// ClauseCountEQ applies the EQ predicate on the "clause_count" field.
func ClauseCountEQ(v int) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldClauseCount, v))
}

// ClauseCountNEQ applies the NEQ predicate on the "clause_count" field.
func ClauseCountNEQ(v int) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldClauseCount, v))
}

// ClauseCountIn applies the In predicate on the "clause_count" field.
func ClauseCountIn(vs ...int) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldClauseCount, vs...))
}

// ClauseCountNotIn applies the NotIn predicate on the "clause_count" field.
func ClauseCountNotIn(vs ...int) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldClauseCount, vs...))
}

// ClauseCountGT applies the GT predicate on the "clause_count" field.
func ClauseCountGT(v int) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldClauseCount, v))
}

// ClauseCountGTE applies the GTE predicate on the "clause_count" field.
func ClauseCountGTE(v int) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldClauseCount, v))
}

// ClauseCountLT applies the LT predicate on the "clause_count" field.
func ClauseCountLT(v int) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldClauseCount, v))
}

// ClauseCountLTE applies the LTE predicate on the "clause_count" field.
func ClauseCountLTE(v int) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldClauseCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.NotPredicates(p))
}
