package contract

import (
	"encoding/json"
	"reflect"
	"testing"
)

const sampleContract = `業務委託契約書

株式会社テスト商事（以下「甲」という。）と、サンプル電気株式会社（以下「乙」という。）は、次のとおり業務委託契約を締結する。

第1条（目的）
甲は乙に対し、システム保守業務を委託し、乙はこれを受託する。

第3条（委託料）
委託料は月額800,000円とし、甲は毎月末日までに乙の指定する口座に支払うものとする。

第9条（秘密保持）
甲および乙は、本契約に関して知り得た相手方の秘密情報を第三者に開示してはならない。

第10条（解除）
甲または乙は、相手方が本契約に違反したときは、催告のうえ本契約を解除することができる。

本契約は2024年1月15日に締結し、2024年2月1日から2025年1月31日まで効力を有する。`

func TestExtractDeterministic(t *testing.T) {
	first := Extract(sampleContract)
	second := Extract(sampleContract)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("Extract is not deterministic for identical input")
	}
}

func TestExtractSampleContract(t *testing.T) {
	info := Extract(sampleContract)

	if len(info.Parties) != 2 {
		t.Fatalf("parties = %+v, want 2", info.Parties)
	}
	if info.Parties[0].Name != "株式会社テスト商事" || info.Parties[1].Name != "サンプル電気株式会社" {
		t.Fatalf("parties = %+v", info.Parties)
	}

	if info.Dates.ContractDate == nil || info.Dates.ContractDate.Date != "2024-01-15" {
		t.Fatalf("contract_date = %+v", info.Dates.ContractDate)
	}
	if info.Dates.EffectiveDate == nil || info.Dates.EffectiveDate.Date != "2024-02-01" {
		t.Fatalf("effective_date = %+v", info.Dates.EffectiveDate)
	}
	// Three dates in the pool, so the last one by position is reported
	// as the expiration date.
	if info.Dates.ExpirationDate == nil || info.Dates.ExpirationDate.Date != "2025-01-31" {
		t.Fatalf("expiration_date = %+v", info.Dates.ExpirationDate)
	}
	if len(info.Dates.AllDates) != 3 {
		t.Fatalf("all_dates = %+v, want 3", info.Dates.AllDates)
	}

	if len(info.Amounts) != 1 || info.Amounts[0].Value != 800000 || info.Amounts[0].Currency != "JPY" {
		t.Fatalf("amounts = %+v", info.Amounts)
	}

	if len(info.KeyTerms) == 0 {
		t.Fatal("expected key terms for a contract mentioning 支払/秘密/解除")
	}

	wantClause := map[string]bool{}
	for _, c := range info.Clauses {
		wantClause[c.Type] = true
	}
	for _, typ := range []string{"payment", "confidentiality", "termination"} {
		if !wantClause[typ] {
			t.Fatalf("missing clause type %q in %+v", typ, info.Clauses)
		}
	}
}

func TestExtractCapsAndInvariants(t *testing.T) {
	info := Extract(sampleContract)

	if len(info.Parties) > 10 {
		t.Fatalf("parties over cap: %d", len(info.Parties))
	}
	if len(info.Amounts) > 5 {
		t.Fatalf("amounts over cap: %d", len(info.Amounts))
	}
	if len(info.KeyTerms) > 20 {
		t.Fatalf("key terms over cap: %d", len(info.KeyTerms))
	}
	seen := map[string]bool{}
	for _, p := range info.Parties {
		if seen[p.Name] {
			t.Fatalf("duplicate party name %q", p.Name)
		}
		seen[p.Name] = true
	}
	for i := 1; i < len(info.Dates.AllDates); i++ {
		if info.Dates.AllDates[i-1].Position >= info.Dates.AllDates[i].Position {
			t.Fatalf("all_dates not position-ordered: %+v", info.Dates.AllDates)
		}
	}
}

func TestExtractEmptyInput(t *testing.T) {
	info := Extract("")

	if len(info.Parties) != 0 || len(info.Amounts) != 0 || len(info.KeyTerms) != 0 || len(info.Clauses) != 0 {
		t.Fatalf("empty input produced output: %+v", info)
	}
	if info.Dates.ContractDate != nil || len(info.Dates.AllDates) != 0 {
		t.Fatalf("empty input produced dates: %+v", info.Dates)
	}
}

func TestExtractOutputMatchesSchema(t *testing.T) {
	// Empty input matters too: passes that found nothing must still
	// serialize as arrays, not null.
	for _, text := range []string{sampleContract, ""} {
		info := Extract(text)

		b, err := json.Marshal(info)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if err := ValidateJSONAgainstSchema(BuildContractInfoJSONSchema(), b); err != nil {
			t.Fatalf("extracted record does not validate: %v", err)
		}
	}
}

func TestValidateJSONAgainstSchemaRejectsBadRecord(t *testing.T) {
	bad := []byte(`{"parties":[{"name":"","type":"company","position":0}],"dates":{},"amounts":[],"key_terms":[],"clauses":[]}`)
	if err := ValidateJSONAgainstSchema(BuildContractInfoJSONSchema(), bad); err == nil {
		t.Fatal("expected validation error for empty party name")
	}
}
