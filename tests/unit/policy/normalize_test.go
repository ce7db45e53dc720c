package policy_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polex/internal/policy"
)

func strPtr(s string) *string { return &s }

func TestSplitPlanCode_TrailingCode(t *testing.T) {
	rest, code, ok := policy.SplitPlanCode("Family Health Optima Insurance Plan SHAHLIP21211V042021")

	assert.True(t, ok)
	assert.Equal(t, "Family Health Optima Insurance Plan", rest)
	assert.Equal(t, "SHAHLIP21211V042021", code)
}

func TestSplitPlanCode_ShortMixedCode(t *testing.T) {
	rest, code, ok := policy.SplitPlanCode("Comprehensive Group Health Cover ABC123XYZ")

	assert.True(t, ok)
	assert.Equal(t, "Comprehensive Group Health Cover", rest)
	assert.Equal(t, "ABC123XYZ", code)
}

func TestSplitPlanCode_NoCode(t *testing.T) {
	rest, code, ok := policy.SplitPlanCode("Star Health Individual Plan")

	assert.False(t, ok)
	assert.Equal(t, "Star Health Individual Plan", rest)
	assert.Empty(t, code)
}

func TestSplitPlanCode_RejectsShortToken(t *testing.T) {
	_, _, ok := policy.SplitPlanCode("Optima Plan 2A")
	assert.False(t, ok)
}

func TestSplitPlanCode_RejectsLowercaseToken(t *testing.T) {
	_, _, ok := policy.SplitPlanCode("Optima Plan shahlip21211")
	assert.False(t, ok)
}

func TestSplitPlanCode_RejectsPolicyNumberWithSeparators(t *testing.T) {
	// Slash-separated identifiers are policy numbers, not product codes.
	_, _, ok := policy.SplitPlanCode("Optima Plan P/161130/01/2021/074677")
	assert.False(t, ok)
}

func TestSplitPlanCode_RejectsPlainYear(t *testing.T) {
	_, _, ok := policy.SplitPlanCode("Health Plan 202120")
	assert.False(t, ok)
}

func TestSplitPlanCode_CodeOnly(t *testing.T) {
	rest, code, ok := policy.SplitPlanCode("SHAHLIP21211V042021")

	assert.True(t, ok)
	assert.Empty(t, rest)
	assert.Equal(t, "SHAHLIP21211V042021", code)
}

func TestNormalize_AllFieldsPresent(t *testing.T) {
	raw := json.RawMessage(`{
		"name": "John Doe",
		"policy_number": "P/123456/01/2020/012345",
		"email": "john.doe@email.com",
		"policy_name": "Family Health Optima",
		"plan_type": "2A",
		"sum_assured": "Rs. 500000",
		"room_rent_limit": "Single Private AC",
		"waiting_period": "30 days"
	}`)
	docText := "Family Health Optima ... Room Category: Single Private AC ... Initial Waiting Period: 30 days"

	result, err := policy.Normalize(raw, docText, true)
	require.NoError(t, err)

	assert.Equal(t, strPtr("John Doe"), result.Name)
	assert.Equal(t, strPtr("P/123456/01/2020/012345"), result.PolicyNumber)
	assert.Equal(t, strPtr("john.doe@email.com"), result.Email)
	assert.Equal(t, strPtr("Family Health Optima"), result.PolicyName)
	assert.Equal(t, strPtr("2A"), result.PlanType)
	assert.Equal(t, strPtr("Rs. 500000"), result.SumAssured)
	assert.Equal(t, strPtr("Single Private AC"), result.RoomRentLimit)
	assert.Equal(t, strPtr("30 days"), result.WaitingPeriod)
}

func TestNormalize_MissingKeysBecomeNull(t *testing.T) {
	raw := json.RawMessage(`{"name": "Jane Roe"}`)

	result, err := policy.Normalize(raw, "", true)
	require.NoError(t, err)

	assert.Equal(t, strPtr("Jane Roe"), result.Name)
	assert.Nil(t, result.PolicyNumber)
	assert.Nil(t, result.Email)
	assert.Nil(t, result.PolicyName)
	assert.Nil(t, result.PlanType)
	assert.Nil(t, result.SumAssured)
	assert.Nil(t, result.RoomRentLimit)
	assert.Nil(t, result.WaitingPeriod)
}

func TestNormalize_UnknownKeysDropped(t *testing.T) {
	raw := json.RawMessage(`{"name": "Jane Roe", "premium": "Rs. 12000", "agent_code": "AG-77"}`)

	result, err := policy.Normalize(raw, "", true)
	require.NoError(t, err)

	encoded, err := json.Marshal(result)
	require.NoError(t, err)

	var keys map[string]interface{}
	require.NoError(t, json.Unmarshal(encoded, &keys))
	assert.Len(t, keys, 8)
	assert.NotContains(t, keys, "premium")
	assert.NotContains(t, keys, "agent_code")
}

func TestNormalize_EmptyAndNullStringsBecomeNull(t *testing.T) {
	raw := json.RawMessage(`{"name": "", "email": "null", "policy_number": "  ", "policy_name": null}`)

	result, err := policy.Normalize(raw, "", true)
	require.NoError(t, err)

	assert.Nil(t, result.Name)
	assert.Nil(t, result.Email)
	assert.Nil(t, result.PolicyNumber)
	assert.Nil(t, result.PolicyName)
}

func TestNormalize_NumericValueCoercedToString(t *testing.T) {
	raw := json.RawMessage(`{"sum_assured": 500000}`)

	result, err := policy.Normalize(raw, "", true)
	require.NoError(t, err)

	assert.Equal(t, strPtr("500000"), result.SumAssured)
}

func TestNormalize_NestedValueBecomesNull(t *testing.T) {
	raw := json.RawMessage(`{"sum_assured": {"amount": 500000, "currency": "INR"}}`)

	result, err := policy.Normalize(raw, "", true)
	require.NoError(t, err)

	assert.Nil(t, result.SumAssured)
}

func TestNormalize_PlanCodeMovedOutOfPolicyName(t *testing.T) {
	raw := json.RawMessage(`{"policy_name": "Family Health Optima Insurance Plan SHAHLIP21211V042021"}`)

	result, err := policy.Normalize(raw, "", true)
	require.NoError(t, err)

	assert.Equal(t, strPtr("Family Health Optima Insurance Plan"), result.PolicyName)
	assert.Equal(t, strPtr("SHAHLIP21211V042021"), result.PlanType)
}

func TestNormalize_LabeledPlanTypeWinsOverCode(t *testing.T) {
	raw := json.RawMessage(`{
		"policy_name": "Family Health Optima Insurance Plan SHAHLIP21211V042021",
		"plan_type": "Family Floater"
	}`)

	result, err := policy.Normalize(raw, "", true)
	require.NoError(t, err)

	assert.Equal(t, strPtr("Family Health Optima Insurance Plan"), result.PolicyName)
	assert.Equal(t, strPtr("Family Floater"), result.PlanType)
}

func TestNormalize_PolicyNameWithoutCodeUntouched(t *testing.T) {
	raw := json.RawMessage(`{"policy_name": "Star Health Individual Plan"}`)

	result, err := policy.Normalize(raw, "", true)
	require.NoError(t, err)

	assert.Equal(t, strPtr("Star Health Individual Plan"), result.PolicyName)
	assert.Nil(t, result.PlanType)
}

func TestNormalize_RegulatoryGate_ValueInTextKept(t *testing.T) {
	raw := json.RawMessage(`{"waiting_period": "30 days", "room_rent_limit": "1% of sum insured"}`)
	docText := "Initial Waiting Period: 30 days. Room rent is capped at 1% of sum insured per day."

	result, err := policy.Normalize(raw, docText, true)
	require.NoError(t, err)

	assert.Equal(t, strPtr("30 days"), result.WaitingPeriod)
	assert.Equal(t, strPtr("1% of sum insured"), result.RoomRentLimit)
}

func TestNormalize_RegulatoryGate_UnsupportedValueNulled(t *testing.T) {
	// The document never states a waiting period and cites no regulation, so
	// an invented value must not survive.
	raw := json.RawMessage(`{"waiting_period": "30 days"}`)
	docText := "This policy covers hospitalization expenses for the insured person."

	result, err := policy.Normalize(raw, docText, true)
	require.NoError(t, err)

	assert.Nil(t, result.WaitingPeriod)
}

func TestNormalize_RegulatoryGate_IRDAIReferenceAllowsInference(t *testing.T) {
	raw := json.RawMessage(`{"waiting_period": "30 days"}`)
	docText := "This policy complies with IRDAI (Health Insurance) Regulations, 2016."

	result, err := policy.Normalize(raw, docText, true)
	require.NoError(t, err)

	assert.Equal(t, strPtr("30 days"), result.WaitingPeriod)
}

func TestNormalize_RegulatoryGate_InferenceDisabled(t *testing.T) {
	raw := json.RawMessage(`{"waiting_period": "30 days"}`)
	docText := "This policy complies with IRDAI (Health Insurance) Regulations, 2016."

	result, err := policy.Normalize(raw, docText, false)
	require.NoError(t, err)

	assert.Nil(t, result.WaitingPeriod)
}

func TestNormalize_RegulatoryGate_OnlyAppliesToRegulatedFields(t *testing.T) {
	// name and sum_assured are not gated even when absent from the text.
	raw := json.RawMessage(`{"name": "John Doe", "sum_assured": "Rs. 500000"}`)
	docText := "completely unrelated text"

	result, err := policy.Normalize(raw, docText, true)
	require.NoError(t, err)

	assert.Equal(t, strPtr("John Doe"), result.Name)
	assert.Equal(t, strPtr("Rs. 500000"), result.SumAssured)
}

func TestNormalize_RegulatoryGate_CaseInsensitiveMatch(t *testing.T) {
	raw := json.RawMessage(`{"room_rent_limit": "Single Private AC"}`)
	docText := "Room eligibility: SINGLE PRIVATE AC room"

	result, err := policy.Normalize(raw, docText, true)
	require.NoError(t, err)

	assert.Equal(t, strPtr("Single Private AC"), result.RoomRentLimit)
}

func TestNormalize_NotAnObject(t *testing.T) {
	_, err := policy.Normalize(json.RawMessage(`["a", "b"]`), "", true)
	assert.Error(t, err)
}
