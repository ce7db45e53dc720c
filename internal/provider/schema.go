package provider

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// policyExtractionSchema is the output contract for policy field extraction:
// exactly the 8 documented keys, every value a string or null.
const policyExtractionSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"title": "PolicyExtraction",
	"type": "object",
	"properties": {
		"name": {"type": ["string", "null"]},
		"policy_number": {"type": ["string", "null"]},
		"email": {"type": ["string", "null"]},
		"policy_name": {"type": ["string", "null"]},
		"plan_type": {"type": ["string", "null"]},
		"sum_assured": {"type": ["string", "null"]},
		"room_rent_limit": {"type": ["string", "null"]},
		"waiting_period": {"type": ["string", "null"]}
	},
	"required": [
		"name",
		"policy_number",
		"email",
		"policy_name",
		"plan_type",
		"sum_assured",
		"room_rent_limit",
		"waiting_period"
	],
	"additionalProperties": false
}`

var compiledPolicySchema = jsonschema.MustCompileString("policy_extraction.json", policyExtractionSchema)

// ValidateExtraction checks raw JSON against the policy extraction contract.
func ValidateExtraction(raw json.RawMessage) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to decode extraction for validation: %w", err)
	}
	if err := compiledPolicySchema.Validate(doc); err != nil {
		return fmt.Errorf("extraction does not match contract: %w", err)
	}
	return nil
}
