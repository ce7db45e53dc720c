package policy

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"polex/internal/domain"
)

// Normalize applies the output contract to a raw LLM JSON object. Unknown
// keys are dropped, all 8 documented keys are filled (null when absent),
// trailing plan codes move out of policy_name, and room_rent_limit and
// waiting_period values not present in the document text survive only when
// regulatory inference is enabled and the text cites a regulatory source.
func Normalize(raw json.RawMessage, docText string, regulatoryInference bool) (*domain.PolicyExtraction, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decoding extraction output: %w", err)
	}

	values := make(map[string]*string, len(domain.PolicyFieldNames))
	for _, name := range domain.PolicyFieldNames {
		values[name] = coerceField(fields[name])
	}

	applyPlanCode(values)
	gateRegulatory(values, docText, regulatoryInference)

	return &domain.PolicyExtraction{
		Name:          values["name"],
		PolicyNumber:  values["policy_number"],
		Email:         values["email"],
		PolicyName:    values["policy_name"],
		PlanType:      values["plan_type"],
		SumAssured:    values["sum_assured"],
		RoomRentLimit: values["room_rent_limit"],
		WaitingPeriod: values["waiting_period"],
	}, nil
}

// coerceField maps a raw JSON value to a field value. Strings are trimmed,
// with "" and "null" treated as absent; numbers and booleans are rendered as
// strings; anything else (null, objects, arrays) is absent.
func coerceField(raw json.RawMessage) *string {
	if len(raw) == 0 {
		return nil
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}

	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		if s == "" || strings.EqualFold(s, "null") {
			return nil
		}
		return &s
	case float64:
		s := strconv.FormatFloat(t, 'f', -1, 64)
		return &s
	case bool:
		s := strconv.FormatBool(t)
		return &s
	default:
		return nil
	}
}

// applyPlanCode strips a trailing product code from policy_name. The code
// becomes plan_type unless an explicitly labeled plan type already won.
func applyPlanCode(values map[string]*string) {
	name := values["policy_name"]
	if name == nil {
		return
	}

	rest, code, ok := SplitPlanCode(*name)
	if !ok {
		return
	}

	if rest == "" {
		values["policy_name"] = nil
	} else {
		values["policy_name"] = &rest
	}
	if values["plan_type"] == nil {
		values["plan_type"] = &code
	}
}

// SplitPlanCode detects a trailing product code in a policy name, e.g.
// "Family Health Optima Insurance Plan SHAHLIP21211V042021". It returns the
// name without the code, the code itself, and whether a code was found.
func SplitPlanCode(name string) (rest, code string, ok bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return name, "", false
	}

	token := trimmed
	before := ""
	if i := strings.LastIndexAny(trimmed, " \t"); i >= 0 {
		token = trimmed[i+1:]
		before = strings.TrimSpace(trimmed[:i])
	}

	if !isPlanCode(token) {
		return name, "", false
	}
	return before, token, true
}

// isPlanCode reports whether a token looks like an insurer product code:
// at least 6 characters of uppercase letters and digits, with at least two
// digits and one letter.
func isPlanCode(token string) bool {
	if len(token) < 6 {
		return false
	}
	digits, letters := 0, 0
	for _, r := range token {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r >= 'A' && r <= 'Z':
			letters++
		default:
			return false
		}
	}
	return digits >= 2 && letters >= 1
}

// regulatoryMarkers are the references that permit a statutory value for
// room_rent_limit or waiting_period to stand when the value itself does not
// appear in the document text.
var regulatoryMarkers = []string{
	"irdai",
	"insurance regulatory and development authority",
}

// gateRegulatory nulls room_rent_limit and waiting_period values that are
// neither present in the document text nor backed by an explicit regulatory
// reference.
func gateRegulatory(values map[string]*string, docText string, regulatoryInference bool) {
	lowerDoc := strings.ToLower(docText)

	for _, name := range []string{"room_rent_limit", "waiting_period"} {
		v := values[name]
		if v == nil {
			continue
		}
		if strings.Contains(lowerDoc, strings.ToLower(*v)) {
			continue
		}
		if regulatoryInference && hasRegulatoryReference(lowerDoc) {
			continue
		}
		values[name] = nil
	}
}

func hasRegulatoryReference(lowerDoc string) bool {
	for _, marker := range regulatoryMarkers {
		if strings.Contains(lowerDoc, marker) {
			return true
		}
	}
	return false
}
