package provider

import "strings"

// BuildPolicyPrompt returns the system prompt for insurance policy field
// extraction. With regulatoryInference off, the statutory-fallback clauses
// for room_rent_limit and waiting_period are omitted and those fields must
// come from the document itself.
func BuildPolicyPrompt(regulatoryInference bool) string {
	var b strings.Builder
	b.WriteString(promptFields)
	b.WriteString(promptInstructions)
	if regulatoryInference {
		b.WriteString(promptRegulatory)
	}
	b.WriteString(promptOutput)
	return b.String()
}

const promptFields = `You are an expert at extracting structured data from insurance policy documents.

Extract the following 8 fields from the document text. Each field may appear under different labels across insurers; search for any of the alternative labels listed.

1. name (policy holder name)
   Other labels: Policy Holder Name, Insured Name, Customer Name, Proposer Name, Insured Person, Subscriber Name, Member Name, Applicant Name.
   Extract the full name of the primary policy holder.

2. policy_number
   Other labels: Policy No., Certificate Number, Policy ID, Contract Number, Policy Reference Number, Member ID, Policy Ref, Certificate No., Policy Code.
   Extract the unique identifier for this policy issuance.

3. email
   Other labels: Email Address, E-mail, Contact Email, Registered Email, Email ID, E-Mail Address.
   Extract the primary email address of the policy holder.

4. policy_name
   Other labels: Plan Name, Product Name, Policy Type, Insurance Plan, Coverage Name, Scheme Name, Policy Title, Product Type, Plan, Policy.
   Extract the human-readable product name. Do NOT include plan codes, alphanumeric identifiers, or version numbers: for "Family Health Optima Insurance Plan SHAHLIP21211V042021" the policy_name is "Family Health Optima Insurance Plan" and the trailing code belongs in plan_type.

5. plan_type
   Other labels: Coverage Type, Plan Category, Policy Category, Member Type, Cover Type, Type of Plan, Category, Plan Code, Plan Variant.
   Priority order: first an explicitly labeled plan type or plan code field (a labeled "Plan Type: Family Floater" gives plan_type "Family Floater"); then a specific alphanumeric code embedded in policy_name ("Family Health Optima Insurance Plan SHAHLIP21211V042021" gives plan_type "SHAHLIP21211V042021", "Comprehensive Group Health Cover ABC123XYZ" gives plan_type "ABC123XYZ"); with no specific code, the generic category such as Individual, Family, Group, Senior Citizen, or Corporate ("Star Health Individual Plan" gives plan_type "Individual").
   Do not confuse plan_type with policy_number: plan_type identifies the product (e.g. SHAHLIP21211V042021), policy_number identifies this specific policy issuance (e.g. P/161130/01/2021/074677).

6. sum_assured
   Other labels: Coverage Amount, Insured Amount, Sum Insured, Policy Amount, Cover Amount, Maximum Limit, Total Coverage, Benefit Amount, SI, Sum Insured (SI), Cover, Maximum Cover.
   Extract the maximum coverage amount, including the currency when present.

7. room_rent_limit
   Other labels: Room Category, Daily Room Limit, Hospital Room Rent, Accommodation Limit, Room Charges Limit, Per Day Room Rent, Room Type Coverage, Room Rent, Hospital Room Category, Room Eligibility.
   Common formats: "Single AC", "5000 per day", "1% of sum insured", "No Limit", "As per actuals", "Rs 5000/day", "Shared room", "Private room".
   Extract the maximum allowed room rent per day during hospitalization. Look in benefits tables, coverage details, room eligibility sections, and policy features.

8. waiting_period
   Other labels: Initial Waiting Period, Cooling Period, Waiting Time, Pre-existing Disease Waiting Period, Specific Disease Waiting Period, Exclusion Period, Waiting Period for Pre-existing Diseases, PED Waiting Period.
   Common formats: "30 days", "2 years for pre-existing", "90 days initial", "24 months", "NIL", "None", "Not Applicable", "NA".
   Extract the period before benefits become active. Look in policy conditions, waiting period tables, exclusions, and terms and conditions. If several waiting periods are present, prefer the initial waiting period, then the pre-existing disease waiting period.
`

const promptInstructions = `
GENERAL INSTRUCTIONS:
- Search the entire document for any of the alternative labels above; be flexible about label formatting and placement.
- Analyze tables, bullet points, and structured sections for fields without obvious labels.
- Use contextual inference where a field is embedded in another: extract plan_type from policy_name when it contains a code or a category keyword like Family, Individual, or Group.
- Extract values exactly as they appear in the document, preserving currency symbols and number formats.
- If a field cannot be found after a thorough search, use null for that field.
`

const promptRegulatory = `
LEGAL INFERENCE (room_rent_limit and waiting_period ONLY):
- When these fields are not directly stated, you may substitute a statutory value ONLY if the document explicitly references IRDAI (Insurance Regulatory and Development Authority of India) regulations, circulars, or legal clauses that mandate it, and you are completely certain of the requirement. Common IRDAI mandates: a 30-day initial waiting period, 2 to 4 years for pre-existing diseases.
- ALLOWED: the document states "This policy complies with IRDAI (Health Insurance) Regulations, 2016" and those regulations mandate a 30-day initial waiting period, so waiting_period may be "30 days".
- ALLOWED: the waiting period section references a specific IRDAI Master Circular that defines standard waiting periods, so the value it mandates may be used.
- NOT ALLOWED: the document never mentions a waiting period or IRDAI, but 30 days is probably right. Use null.
- NOT ALLOWED: the document mentions "industry standard practices" without citing a specific regulation. Use null.
- If any doubt exists, use null rather than guessing.
`

const promptOutput = `
OUTPUT FORMAT:
Return ONLY valid JSON with no markdown formatting, no code fences, no explanation. The object must contain exactly these keys: name, policy_number, email, policy_name, plan_type, sum_assured, room_rent_limit, waiting_period. Use JSON null for any field not found in the document.`
