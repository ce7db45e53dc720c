package domain

// PolicyExtraction is the structured result extracted from an insurance
// policy document. Every field is optional: a field the document does not
// yield is null in the serialized form, never an empty string and never an
// omitted key. The serialized object always carries exactly these 8 keys.
type PolicyExtraction struct {
	Name          *string `json:"name" example:"John Doe"`
	PolicyNumber  *string `json:"policy_number" example:"P/123456/01/2020/012345"`
	Email         *string `json:"email" example:"john.doe@email.com"`
	PolicyName    *string `json:"policy_name" example:"Family Health Optima"`
	PlanType      *string `json:"plan_type" example:"2A"`
	SumAssured    *string `json:"sum_assured" example:"Rs. 500000"`
	RoomRentLimit *string `json:"room_rent_limit" example:"Single Private AC"`
	WaitingPeriod *string `json:"waiting_period" example:"30 days"`
}

// PolicyFieldNames lists the JSON keys of PolicyExtraction in contract order.
var PolicyFieldNames = []string{
	"name",
	"policy_number",
	"email",
	"policy_name",
	"plan_type",
	"sum_assured",
	"room_rent_limit",
	"waiting_period",
}
