package candidate

import (
	"strconv"
	"strings"
)

// Profile holds the information collected from a candidate during the
// intake phase. All fields must be validated before the interview starts.
type Profile struct {
	Name       string   `json:"name" mapstructure:"name"`
	Email      string   `json:"email" mapstructure:"email"`
	Phone      string   `json:"phone" mapstructure:"phone"`
	Experience int      `json:"experience" mapstructure:"experience"`
	Position   string   `json:"position" mapstructure:"position"`
	Location   string   `json:"location" mapstructure:"location"`
	TechStack  []string `json:"tech_stack" mapstructure:"tech_stack"`
}

// Field identifies one entry in the intake sequence.
type Field struct {
	Key   string
	Label string
}

const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldExperience = "experience"
	FieldPosition   = "position"
	FieldLocation   = "location"
	FieldTechStack  = "tech_stack"
)

// Fields is the intake sequence, asked in order.
var Fields = []Field{
	{Key: FieldName, Label: "Full Name"},
	{Key: FieldEmail, Label: "Email Address"},
	{Key: FieldPhone, Label: "Phone Number"},
	{Key: FieldExperience, Label: "Years of Experience"},
	{Key: FieldPosition, Label: "Desired Position"},
	{Key: FieldLocation, Label: "Current Location"},
	{Key: FieldTechStack, Label: "Tech Stack (comma-separated, e.g., Python, Django, PostgreSQL)"},
}

// Set validates the input for the given field and stores it in the profile.
// It returns false when the input is not valid for the field; the profile is
// left unchanged in that case.
func (p *Profile) Set(key, input string) bool {
	input = Sanitize(input)

	switch key {
	case FieldEmail:
		if !ValidEmail(input) {
			return false
		}
		p.Email = input
	case FieldPhone:
		if !ValidPhone(input) {
			return false
		}
		p.Phone = input
	case FieldExperience:
		years, ok := ParseExperience(input)
		if !ok {
			return false
		}
		p.Experience = years
	case FieldTechStack:
		stack := ParseTechStack(input)
		if len(stack) == 0 {
			return false
		}
		p.TechStack = stack
	case FieldName:
		p.Name = input
	case FieldPosition:
		p.Position = input
	case FieldLocation:
		p.Location = input
	default:
		return false
	}

	return true
}

// Get returns the stored value for the given field formatted for display.
func (p *Profile) Get(key string) string {
	switch key {
	case FieldName:
		return p.Name
	case FieldEmail:
		return p.Email
	case FieldPhone:
		return p.Phone
	case FieldExperience:
		return strconv.Itoa(p.Experience)
	case FieldPosition:
		return p.Position
	case FieldLocation:
		return p.Location
	case FieldTechStack:
		return strings.Join(p.TechStack, ", ")
	}
	return ""
}
