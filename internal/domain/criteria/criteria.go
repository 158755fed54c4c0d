// Package criteria turns sparse search parameters into store-neutral predicates.
//
// Substring predicates carry the raw user value. Adapters feed it to their
// case-insensitive pattern matcher as-is, so pattern metacharacters in the
// input keep their meaning.
package criteria

// Match selects how a predicate compares a field with its value.
type Match int

const (
	// MatchSubstring matches when the field contains the value, ignoring case.
	MatchSubstring Match = iota
	// MatchExact matches a tag exactly; on list fields it means membership.
	MatchExact
)

func (m Match) String() string {
	switch m {
	case MatchSubstring:
		return "substring"
	case MatchExact:
		return "exact"
	default:
		return "unknown"
	}
}

// Field names shared by schemas and store adapters.
const (
	FieldName            = "name"
	FieldIC              = "ic"
	FieldContactNumber   = "contact_number"
	FieldEmailAddress    = "email_address"
	FieldPhysicalAddress = "physical_address"
	FieldDOB             = "dob"
	FieldAge             = "age"
	FieldEthnicGroup     = "ethnic_group"
	FieldNationality     = "nationality"
	FieldSkills          = "skills"
)

// Predicate is a single condition on a document field.
type Predicate struct {
	Field string
	Value string
	Match Match
}

// Criteria is a conjunction of predicates. No predicates matches everything.
type Criteria struct {
	Predicates []Predicate
}

// Empty reports whether the criteria matches all documents.
func (c Criteria) Empty() bool {
	return len(c.Predicates) == 0
}

// Field maps a request parameter onto a searchable document field.
type Field struct {
	Param string
	Name  string
	Match Match
}

// Schema is the allow-list of searchable fields for an entity.
type Schema []Field

// EmployerSchema lists the employer search parameters.
var EmployerSchema = Schema{
	{Param: "name", Name: FieldName, Match: MatchSubstring},
	{Param: "ic", Name: FieldIC, Match: MatchSubstring},
	{Param: "contact_number", Name: FieldContactNumber, Match: MatchSubstring},
	{Param: "email_address", Name: FieldEmailAddress, Match: MatchSubstring},
	{Param: "physical_address", Name: FieldPhysicalAddress, Match: MatchSubstring},
}

// HelperSchema lists the helper search parameters. Skills is a tag, so it is
// compared exactly.
var HelperSchema = Schema{
	{Param: "name", Name: FieldName, Match: MatchSubstring},
	{Param: "DOB", Name: FieldDOB, Match: MatchSubstring},
	{Param: "age", Name: FieldAge, Match: MatchSubstring},
	{Param: "ethicGroup", Name: FieldEthnicGroup, Match: MatchSubstring},
	{Param: "Nationality", Name: FieldNationality, Match: MatchSubstring},
	{Param: "Skills", Name: FieldSkills, Match: MatchExact},
}

// Build emits one predicate per allow-listed parameter that is present and
// non-empty, in schema order. Parameters outside the schema are ignored.
func Build(params map[string]string, schema Schema) Criteria {
	var c Criteria
	for _, f := range schema {
		v, ok := params[f.Param]
		if !ok || v == "" {
			continue
		}
		c.Predicates = append(c.Predicates, Predicate{Field: f.Name, Value: v, Match: f.Match})
	}
	return c
}

// Substring builds criteria with a single case-insensitive substring predicate.
func Substring(field, value string) Criteria {
	return Criteria{Predicates: []Predicate{{Field: field, Value: value, Match: MatchSubstring}}}
}
