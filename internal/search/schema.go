// Package search defines the candidate index schema and a narrow client
// for the hosted search service. The index itself is an external
// collaborator; nothing in this package indexes or scores locally.
package search

// FieldType enumerates the attribute types the hosted index supports.
type FieldType string

// Index field types.
const (
	TypeString           FieldType = "string"
	TypeStringCollection FieldType = "stringCollection"
	TypeInt32            FieldType = "int32"
	TypeDouble           FieldType = "double"
	TypeBoolean          FieldType = "boolean"
	TypeDateTime         FieldType = "dateTime"
)

// Field describes one attribute of an index document and how the hosted
// service may use it.
type Field struct {
	Name       string    `json:"name"`
	Type       FieldType `json:"type"`
	Key        bool      `json:"key,omitempty"`
	Searchable bool      `json:"searchable"`
	Filterable bool      `json:"filterable"`
	Sortable   bool      `json:"sortable"`
	Facetable  bool      `json:"facetable"`
}

// IndexDefinition is the full schema uploaded when the index is created.
type IndexDefinition struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// CandidateIndexSchema returns the fixed schema of the candidate discovery
// index. Static data, defined once, safe for concurrent reads.
func CandidateIndexSchema(indexName string) IndexDefinition {
	return IndexDefinition{
		Name: indexName,
		Fields: []Field{
			{Name: "id", Type: TypeString, Key: true, Filterable: true},
			{Name: "fullName", Type: TypeString, Searchable: true, Sortable: true},
			{Name: "email", Type: TypeString, Filterable: true},
			{Name: "currentTitle", Type: TypeString, Searchable: true, Filterable: true, Facetable: true},
			{Name: "location", Type: TypeString, Searchable: true, Filterable: true, Facetable: true},
			{Name: "skills", Type: TypeStringCollection, Searchable: true, Filterable: true, Facetable: true},
			{Name: "yearsExperience", Type: TypeInt32, Filterable: true, Sortable: true, Facetable: true},
			{Name: "seniorityLevel", Type: TypeString, Filterable: true, Facetable: true},
			{Name: "summary", Type: TypeString, Searchable: true},
			{Name: "resumeBlobKey", Type: TypeString},
			{Name: "updatedAt", Type: TypeDateTime, Filterable: true, Sortable: true},
		},
	}
}
