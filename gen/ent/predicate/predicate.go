// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// DocumentFile is the predicate function for documentfile builders.
type DocumentFile func(*sql.Selector)

// DocumentPair is the predicate function for documentpair builders.
type DocumentPair func(*sql.Selector)

// LineItem is the predicate function for lineitem builders.
type LineItem func(*sql.Selector)

// ValidationResult is the predicate function for validationresult builders.
type ValidationResult func(*sql.Selector)

// ValidationSummary is the predicate function for validationsummary builders.
type ValidationSummary func(*sql.Selector)
