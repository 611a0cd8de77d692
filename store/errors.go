package store

import "fmt"

// IntegrityError reports a reference to a row that is not present: an insert
// naming a missing foreign key, a delete of an unknown row, or a derivation
// that cannot resolve a join target. The failed operation leaves state intact.
type IntegrityError struct {
	Entity    string // entity kind of the record being processed
	Key       string // primary key of that record
	Reference string // entity kind the missing row belongs to, empty when the record itself is missing
	RefKey    string // key of the missing row
}

func (e *IntegrityError) Error() string {
	if e.Reference != "" {
		return fmt.Sprintf("%s %s: referenced %s %s not found", e.Entity, e.Key, e.Reference, e.RefKey)
	}
	return fmt.Sprintf("%s %s not found", e.Entity, e.Key)
}

// InvariantViolation reports a value constraint broken by an insert, e.g. a
// non-positive quantity or a discount outside [0,1].
type InvariantViolation struct {
	Entity string
	Key    string
	Rule   string // the violated rule, in words
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Entity, e.Key, e.Rule)
}

// DuplicateKeyError reports an insert that reuses an existing primary key.
type DuplicateKeyError struct {
	Entity string
	Key    string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s %s already exists", e.Entity, e.Key)
}
