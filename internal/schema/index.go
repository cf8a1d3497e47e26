package schema

import (
	"github.com/cetane-dev/cetane/internal/alerr"
	"github.com/cetane-dev/cetane/internal/validate"
)

// SortDirection is the ordering of a single index column.
type SortDirection string

const (
	Asc  SortDirection = "ASC"
	Desc SortDirection = "DESC"
)

// IndexColumn is one column participating in an index, with its sort direction.
type IndexColumn struct {
	Name      string
	Direction SortDirection
}

// Index is a complete index declaration. Filter is a raw SQL predicate
// fragment; only PostgreSQL's generator emits it (see dialect capability
// SupportsPartialIndex).
type Index struct {
	Name    string
	Table   string
	Columns []IndexColumn
	Unique  bool
	Filter  string
}

// Validate checks that the index has a name, table, and at least one column.
func (i Index) Validate() error {
	if i.Name == "" {
		return alerr.New(alerr.ErrSchemaInvalid, "index name is required")
	}
	if err := validate.SnakeCase(i.Name); err != nil {
		return err
	}
	if i.Table == "" {
		return alerr.New(alerr.ErrSchemaInvalid, "index must declare a table").With("index", i.Name)
	}
	if len(i.Columns) == 0 {
		return alerr.New(alerr.ErrSchemaInvalid, "index must have at least one column").
			WithTable(i.Table).With("index", i.Name)
	}
	return nil
}

// ConstraintKind tags the three constraint variants.
type ConstraintKind string

const (
	UniqueConstraint     ConstraintKind = "unique"
	CheckConstraint      ConstraintKind = "check"
	ForeignKeyConstraint ConstraintKind = "foreign_key"
)

// Constraint is a tagged union over Unique/Check/ForeignKey table-level
// constraints. Only the fields relevant to Kind are meaningful.
type Constraint struct {
	Kind ConstraintKind
	Name string

	// UniqueConstraint
	Columns []string

	// CheckConstraint
	Expression string

	// ForeignKeyConstraint
	RefTable   string
	RefColumns []string
	OnDelete   ReferentialAction
	OnUpdate   ReferentialAction
}

// NewUnique builds a Unique constraint.
func NewUnique(name string, columns ...string) Constraint {
	return Constraint{Kind: UniqueConstraint, Name: name, Columns: columns}
}

// NewCheck builds a Check constraint.
func NewCheck(name, expression string) Constraint {
	return Constraint{Kind: CheckConstraint, Name: name, Expression: expression}
}

// NewForeignKey builds a ForeignKey constraint.
func NewForeignKey(name string, columns []string, refTable string, refColumns []string) Constraint {
	return Constraint{
		Kind:       ForeignKeyConstraint,
		Name:       name,
		Columns:    columns,
		RefTable:   refTable,
		RefColumns: refColumns,
	}
}

// Validate checks the constraint is well-formed for its Kind.
func (c Constraint) Validate() error {
	if c.Name == "" {
		return alerr.New(alerr.ErrSchemaInvalid, "constraint name is required")
	}
	switch c.Kind {
	case UniqueConstraint:
		if len(c.Columns) == 0 {
			return alerr.New(alerr.ErrSchemaInvalid, "unique constraint requires at least one column").
				With("constraint", c.Name)
		}
	case CheckConstraint:
		if c.Expression == "" {
			return alerr.New(alerr.ErrSchemaInvalid, "check constraint requires an expression").
				With("constraint", c.Name)
		}
	case ForeignKeyConstraint:
		if len(c.Columns) == 0 {
			return alerr.New(alerr.ErrSchemaInvalid, "foreign key constraint requires at least one column").
				With("constraint", c.Name)
		}
		if c.RefTable == "" {
			return alerr.New(alerr.ErrSchemaInvalid, "foreign key constraint must reference a table").
				With("constraint", c.Name)
		}
		if len(c.Columns) != len(c.RefColumns) {
			return alerr.New(alerr.ErrSchemaInvalid, "foreign key column count must match referenced column count").
				With("constraint", c.Name)
		}
	default:
		return alerr.Newf(alerr.ErrSchemaInvalid, "unknown constraint kind %q", c.Kind)
	}
	return nil
}
