// Package ast defines the closed, tagged Operation IR: the schema-change
// units a migration is built from. Each operation knows how to lower itself
// to SQL for a given dialect.Backend and, where possible, produce its own
// inverse through its Reverse method.
package ast

import (
	"github.com/cetane-dev/cetane/internal/alerr"
	"github.com/cetane-dev/cetane/internal/dialect"
	"github.com/cetane-dev/cetane/internal/schema"
	"github.com/cetane-dev/cetane/internal/validate"
)

// OpKind tags the closed operation set (spec §3: "Operation (tagged, closed)").
type OpKind string

const (
	OpCreateTable      OpKind = "create_table"
	OpDropTable        OpKind = "drop_table"
	OpRenameTable      OpKind = "rename_table"
	OpAddField         OpKind = "add_field"
	OpRemoveField      OpKind = "remove_field"
	OpRenameField      OpKind = "rename_field"
	OpAlterField       OpKind = "alter_field"
	OpAddIndex         OpKind = "add_index"
	OpRemoveIndex      OpKind = "remove_index"
	OpAddConstraint    OpKind = "add_constraint"
	OpRemoveConstraint OpKind = "remove_constraint"
	OpRunSql           OpKind = "run_sql"
)

// Operation is the uniform capability every IR node implements: emit forward
// SQL for a backend, validate itself, and optionally produce its inverse.
type Operation interface {
	Kind() OpKind
	Table() string
	Validate() error
	ForwardSQL(b dialect.Backend) ([]string, error)
	// Reverse returns the inverse operation and true when this operation is
	// auto-reversible or has had reverse data attached via a With* method;
	// otherwise it returns (nil, false).
	Reverse() (Operation, bool)
}

// CreateTable creates a new table with the given fields and table-level
// constraints.
type CreateTable struct {
	TableName   string
	Fields      []schema.Field
	Constraints []schema.Constraint
}

func (op *CreateTable) Kind() OpKind  { return OpCreateTable }
func (op *CreateTable) Table() string { return op.TableName }

func (op *CreateTable) Validate() error {
	if op.TableName == "" {
		return alerr.New(alerr.ErrSchemaInvalid, "table name is required for create_table")
	}
	if err := validate.TableName(op.TableName); err != nil {
		return err
	}
	if len(op.Fields) == 0 {
		return alerr.New(alerr.ErrSchemaInvalid, "table must have at least one field").WithTable(op.TableName)
	}
	seen := make(map[string]bool, len(op.Fields))
	for _, f := range op.Fields {
		if err := f.Validate(); err != nil {
			return alerr.Wrap(alerr.ErrSchemaInvalid, err, "invalid field").WithTable(op.TableName)
		}
		if seen[f.Name] {
			return alerr.New(alerr.ErrSchemaInvalid, "duplicate field name").
				WithTable(op.TableName).WithColumn(f.Name)
		}
		seen[f.Name] = true
	}
	for _, c := range op.Constraints {
		if err := c.Validate(); err != nil {
			return alerr.Wrap(alerr.ErrSchemaInvalid, err, "invalid constraint").WithTable(op.TableName)
		}
	}
	return nil
}

// Reverse always succeeds: dropping the table it just created, carrying the
// field/constraint definitions so the reverse DropTable can itself be
// reversed back into an equivalent CreateTable (spec §4.3 DropTable row).
func (op *CreateTable) Reverse() (Operation, bool) {
	return &DropTable{
		TableName:      op.TableName,
		reverseFields:  op.Fields,
		reverseConstrs: op.Constraints,
	}, true
}

// DropTable drops a table. It is only reversible when fields/constraints
// have been attached via WithFields/WithConstraints (spec: "None unless
// with_fields/with_constraints supplied").
type DropTable struct {
	TableName string

	reverseFields  []schema.Field
	reverseConstrs []schema.Constraint
}

func (op *DropTable) Kind() OpKind  { return OpDropTable }
func (op *DropTable) Table() string { return op.TableName }

func (op *DropTable) Validate() error {
	if op.TableName == "" {
		return alerr.New(alerr.ErrSchemaInvalid, "table name is required for drop_table")
	}
	return nil
}

// WithFields attaches the field definitions a reverse CreateTable would need.
func (op *DropTable) WithFields(fields []schema.Field) *DropTable {
	op.reverseFields = fields
	return op
}

// WithConstraints attaches the constraint definitions a reverse CreateTable
// would need.
func (op *DropTable) WithConstraints(constraints []schema.Constraint) *DropTable {
	op.reverseConstrs = constraints
	return op
}

func (op *DropTable) Reverse() (Operation, bool) {
	if op.reverseFields == nil {
		return nil, false
	}
	return &CreateTable{
		TableName:   op.TableName,
		Fields:      op.reverseFields,
		Constraints: op.reverseConstrs,
	}, true
}

// RenameTable renames a table; always reversible by swapping the names.
type RenameTable struct {
	From string
	To   string
}

func (op *RenameTable) Kind() OpKind  { return OpRenameTable }
func (op *RenameTable) Table() string { return op.From }

func (op *RenameTable) Validate() error {
	if op.From == "" || op.To == "" {
		return alerr.New(alerr.ErrSchemaInvalid, "rename_table requires both names")
	}
	if op.From == op.To {
		return alerr.New(alerr.ErrSchemaInvalid, "rename_table names must differ").WithTable(op.From)
	}
	return nil
}

func (op *RenameTable) Reverse() (Operation, bool) {
	return &RenameTable{From: op.To, To: op.From}, true
}

// AddField adds a column to an existing table; reversible by RemoveField.
type AddField struct {
	TableName string
	Field     schema.Field
}

func (op *AddField) Kind() OpKind  { return OpAddField }
func (op *AddField) Table() string { return op.TableName }

func (op *AddField) Validate() error {
	if op.TableName == "" {
		return alerr.New(alerr.ErrSchemaInvalid, "table name is required for add_field")
	}
	if err := op.Field.Validate(); err != nil {
		return alerr.Wrap(alerr.ErrSchemaInvalid, err, "invalid field").WithTable(op.TableName)
	}
	return nil
}

func (op *AddField) Reverse() (Operation, bool) {
	return (&RemoveField{TableName: op.TableName, FieldName: op.Field.Name}).WithDefinition(op.Field), true
}

// RemoveField drops a column. Reversible only when WithDefinition has been
// called (spec: "None unless with_definition(f)").
type RemoveField struct {
	TableName string
	FieldName string

	reverseField *schema.Field
}

func (op *RemoveField) Kind() OpKind  { return OpRemoveField }
func (op *RemoveField) Table() string { return op.TableName }

func (op *RemoveField) Validate() error {
	if op.TableName == "" {
		return alerr.New(alerr.ErrSchemaInvalid, "table name is required for remove_field")
	}
	if op.FieldName == "" {
		return alerr.New(alerr.ErrSchemaInvalid, "field name is required for remove_field").WithTable(op.TableName)
	}
	return nil
}

// WithDefinition attaches the field definition a reverse AddField would need.
func (op *RemoveField) WithDefinition(f schema.Field) *RemoveField {
	op.reverseField = &f
	return op
}

func (op *RemoveField) Reverse() (Operation, bool) {
	if op.reverseField == nil {
		return nil, false
	}
	return &AddField{TableName: op.TableName, Field: *op.reverseField}, true
}

// RenameField renames a column; always reversible by swapping the names.
type RenameField struct {
	TableName string
	From      string
	To        string
}

func (op *RenameField) Kind() OpKind  { return OpRenameField }
func (op *RenameField) Table() string { return op.TableName }

func (op *RenameField) Validate() error {
	if op.TableName == "" {
		return alerr.New(alerr.ErrSchemaInvalid, "table name is required for rename_field")
	}
	if op.From == "" || op.To == "" {
		return alerr.New(alerr.ErrSchemaInvalid, "rename_field requires both names").WithTable(op.TableName)
	}
	if op.From == op.To {
		return alerr.New(alerr.ErrSchemaInvalid, "rename_field names must differ").
			WithTable(op.TableName).WithColumn(op.From)
	}
	return nil
}

func (op *RenameField) Reverse() (Operation, bool) {
	return &RenameField{TableName: op.TableName, From: op.To, To: op.From}, true
}

// AlterField applies a partial FieldChanges to an existing column.
// Reversible only when WithReverse has supplied the inverse changes (spec:
// "None unless with_reverse(reverse_changes)").
type AlterField struct {
	TableName string
	FieldName string
	Changes   schema.FieldChanges

	reverseChanges *schema.FieldChanges
}

func (op *AlterField) Kind() OpKind  { return OpAlterField }
func (op *AlterField) Table() string { return op.TableName }

func (op *AlterField) Validate() error {
	if op.TableName == "" {
		return alerr.New(alerr.ErrSchemaInvalid, "table name is required for alter_field")
	}
	if op.FieldName == "" {
		return alerr.New(alerr.ErrSchemaInvalid, "field name is required for alter_field").WithTable(op.TableName)
	}
	return op.Changes.Validate()
}

// WithReverse attaches the FieldChanges that undo this alteration.
func (op *AlterField) WithReverse(reverse schema.FieldChanges) *AlterField {
	op.reverseChanges = &reverse
	return op
}

func (op *AlterField) Reverse() (Operation, bool) {
	if op.reverseChanges == nil {
		return nil, false
	}
	return &AlterField{TableName: op.TableName, FieldName: op.FieldName, Changes: *op.reverseChanges}, true
}

// AddIndex creates an index; reversible by RemoveIndex.
type AddIndex struct {
	TableName string
	Index     schema.Index
}

func (op *AddIndex) Kind() OpKind  { return OpAddIndex }
func (op *AddIndex) Table() string { return op.TableName }

func (op *AddIndex) Validate() error {
	if op.TableName == "" {
		return alerr.New(alerr.ErrSchemaInvalid, "table name is required for add_index")
	}
	return op.Index.Validate()
}

func (op *AddIndex) Reverse() (Operation, bool) {
	return (&RemoveIndex{TableName: op.TableName, IndexName: op.Index.Name}).WithDefinition(op.Index), true
}

// RemoveIndex drops an index. Reversible only when WithDefinition has been
// called.
type RemoveIndex struct {
	TableName string
	IndexName string

	reverseIndex *schema.Index
}

func (op *RemoveIndex) Kind() OpKind  { return OpRemoveIndex }
func (op *RemoveIndex) Table() string { return op.TableName }

func (op *RemoveIndex) Validate() error {
	if op.IndexName == "" {
		return alerr.New(alerr.ErrSchemaInvalid, "index name is required for remove_index")
	}
	return nil
}

// WithDefinition attaches the index definition a reverse AddIndex would need.
func (op *RemoveIndex) WithDefinition(idx schema.Index) *RemoveIndex {
	op.reverseIndex = &idx
	return op
}

func (op *RemoveIndex) Reverse() (Operation, bool) {
	if op.reverseIndex == nil {
		return nil, false
	}
	return &AddIndex{TableName: op.TableName, Index: *op.reverseIndex}, true
}

// AddConstraint adds a table-level constraint; reversible by RemoveConstraint.
type AddConstraint struct {
	TableName  string
	Constraint schema.Constraint
}

func (op *AddConstraint) Kind() OpKind  { return OpAddConstraint }
func (op *AddConstraint) Table() string { return op.TableName }

func (op *AddConstraint) Validate() error {
	if op.TableName == "" {
		return alerr.New(alerr.ErrSchemaInvalid, "table name is required for add_constraint")
	}
	return op.Constraint.Validate()
}

func (op *AddConstraint) Reverse() (Operation, bool) {
	return (&RemoveConstraint{TableName: op.TableName, ConstraintName: op.Constraint.Name}).
		WithDefinition(op.Constraint), true
}

// RemoveConstraint drops a table-level constraint. Reversible only when
// WithDefinition has been called.
type RemoveConstraint struct {
	TableName      string
	ConstraintName string

	reverseConstraint *schema.Constraint
}

func (op *RemoveConstraint) Kind() OpKind  { return OpRemoveConstraint }
func (op *RemoveConstraint) Table() string { return op.TableName }

func (op *RemoveConstraint) Validate() error {
	if op.TableName == "" {
		return alerr.New(alerr.ErrSchemaInvalid, "table name is required for remove_constraint")
	}
	if op.ConstraintName == "" {
		return alerr.New(alerr.ErrSchemaInvalid, "constraint name is required for remove_constraint").
			WithTable(op.TableName)
	}
	return nil
}

// WithDefinition attaches the constraint definition a reverse AddConstraint
// would need.
func (op *RemoveConstraint) WithDefinition(c schema.Constraint) *RemoveConstraint {
	op.reverseConstraint = &c
	return op
}

func (op *RemoveConstraint) Reverse() (Operation, bool) {
	if op.reverseConstraint == nil {
		return nil, false
	}
	return &AddConstraint{TableName: op.TableName, Constraint: *op.reverseConstraint}, true
}

// RunSql is the escape hatch: raw SQL, optionally reversible, optionally
// parameterized per-backend via Portable.
type RunSql struct {
	SQL      string // used when Portable is nil
	Portable map[dialect.Name]string

	reverseSQL *string
}

func (op *RunSql) Kind() OpKind  { return OpRunSql }
func (op *RunSql) Table() string { return "" }

func (op *RunSql) Validate() error {
	if op.SQL == "" && len(op.Portable) == 0 {
		return alerr.New(alerr.ErrSchemaInvalid, "run_sql requires SQL or a portable mapping")
	}
	return nil
}

// WithReverse attaches the SQL that undoes this statement.
func (op *RunSql) WithReverse(sql string) *RunSql {
	op.reverseSQL = &sql
	return op
}

func (op *RunSql) Reverse() (Operation, bool) {
	if op.reverseSQL == nil {
		return nil, false
	}
	return &RunSql{SQL: *op.reverseSQL}, true
}
