package ast

import (
	"github.com/cetane-dev/cetane/internal/dialect"
	"github.com/cetane-dev/cetane/internal/sqlgen"
)

func (op *CreateTable) ForwardSQL(b dialect.Backend) ([]string, error) {
	return []string{sqlgen.CreateTableSQL(b, op.TableName, op.Fields, op.Constraints)}, nil
}

func (op *DropTable) ForwardSQL(b dialect.Backend) ([]string, error) {
	return []string{sqlgen.DropTableSQL(b, op.TableName)}, nil
}

func (op *RenameTable) ForwardSQL(b dialect.Backend) ([]string, error) {
	return []string{sqlgen.RenameTableSQL(b, op.From, op.To)}, nil
}

func (op *AddField) ForwardSQL(b dialect.Backend) ([]string, error) {
	return []string{sqlgen.AddFieldSQL(b, op.TableName, op.Field)}, nil
}

func (op *RemoveField) ForwardSQL(b dialect.Backend) ([]string, error) {
	stmt, err := sqlgen.RemoveFieldSQL(b, op.TableName, op.FieldName)
	if err != nil {
		return nil, err
	}
	return []string{stmt}, nil
}

func (op *RenameField) ForwardSQL(b dialect.Backend) ([]string, error) {
	stmt, err := sqlgen.RenameFieldSQL(b, op.TableName, op.From, op.To)
	if err != nil {
		return nil, err
	}
	return []string{stmt}, nil
}

func (op *AlterField) ForwardSQL(b dialect.Backend) ([]string, error) {
	return sqlgen.AlterFieldSQL(b, op.TableName, op.FieldName, op.Changes)
}

func (op *AddIndex) ForwardSQL(b dialect.Backend) ([]string, error) {
	return []string{sqlgen.AddIndexSQL(b, op.TableName, op.Index)}, nil
}

func (op *RemoveIndex) ForwardSQL(b dialect.Backend) ([]string, error) {
	return []string{sqlgen.RemoveIndexSQL(b, op.IndexName)}, nil
}

func (op *AddConstraint) ForwardSQL(b dialect.Backend) ([]string, error) {
	return []string{sqlgen.AddConstraintSQL(b, op.TableName, op.Constraint)}, nil
}

func (op *RemoveConstraint) ForwardSQL(b dialect.Backend) ([]string, error) {
	return []string{sqlgen.RemoveConstraintSQL(b, op.TableName, op.ConstraintName)}, nil
}

// ForwardSQL emits the user-provided SQL unchanged. If Portable is set, the
// statement for the active backend's name tag is looked up; a missing entry
// is a documented no-op, not an error (spec §4.2, §9 open question).
func (op *RunSql) ForwardSQL(b dialect.Backend) ([]string, error) {
	if op.Portable != nil {
		sql, ok := op.Portable[b.Name()]
		if !ok {
			return nil, nil
		}
		return []string{sql}, nil
	}
	return []string{op.SQL}, nil
}
