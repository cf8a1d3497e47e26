package registry

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/cbergoon/merkletree"

	"github.com/cetane-dev/cetane/internal/alerr"
	"github.com/cetane-dev/cetane/internal/dialect"
)

// migrationLeaf adapts a resolved Migration into merkletree.Content by
// hashing its name and forward SQL against a backend — any reordering or
// silent edit of an already-resolved migration changes its leaf hash.
type migrationLeaf struct {
	name string
	sql  string
}

func (l migrationLeaf) CalculateHash() ([]byte, error) {
	h := sha256.Sum256([]byte(l.name + "\x00" + l.sql))
	return h[:], nil
}

func (l migrationLeaf) Equals(other merkletree.Content) (bool, error) {
	o, ok := other.(migrationLeaf)
	if !ok {
		return false, nil
	}
	return l.name == o.name && l.sql == o.sql, nil
}

// ChecksumChain returns the merkle root over the registry's resolved
// migration order, with each leaf derived from a migration's name and its
// forward SQL for the given backend. Two registries with the same
// migrations in the same resolved order and the same backend always produce
// the same root; reordering, renaming, or editing any migration's operations
// changes it. This is an optional integrity aid, not part of the mandatory
// forward/backward path.
func (r *Registry) ChecksumChain(b dialect.Backend) (string, error) {
	ordered, err := r.ResolveOrder()
	if err != nil {
		return "", err
	}
	if len(ordered) == 0 {
		return "", nil
	}

	leaves := make([]merkletree.Content, 0, len(ordered))
	for _, m := range ordered {
		var sqlAll string
		for _, op := range m.Operations {
			stmts, err := op.ForwardSQL(b)
			if err != nil {
				return "", alerr.Wrap(alerr.ErrSchemaInvalid, err, "failed to lower operation for checksum").
					WithMigration(m.Name)
			}
			for _, s := range stmts {
				sqlAll += s + ";"
			}
		}
		leaves = append(leaves, migrationLeaf{name: m.Name, sql: sqlAll})
	}

	tree, err := merkletree.NewTree(leaves)
	if err != nil {
		return "", alerr.Wrap(alerr.EInternalError, err, "failed to build checksum chain")
	}
	return hex.EncodeToString(tree.MerkleRoot()), nil
}
