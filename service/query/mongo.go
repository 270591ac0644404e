package query

/*
	Package `query` wraps https://github.com/mongodb/mongo-go-driver for the
	repositories. Read https://godoc.org/go.mongodb.org/mongo-driver/mongo for
	the details of each call, and the testcases for usage.
*/

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
)

var (
	// ErrNotFound is mongo document not found error
	ErrNotFound = fmt.Errorf("document not found")

	// ErrDuplicateKey is an error when violating unique index
	ErrDuplicateKey = fmt.Errorf("duplicate key")

	// ErrCollScan is error for unindexed query
	ErrCollScan = fmt.Errorf("COLLSCAN is not allowed")
)

type patchOp struct {
	patchMany bool
}

// PatchOp is an alias for functional argument
type PatchOp func(*patchOp)

// WithPatchMany specifies patchMany setting. To patch all entries selected, set patchMany = true.
func WithPatchMany(patchMany bool) PatchOp {
	return func(o *patchOp) {
		o.patchMany = patchMany
	}
}

// Mongo abstract the mongo layer.
type Mongo interface {
	// Insert inserts a new document to the table
	// Return ErrDuplicateKey when a unique index rejects it
	Insert(context ctx.Ctx, table domain.Table, insert interface{}) error

	// FindOne get data from the table
	FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error

	// Count return counting for matched entry in the table
	// https://docs.mongodb.com/manual/reference/method/db.collection.countDocuments
	Count(context ctx.Ctx, table domain.Table, selector interface{}) (n int, err error)

	// Upsert update an entry , if the selector is already exist.
	// Upsert insert an entry , if the selector is not exist.
	Upsert(context ctx.Ctx, table domain.Table, selector, update interface{}) error

	// Search sort order by `sort` argument (ex "timestamp" ascending, or "-timestamp" descending)
	// if `sort` is "", the sort action is skipped, and the MongoDB does not guarantee the order of query results.
	Search(context ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error

	// Remove remove an entry from the table
	// Return ErrNotFound if selector does not match any documents
	Remove(context ctx.Ctx, table domain.Table, selector interface{}) error

	// Patch patch an entry, if the selector not exist, return err.
	// To patch all entries selected, set WithPatchMany(true).
	// Return ErrNotFound if selector does not match any documents
	Patch(context ctx.Ctx, table domain.Table, selector, update interface{}, ops ...PatchOp) error

	// CustomPatch patch an entry with customized mongo query
	// Return ErrNotFound if upsert is false and selector does not match any documents,
	CustomPatch(context ctx.Ctx, table domain.Table, selector, update bson.M, upsert bool) error

	// IncrementMany let you increase fields and their values.
	// If entry not exist, insert with set statement.
	IncrementMany(context ctx.Ctx, table domain.Table, query interface{}, fieldAndValues bson.M, set bson.M, result interface{}) error

	// EnsureIndexes creates the indexes the tables are queried by
	EnsureIndexes(context ctx.Ctx, indexes []domain.TableIndex) error

	// RunWithTransaction runs `run` in a multi document transaction. When the
	// context already carries a session, `run` joins that transaction.
	RunWithTransaction(context ctx.Ctx, run func(ctx.Ctx) error) error
}
