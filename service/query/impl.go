package query

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/database/mongoclient"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/base/metrics"
	"github.com/x-xyz/marketcore/domain"
)

const (
	queryMaxTime      = 20 * time.Second
	slowLogThreshold  = 500 * time.Millisecond
	maxConcurrentTxns = 10
)

var (
	timeNow = time.Now
	met     = metrics.New("mongo")
)

type impl struct {
	client     *mongoclient.Client
	checkIndex bool
	tokens     chan int
}

// New initializes an impl. checkIndex rejects queries that would scan a whole
// collection, it is meant for development.
func New(client *mongoclient.Client, checkIndex bool) Mongo {
	tokens := make(chan int, maxConcurrentTxns)
	for i := 0; i < maxConcurrentTxns; i++ {
		tokens <- i + 1
	}
	return &impl{
		client:     client,
		checkIndex: checkIndex,
		tokens:     tokens,
	}
}

func (im *impl) collection(table domain.Table) *mongo.Collection {
	return im.client.Database(im.client.DbName).Collection(string(table))
}

func (im *impl) logerr(context ctx.Ctx, table domain.Table, msg string, err error) {
	met.BumpSum("err", 1, "table", string(table))
	context.WithField("err", err).Error(msg)
}

func (im *impl) Insert(context ctx.Ctx, table domain.Table, insert interface{}) error {
	defer met.BumpTime("time", "func", "insert", "table", string(table)).End()
	defer slowLog(context, string(table), "insert", nil, nil)()

	context = ctx.WithValues(context, map[string]interface{}{
		"table":  table,
		"insert": insert,
	})

	if _, err := im.collection(table).InsertOne(context, insert); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		im.logerr(context, table, "Insert: InsertOne failed", err)
		return err
	}
	return nil
}

func (im *impl) FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error {
	defer met.BumpTime("time", "func", "findone", "table", string(table)).End()
	defer slowLog(context, string(table), "findone", query, nil)()

	context = ctx.WithValues(context, map[string]interface{}{
		"table": table,
		"query": query,
	})

	if err := im.checkQueryIndex(context, string(table), "find", bson.E{Key: "filter", Value: query}); err != nil {
		im.logerr(context, table, "checkQueryIndex failed", err)
		return err
	}

	findOneOpts := options.FindOne().SetMaxTime(queryMaxTime)
	res := im.collection(table).FindOne(context, query, findOneOpts)
	if err := res.Decode(result); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		im.logerr(context, table, "FindOne: FindOne error", err)
		return err
	}
	return nil
}

func (im *impl) Count(context ctx.Ctx, table domain.Table, selector interface{}) (int, error) {
	defer met.BumpTime("time", "func", "count", "table", string(table)).End()
	defer slowLog(context, string(table), "count", selector, nil)()

	context = ctx.WithValues(context, map[string]interface{}{
		"table":    table,
		"selector": selector,
	})

	if err := im.checkQueryIndex(context, string(table), "count", bson.E{Key: "query", Value: selector}); err != nil {
		im.logerr(context, table, "checkQueryIndex failed", err)
		return 0, err
	}

	opts := options.Count().SetMaxTime(queryMaxTime)
	count, err := im.collection(table).CountDocuments(context, selector, opts)
	if err != nil {
		im.logerr(context, table, "Count: CountDocuments failed", err)
		return 0, err
	}
	return int(count), nil
}

func (im *impl) Upsert(context ctx.Ctx, table domain.Table, selector, update interface{}) error {
	defer met.BumpTime("time", "func", "upsert", "table", string(table)).End()
	defer slowLog(context, string(table), "upsert", selector, nil)()

	context = ctx.WithValues(context, map[string]interface{}{
		"table":    table,
		"selector": selector,
		"update":   update,
	})

	replaceOpts := options.Replace().SetUpsert(true)
	if _, err := im.collection(table).ReplaceOne(context, selector, update, replaceOpts); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		im.logerr(context, table, "Upsert: ReplaceOne failed", err)
		return err
	}
	return nil
}

func getSortOption(sortStrings ...string) bson.D {
	res := bson.D{}
	for _, sort := range sortStrings {
		if sort == "" {
			continue
		}
		if sort[0] == '-' {
			res = append(res, bson.E{Key: sort[1:], Value: -1})
		} else {
			res = append(res, bson.E{Key: sort, Value: 1})
		}
	}
	return res
}

func (im *impl) Search(context ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error {
	defer met.BumpTime("time", "func", "search", "table", string(table)).End()
	defer slowLog(context, string(table), "search", query, sort)()

	context = ctx.WithValues(context, map[string]interface{}{
		"table": table,
		"query": query,
	})

	if err := im.checkQueryIndex(context, string(table), "find", bson.E{Key: "filter", Value: query}); err != nil {
		im.logerr(context, table, "checkQueryIndex failed", err)
		return err
	}

	findOpts := options.Find().SetMaxTime(queryMaxTime)
	findOpts.SetLimit(int64(limit)).SetSkip(int64(offset))
	if sortOpt := getSortOption(sort); len(sortOpt) > 0 {
		findOpts.SetSort(sortOpt)
	}
	cursor, err := im.collection(table).Find(context, query, findOpts)
	if err != nil {
		im.logerr(context, table, "Search: Find failed", err)
		return err
	}
	defer cursor.Close(context)

	if err := cursor.All(context, results); err != nil {
		im.logerr(context, table, "Search: cursor.All failed", err)
		return err
	}
	return nil
}

func (im *impl) Remove(context ctx.Ctx, table domain.Table, selector interface{}) error {
	defer met.BumpTime("time", "func", "remove", "table", string(table)).End()
	defer slowLog(context, string(table), "remove", selector, nil)()

	context = ctx.WithValues(context, map[string]interface{}{
		"table":    table,
		"selector": selector,
	})

	deletedRes, err := im.collection(table).DeleteOne(context, selector)
	if err != nil {
		im.logerr(context, table, "Remove: DeleteOne failed", err)
		return err
	} else if deletedRes.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (im *impl) Patch(context ctx.Ctx, table domain.Table, selector, update interface{}, ops ...PatchOp) error {
	defer met.BumpTime("time", "func", "update", "table", string(table)).End()
	defer slowLog(context, string(table), "update", selector, nil)()

	o := &patchOp{}
	for _, opt := range ops {
		opt(o)
	}

	context = ctx.WithValues(context, map[string]interface{}{
		"table":    table,
		"selector": selector,
		"update":   update,
	})

	var (
		err       error
		updateRes *mongo.UpdateResult
		updater   = bson.M{"$set": update}
	)
	if o.patchMany {
		updateRes, err = im.collection(table).UpdateMany(context, selector, updater)
	} else {
		updateRes, err = im.collection(table).UpdateOne(context, selector, updater)
	}
	if err != nil {
		im.logerr(context, table, "Patch: Update failed", err)
		return err
	}

	if updateRes.MatchedCount == 0 && updateRes.ModifiedCount == 0 && updateRes.UpsertedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (im *impl) CustomPatch(context ctx.Ctx, table domain.Table, selector, update bson.M, upsert bool) error {
	defer met.BumpTime("time", "func", "customupdate", "table", string(table)).End()
	defer slowLog(context, string(table), "customupdate", selector, nil)()

	context = ctx.WithValues(context, map[string]interface{}{
		"table":    table,
		"selector": selector,
		"update":   update,
	})

	updateOpts := options.Update().SetUpsert(upsert)
	updateRes, err := im.collection(table).UpdateOne(context, selector, update, updateOpts)
	if err != nil {
		im.logerr(context, table, "CustomPatch: UpdateOne failed", err)
		return err
	}

	if updateRes.MatchedCount == 0 && updateRes.ModifiedCount == 0 && updateRes.UpsertedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (im *impl) IncrementMany(context ctx.Ctx, table domain.Table, query interface{}, fieldAndValues bson.M, set bson.M, result interface{}) error {
	defer met.BumpTime("time", "func", "incrementMany", "table", string(table)).End()
	defer slowLog(context, string(table), "incrementMany", query, nil)()

	updater := bson.M{"$inc": fieldAndValues}
	if set != nil {
		updater["$setOnInsert"] = set
	}
	findOneAndUpdateOpts := options.FindOneAndUpdate().SetReturnDocument(options.After).SetUpsert(true)

	res := im.collection(table).FindOneAndUpdate(context, query, updater, findOneAndUpdateOpts)
	if err := res.Decode(result); err != nil {
		im.logerr(context, table, "IncrementMany: FindOneAndUpdate failed", err)
		return err
	}
	return nil
}

func (im *impl) EnsureIndexes(context ctx.Ctx, indexes []domain.TableIndex) error {
	idxs := make([]mongoclient.Index, 0, len(indexes))
	for _, idx := range indexes {
		idxs = append(idxs, mongoclient.Index{
			Collection: string(idx.Table),
			Keys:       idx.Keys,
			Unique:     idx.Unique,
		})
	}
	return im.client.EnsureIndexes(context, idxs)
}

func (im *impl) RunWithTransaction(context ctx.Ctx, run func(ctx.Ctx) error) error {
	// nested call, join the running transaction
	if mongo.SessionFromContext(context) != nil {
		return run(context)
	}

	var token int
	select {
	case <-context.Done():
		return context.Err()
	case token = <-im.tokens:
	}
	defer func() { im.tokens <- token }()

	// explain command is not supported in transaction
	if im.checkIndex {
		return run(context)
	}

	defer met.BumpTime("time", "func", "transaction").End()

	session, err := im.client.StartSession()
	if err != nil {
		im.logerr(context, "", "StartSession failed", err)
		return err
	}
	defer session.EndSession(context)

	_, err = session.WithTransaction(context, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, run(ctx.WithContext(context, sessCtx))
	})
	return err
}

func slowLog(context ctx.Ctx, table, action string, query interface{}, sort interface{}) func() {
	start := timeNow()

	return func() {
		elapsed := time.Since(start)
		if elapsed < slowLogThreshold {
			return
		}
		met.BumpSum("slowlog", 1, "table", table, "action", action)
		context.WithFields(log.Fields{
			"table":      table,
			"action":     action,
			"startTime":  start.Unix(),
			"durationMs": elapsed.Milliseconds(),
			"query":      query,
			"sort":       sort,
		}).Warn("mongo slowlog")
	}
}

func (im *impl) checkQueryIndex(context ctx.Ctx, table string, action string, query bson.E) error {
	if !im.checkIndex {
		return nil
	}
	// reference: https://docs.mongodb.com/manual/reference/command/explain/
	res := im.client.Database(im.client.DbName).RunCommand(context, bson.D{
		bson.E{
			Key: "explain",
			Value: bson.D{
				bson.E{Key: action, Value: table},
				query,
			},
		},
		bson.E{
			Key:   "verbosity",
			Value: "queryPlanner",
		},
	})

	var m bson.M
	if err := res.Decode(&m); err != nil {
		context.WithField("err", err).Warn("checkQueryIndex decode failed")
		return nil
	}

	// The explain output differs between server versions, look for the
	// stage name anywhere in it.
	if strings.Contains(fmt.Sprintf("%v", m), "COLLSCAN") {
		context.WithField("query", query).Warn("COLLSCAN")
		return ErrCollScan
	}
	return nil
}
