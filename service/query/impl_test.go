package query

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/database/mongoclient"
	"github.com/x-xyz/marketcore/domain"
)

var (
	mockCTX = ctx.Background()
)

const (
	mockTable = domain.Table("query_test")
	dbName    = "testdb"
)

type dummy struct {
	Dummy  string `bson:"dummy"`
	Update string `bson:"updatekey"`
}

// querySuite runs against a replica set given by MONGO_TEST_URI
type querySuite struct {
	suite.Suite
	im       *impl
	mongoURI string
}

func (q *querySuite) SetupSuite() {
	q.mongoURI = os.Getenv("MONGO_TEST_URI")
	if q.mongoURI == "" {
		q.T().Skip("MONGO_TEST_URI is not set")
	}
}

func (q *querySuite) SetupTest() {
	q.im = New(mongoclient.MustConnectMongoClient(mongoclient.Options{
		URI:        q.mongoURI,
		AuthDBName: "admin",
		DBName:     dbName,
		SetSafe:    true,
	}), false).(*impl)
	q.Require().NoError(q.im.collection(mockTable).Drop(mockCTX))
	q.Require().NoError(q.im.EnsureIndexes(mockCTX, []domain.TableIndex{
		{Table: mockTable, Keys: []string{"dummy"}, Unique: true},
	}))
}

func (q *querySuite) TestInsertFindOne() {
	v := dummy{"test-value1", "test-value2"}
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, v))

	result := dummy{}
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "test-value1"}, &result))
	q.Equal(v, result)

	q.Equal(ErrNotFound, q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "absent"}, &result))
	q.Equal(ErrDuplicateKey, q.im.Insert(mockCTX, mockTable, v))
}

func (q *querySuite) TestUpsertCount() {
	sel := bson.M{"dummy": "a"}
	q.Require().NoError(q.im.Upsert(mockCTX, mockTable, sel, dummy{"a", "1"}))
	q.Require().NoError(q.im.Upsert(mockCTX, mockTable, sel, dummy{"a", "2"}))

	n, err := q.im.Count(mockCTX, mockTable, sel)
	q.Require().NoError(err)
	q.Equal(1, n)

	result := dummy{}
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, sel, &result))
	q.Equal("2", result.Update)
}

func (q *querySuite) TestSearch() {
	for _, v := range []string{"c", "a", "b"} {
		q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummy{v, "x"}))
	}

	results := []dummy{}
	q.Require().NoError(q.im.Search(mockCTX, mockTable, 0, 2, "-dummy", bson.M{}, &results))
	q.Equal([]dummy{{"c", "x"}, {"b", "x"}}, results)

	results = []dummy{}
	q.Require().NoError(q.im.Search(mockCTX, mockTable, 1, 10, "dummy", bson.M{}, &results))
	q.Equal([]dummy{{"b", "x"}, {"c", "x"}}, results)
}

func (q *querySuite) TestRemove() {
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummy{"a", "x"}))
	q.NoError(q.im.Remove(mockCTX, mockTable, bson.M{"dummy": "a"}))
	q.Equal(ErrNotFound, q.im.Remove(mockCTX, mockTable, bson.M{"dummy": "a"}))
}

func (q *querySuite) TestPatch() {
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummy{"a", "x"}))
	q.NoError(q.im.Patch(mockCTX, mockTable, bson.M{"dummy": "a"}, bson.M{"updatekey": "y"}))
	q.Equal(ErrNotFound, q.im.Patch(mockCTX, mockTable, bson.M{"dummy": "b"}, bson.M{"updatekey": "y"}))

	result := dummy{}
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "a"}, &result))
	q.Equal("y", result.Update)

	q.NoError(q.im.CustomPatch(mockCTX, mockTable, bson.M{"dummy": "b"}, bson.M{"$set": bson.M{"updatekey": "z"}}, true))
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "b"}, &result))
	q.Equal("z", result.Update)
}

func (q *querySuite) TestIncrementMany() {
	type counter struct {
		Dummy string `bson:"dummy"`
		Seq   int64  `bson:"seq"`
	}

	result := counter{}
	q.Require().NoError(q.im.IncrementMany(mockCTX, mockTable, bson.M{"dummy": "seq"}, bson.M{"seq": int64(1)}, nil, &result))
	q.Equal(int64(1), result.Seq)
	q.Require().NoError(q.im.IncrementMany(mockCTX, mockTable, bson.M{"dummy": "seq"}, bson.M{"seq": int64(1)}, nil, &result))
	q.Equal(int64(2), result.Seq)
}

func (q *querySuite) TestRunWithTransaction() {
	errAbort := errors.New("abort")

	err := q.im.RunWithTransaction(mockCTX, func(c ctx.Ctx) error {
		q.Require().NoError(q.im.Insert(c, mockTable, dummy{"test-value-1", ""}))
		q.Require().NoError(q.im.Insert(c, mockTable, dummy{"test-value-2", ""}))
		return errAbort
	})
	q.Require().Equal(errAbort, err)

	result := dummy{}
	q.Equal(ErrNotFound, q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "test-value-1"}, &result))
	q.Equal(ErrNotFound, q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "test-value-2"}, &result))

	err = q.im.RunWithTransaction(mockCTX, func(c ctx.Ctx) error {
		q.Require().NoError(q.im.Insert(c, mockTable, dummy{"test-value-1", ""}))
		// nested call joins the outer transaction
		return q.im.RunWithTransaction(c, func(c ctx.Ctx) error {
			return q.im.Insert(c, mockTable, dummy{"test-value-2", ""})
		})
	})
	q.Require().NoError(err)

	q.NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "test-value-1"}, &result))
	q.NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "test-value-2"}, &result))
}

func TestQuerySuite(t *testing.T) {
	suite.Run(t, new(querySuite))
}

func TestGetSortOption(t *testing.T) {
	require.Equal(t, bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "offerId", Value: 1},
	}, getSortOption("-createdAt", "", "offerId"))
}
