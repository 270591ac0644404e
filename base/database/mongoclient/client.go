package mongoclient

import (
	"context"
	"crypto/tls"
	"runtime"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/x-xyz/marketcore/base/log"
)

const (
	mgSocketTimeout = 60 * time.Second
)

// Client wraps mongo.Client
type Client struct {
	DbName string
	*mongo.Client
}

// Options of a mongo connection
type Options struct {
	URI        string
	AuthDBName string
	DBName     string
	SSL        bool
	// SetSafe waits for a majority of the replica set on every write
	SetSafe            bool
	PoolSizeMultiplier float64
}

// Index is an index EnsureIndexes creates when missing
type Index struct {
	Collection string
	Keys       []string
	Unique     bool
}

// MustConnectMongoClient returns MongoDB connection client if connected successfully, or it will trigger panic
func MustConnectMongoClient(opts Options) *Client {
	cli, err := ConnectMongoClient(opts)
	if err != nil {
		log.Log().WithFields(log.Fields{"mongoURI": opts.URI, "err": err}).Panic("fail to dial Mongo")
	}
	return cli
}

// ConnectMongoClient returns mongo driver client
func ConnectMongoClient(opts Options) (*Client, error) {
	ctx := context.Background()
	logger := log.Log().WithField("dbName", opts.DBName)

	connSetting, err := connstring.Parse(opts.URI)
	if err != nil {
		logger.WithFields(log.Fields{"mongoURI": opts.URI, "err": err}).Error("fail to parse connstring")
		return nil, err
	}

	clientOpts := options.Client()
	clientOpts.ApplyURI(opts.URI)
	clientOpts.SetSocketTimeout(mgSocketTimeout)

	// If AuthSource is not set in connstring, set it to authDBName
	if connSetting.Username != "" && connSetting.AuthSource == "" {
		clientOpts.SetAuth(options.Credential{
			AuthMechanism:           connSetting.AuthMechanism,
			AuthMechanismProperties: connSetting.AuthMechanismProperties,
			Username:                connSetting.Username,
			Password:                connSetting.Password,
			PasswordSet:             connSetting.PasswordSet,
			AuthSource:              opts.AuthDBName,
		})
	}

	if opts.PoolSizeMultiplier > 0 {
		// each host keeps its own pool, split the total across hosts
		poolSize := int(float64(runtime.NumCPU()) * opts.PoolSizeMultiplier)
		poolSize = (poolSize + len(connSetting.Hosts) - 1) / len(connSetting.Hosts)
		clientOpts.SetMinPoolSize(uint64(poolSize / 4))
		clientOpts.SetMaxPoolSize(uint64(poolSize))
		logger.WithField("poolSize", poolSize).Info("mongo driver pool size")
	}

	if opts.SSL {
		clientOpts.SetTLSConfig(&tls.Config{})
	}

	if opts.SetSafe {
		clientOpts.SetWriteConcern(writeconcern.New(writeconcern.WMajority()))
	}
	clientOpts.SetRetryWrites(true)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		logger.WithFields(log.Fields{"mongoHosts": connSetting.Hosts, "err": err}).Error("fail to connect mongo db")
		return nil, err
	}

	if _, err := client.Database(opts.DBName).ListCollectionNames(ctx, bson.D{}); err != nil {
		logger.WithFields(log.Fields{"mongoHosts": connSetting.Hosts, "err": err}).Error("fail to test mongo db")
		return nil, err
	}

	logger.WithField("mongoHosts", connSetting.Hosts).Info("mongo connected")
	return &Client{
		Client: client,
		DbName: opts.DBName,
	}, nil
}

// EnsureIndexes creates the given ascending indexes, existing ones are left as is
func (c *Client) EnsureIndexes(ctx context.Context, indexes []Index) error {
	for _, idx := range indexes {
		keys := bson.D{}
		for _, k := range idx.Keys {
			keys = append(keys, bson.E{Key: k, Value: 1})
		}
		model := mongo.IndexModel{
			Keys:    keys,
			Options: options.Index().SetUnique(idx.Unique),
		}
		name, err := c.Database(c.DbName).Collection(idx.Collection).Indexes().CreateOne(ctx, model)
		if err != nil {
			log.Log().WithFields(log.Fields{
				"collection": idx.Collection,
				"keys":       idx.Keys,
				"err":        err,
			}).Error("fail to create index")
			return err
		}
		log.Log().WithFields(log.Fields{"collection": idx.Collection, "index": name}).Info("index ensured")
	}
	return nil
}
