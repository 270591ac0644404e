package main

import (
	"math"
	"os"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/x-xyz/marketcore/base/config"
	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/database/mongoclient"
	"github.com/x-xyz/marketcore/base/database/redisclient"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/base/metrics"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/factory"
	"github.com/x-xyz/marketcore/domain/fee"
	"github.com/x-xyz/marketcore/domain/keys"
	"github.com/x-xyz/marketcore/domain/ledger"
	"github.com/x-xyz/marketcore/domain/marketplace"
	"github.com/x-xyz/marketcore/domain/token"
	"github.com/x-xyz/marketcore/service/cache"
	"github.com/x-xyz/marketcore/service/invocation"
	"github.com/x-xyz/marketcore/service/notifier"
	"github.com/x-xyz/marketcore/service/query"
	"github.com/x-xyz/marketcore/service/redis"
	factory_repository "github.com/x-xyz/marketcore/stores/factory/repository"
	factory_usecase "github.com/x-xyz/marketcore/stores/factory/usecase"
	fee_repository "github.com/x-xyz/marketcore/stores/fee/repository"
	fee_usecase "github.com/x-xyz/marketcore/stores/fee/usecase"
	ledger_repository "github.com/x-xyz/marketcore/stores/ledger/repository"
	token_repository "github.com/x-xyz/marketcore/stores/token/repository"
)

var (
	runner    invocation.Runner
	registry  token.Registry
	wallet    ledger.Repo
	feeUC     fee.UseCase
	factoryUC factory.UseCase
	owner     domain.Address
)

// setup connects storage once the global flags are parsed
func setup(c *cli.Context) error {
	if err := config.Load(c.String("config")); err != nil {
		return err
	}

	mongoClient := mongoclient.MustConnectMongoClient(mongoclient.Options{
		URI:                viper.GetString("mongo.uri"),
		AuthDBName:         viper.GetString("mongo.authDBName"),
		DBName:             viper.GetString("mongo.dbName"),
		SSL:                viper.GetBool("mongo.enableSSL"),
		SetSafe:            true,
		PoolSizeMultiplier: viper.GetFloat64("mongo.poolMultiplier"),
	})
	q := query.New(mongoClient, false)
	if err := q.EnsureIndexes(ctx.Background(), domain.TableIndexes); err != nil {
		return err
	}

	// fee writes drop the entry the api reads through
	redisCacheName := viper.GetString("redis_cache.name")
	redisCachePool, err := redisclient.ConnectRedis(viper.GetString("redis_cache.uri"), viper.GetString("redis_cache.password"), redisclient.RedisParam{
		PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
	})
	if err != nil {
		return err
	}
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	var tx invocation.Transactor = q
	if !viper.GetBool("mongo.transactions") {
		tx = invocation.Direct{}
	}
	runner = invocation.NewRunner(tx, notifier.Fanout(notifier.Log()))
	owner = domain.Address(viper.GetString("marketplace.owner")).ToLower()
	registry = token_repository.NewRegistry(q)
	wallet = ledger_repository.NewWallet(q, domain.Address(viper.GetString("marketplace.account")))
	feeUC = fee_usecase.New(&fee_usecase.FeeUseCaseCfg{
		Repo:   fee_repository.NewConfig(q),
		Runner: runner,
		Cache:  cache.NewShared(keys.PfxFeeConfig, viper.GetDuration("cache.ttl"), redisCache),
		Owner:  owner,
	})
	factoryUC = factory_usecase.New(&factory_usecase.FactoryUseCaseCfg{
		Repo:   factory_repository.NewContractHash(q),
		Runner: runner,
		Owner:  owner,
	})
	return nil
}

func main() {
	app := &cli.App{
		Name:  "marketctl",
		Usage: "administer the marketplace ledgers",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: config.DefaultPath, Usage: "path of the yaml config"},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:      "deploy",
				Usage:     "register an nft contract administered by owner",
				ArgsUsage: "<collection> <owner>",
				Action:    deploy,
			},
			{
				Name:      "mint",
				Usage:     "mint a token to an account",
				ArgsUsage: "<collection> <tokenId> <to>",
				Action:    mint,
			},
			{
				Name:      "fund",
				Usage:     "credit native currency to a wallet",
				ArgsUsage: "<account> <amount>",
				Action:    fund,
			},
			{
				Name:   "init-fees",
				Usage:  "create the fee config when absent",
				Action: initFees,
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "max-fee", Value: 1000, Usage: "max fee in basis points"},
					&cli.UintFlag{Name: "fee", Value: 250, Usage: "marketplace fee in basis points"},
					&cli.StringFlag{Name: "recipient", Usage: "fee recipient"},
				},
			},
			{
				Name:      "set-fee",
				Usage:     "update the marketplace fee",
				ArgsUsage: "<bps>",
				Action:    setFee,
			},
			{
				Name:      "set-fee-recipient",
				Usage:     "update the fee recipient",
				ArgsUsage: "<address>",
				Action:    setFeeRecipient,
			},
			{
				Name:      "set-contract-hash",
				Usage:     "store the code hash of a factory contract type",
				ArgsUsage: "<contractType> <hash>",
				Action:    setContractHash,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Log().WithField("err", err).Error("marketctl failed")
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

func args(c *cli.Context, n int) ([]string, error) {
	if c.NArg() != n {
		return nil, xerrors.Errorf("%w: expected %d arguments, got %d", domain.ErrBadParamInput, n, c.NArg())
	}
	return c.Args().Slice(), nil
}

func address(s string) (domain.Address, error) {
	if !common.IsHexAddress(s) {
		return "", xerrors.Errorf("%w: %s", domain.ErrInvalidAddress, s)
	}
	return domain.Address(s).ToLower(), nil
}

func deploy(c *cli.Context) error {
	a, err := args(c, 2)
	if err != nil {
		return err
	}
	collection, err := address(a[0])
	if err != nil {
		return err
	}
	admin, err := address(a[1])
	if err != nil {
		return err
	}
	return runner.Run(ctx.Background(), func(c ctx.Ctx) error {
		return registry.Deploy(c, collection, admin)
	})
}

func mint(c *cli.Context) error {
	a, err := args(c, 3)
	if err != nil {
		return err
	}
	collection, err := address(a[0])
	if err != nil {
		return err
	}
	to, err := address(a[2])
	if err != nil {
		return err
	}
	return runner.Run(ctx.Background(), func(c ctx.Ctx) error {
		return registry.Mint(c, collection, domain.TokenId(a[1]), to)
	})
}

func fund(c *cli.Context) error {
	a, err := args(c, 2)
	if err != nil {
		return err
	}
	account, err := address(a[0])
	if err != nil {
		return err
	}
	amount, err := domain.ParseBalance(a[1])
	if err != nil {
		return err
	}
	return runner.Run(ctx.Background(), func(c ctx.Ctx) error {
		return wallet.Credit(c, account, amount)
	})
}

func initFees(c *cli.Context) error {
	var recipient *domain.Address
	if r := c.String("recipient"); r != "" {
		a, err := address(r)
		if err != nil {
			return err
		}
		recipient = &a
	}
	maxFee, err := bps(c.Uint("max-fee"))
	if err != nil {
		return err
	}
	initial, err := bps(c.Uint("fee"))
	if err != nil {
		return err
	}
	return feeUC.Initialize(ctx.Background(), maxFee, initial, recipient)
}

// bps narrows a flag value to basis points without wrapping
func bps(v uint) (uint16, error) {
	if v > math.MaxUint16 {
		return 0, xerrors.Errorf("%w: %d basis points", domain.ErrBadParamInput, v)
	}
	return uint16(v), nil
}

func setFee(c *cli.Context) error {
	a, err := args(c, 1)
	if err != nil {
		return err
	}
	bps, err := strconv.ParseUint(a[0], 10, 16)
	if err != nil {
		return xerrors.Errorf("%w: %v", domain.ErrInvalidNumberFormat, err)
	}
	return feeUC.SetMarketplaceFee(ctx.Background(), marketplace.NewCall(owner), uint16(bps))
}

func setFeeRecipient(c *cli.Context) error {
	a, err := args(c, 1)
	if err != nil {
		return err
	}
	recipient, err := address(a[0])
	if err != nil {
		return err
	}
	return feeUC.SetFeeRecipient(ctx.Background(), marketplace.NewCall(owner), recipient)
}

func setContractHash(c *cli.Context) error {
	a, err := args(c, 2)
	if err != nil {
		return err
	}
	raw, err := hexutil.Decode(a[1])
	if err != nil || len(raw) != common.HashLength {
		return xerrors.Errorf("%w: %s", domain.ErrBadParamInput, a[1])
	}
	return factoryUC.SetNftContractHash(ctx.Background(), marketplace.NewCall(owner), factory.ContractType(a[0]), common.BytesToHash(raw))
}
