package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/marketcore/base/config"
	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/database/mongoclient"
	"github.com/x-xyz/marketcore/base/database/redisclient"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/base/metrics"
	bValidator "github.com/x-xyz/marketcore/base/validator"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/keys"
	"github.com/x-xyz/marketcore/domain/marketplace"
	mmiddleware "github.com/x-xyz/marketcore/middleware"
	"github.com/x-xyz/marketcore/service/cache"
	"github.com/x-xyz/marketcore/service/invocation"
	"github.com/x-xyz/marketcore/service/notifier"
	"github.com/x-xyz/marketcore/service/query"
	"github.com/x-xyz/marketcore/service/redis"
	auth_delivery "github.com/x-xyz/marketcore/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/marketcore/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/marketcore/stores/auth/usecase"
	collection_delivery "github.com/x-xyz/marketcore/stores/collection/delivery/http"
	collection_repository "github.com/x-xyz/marketcore/stores/collection/repository"
	collection_usecase "github.com/x-xyz/marketcore/stores/collection/usecase"
	escrow_delivery "github.com/x-xyz/marketcore/stores/escrow/delivery/http"
	escrow_repository "github.com/x-xyz/marketcore/stores/escrow/repository"
	escrow_usecase "github.com/x-xyz/marketcore/stores/escrow/usecase"
	factory_delivery "github.com/x-xyz/marketcore/stores/factory/delivery/http"
	factory_repository "github.com/x-xyz/marketcore/stores/factory/repository"
	factory_usecase "github.com/x-xyz/marketcore/stores/factory/usecase"
	fee_delivery "github.com/x-xyz/marketcore/stores/fee/delivery/http"
	fee_repository "github.com/x-xyz/marketcore/stores/fee/repository"
	fee_usecase "github.com/x-xyz/marketcore/stores/fee/usecase"
	hc_delivery "github.com/x-xyz/marketcore/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/marketcore/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/marketcore/stores/healthcheck/usecase"
	ledger_repository "github.com/x-xyz/marketcore/stores/ledger/repository"
	listing_delivery "github.com/x-xyz/marketcore/stores/listing/delivery/http"
	listing_repository "github.com/x-xyz/marketcore/stores/listing/repository"
	listing_usecase "github.com/x-xyz/marketcore/stores/listing/usecase"
	offer_delivery "github.com/x-xyz/marketcore/stores/offer/delivery/http"
	offer_repository "github.com/x-xyz/marketcore/stores/offer/repository"
	offer_usecase "github.com/x-xyz/marketcore/stores/offer/usecase"
	purchase_delivery "github.com/x-xyz/marketcore/stores/purchase/delivery/http"
	purchase_usecase "github.com/x-xyz/marketcore/stores/purchase/usecase"
	token_delivery "github.com/x-xyz/marketcore/stores/token/delivery/http"
	token_repository "github.com/x-xyz/marketcore/stores/token/repository"
)

var configPath = pflag.String("config", config.DefaultPath, "path of the yaml config")

func init() {
	pflag.Parse()
	if err := config.Load(*configPath); err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func newNotifier(context ctx.Ctx, redisCache redis.Service) marketplace.Notifier {
	sinks := []notifier.Sink{}
	if viper.GetBool("notifier.log") {
		sinks = append(sinks, notifier.Log())
	}
	if botKey := viper.GetString("notifier.discord.botKey"); botKey != "" {
		sink, err := notifier.NewDiscord(botKey, viper.GetString("notifier.discord.channelId"), viper.GetInt32("notifier.decimals"))
		if err != nil {
			context.WithField("err", err).Warn("discord sink disabled")
		} else {
			sinks = append(sinks, sink)
		}
	}
	if url := viper.GetString("notifier.webhook.url"); url != "" {
		sinks = append(sinks, notifier.NewWebhook(url, viper.GetInt("notifier.webhook.retryMax")))
	}
	if channel := viper.GetString("notifier.redis.channel"); channel != "" {
		sinks = append(sinks, notifier.NewRedis(redisCache, channel))
	}
	if len(sinks) == 0 {
		return notifier.Noop()
	}
	return notifier.Fanout(sinks...)
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middL.CORS)
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	mongoClient := mongoclient.MustConnectMongoClient(mongoclient.Options{
		URI:                viper.GetString("mongo.uri"),
		AuthDBName:         viper.GetString("mongo.authDBName"),
		DBName:             viper.GetString("mongo.dbName"),
		SSL:                viper.GetBool("mongo.enableSSL"),
		SetSafe:            true,
		PoolSizeMultiplier: viper.GetFloat64("mongo.poolMultiplier"),
	})
	q := query.New(mongoClient, viper.GetBool("mongo.checkIndex"))
	if err := q.EnsureIndexes(context, domain.TableIndexes); err != nil {
		context.WithField("err", err).Panic("q.EnsureIndexes failed")
	}

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCachePool := redisclient.MustConnectRedis(viper.GetString("redis_cache.uri"), viper.GetString("redis_cache.password"), redisclient.RedisParam{
		PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	// standalone mongo has no transactions, failed calls then rely on compensation
	var tx invocation.Transactor = q
	if !viper.GetBool("mongo.transactions") {
		context.Warn("mongo transactions disabled")
		tx = invocation.Direct{}
	}
	notify := newNotifier(context, redisCache)
	defer notifier.Release(notify)
	runner := invocation.NewRunner(tx, notify)

	owner := domain.Address(viper.GetString("marketplace.owner")).ToLower()
	treasury := ledger_repository.NewWallet(q, domain.Address(viper.GetString("marketplace.account")))

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	registry := token_repository.NewRegistry(q)
	feeRepo := fee_repository.NewConfig(q)
	collectionRepo := collection_repository.NewRegistered(q)
	listingRepo := listing_repository.NewListing(q)
	depositRepo := escrow_repository.NewDeposit(q)
	offerRepo := offer_repository.NewOffer(q)
	contractHashRepo := factory_repository.NewContractHash(q)

	hc := hc_usecase.New(hcRepo)
	auth := auth_usecase.New(&auth_usecase.AuthUseCaseCfg{
		JwtSecret:          viper.GetString("auth.jwtSecret"),
		Redis:              redisCache,
		SigningMsgTemplate: viper.GetString("auth.signingMsg"),
		NonceTTL:           viper.GetDuration("auth.nonceTTL"),
	})
	fee := fee_usecase.New(&fee_usecase.FeeUseCaseCfg{
		Repo:   feeRepo,
		Runner: runner,
		Cache:  cache.NewShared(keys.PfxFeeConfig, viper.GetDuration("cache.ttl"), redisCache),
		Owner:  owner,
	})
	collection := collection_usecase.New(&collection_usecase.CollectionUseCaseCfg{
		Repo:          collectionRepo,
		FeeUC:         fee,
		AccessControl: registry,
		Runner:        runner,
		Cache:         cache.NewShared(keys.PfxCollection, viper.GetDuration("cache.ttl"), redisCache),
		Owner:         owner,
	})
	listing := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		Repo:         listingRepo,
		CollectionUC: collection,
		Registry:     registry,
		Treasury:     treasury,
		Runner:       runner,
	})
	escrow := escrow_usecase.New(&escrow_usecase.EscrowUseCaseCfg{
		Repo:     depositRepo,
		Treasury: treasury,
		Runner:   runner,
	})
	offer := offer_usecase.New(&offer_usecase.OfferUseCaseCfg{
		Repo:     offerRepo,
		EscrowUC: escrow,
		Runner:   runner,
	})
	purchase := purchase_usecase.New(&purchase_usecase.PurchaseUseCaseCfg{
		ListingRepo:  listingRepo,
		CollectionUC: collection,
		FeeUC:        fee,
		OfferUC:      offer,
		EscrowUC:     escrow,
		Registry:     registry,
		Treasury:     treasury,
		Runner:       runner,
	})
	factory := factory_usecase.New(&factory_usecase.FactoryUseCaseCfg{
		Repo:   contractHashRepo,
		Runner: runner,
		Owner:  owner,
	})

	var recipient *domain.Address
	if r := viper.GetString("marketplace.feeRecipient"); r != "" {
		recipient = domain.Address(r).ToLowerPtr()
	}
	if err := fee.Initialize(context, uint16(viper.GetUint("marketplace.maxFee")), uint16(viper.GetUint("marketplace.fee")), recipient); err != nil {
		context.WithField("err", err).Panic("fee.Initialize failed")
	}

	authMw := auth_middleware.New(auth)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, viper.GetString("auth.signingMsg"))
	fee_delivery.New(e, fee, authMw)
	collection_delivery.New(e, collection, authMw)
	listing_delivery.New(e, listing, authMw)
	purchase_delivery.New(e, purchase, authMw)
	escrow_delivery.New(e, escrow, authMw)
	offer_delivery.New(e, offer, authMw)
	factory_delivery.New(e, factory, authMw)
	token_delivery.New(e, registry, treasury, runner, authMw)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
	_ = log.Sync()
}
