package modules

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/riverqueue/river"

	"workorder.io/engine/ent"
	"workorder.io/engine/ent/cluster"
	"workorder.io/engine/internal/allocator"
	"workorder.io/engine/internal/config"
	"workorder.io/engine/internal/executor"
	"workorder.io/engine/internal/idempotency"
	"workorder.io/engine/internal/infrastructure"
	"workorder.io/engine/internal/lease"
	"workorder.io/engine/internal/leaseservice"
	"workorder.io/engine/internal/maintenance"
	"workorder.io/engine/internal/ordertypes/vmprovision"
	"workorder.io/engine/internal/pkg/worker"
	"workorder.io/engine/internal/provider"
	"workorder.io/engine/internal/registry"
	"workorder.io/engine/internal/service"
	"workorder.io/engine/internal/statemachine"
)

// Infrastructure holds shared cross-cutting dependencies for all
// modules: the DB/worker-pool plumbing plus the core engine
// (registry, allocator, executor, leaseservice, maintenance) every
// handler is composed over. It is a provider, not a Module.
type Infrastructure struct {
	Config      *config.Config
	DB          *infrastructure.DatabaseClients
	Pools       *worker.Pools
	EntClient   *ent.Client
	Pool        *pgxpool.Pool
	RiverClient *river.Client[pgx.Tx]

	Registry  *registry.TypeRegistry
	Machine   *statemachine.Machine
	Allocator *allocator.Allocator
	Executor  *executor.Executor
	Leases    *leaseservice.Service
	Maint     *maintenance.Maintenance
	Idem      *idempotency.Guard

	VMProvider  provider.InfrastructureProvider
	HealthCheck *provider.ClusterHealthChecker
}

// NewInfrastructure initializes DB/pools and the core engine.
func NewInfrastructure(ctx context.Context, cfg *config.Config) (*Infrastructure, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	// Dev-mode: auto-create Ent tables + River queue tables.
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize: cfg.Worker.GeneralPoolSize,
		TypePoolSize:    cfg.Worker.TypePoolSize,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	entClient := db.EntClient

	clusterFactory := provider.NewClusterClientFactoryFromKubeconfigLoader(newClusterKubeconfigLoader(entClient))
	vmProvider := provider.NewKubeVirtProvider(clusterFactory, cfg.VMProvision.OperationTimeout)
	healthChecker := provider.NewClusterHealthChecker(clusterFactory, 60*time.Second)

	leaseBackend, err := newLeaseBackend(cfg, entClient)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init lease backend: %w", err)
	}

	var orderTable, itemTable statemachine.Table
	if cfg.StateMachine.OrderTransitions != nil {
		orderTable = statemachine.Table(cfg.StateMachine.OrderTransitions)
	}
	if cfg.StateMachine.ItemTransitions != nil {
		itemTable = statemachine.Table(cfg.StateMachine.ItemTransitions)
	}
	machine := statemachine.New(entClient, orderTable, itemTable)

	reg := registry.New()
	reg.Register(vmprovision.New(service.NewVMService(vmProvider)))

	alloc := allocator.New(entClient, reg, machine)
	exec := executor.New(entClient, reg, machine, executor.Config{
		PartialsEnabled: cfg.Partials.Enabled,
		MaxPartsPerItem: cfg.Partials.MaxPartsPerItem,
		MaxPayloadBytes: cfg.Partials.MaxPayloadBytes,
	})

	leases := leaseservice.New(entClient, leaseBackend, machine, leaseservice.Config{
		TTL:               time.Duration(cfg.Lease.TTLSeconds) * time.Second,
		MaxLeasesPerAgent: cfg.Lease.MaxLeasesPerAgent,
		MaxLeasesPerType:  cfg.Lease.MaxLeasesPerType,
		RetryBackoff:      time.Duration(cfg.Retry.BackoffSeconds) * time.Second,
		RetryJitter:       time.Duration(cfg.Retry.JitterSeconds) * time.Second,
	})

	maint := maintenance.New(entClient, leases, machine, maintenance.Config{
		DeadLetterAfter:     time.Duration(cfg.Maintenance.DeadLetterAfterHours) * time.Hour,
		StaleOrderThreshold: time.Duration(cfg.Maintenance.StaleOrderThresholdHours) * time.Hour,
	})

	idem := idempotency.New(entClient, []byte(cfg.Idempotency.HMACSecret))

	return &Infrastructure{
		Config:      cfg,
		DB:          db,
		Pools:       pools,
		EntClient:   entClient,
		Pool:        db.Pool,
		RiverClient: db.RiverClient,

		Registry:  reg,
		Machine:   machine,
		Allocator: alloc,
		Executor:  exec,
		Leases:    leases,
		Maint:     maint,
		Idem:      idem,

		VMProvider:  vmProvider,
		HealthCheck: healthChecker,
	}, nil
}

// newLeaseBackend selects internal/lease's Durable or Fast backend per
// cfg.Lease.Backend; cfg.Validate already rejects an unrecognized
// value or a "fast" backend with no redis.addr.
func newLeaseBackend(cfg *config.Config, entClient *ent.Client) (lease.Backend, error) {
	switch cfg.Lease.Backend {
	case lease.KindFast:
		rdb := newRedisClient(cfg.Redis)
		return lease.NewFastBackend(rdb), nil
	default:
		return lease.NewDurableBackend(entClient), nil
	}
}

func newRedisClient(cfg config.RedisConfig) redis.Cmdable {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func newClusterKubeconfigLoader(client *ent.Client) provider.KubeconfigLoader {
	return func(clusterID string) ([]byte, error) {
		if client == nil {
			return nil, fmt.Errorf("ent client is not initialized")
		}
		clusterID = strings.TrimSpace(clusterID)
		if clusterID == "" {
			return nil, fmt.Errorf("cluster id is required")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		cl, err := client.Cluster.Get(ctx, clusterID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, fmt.Errorf("cluster %s not found", clusterID)
			}
			return nil, err
		}
		if !cl.Enabled {
			return nil, fmt.Errorf("cluster %s is disabled", clusterID)
		}
		if cl.Status != cluster.StatusHEALTHY {
			return nil, fmt.Errorf("cluster %s is not healthy (status: %s)", clusterID, cl.Status)
		}
		if len(cl.EncryptedKubeconfig) == 0 {
			return nil, fmt.Errorf("cluster %s kubeconfig is empty", clusterID)
		}
		return cl.EncryptedKubeconfig, nil
	}
}

// InitRiver initializes River client on top of a prepared worker registry.
func (i *Infrastructure) InitRiver(workers *river.Workers) error {
	if i == nil || i.DB == nil || i.Config == nil {
		return fmt.Errorf("infrastructure is not initialized")
	}
	if err := i.DB.InitRiverClient(workers, i.Config.River); err != nil {
		return fmt.Errorf("init river: %w", err)
	}
	i.RiverClient = i.DB.RiverClient
	return nil
}

// Close releases infra resources in reverse dependency order.
func (i *Infrastructure) Close() {
	if i == nil {
		return
	}
	if i.Pools != nil {
		i.Pools.Shutdown()
	}
	if i.DB != nil {
		i.DB.Close()
	}
}
