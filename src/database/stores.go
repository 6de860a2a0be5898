package database

import (
	"context"
	"errors"
	"fmt"

	"onboarding-logger/src/config"
	"onboarding-logger/src/metrics"
	"onboarding-logger/src/store"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Stores holds the two namespaces and the connections behind them.
type Stores struct {
	Events      store.Store
	Submissions store.Store

	closers []func(context.Context) error
}

// Close releases every connection that OpenStores opened.
func (s *Stores) Close(ctx context.Context) error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c(ctx))
	}
	return errors.Join(errs...)
}

// OpenStores connects the backend configured for each namespace and wraps it with
// tracing and error counting. A Mongo client is shared when both namespaces use Mongo.
func OpenStores(ctx context.Context, cfg *config.Config, m *metrics.Metrics, log *zap.Logger) (*Stores, error) {
	s := &Stores{}
	var mongoClient *mongo.Client

	open := func(backend string, redisDB int, collection string) (store.Store, error) {
		switch backend {
		case store.BackendRedis:
			client, err := NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, redisDB)
			if err != nil {
				return nil, err
			}
			s.closers = append(s.closers, func(context.Context) error { return client.Close() })
			log.Info("✅ Redis connected", zap.String("addr", cfg.Redis.Addr), zap.Int("db", redisDB))
			return store.NewRedisStore(client), nil

		case store.BackendMongo:
			if mongoClient == nil {
				client, err := ConnectMongoDB(ctx, cfg.Mongo.URI)
				if err != nil {
					return nil, err
				}
				mongoClient = client
				s.closers = append(s.closers, client.Disconnect)
				log.Info("✅ MongoDB connected", zap.String("db", cfg.Mongo.Database))
			}
			return store.NewMongoStore(mongoClient.Database(cfg.Mongo.Database).Collection(collection)), nil

		case store.BackendMemory:
			log.Warn("⚠️ using in-memory store, data is lost on restart", zap.String("collection", collection))
			return store.NewMemoryStore(), nil
		}
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}

	events, err := open(cfg.Storage.Events, cfg.Redis.EventsDB, cfg.Mongo.EventsCollection)
	if err != nil {
		_ = s.Close(ctx)
		return nil, fmt.Errorf("events store: %w", err)
	}
	submissions, err := open(cfg.Storage.Submissions, cfg.Redis.SubmissionsDB, cfg.Mongo.SubmissionsCollection)
	if err != nil {
		_ = s.Close(ctx)
		return nil, fmt.Errorf("submissions store: %w", err)
	}

	s.Events = store.Instrument(events, "events", m.StoreErrors)
	s.Submissions = store.Instrument(submissions, "submissions", m.StoreErrors)
	return s, nil
}
