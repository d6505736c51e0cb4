// Package mongo connects to MongoDB with the v2 driver.
//
// Config is read from MONGODB_* environment variables. New retries the
// initial connect and ping; Healthcheck wraps Ping for readiness probes.
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer db.Client().Disconnect(context.Background())
package mongo
