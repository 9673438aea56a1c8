package storage_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"catalog_api/internal/models"
	"catalog_api/internal/storage"
	"catalog_api/internal/testutil"
	"catalog_api/pkg/config"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := storage.Open(config.DBConfig{Driver: "oracle", PoolSize: 1}, testutil.DiscardLogger())
	if err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestOpen_PoolCapacity(t *testing.T) {
	db := testutil.NewDBWithConfig(t, testutil.DBConfig(t, 3))

	if got := db.Stats().MaxOpenConnections; got != 3 {
		t.Errorf("expected max open connections 3, got %d", got)
	}
}

func TestOpen_NoDefaultTransaction(t *testing.T) {
	db := testutil.NewDB(t)

	if !db.DB.Config.SkipDefaultTransaction {
		t.Fatal("expected writes to run without a wrapping transaction")
	}

	var begins int
	if err := db.Callback().Create().Before("gorm:begin_transaction").Register("test:count_begin", func(tx *gorm.DB) {
		if !tx.Config.SkipDefaultTransaction {
			begins++
		}
	}); err != nil {
		t.Fatalf("failed to register callback: %v", err)
	}

	err := db.WithConn(context.Background(), func(tx *gorm.DB) error {
		return tx.Create(&models.Company{CompanyID: "16", CompanyName: "Acme", CompanyCity: "Kolkata"}).Error
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if begins != 0 {
		t.Errorf("expected no transaction around create, got %d", begins)
	}
}

func TestPing(t *testing.T) {
	db := testutil.NewDB(t)

	if err := db.Ping(context.Background()); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
}

func TestWithConn_ReleasesOnError(t *testing.T) {
	db := testutil.NewDBWithConfig(t, testutil.DBConfig(t, 1))
	ctx := context.Background()
	boom := errors.New("boom")

	err := db.WithConn(ctx, func(tx *gorm.DB) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	// 只有一條連線，若沒有歸還這裡會逾時
	if err := db.WithConn(ctx, func(tx *gorm.DB) error {
		return tx.Exec("SELECT 1").Error
	}); err != nil {
		t.Fatalf("second acquisition failed: %v", err)
	}

	if inUse := db.Stats().InUse; inUse != 0 {
		t.Errorf("expected no connections in use, got %d", inUse)
	}
}

func TestWithConn_ReleasesOnPanic(t *testing.T) {
	db := testutil.NewDBWithConfig(t, testutil.DBConfig(t, 1))

	func() {
		defer func() { recover() }()
		_ = db.WithConn(context.Background(), func(tx *gorm.DB) error {
			panic("handler bug")
		})
	}()

	if inUse := db.Stats().InUse; inUse != 0 {
		t.Errorf("expected no connections in use after panic, got %d", inUse)
	}
}

func TestWithConn_AcquireTimeout(t *testing.T) {
	cfg := testutil.DBConfig(t, 1)
	cfg.AcquireTimeout = 50 * time.Millisecond
	db := testutil.NewDBWithConfig(t, cfg)

	held := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- db.WithConn(context.Background(), func(tx *gorm.DB) error {
			close(held)
			<-release
			return nil
		})
	}()
	<-held

	err := db.WithConn(context.Background(), func(tx *gorm.DB) error {
		t.Error("should not acquire a connection while the pool is exhausted")
		return nil
	})
	if !errors.Is(err, storage.ErrAcquireTimeout) {
		t.Errorf("expected ErrAcquireTimeout, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("holder failed: %v", err)
	}
}

func TestWithConn_CallerCancel(t *testing.T) {
	db := testutil.NewDB(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := db.WithConn(ctx, func(tx *gorm.DB) error { return nil })
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if errors.Is(err, storage.ErrAcquireTimeout) {
		t.Errorf("cancellation should not be reported as pool timeout: %v", err)
	}
}

func TestWithConn_MoreCallersThanCapacity(t *testing.T) {
	db := testutil.NewDBWithConfig(t, testutil.DBConfig(t, 2))

	const callers = 20
	var wg sync.WaitGroup
	errs := make(chan error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- db.WithConn(context.Background(), func(tx *gorm.DB) error {
				time.Sleep(5 * time.Millisecond)
				return tx.Exec("SELECT 1").Error
			})
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	}

	if got := db.Stats().OpenConnections; got > 2 {
		t.Errorf("pool exceeded capacity: %d open connections", got)
	}
}
