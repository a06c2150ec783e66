package database_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"log/slog"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lumenkraft/hr-management/internal"
	"github.com/lumenkraft/hr-management/internal/database"
)

type countingPinger struct {
	calls int
	err   error
}

func (p *countingPinger) Ping(ctx context.Context) error {
	p.calls++
	return p.err
}

var _ = Describe("Executor", func() {
	var (
		gdb    *gorm.DB
		logger *slog.Logger
	)

	BeforeEach(func() {
		var err error
		gdb, err = gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		// a pooled second connection would see its own empty in-memory DB
		sqlDB, err := gdb.DB()
		Expect(err).NotTo(HaveOccurred())
		sqlDB.SetMaxOpenConns(1)
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	})

	newExecutor := func(retries int, delay time.Duration) *database.Executor {
		return database.NewExecutor(gdb, internal.RetryConfig{
			Retries:      retries,
			InitialDelay: delay,
		}, logger)
	}

	It("runs the operation once on success", func() {
		exec := newExecutor(2, time.Millisecond)

		attempts := 0
		err := exec.Execute(context.Background(), func(db *gorm.DB) error {
			attempts++
			return nil
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(attempts).To(Equal(1))
	})

	It("retries transient errors up to the configured bound", func() {
		exec := newExecutor(2, time.Millisecond)

		attempts := 0
		err := exec.Execute(context.Background(), func(db *gorm.DB) error {
			attempts++
			return driver.ErrBadConn
		})

		Expect(err).To(MatchError(driver.ErrBadConn))
		Expect(attempts).To(Equal(3))
	})

	It("does not retry application errors", func() {
		exec := newExecutor(2, time.Millisecond)
		appErr := errors.New("duplicate key value violates unique constraint")

		attempts := 0
		err := exec.Execute(context.Background(), func(db *gorm.DB) error {
			attempts++
			return appErr
		})

		Expect(err).To(MatchError(appErr))
		Expect(attempts).To(Equal(1))
	})

	It("succeeds when a retry attempt recovers", func() {
		exec := newExecutor(2, time.Millisecond)

		attempts := 0
		err := exec.Execute(context.Background(), func(db *gorm.DB) error {
			attempts++
			if attempts < 3 {
				return driver.ErrBadConn
			}
			return nil
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(attempts).To(Equal(3))
	})

	It("doubles the delay between attempts", func() {
		initialDelay := 20 * time.Millisecond
		exec := newExecutor(2, initialDelay)

		start := time.Now()
		err := exec.Execute(context.Background(), func(db *gorm.DB) error {
			return driver.ErrBadConn
		})
		elapsed := time.Since(start)

		Expect(err).To(HaveOccurred())
		// initialDelay after attempt 0, 2*initialDelay after attempt 1, no
		// sleep after the final attempt.
		Expect(elapsed).To(BeNumerically(">=", 3*initialDelay))
		Expect(elapsed).To(BeNumerically("<", 10*initialDelay))
	})

	It("pings before every retry attempt", func() {
		pinger := &countingPinger{}
		exec := newExecutor(2, time.Millisecond).WithPinger(pinger)

		_ = exec.Execute(context.Background(), func(db *gorm.DB) error {
			return driver.ErrBadConn
		})

		Expect(pinger.calls).To(Equal(2))
	})

	It("continues retrying when the reconnect ping fails", func() {
		pinger := &countingPinger{err: errors.New("connection refused")}
		exec := newExecutor(1, time.Millisecond).WithPinger(pinger)

		attempts := 0
		err := exec.Execute(context.Background(), func(db *gorm.DB) error {
			attempts++
			return driver.ErrBadConn
		})

		Expect(err).To(HaveOccurred())
		Expect(attempts).To(Equal(2))
		Expect(pinger.calls).To(Equal(1))
	})

	It("stops waiting when the context is cancelled", func() {
		exec := newExecutor(2, time.Second)
		ctx, cancel := context.WithCancel(context.Background())

		attempts := 0
		go func() {
			time.Sleep(20 * time.Millisecond)
			cancel()
		}()

		start := time.Now()
		err := exec.Execute(ctx, func(db *gorm.DB) error {
			attempts++
			return driver.ErrBadConn
		})

		Expect(err).To(MatchError(driver.ErrBadConn))
		Expect(attempts).To(Equal(1))
		Expect(time.Since(start)).To(BeNumerically("<", 500*time.Millisecond))
	})
})
