package internal_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lumenkraft/hr-management/internal"
)

var _ = Describe("Config", func() {
	Describe("ApplyDefaults", func() {
		It("fills badge and bcrypt knobs left at their zero value", func() {
			cfg := &internal.Config{}
			cfg.ApplyDefaults()

			Expect(cfg.Employee.BadgePrefix).To(Equal(internal.DefaultBadgePrefix))
			Expect(cfg.Employee.BadgePad).To(Equal(internal.DefaultBadgePad))
			Expect(cfg.Security.BCryptCost).To(Equal(internal.DefaultBCryptCost))
		})

		It("leaves explicitly disabled retries at zero", func() {
			cfg := &internal.Config{}
			cfg.Database.Retry.Retries = 0
			cfg.Database.Retry.InitialDelay = 0
			cfg.ApplyDefaults()

			Expect(cfg.Database.Retry.Retries).To(Equal(0))
			Expect(cfg.Database.Retry.InitialDelay).To(Equal(time.Duration(0)))
		})

		It("keeps values the operator set", func() {
			cfg := &internal.Config{}
			cfg.Employee.BadgePrefix = "HQ"
			cfg.Employee.BadgePad = 5
			cfg.Database.Retry.Retries = 4
			cfg.ApplyDefaults()

			Expect(cfg.Employee.BadgePrefix).To(Equal("HQ"))
			Expect(cfg.Employee.BadgePad).To(Equal(5))
			Expect(cfg.Database.Retry.Retries).To(Equal(4))
		})
	})

	Describe("Validate", func() {
		It("rejects negative retry settings", func() {
			cfg := internal.DatabaseConfig{
				Source: "postgres://localhost/hr",
				Retry:  internal.RetryConfig{Retries: -1},
			}
			Expect(cfg.Validate()).To(HaveOccurred())
		})

		It("accepts zero retries", func() {
			cfg := internal.DatabaseConfig{
				Source: "postgres://localhost/hr",
			}
			Expect(cfg.Validate()).To(Succeed())
		})
	})
})
