package internal_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lumenkraft/hr-management/internal"
)

var _ = Describe("Context helpers", func() {
	Describe("EmployeeIDFromContext", func() {
		It("round-trips the employee ID", func() {
			ctx := internal.ContextWithEmployeeID(context.Background(), "emp-123")
			Expect(internal.EmployeeIDFromContext(ctx)).To(Equal("emp-123"))
		})

		It("returns empty when nothing was stashed", func() {
			Expect(internal.EmployeeIDFromContext(context.Background())).To(BeEmpty())
		})
	})

	Describe("WithTimeout", func() {
		It("applies the requested deadline", func() {
			ctx, cancel := internal.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			deadline, ok := ctx.Deadline()
			Expect(ok).To(BeTrue())
			Expect(time.Until(deadline)).To(BeNumerically("<=", 2*time.Second))
			Expect(time.Until(deadline)).To(BeNumerically(">", time.Second))
		})

		It("falls back to five seconds for a non-positive duration", func() {
			ctx, cancel := internal.WithTimeout(context.Background(), 0)
			defer cancel()

			deadline, ok := ctx.Deadline()
			Expect(ok).To(BeTrue())
			Expect(time.Until(deadline)).To(BeNumerically(">", 4*time.Second))
		})
	})
})
