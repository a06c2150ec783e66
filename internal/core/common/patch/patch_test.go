package patch_test

import (
	"encoding/json"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lumenkraft/hr-management/internal/core/common/patch"
)

func TestPatch(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Patch Suite")
}

type payload struct {
	Name patch.Optional[string] `json:"name"`
	Age  patch.Optional[int]    `json:"age"`
}

var _ = Describe("Optional", func() {
	It("is unset when the key is absent", func() {
		var p payload
		Expect(json.Unmarshal([]byte(`{}`), &p)).To(Succeed())
		Expect(p.Name.Set).To(BeFalse())
		Expect(p.Name.Value).To(BeNil())
	})

	It("is set with a nil value when the key is null", func() {
		var p payload
		Expect(json.Unmarshal([]byte(`{"name": null}`), &p)).To(Succeed())
		Expect(p.Name.Set).To(BeTrue())
		Expect(p.Name.Value).To(BeNil())
	})

	It("is set with the decoded value when the key is present", func() {
		var p payload
		Expect(json.Unmarshal([]byte(`{"name": "Asha", "age": 34}`), &p)).To(Succeed())
		Expect(p.Name.Set).To(BeTrue())
		Expect(*p.Name.Value).To(Equal("Asha"))
		Expect(p.Age.Set).To(BeTrue())
		Expect(*p.Age.Value).To(Equal(34))
	})

	It("distinguishes null from an empty string", func() {
		var p payload
		Expect(json.Unmarshal([]byte(`{"name": ""}`), &p)).To(Succeed())
		Expect(p.Name.Set).To(BeTrue())
		Expect(p.Name.Value).NotTo(BeNil())
		Expect(*p.Name.Value).To(Equal(""))
	})

	It("rejects a type mismatch", func() {
		var p payload
		Expect(json.Unmarshal([]byte(`{"age": "not-a-number"}`), &p)).NotTo(Succeed())
	})
})
