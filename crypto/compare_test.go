package crypto_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/bwprog/hexsum/crypto"
)

var _ = Describe("Compare", func() {
	digest := NewDigest("sha256", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")

	It("matches an identical hex string", func() {
		outcome := Compare(digest, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")
		Expect(outcome.Matches).To(BeTrue())
		Expect(outcome.Generated).To(Equal(outcome.Provided))
	})

	It("matches case-insensitively", func() {
		outcome := Compare(digest, "BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD")
		Expect(outcome.Matches).To(BeTrue())
		Expect(outcome.Provided).To(Equal(digest.Hex()))
	})

	It("reports a non-match for a different value", func() {
		outcome := Compare(digest, "deadbeef00000000000000000000000000000000000000000000000000000000")
		Expect(outcome.Matches).To(BeFalse())
	})

	It("treats a length mismatch as a plain non-match", func() {
		outcome := Compare(digest, "ba7816bf")
		Expect(outcome.Matches).To(BeFalse())
	})
})

var _ = Describe("ValidateHexString", func() {
	It("accepts mixed-case hex", func() {
		Expect(ValidateHexString("00ffAAbb129C")).To(Succeed())
	})

	It("accepts odd-length hex", func() {
		Expect(ValidateHexString("abc")).To(Succeed())
	})

	It("rejects an empty string", func() {
		err := ValidateHexString("")
		Expect(err).To(HaveOccurred())
		Expect(err).To(BeAssignableToTypeOf(InvalidHexSyntaxError{}))
	})

	It("rejects non-hex characters", func() {
		for _, value := range []string{"xyz", "12g4", "0x12ab", "12 ab"} {
			err := ValidateHexString(value)
			Expect(err).To(HaveOccurred(), value)
			Expect(err).To(BeAssignableToTypeOf(InvalidHexSyntaxError{}))
		}
	})
})
