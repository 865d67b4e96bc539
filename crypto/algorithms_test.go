package crypto_test

import (
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/bwprog/hexsum/crypto"
)

var _ = Describe("Algorithms", func() {
	Describe("LookupAlgorithm", func() {
		It("resolves a registered algorithm by name", func() {
			algorithm, err := LookupAlgorithm("sha256")
			Expect(err).ToNot(HaveOccurred())
			Expect(algorithm.Name()).To(Equal("sha256"))
			Expect(algorithm.Family()).To(Equal(FamilyFixedDigest))
			Expect(algorithm.BlockSize()).To(Equal(64))
			Expect(algorithm.DigestSize()).To(Equal(32))
		})

		It("classifies shake hashes as extendable-output", func() {
			algorithm, err := LookupAlgorithm("shake_256")
			Expect(err).ToNot(HaveOccurred())
			Expect(algorithm.Family()).To(Equal(FamilyExtendableOutput))
		})

		It("classifies blake3 as parameterized", func() {
			algorithm, err := LookupAlgorithm("blake3")
			Expect(err).ToNot(HaveOccurred())
			Expect(algorithm.Family()).To(Equal(FamilyParameterized))
		})

		Context("unrecognized name", func() {
			It("errors", func() {
				_, err := LookupAlgorithm("whirlpool")
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(Equal("Unrecognized digest algorithm: whirlpool"))
				Expect(err).To(BeAssignableToTypeOf(UnknownAlgorithmError{}))
			})
		})
	})

	Describe("Names", func() {
		It("is sorted lexicographically", func() {
			names := Names()
			Expect(sort.StringsAreSorted(names)).To(BeTrue())
		})

		It("is deterministic across calls", func() {
			Expect(Names()).To(Equal(Names()))
		})

		It("contains every algorithm family", func() {
			names := Names()
			Expect(names).To(ContainElements(
				"md5", "sha1", "sha224", "sha256", "sha384", "sha512",
				"sha3_224", "sha3_256", "sha3_384", "sha3_512",
				"blake2b", "blake2s",
				"xxh32", "xxh64", "xxh3_64", "xxh3_128",
				"shake_128", "shake_256",
				"blake3",
			))
			Expect(names).To(HaveLen(19))
		})
	})

	Describe("ResolveNames", func() {
		It("resolves known names in request order", func() {
			resolved, unknown := ResolveNames([]string{"sha256", "blake3"})
			Expect(unknown).To(BeEmpty())
			Expect(resolved).To(HaveLen(2))
			Expect(resolved[0].Name()).To(Equal("sha256"))
			Expect(resolved[1].Name()).To(Equal("blake3"))
		})

		It("expands the all alias to the full catalog", func() {
			resolved, unknown := ResolveNames([]string{AllAlias})
			Expect(unknown).To(BeEmpty())
			Expect(resolved).To(HaveLen(len(Names())))
		})

		It("collects unknown names instead of failing", func() {
			resolved, unknown := ResolveNames([]string{"sha256", "nope", "md5"})
			Expect(unknown).To(Equal([]string{"nope"}))
			Expect(resolved).To(HaveLen(2))
		})

		It("deduplicates repeated names", func() {
			resolved, unknown := ResolveNames([]string{"sha256", "sha256", AllAlias})
			Expect(unknown).To(BeEmpty())
			Expect(resolved).To(HaveLen(len(Names())))
		})
	})

	Describe("NewAccumulator", func() {
		It("ignores output length for fixed-digest algorithms", func() {
			algorithm, err := LookupAlgorithm("sha256")
			Expect(err).ToNot(HaveOccurred())

			accumulator, err := algorithm.NewAccumulator(0)
			Expect(err).ToNot(HaveOccurred())

			sum, err := accumulator.Finish()
			Expect(err).ToNot(HaveOccurred())
			Expect(sum).To(HaveLen(32))
		})

		It("rejects out-of-range lengths for variable-length algorithms", func() {
			for _, name := range []string{"shake_128", "shake_256", "blake3"} {
				algorithm, err := LookupAlgorithm(name)
				Expect(err).ToNot(HaveOccurred())

				for _, length := range []int{0, -1, 129} {
					_, err = algorithm.NewAccumulator(length)
					Expect(err).To(HaveOccurred())
					Expect(err).To(BeAssignableToTypeOf(InvalidLengthError{}))
				}
			}
		})

		It("accepts the boundary lengths 1 and 128", func() {
			for _, name := range []string{"shake_128", "shake_256", "blake3"} {
				algorithm, err := LookupAlgorithm(name)
				Expect(err).ToNot(HaveOccurred())

				for _, length := range []int{1, 128} {
					accumulator, err := algorithm.NewAccumulator(length)
					Expect(err).ToNot(HaveOccurred())

					sum, err := accumulator.Finish()
					Expect(err).ToNot(HaveOccurred())
					Expect(sum).To(HaveLen(length))
				}
			}
		})
	})
})
