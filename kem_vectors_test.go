// kem_vectors_test.go - Determinism tests against the NIST KAT DRBG.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vtdev-corp/mlwekem/prng"
)

// katSeed is the first KAT seed from the NIST PQC submission's
// request/response files, reused here as the DRBG seed.
const katSeed = "061550234D158C5EC95595FE04EF7A25767F2E24CC2BC479D09D86DC9ABCFDE7056A8C266F9EF97ED08541DBD2E1FFA1"

// TestKEMDeterministic checks that seeding prng.CounterDRBG identically
// twice reproduces bit-for-bit identical keys, ciphertext and shared
// secrets — the property the NIST KAT harness relies on
// (spec.md §7, §8).
//
// spec.md §8 additionally requires the first 32 bytes of pk/sk/ct and the
// full ss to match the literal KYBER2400/KYBER3168/KYBER3936 KAT response
// vectors. Those response files aren't present anywhere in the retrieval
// pack (no PQCkemKAT_*.rsp under _examples), and hand-deriving the correct
// reference hex for three parameter sets without running the KDF is not
// something to guess at — a wrong hardcoded value is worse than an
// honestly absent one. This test asserts everything that's checkable
// without that file: byte-for-byte reproducibility from a fixed seed, and
// the exact sizes §8 lists per parameter set.
func TestKEMDeterministic(t *testing.T) {
	r := require.New(t)

	seed, err := hex.DecodeString(katSeed)
	r.NoError(err, "hex.DecodeString(katSeed)")

	for _, p := range allParameterSets {
		t.Run(p.Name(), func(t *testing.T) {
			require := require.New(t)

			run := func() (pk, sk, ct, ss []byte) {
				drbg, err := prng.NewCounterDRBG(seed)
				require.NoError(err, "prng.NewCounterDRBG")

				pub, priv, err := p.GenerateKeyPair(drbg)
				require.NoError(err, "GenerateKeyPair()")

				c, s, err := pub.KEMEncrypt(drbg)
				require.NoError(err, "KEMEncrypt()")

				return pub.Bytes(), priv.Bytes(), c, s
			}

			pk1, sk1, ct1, ss1 := run()
			pk2, sk2, ct2, ss2 := run()

			require.Equal(pk1, pk2, "pk reproducibility")
			require.Equal(sk1, sk2, "sk reproducibility")
			require.Equal(ct1, ct2, "ct reproducibility")
			require.Equal(ss1, ss2, "ss reproducibility")

			require.Len(pk1, p.PublicKeySize(), "pk size")
			require.Len(sk1, p.PrivateKeySize(), "sk size")
			require.Len(ct1, p.CipherTextSize(), "ct size")
			require.Len(ss1, SymSize, "ss size")
		})
	}
}
