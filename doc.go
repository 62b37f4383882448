// doc.go - Kyber godoc extras.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package kyber implements Kyber, an IND-CCA2-secure key encapsulation
// mechanism (KEM) whose security rests on the hardness of the module
// learning-with-errors (M-LWE) problem, as submitted to round 3 of the
// NIST Post-Quantum Cryptography standardization project.
//
// Four module ranks are exposed as parameter sets (ParamsK2 through
// ParamsK5), trading ciphertext and key size for security margin. The
// low-level PublicKey/PrivateKey pair implements the CCA-secure KEM
// directly; Kem wraps them behind a stateful Generate/Initialize/
// Encapsulate/Decapsulate interface for callers that want to hold keys
// as opaque asymmetric.Key values and swap parameter sets without
// touching call sites.
//
// Determinism for known-answer testing is provided by the prng package's
// CounterDRBG, an AES-256-CTR DRBG matching the NIST PQC submission
// reference generator; production callers should use prng.System()
// instead.
package kyber
