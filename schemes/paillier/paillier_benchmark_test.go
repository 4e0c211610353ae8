package paillier

import (
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/paillier/backend/bigint"
	"github.com/tuneinsight/paillier/backend/safenum"
	"github.com/tuneinsight/paillier/utils/bignum"
)

func BenchmarkPaillier(b *testing.B) {

	var err error

	paramsLiterals := []ParametersLiteral{PN1024, PN2048}

	if *flagParamString != "" {
		var jsonParams ParametersLiteral
		if err = json.Unmarshal([]byte(*flagParamString), &jsonParams); err != nil {
			b.Fatal(err)
		}
		paramsLiterals = []ParametersLiteral{jsonParams} // the custom test suite reads the parameters from the -params flag
	}

	for _, paramsLiteral := range paramsLiterals[:] {

		var params Parameters
		if params, err = NewParametersFromLiteral(paramsLiteral); err != nil {
			b.Fatal(err)
		}

		runBenchmarkSuite[bigint.Int](b, params)
		runBenchmarkSuite[safenum.Nat](b, params)
	}
}

func runBenchmarkSuite[I bignum.Integer[I]](b *testing.B, params Parameters) {

	tc, err := NewTestContext[I](params)
	require.NoError(b, err)

	for _, testSet := range []func(tc *TestContext[I], b *testing.B){
		benchEncryptor[I],
		benchDecryptor[I],
		benchEvaluator[I],
	} {
		testSet(tc, b)
		runtime.GC()
	}
}

func benchEncryptor[I bignum.Integer[I]](tc *TestContext[I], b *testing.B) {

	enc := NewEncryptor(tc.ek)
	pt := NewPlaintext(bignum.One[I]())

	b.Run(testString("Encryptor/EncryptNew", tc), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := enc.EncryptNew(pt); err != nil {
				b.Fatal(err)
			}
		}
	})

	ct, err := enc.EncryptNew(pt)
	require.NoError(b, err)

	b.Run(testString("Encryptor/Rerandomize", tc), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := enc.Rerandomize(ct); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func benchDecryptor[I bignum.Integer[I]](tc *TestContext[I], b *testing.B) {

	ct, err := NewEncryptor(tc.ek).EncryptNew(NewPlaintext(bignum.One[I]()))
	require.NoError(b, err)

	for _, name := range []string{"Standard", "CRT"} {

		dk := tc.decryptors()[name]

		b.Run(testString("Decryptor/"+name, tc), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := dk.Decrypt(ct); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func benchEvaluator[I bignum.Integer[I]](tc *TestContext[I], b *testing.B) {

	enc := NewEncryptor(tc.ek)

	ct0, err := enc.EncryptNew(NewPlaintext(bignum.One[I]()))
	require.NoError(b, err)
	ct1, err := enc.EncryptNew(NewPlaintext(bignum.Two[I]()))
	require.NoError(b, err)

	var zero I
	k, err := zero.SampleBelow(tc.prng, tc.ek.N())
	require.NoError(b, err)

	b.Run(testString("Evaluator/Add", tc), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := tc.eval.Add(ct0, ct1); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run(testString("Evaluator/Mul", tc), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := tc.eval.Mul(ct0, NewPlaintext(k)); err != nil {
				b.Fatal(err)
			}
		}
	})
}
