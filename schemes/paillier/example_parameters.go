package paillier

var (
	// PN1024 is a parameter set with a 1024-bit modulus.
	// It is below current recommendations and is meant for testing and
	// interoperability with legacy deployments.
	PN1024 = ParametersLiteral{
		LogN: 1024,
	}

	// PN2048 is a parameter set with a 2048-bit modulus, offering about
	// 112 bits of security. It is the recommended default.
	PN2048 = ParametersLiteral{
		LogN: 2048,
	}

	// PN3072 is a parameter set with a 3072-bit modulus, offering about
	// 128 bits of security.
	PN3072 = ParametersLiteral{
		LogN: 3072,
	}

	// PN4096 is a parameter set with a 4096-bit modulus.
	PN4096 = ParametersLiteral{
		LogN:            4096,
		PrimalityRounds: 32,
	}
)
