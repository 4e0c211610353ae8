package paillier

var (
	// testInsecure are insecure parameters used for the sole purpose of fast testing.
	testInsecure = []ParametersLiteral{
		{
			LogN: 256,
		},
		{
			LogN:            512,
			PrimalityRounds: 16,
		},
	}
)
