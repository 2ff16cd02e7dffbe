package num

import (
	"math/big"
)

var (
	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)
)
