package appointment

import "math/rand/v2"

const (
	CodeMin = 1000
	CodeMax = 999999
)

// RandomCode sorteia um código curto em [CodeMin, CodeMax]. A unicidade é
// garantida pelo índice do banco, não aqui.
func RandomCode() int {
	return CodeMin + rand.IntN(CodeMax-CodeMin+1)
}
