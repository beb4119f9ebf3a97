package tableau

// Tableau is the (2n+1)×(2n+1) bit-matrix encoding an n-qubit stabilizer
// state: 2n rows of signed Pauli operators (destabilizers then
// stabilizers) plus one scratch row used transiently by determined
// measurement. The zero value is not usable; construct with New.
type Tableau struct {
	n     int        // number of qubits
	words int        // uint64 words needed to pack n bits
	x     [][]uint64 // x[row] holds n packed X bits, one per qubit
	z     [][]uint64 // z[row] holds n packed Z bits, one per qubit
	sign  []bool     // sign[row]; false = '+', true = '-'
}

// N returns the number of qubits the tableau was constructed with.
func (t *Tableau) N() int { return t.n }

// rows returns the total row count, 2n+1, including the scratch row.
func (t *Tableau) rows() int { return 2*t.n + 1 }
