package core

// Mod returns x reduced into [0, m). m must be positive.
func Mod(x, m int) int {
	return ((x % m) + m) % m
}

// AddMod returns (i+d) mod m, always in [0, m).
func AddMod(i, d, m int) int {
	return Mod(Mod(i, m)+Mod(d, m), m)
}

// SubMod returns (i-d) mod m, always in [0, m). Operands are reduced before
// subtracting so the intermediate sum never goes negative.
func SubMod(i, d, m int) int {
	return Mod(Mod(i, m)+m-Mod(d, m), m)
}
