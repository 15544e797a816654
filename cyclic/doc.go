// Package cyclic builds the classical cyclic-m benchmark ideal, the
// standard stress test for Gröbner basis engines.
//
// The ideal in m variables x₀…x_{m−1} is generated by the rotational sums
//
//	pₙ = Σ_{i=0}^{m−1} x_i · x_{(i+1) mod m} · … · x_{(i+n−1) mod m}
//
// for n ∈ {1,…,m−1}, together with the relation
//
//	p_m = x₀·x₁·…·x_{m−1} − 1.
//
// Already cyclic-4 produces substantial intermediate bases; the generator
// itself is O(m²) monomial constructions.
package cyclic
