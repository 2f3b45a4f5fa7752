// Package fitness combines residence and hitting times with externally
// supplied rate ratios into the two dimensionless advantage factors of
// the cooperative bonding model.
//
//   - Retention: probability that covalent bond formation wins against
//     strand dissolution while the template stays fully bonded,
//     1 − exp(−r0·R).
//   - Growth: probability that template-directed assembly outruns free
//     monomer competition, (1/H) / (rg + 1/H).
//   - Combined: the product, the single scalar reported per sweep cell.
//
// All functions are pure; domain violations are rejected up front with
// ErrOutOfDomain before any arithmetic.
package fitness
