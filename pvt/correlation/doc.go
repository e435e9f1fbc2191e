// Package correlation implements published black-oil PVT correlations.
//
// Every function is a pure mapping from field-unit scalars to a single
// property value. Units: pressure psia, temperature °F, Rs scf/STB,
// Bo rb/STB, Co 1/psia, density lb/ft³, viscosity cp.
//
// Functions never return a sentinel value: an argument outside the
// correlation's validity range, or a non-finite result, is reported as a
// *DomainError.
package correlation
