// Package spectrum inspects complex spectra produced by the fourier and
// transform packages: per-bin magnitude, power and phase, and the strongest
// peaks of the non-negative half of a spectrum.
package spectrum
