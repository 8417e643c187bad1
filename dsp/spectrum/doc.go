// Package spectrum provides spectrum-domain views of radix-2 transforms.
//
// Compute turns a real signal into its complex spectrum using the in-place
// engine from package fft. Magnitude, Power, Phase and MagnitudeDB then derive
// per-bin values; magnitude and power are evaluated with algo-vecmath kernels
// over pooled re/im scratch buffers.
package spectrum
