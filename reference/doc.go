// Package reference holds a self-contained re-implementation of the spectral
// transforms, written directly from the librosa routine definitions and built
// on an independent FFT library.
//
// It exists so the main package can be validated against code that shares no
// FFT kernel, window generator or filterbank builder with it: the test suite
// computes every transform through both pipelines and asserts elementwise
// agreement. The package favors directness over speed and is not intended for
// production use.
package reference
