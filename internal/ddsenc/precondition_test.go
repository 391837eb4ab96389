package ddsenc

import "testing"

// preconditionRXGB must swap R and A byte-for-byte, keeping G and B in
// place (§4.G step 4: "RXGB: promote to RGBA8; swap R and A").
func TestPreconditionRXGBSwapsRedAndAlpha(t *testing.T) {
	t.Parallel()

	src := []byte{10, 20, 30, 40}
	out := preconditionRXGB(src)

	want := []byte{40, 20, 30, 10}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("preconditionRXGB(%v) = %v, want %v", src, out, want)
		}
	}
}

func TestPreconditionRXGBIsInvolution(t *testing.T) {
	t.Parallel()

	src := []byte{10, 20, 30, 40, 200, 1, 2, 250}
	once := preconditionRXGB(src)
	twice := preconditionRXGB(once)
	for i := range src {
		if twice[i] != src[i] {
			t.Fatalf("preconditionRXGB applied twice = %v, want original %v", twice, src)
		}
	}
}
