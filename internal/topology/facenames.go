// Package topology classifies a layer list as cubemap/volume/array/an
// existing mipmap chain (§4.F), replacing the global mutable flags the
// original plugin threaded between its dialog and its writer with a single
// immutable Report computed once (§9 Design Notes).
package topology

import "strings"

// Face indexes the six cube faces in the +X,-X,+Y,-Y,+Z,-Z order the
// encoder writes them in (§4.I).
type Face int

const (
	FacePosX Face = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ
	faceCount
)

// faceNameRows is the case-sensitive substring table (§4.F): the first row
// whose name matches any still-unassigned face wins that face, scanned in
// row order. Preserved verbatim rather than normalized, per §9.
var faceNameRows = [][6]string{
	{"positive x", "negative x", "positive y", "negative y", "positive z", "negative z"},
	{"pos x", "neg x", "pos y", "neg y", "pos z", "neg z"},
	{"+x", "-x", "+y", "-y", "+z", "-z"},
	{"right", "left", "top", "bottom", "back", "front"},
}

// matchFace returns the Face a layer name matches, and whether it matched
// at all, scanning faceNameRows in order and returning the first hit.
func matchFace(name string) (Face, bool) {
	for _, row := range faceNameRows {
		for f, token := range row {
			if strings.Contains(name, token) {
				return Face(f), true
			}
		}
	}
	return 0, false
}
