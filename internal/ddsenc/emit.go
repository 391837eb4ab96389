package ddsenc

import (
	"github.com/woozymasta/ddsenc/internal/dds"
	"github.com/woozymasta/ddsenc/internal/ddsimage"
)

func writeHeaderAndMagic(sink ddsimage.Sink, plan headerPlan) error {
	if err := dds.WriteMagic(sink); err != nil {
		return &ddsimage.ErrIO{Cause: err}
	}
	if err := dds.WriteHeader(sink, plan.header); err != nil {
		return &ddsimage.ErrIO{Cause: err}
	}
	if plan.dx10 != nil {
		if err := dds.WriteHeaderDx10(sink, plan.dx10); err != nil {
			return &ddsimage.ErrIO{Cause: err}
		}
	}
	if plan.palette != nil {
		if _, err := sink.Write(plan.palette); err != nil {
			return &ddsimage.ErrIO{Cause: err}
		}
	}
	return nil
}

// emit writes a single-surface encode: header, then every mip level's
// payload in order (§4.I).
func emit(sink ddsimage.Sink, plan headerPlan, levels []surfaceLevel) error {
	if err := writeHeaderAndMagic(sink, plan); err != nil {
		return err
	}
	for _, lvl := range levels {
		if _, err := sink.Write(lvl.data); err != nil {
			return &ddsimage.ErrIO{Cause: err}
		}
	}
	return nil
}

// emitMulti writes a multi-surface encode (cubemap faces, array elements):
// header, then each surface's complete mip chain concatenated in surface
// order (§4.H, §4.I).
func emitMulti(sink ddsimage.Sink, plan headerPlan, surfaces [][]surfaceLevel) error {
	if err := writeHeaderAndMagic(sink, plan); err != nil {
		return err
	}
	for _, levels := range surfaces {
		for _, lvl := range levels {
			if _, err := sink.Write(lvl.data); err != nil {
				return &ddsimage.ErrIO{Cause: err}
			}
		}
	}
	return nil
}

// emitVolume writes a volume encode: header, then each level's depth
// slices (already concatenated by encodeVolumeLevel) in level order.
func emitVolume(sink ddsimage.Sink, plan headerPlan, levels []volumeLevel) error {
	if err := writeHeaderAndMagic(sink, plan); err != nil {
		return err
	}
	for _, lvl := range levels {
		if _, err := sink.Write(lvl.data); err != nil {
			return &ddsimage.ErrIO{Cause: err}
		}
	}
	return nil
}
