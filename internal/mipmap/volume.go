package mipmap

// GenerateVolumeChain produces levels 1..levels-1 of a volume texture's
// mipmap chain from a level-0 buffer holding depth contiguous WxH RGBA8
// slices (§4.G "Volume variant"). Level 0 is never touched here: the
// per-layer writer already emitted it before this kernel runs (§12).
func GenerateVolumeChain(level0 []byte, w, h, depth, levels int, opts Options) [][]byte {
	out := make([][]byte, 0, levels-1)
	if levels <= 1 {
		return out
	}

	cur := level0
	curW, curH, curD := w, h, depth
	for k := 1; k < levels; k++ {
		nextW, nextH, nextD := halve(curW), halve(curH), halve(curD)
		next := resizeVolumeHalf(cur, curW, curH, curD, nextW, nextH, nextD, opts)
		out = append(out, next)
		cur, curW, curH, curD = next, nextW, nextH, nextD
	}
	return out
}

// resizeVolumeHalf box-filters an 8-voxel footprint per destination texel.
func resizeVolumeHalf(src []byte, srcW, srcH, srcD, dstW, dstH, dstD int, opts Options) []byte {
	dst := make([]byte, dstW*dstH*dstD*4)
	gamma := opts.Gamma
	if gamma <= 0 {
		gamma = 2.2
	}

	sliceStride := srcW * srcH * 4
	idx := func(x, y, z int) int {
		x = wrapCoord(x, srcW, opts.Wrap)
		y = wrapCoord(y, srcH, opts.Wrap)
		z = wrapCoord(z, srcD, opts.Wrap)
		return z*sliceStride + (y*srcW+x)*4
	}

	for z := 0; z < dstD; z++ {
		for y := 0; y < dstH; y++ {
			for x := 0; x < dstW; x++ {
				sx, sy, sz := x*2, y*2, z*2
				var corners [8]int
				n := 0
				for dz := 0; dz < 2; dz++ {
					for dy := 0; dy < 2; dy++ {
						for dx := 0; dx < 2; dx++ {
							corners[n] = idx(sx+dx, sy+dy, sz+dz)
							n++
						}
					}
				}

				dstIdx := z*dstW*dstH*4 + (y*dstW+x)*4
				for c := 0; c < 4; c++ {
					if opts.GammaCorrect && c < 3 {
						sum := 0.0
						for _, off := range corners {
							sum += linearize(src[off+c], gamma)
						}
						dst[dstIdx+c] = delinearize(sum/8, gamma)
					} else {
						sum := 0
						for _, off := range corners {
							sum += int(src[off+c])
						}
						dst[dstIdx+c] = byte(sum / 8)
					}
				}
			}
		}
	}
	return dst
}
