package packed12

import "unsafe"

// Block sizes: V128-A/V128-B cover 48 source bytes (4 groups) per
// block, V256 covers 96 source bytes (8 groups) per block.
const (
	blockGroupsV128 = 4
	blockGroupsV256 = 8

	// maxBlockLanes is the widest sample-indexed lane width any back-end
	// needs: blockGroupsV256 groups of GroupSamples lanes each.
	maxBlockLanes = blockGroupsV256 * GroupSamples
	// maxBlockBytes is the widest byte-indexed lane width any back-end
	// needs: blockGroupsV256 groups of GroupBytes lanes each.
	maxBlockBytes = blockGroupsV256 * GroupBytes
)

// isAligned reports whether p's address is a multiple of n bytes. n must be
// a power of two.
func isAligned(p unsafe.Pointer, n uintptr) bool {
	return uintptr(p)&(n-1) == 0
}

// decodeLane describes, for one output sample position within a group, the
// two source bytes a real PSHUFB-style shuffle would gather into a "high"
// lane and a "low" lane, and the shift/mask pair that combines them. This
// is decodeGroup's formula (layout.go) factored into data instead of
// straight-line code, so a block of groups can be processed as a gather
// phase over fixed-width lane arrays followed by one shift/mask/OR pass,
// the way a real vector kernel would: two shuffles feeding a pair of
// shifts, an AND, and a POR.
type decodeLane struct {
	hiByte       int
	hiShift      uint
	hiMask       uint16
	loByte       int
	loShiftRight uint
	loMask       uint16
}

var decodeLanes = [GroupSamples]decodeLane{
	{hiByte: 2, hiShift: 8, hiMask: 0x0F00, loByte: 1, loShiftRight: 0, loMask: 0x00FF},
	{hiByte: 3, hiShift: 4, hiMask: 0x0FF0, loByte: 2, loShiftRight: 4, loMask: 0x000F},
	{hiByte: 7, hiShift: 8, hiMask: 0x0F00, loByte: 6, loShiftRight: 0, loMask: 0x00FF},
	{hiByte: 0, hiShift: 4, hiMask: 0x0FF0, loByte: 7, loShiftRight: 4, loMask: 0x000F},
	{hiByte: 4, hiShift: 8, hiMask: 0x0F00, loByte: 11, loShiftRight: 0, loMask: 0x00FF},
	{hiByte: 5, hiShift: 4, hiMask: 0x0FF0, loByte: 4, loShiftRight: 4, loMask: 0x000F},
	{hiByte: 9, hiShift: 8, hiMask: 0x0F00, loByte: 8, loShiftRight: 0, loMask: 0x00FF},
	{hiByte: 10, hiShift: 4, hiMask: 0x0FF0, loByte: 9, loShiftRight: 4, loMask: 0x000F},
}

// encodeLane describes, for one output byte position within a group, the
// one or two source samples (by index into the group's 8 decoded values)
// that combine to produce it, and the shift/mask pair for each — the
// inverse shuffle of decodeLane, factoring encodeGroup's formula
// (layout.go) the same way. bSample is -1 where only one sample
// contributes.
type encodeLane struct {
	aSample     int
	aShiftRight uint
	aMask       byte
	bSample     int
	bShiftLeft  uint
	bMask       byte
}

var encodeLanes = [GroupBytes]encodeLane{
	{aSample: 3, aShiftRight: 4, aMask: 0xFF, bSample: -1},
	{aSample: 0, aShiftRight: 0, aMask: 0xFF, bSample: -1},
	{aSample: 0, aShiftRight: 8, aMask: 0x0F, bSample: 1, bShiftLeft: 4, bMask: 0xF0},
	{aSample: 1, aShiftRight: 4, aMask: 0xFF, bSample: -1},
	{aSample: 4, aShiftRight: 8, aMask: 0x0F, bSample: 5, bShiftLeft: 4, bMask: 0xF0},
	{aSample: 5, aShiftRight: 4, aMask: 0xFF, bSample: -1},
	{aSample: 2, aShiftRight: 0, aMask: 0xFF, bSample: -1},
	{aSample: 2, aShiftRight: 8, aMask: 0x0F, bSample: 3, bShiftLeft: 4, bMask: 0xF0},
	{aSample: 6, aShiftRight: 0, aMask: 0xFF, bSample: -1},
	{aSample: 6, aShiftRight: 8, aMask: 0x0F, bSample: 7, bShiftLeft: 4, bMask: 0xF0},
	{aSample: 7, aShiftRight: 4, aMask: 0xFF, bSample: -1},
	{aSample: 4, aShiftRight: 0, aMask: 0xFF, bSample: -1},
}

// vectorDecodeBlocks processes exactly blocks whole blockGroups-group
// blocks of src into dst using the two-phase lane approach: a gather
// ("shuffle") pass fills fixed-width hi/lo lane arrays from the raw
// bytes, then a single shift/mask/OR pass across the whole lane width
// produces every sample in the block. No call into decodeGroup/
// decodeGroups — this is the vector body distinct from the scalar
// reference that the tail (in vectorDecode below) falls back to.
func vectorDecodeBlocks(src []byte, dst []uint16, blocks, blockGroups int) {
	lanes := blockGroups * GroupSamples
	blockSrcBytes := blockGroups * GroupBytes

	var hiLaneArr, loLaneArr [maxBlockLanes]byte
	hiLane := hiLaneArr[:lanes]
	loLane := loLaneArr[:lanes]

	for blk := 0; blk < blocks; blk++ {
		b := src[blk*blockSrcBytes:]
		out := dst[blk*lanes:]

		for g := 0; g < blockGroups; g++ {
			gb := g * GroupBytes
			base := g * GroupSamples
			for i := 0; i < GroupSamples; i++ {
				l := decodeLanes[i]
				hiLane[base+i] = b[gb+l.hiByte]
				loLane[base+i] = b[gb+l.loByte]
			}
		}

		for i := 0; i < lanes; i++ {
			l := decodeLanes[i%GroupSamples]
			hi := (uint16(hiLane[i]) << l.hiShift) & l.hiMask
			lo := (uint16(loLane[i]) >> l.loShiftRight) & l.loMask
			out[i] = hi | lo
		}
	}
}

// vectorEncodeBlocks is vectorDecodeBlocks' inverse: gather the one or two
// source samples each output byte needs into fixed-width lane arrays, then
// a single shift/mask/OR pass produces every byte in the block.
func vectorEncodeBlocks(src []uint16, dst []byte, blocks, blockGroups int) {
	nbytes := blockGroups * GroupBytes
	blockSrcSamples := blockGroups * GroupSamples

	var aLaneArr, bLaneArr [maxBlockBytes]uint16
	aLane := aLaneArr[:nbytes]
	bLane := bLaneArr[:nbytes]

	for blk := 0; blk < blocks; blk++ {
		u := src[blk*blockSrcSamples:]
		out := dst[blk*nbytes:]

		for g := 0; g < blockGroups; g++ {
			gs := g * GroupSamples
			gb := g * GroupBytes
			for j := 0; j < GroupBytes; j++ {
				l := encodeLanes[j]
				aLane[gb+j] = u[gs+l.aSample] & sampleMask
				if l.bSample >= 0 {
					bLane[gb+j] = u[gs+l.bSample] & sampleMask
				}
			}
		}

		for i := 0; i < nbytes; i++ {
			l := encodeLanes[i%GroupBytes]
			v := byte(aLane[i]>>l.aShiftRight) & l.aMask
			if l.bSample >= 0 {
				v |= byte(bLane[i]<<l.bShiftLeft) & l.bMask
			}
			out[i] = v
		}
	}
}

// vectorEncodeLogBlocks fuses vectorDecodeBlocks, the log-compansion
// callback (logencode.go), and vectorEncodeBlocks into one in-place pass
// over fixed-width lane arrays, without ever materializing the decoded
// samples back into the caller's buffer between steps.
func vectorEncodeLogBlocks(buf []byte, blocks, blockGroups int) {
	lanes := blockGroups * GroupSamples
	nbytes := blockGroups * GroupBytes

	var hiLaneArr, loLaneArr [maxBlockLanes]byte
	var sampleArr [maxBlockLanes]uint16
	var aLaneArr, bLaneArr [maxBlockBytes]uint16
	hiLane := hiLaneArr[:lanes]
	loLane := loLaneArr[:lanes]
	sample := sampleArr[:lanes]
	aLane := aLaneArr[:nbytes]
	bLane := bLaneArr[:nbytes]

	for blk := 0; blk < blocks; blk++ {
		b := buf[blk*nbytes:]

		for g := 0; g < blockGroups; g++ {
			gb := g * GroupBytes
			base := g * GroupSamples
			for i := 0; i < GroupSamples; i++ {
				l := decodeLanes[i]
				hiLane[base+i] = b[gb+l.hiByte]
				loLane[base+i] = b[gb+l.loByte]
			}
		}
		for i := 0; i < lanes; i++ {
			l := decodeLanes[i%GroupSamples]
			hi := (uint16(hiLane[i]) << l.hiShift) & l.hiMask
			lo := (uint16(loLane[i]) >> l.loShiftRight) & l.loMask
			sample[i] = linear16ToLog12((hi | lo) << 4)
		}

		for g := 0; g < blockGroups; g++ {
			gs := g * GroupSamples
			gb := g * GroupBytes
			for j := 0; j < GroupBytes; j++ {
				l := encodeLanes[j]
				aLane[gb+j] = sample[gs+l.aSample]
				if l.bSample >= 0 {
					bLane[gb+j] = sample[gs+l.bSample]
				}
			}
		}
		for i := 0; i < nbytes; i++ {
			l := encodeLanes[i%GroupBytes]
			v := byte(aLane[i]>>l.aShiftRight) & l.aMask
			if l.bSample >= 0 {
				v |= byte(bLane[i]<<l.bShiftLeft) & l.bMask
			}
			b[i] = v
		}
	}
}

// vectorDecode is the shared body behind every vector decode back-end:
// validate shape/capacity/alignment, split the aligned prefix (a whole
// number of blockGroups-group blocks) from the tail, process the prefix
// with vectorDecodeBlocks and the tail by recursing into the scalar
// reference — real vector kernels handle a sub-block remainder the same
// way, since it is never worth another specialized code path.
func vectorDecode(src []byte, dst []uint16, blockGroups int, alignBytes uintptr, srcAlignErr, dstAlignErr int) int {
	if len(src) == 0 {
		return OK
	}
	if len(src)%GroupBytes != 0 {
		return ErrSrcNotMultipleOf12
	}
	groups := len(src) / GroupBytes
	need := groups * GroupSamples
	if len(dst) < need {
		return ErrDstTooSmall
	}
	if !isAligned(unsafe.Pointer(&src[0]), alignBytes) {
		return srcAlignErr
	}
	if !isAligned(unsafe.Pointer(&dst[0]), alignBytes) {
		return dstAlignErr
	}

	blockSrcBytes := blockGroups * GroupBytes
	blocks := len(src) / blockSrcBytes
	prefixSrcBytes := blocks * blockSrcBytes
	prefixGroups := prefixSrcBytes / GroupBytes
	tailGroups := groups - prefixGroups

	if blocks > 0 {
		vectorDecodeBlocks(src[:prefixSrcBytes], dst[:prefixGroups*GroupSamples], blocks, blockGroups)
	}
	if tailGroups > 0 {
		decodeGroups(src[prefixSrcBytes:], dst[prefixGroups*GroupSamples:need], tailGroups)
	}
	return OK
}

// vectorEncode mirrors vectorDecode for the encode back-ends.
func vectorEncode(src []uint16, dst []byte, blockGroups int, alignBytes uintptr, srcAlignErr, dstAlignErr int) int {
	if len(src) == 0 {
		return OK
	}
	if len(src)%GroupSamples != 0 {
		return ErrSrcNotMultipleOf8
	}
	groups := len(src) / GroupSamples
	need := groups * GroupBytes
	if len(dst) < need {
		return ErrDstTooSmall
	}
	if !isAligned(unsafe.Pointer(&src[0]), alignBytes) {
		return srcAlignErr
	}
	if !isAligned(unsafe.Pointer(&dst[0]), alignBytes) {
		return dstAlignErr
	}

	blockSrcSamples := blockGroups * GroupSamples
	blocks := len(src) / blockSrcSamples
	prefixSrcSamples := blocks * blockSrcSamples
	prefixGroups := prefixSrcSamples / GroupSamples
	tailGroups := groups - prefixGroups

	if blocks > 0 {
		vectorEncodeBlocks(src[:prefixSrcSamples], dst[:prefixGroups*GroupBytes], blocks, blockGroups)
	}
	if tailGroups > 0 {
		encodeGroups(src[prefixSrcSamples:], dst[prefixGroups*GroupBytes:need], tailGroups)
	}
	return OK
}

// vectorEncodeLogInplace is the shared body behind every combined
// log-encode back-end: a single buffer carries both the alignment
// requirement and the block/tail split. The prefix runs through
// vectorEncodeLogBlocks; the tail, below one full block, falls back to
// encodeLogGroups, the monomorphized scalar decode+log+encode body (see
// vector_log.go).
func vectorEncodeLogInplace(buf []byte, blockGroups int, alignBytes uintptr, bufAlignErr int) int {
	if len(buf) == 0 {
		return OK
	}
	if len(buf)%GroupBytes != 0 {
		return ErrSrcNotMultipleOf12
	}
	if !isAligned(unsafe.Pointer(&buf[0]), alignBytes) {
		return bufAlignErr
	}

	blockSrcBytes := blockGroups * GroupBytes
	blocks := len(buf) / blockSrcBytes
	prefixBytes := blocks * blockSrcBytes
	tailBytes := len(buf) - prefixBytes

	if blocks > 0 {
		vectorEncodeLogBlocks(buf[:prefixBytes], blocks, blockGroups)
	}
	if tailBytes > 0 {
		encodeLogGroups(buf[prefixBytes:], tailBytes/GroupBytes)
	}
	return OK
}
