package packed12

// backendRank orders back-ends by selection priority: prefer the widest
// vector width, then narrower, then scalar. Higher rank wins.
type backendRank int

const (
	rankScalar backendRank = iota
	rankV128
	rankV256
)

// backend bundles one back-end's three dispatched entry points. The
// dispatcher holds exactly one active backend, chosen once at package
// init by rank: prefer per-target compilation over runtime detection,
// and when runtime selection is needed, gate it on a one-time feature
// probe that stores function pointers at init rather than branching in
// the hot path.
type backend struct {
	name            string
	rank            backendRank
	decode          func(src []byte, dst []uint16) int
	encode          func(src []uint16, dst []byte) int
	encodeLogInplace func(buf []byte) int
}

var backendScalar = backend{
	name:             "scalar",
	rank:             rankScalar,
	decode:           DecodeScalar,
	encode:           EncodeScalar,
	encodeLogInplace: EncodeLogInplaceScalar,
}

// active is the backend currently selected by the dispatcher. It starts as
// scalar and is upgraded by an arch-specific init() (see
// vector_v128a_arm64.go, vector_v128b_amd64.go, vector_v256_amd64.go) if
// the running CPU supports a wider back-end.
var active = backendScalar

// registerBackend installs b as the active backend if its rank is at least
// as wide as whatever is currently active. Each arch-specific init() calls
// this at most once, after checking the relevant cpu.X86/cpu.ARM64 feature
// flags, so there is never a runtime branch in the hot path — only this
// one-time selection.
func registerBackend(b backend) {
	if b.rank >= active.rank {
		active = b
	}
}

// Decode is the dispatcher's decode entry point: it routes to the widest
// back-end the running CPU supports. If a caller passes
// misaligned buffers, the dispatcher returns the alignment error of the
// chosen back-end rather than silently downgrading to a narrower one.
func Decode(src []byte, dst []uint16) int {
	return active.decode(src, dst)
}

// Encode is the dispatcher's encode entry point.
func Encode(src []uint16, dst []byte) int {
	return active.encode(src, dst)
}

// EncodeLogInplace is the dispatcher's combined log-encode entry point,
// chaining decode, log-companding, and encode without the intermediate
// ever leaving the active back-end's registers (or, here, its local
// array — see DESIGN.md on portable-Go back-ends).
func EncodeLogInplace(buf []byte) int {
	return active.encodeLogInplace(buf)
}

// ActiveBackendName reports which back-end the dispatcher selected, for
// diagnostics (the CLI's -v/--verbose output) and tests that want to
// assert a particular back-end was actually exercised.
func ActiveBackendName() string {
	return active.name
}
