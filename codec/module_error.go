package codec

import (
	"github.com/celer-network/cosmos-sidecar/types"
	"github.com/pkg/errors"
)

// ModuleErrorLayout describes where the native chain's error ABI places the
// fields of a packed module failure. Layouts are versioned: a new native
// release that moves a field needs a new layout, not a patched one.
type ModuleErrorLayout struct {
	Version         string
	VariantOffset   int
	ModuleVariant   byte
	CodespaceOffset int
	CodeOffset      int
}

// ModuleErrorV1 is the DispatchError::Module layout: variant tag, module
// index, then the little-endian error bytes of which only the first is used.
var ModuleErrorV1 = ModuleErrorLayout{
	Version:         "v1",
	VariantOffset:   0,
	ModuleVariant:   3,
	CodespaceOffset: 1,
	CodeOffset:      2,
}

var moduleErrorLayouts = map[string]ModuleErrorLayout{
	ModuleErrorV1.Version: ModuleErrorV1,
}

// ModuleErrorLayoutFor returns the registered layout for an ABI version tag.
func ModuleErrorLayoutFor(version string) (ModuleErrorLayout, error) {
	layout, ok := moduleErrorLayouts[version]
	if !ok {
		return ModuleErrorLayout{}, errors.Errorf("unknown module error ABI %q", version)
	}
	return layout, nil
}

type ModuleError struct {
	Codespace uint8
	Code      uint8
}

func (l ModuleErrorLayout) minLen() int {
	n := l.CodespaceOffset
	if l.CodeOffset > n {
		n = l.CodeOffset
	}
	if l.VariantOffset > n {
		n = l.VariantOffset
	}
	return n + 1
}

// IsModuleError reports whether payload carries the module failure variant.
func (l ModuleErrorLayout) IsModuleError(payload []byte) bool {
	return len(payload) > l.VariantOffset && payload[l.VariantOffset] == l.ModuleVariant
}

// Decode extracts the codespace and code bytes from a packed module failure.
func (l ModuleErrorLayout) Decode(payload []byte) (ModuleError, error) {
	if len(payload) < l.minLen() {
		return ModuleError{}, types.NewDecodeErrorf(
			"module_error", "payload of %d bytes is shorter than the %d bytes required by ABI %s",
			len(payload), l.minLen(), l.Version,
		)
	}
	return ModuleError{
		Codespace: payload[l.CodespaceOffset],
		Code:      payload[l.CodeOffset],
	}, nil
}

// DecodeModuleError decodes payload using ModuleErrorV1.
func DecodeModuleError(payload []byte) (ModuleError, error) {
	return ModuleErrorV1.Decode(payload)
}

// Pack lays out a module failure in this ABI. errBytes holds the module's
// error bytes, of which the first is the code.
func (l ModuleErrorLayout) Pack(codespace uint8, errBytes []byte) []byte {
	n := l.minLen()
	if m := l.CodeOffset + len(errBytes); m > n {
		n = m
	}
	payload := make([]byte, n)
	payload[l.VariantOffset] = l.ModuleVariant
	payload[l.CodespaceOffset] = codespace
	copy(payload[l.CodeOffset:], errBytes)
	return payload
}
