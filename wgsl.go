package marlin

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

// The WGSL rendition of the pass-through shader pair, for running the same
// stages on a GPU backend. PassThroughShader is its CPU twin.
//
//go:embed shader.wgsl
var passThroughWGSL string

// Entry point names of the embedded shader module.
const (
	VertexEntryPoint   = "vertex_shader_main"
	FragmentEntryPoint = "fragment_shader_main"
)

// PassThroughWGSL returns the WGSL source of the pass-through shader pair.
func PassThroughWGSL() string {
	return passThroughWGSL
}

// CompileShaderModule compiles the embedded WGSL module to SPIR-V words.
func CompileShaderModule() ([]uint32, error) {
	return CompileWGSL(passThroughWGSL)
}

// CompileWGSL compiles WGSL source to SPIR-V, returned as the little-endian
// 32-bit words SPIR-V consumers expect.
func CompileWGSL(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("compile shader: %w", err)
	}
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
