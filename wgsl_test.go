package marlin

import (
	"strings"
	"testing"
)

// SPIR-V modules start with this magic word.
const spirvMagic = 0x07230203

func TestPassThroughWGSLEntryPoints(t *testing.T) {
	src := PassThroughWGSL()
	for _, want := range []string{
		"@vertex",
		"@fragment",
		"fn " + VertexEntryPoint,
		"fn " + FragmentEntryPoint,
		"@location(0) position: vec3<f32>",
		"@location(1) color: vec3<f32>",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("shader source missing %q", want)
		}
	}
}

func TestCompileShaderModule(t *testing.T) {
	words, err := CompileShaderModule()
	if err != nil {
		t.Fatalf("CompileShaderModule: %v", err)
	}
	if len(words) < 5 {
		t.Fatalf("SPIR-V output too small: %d words", len(words))
	}
	if words[0] != spirvMagic {
		t.Fatalf("invalid SPIR-V magic: got 0x%08X, want 0x%08X", words[0], spirvMagic)
	}
}

func TestCompileWGSLRejectsGarbage(t *testing.T) {
	if _, err := CompileWGSL("fn incomplete("); err == nil {
		t.Fatal("expected an error for malformed WGSL")
	}
}
