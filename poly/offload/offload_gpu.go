//go:build gpu

package offload

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const available = true

func init() {
	// A GLFW window and its OpenGL context are bound to the OS thread
	// that created them; every call into this package's gpuBackend must
	// happen from that same thread.
	runtime.LockOSThread()
}

// areaComputeShader sums each polygon's shoelace terms in 64-bit integer
// arithmetic, mirroring the scalar and parallel kernels exactly: the
// per-edge cross products are computed and accumulated in the same
// order, so int64 associativity keeps all three dispatch levels
// bit-for-bit identical.
const areaComputeShader = `#version 430
#extension GL_ARB_gpu_shader_int64 : require
layout(local_size_x = 64) in;

layout(std430, binding = 0) readonly buffer Vertices {
	ivec2 vertices[];
};
layout(std430, binding = 1) readonly buffer Starts {
	int starts[];
};
layout(std430, binding = 2) readonly buffer Lengths {
	int lengths[];
};
layout(std430, binding = 3) writeonly buffer Areas {
	int64_t areas[];
};

void main() {
	uint i = gl_GlobalInvocationID.x;
	if (i >= starts.length()) {
		return;
	}
	int start = starts[i];
	int n = lengths[i];
	int64_t sum = int64_t(0);
	for (int k = 0; k < n; k++) {
		ivec2 a = vertices[start+k];
		ivec2 b = vertices[start+(k+1)%n];
		sum += int64_t(a.x) * int64_t(b.y) - int64_t(a.y) * int64_t(b.x);
	}
	areas[i] = sum;
}
`

// gpuBackend ships one polygon batch's vertices and spans to the device
// per call, like a single frame of the host-prep/device-dispatch
// pipeline described for the offload dispatch level.
type gpuBackend struct {
	mu       sync.Mutex
	window   *glfw.Window
	program  uint32
	numSpans int
	areaBuf  uint32
}

func newBackend() (Backend, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("offload: glfw init: %w", err)
	}
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	window, err := glfw.CreateWindow(1, 1, "apexgo-offload", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("offload: creating hidden context: %w", err)
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("offload: gl init: %w", err)
	}
	program, err := compileComputeProgram(areaComputeShader)
	if err != nil {
		return nil, err
	}
	return &gpuBackend{window: window, program: program}, nil
}

func compileComputeProgram(source string) (uint32, error) {
	shader := gl.CreateShader(gl.COMPUTE_SHADER)
	csources, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, csources, nil)
	gl.CompileShader(shader)
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("offload: compute shader: %s", log)
	}
	program := gl.CreateProgram()
	gl.AttachShader(program, shader)
	gl.LinkProgram(program)
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("offload: linking program: %s", log)
	}
	gl.DeleteShader(shader)
	return program, nil
}

func ssbo(binding uint32, data unsafe.Pointer, size int) uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, buf)
	gl.BufferData(gl.SHADER_STORAGE_BUFFER, size, data, gl.STATIC_DRAW)
	gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, binding, buf)
	return buf
}

func (g *gpuBackend) Ship(ctx context.Context, vertices []Point, starts, lengths []int32) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	g.window.MakeContextCurrent()
	gl.UseProgram(g.program)

	type ivec2 struct{ x, y int32 }
	packed := make([]ivec2, len(vertices))
	for i, v := range vertices {
		packed[i] = ivec2{v.X, v.Y}
	}
	ssbo(0, gl.Ptr(packed), len(packed)*8)
	ssbo(1, gl.Ptr(starts), len(starts)*4)
	ssbo(2, gl.Ptr(lengths), len(lengths)*4)

	g.numSpans = len(starts)
	var areaBuf uint32
	gl.GenBuffers(1, &areaBuf)
	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, areaBuf)
	gl.BufferData(gl.SHADER_STORAGE_BUFFER, g.numSpans*8, nil, gl.STATIC_READ)
	gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, 3, areaBuf)
	g.areaBuf = areaBuf
	return nil
}

func (g *gpuBackend) Run(ctx context.Context) ([]int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	groups := uint32((g.numSpans + 63) / 64)
	if groups == 0 {
		return nil, nil
	}
	gl.DispatchCompute(groups, 1, 1)
	gl.MemoryBarrier(gl.SHADER_STORAGE_BARRIER_BIT)

	areas := make([]int64, g.numSpans)
	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, g.areaBuf)
	gl.GetBufferSubData(gl.SHADER_STORAGE_BUFFER, 0, len(areas)*8, gl.Ptr(areas))
	return areas, nil
}
