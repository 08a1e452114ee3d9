package renderer

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

var errRendererReleased = errors.New("renderer released")

//go:embed assets/basic.wgsl
var basicShaderSource string

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	uniforms  *UniformBlock
	instances []mgl32.Mat4
	mesh      Mesh

	width  int
	height int

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
	sampleCount          MSAASampleCount
	clearColor           ClearColor
	shaderSource         string
}

// Renderer draws the viewer's single mesh with a fixed shader pipeline.
//
// Uniforms are set by name and staged on the CPU; Draw uploads whatever changed
// since the previous frame, then records and presents one instanced draw of the mesh.
// A zero-sized surface (minimised window) turns Draw into a no-op until the next Resize.
type Renderer interface {
	// SetMat4 stages a mat4x4 uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - m: the column-major matrix
	//
	// Returns:
	//   - error: ErrUnknownUniform or ErrUniformType
	SetMat4(name string, m mgl32.Mat4) error

	// SetFloat3 stages a vec3 uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - v: the value
	//
	// Returns:
	//   - error: ErrUnknownUniform or ErrUniformType
	SetFloat3(name string, v mgl32.Vec3) error

	// SetFloat stages an f32 uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - v: the value
	//
	// Returns:
	//   - error: ErrUnknownUniform or ErrUniformType
	SetFloat(name string, v float32) error

	// SetBytes stages a pre-packed struct uniform such as the camera block.
	//
	// Parameters:
	//   - name: the uniform name
	//   - data: the packed bytes, exactly the field size
	//
	// Returns:
	//   - error: ErrUnknownUniform or ErrUniformType
	SetBytes(name string, data []byte) error

	// SetInstances replaces the per-instance model matrices drawn each frame.
	//
	// Parameters:
	//   - models: one model matrix per mesh instance
	SetInstances(models []mgl32.Mat4)

	// Draw uploads staged data and renders one frame.
	//
	// Returns:
	//   - error: an error if the frame could not be acquired or submitted
	Draw() error

	// Resize reconfigures the surface for a new framebuffer size.
	//
	// Parameters:
	//   - width, height: framebuffer size in pixels
	//
	// Returns:
	//   - error: an error if the surface could not be reconfigured
	Resize(width, height int) error

	// SetClearColor changes the background colour.
	//
	// Parameters:
	//   - c: the RGBA clear colour
	SetClearColor(c ClearColor)

	// Uniforms exposes the staged uniform block.
	//
	// Returns:
	//   - *UniformBlock: the block
	Uniforms() *UniformBlock

	// Release frees all GPU resources.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a WebGPU renderer for the given surface, configures it for the
// initial framebuffer size and builds the pipeline and mesh buffers.
//
// Parameters:
//   - surfaceDescriptor: the window's surface descriptor
//   - width, height: initial framebuffer size in pixels
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the ready renderer
//   - error: an error if any GPU object could not be created
func NewRenderer(surfaceDescriptor *wgpu.SurfaceDescriptor, width, height int, options ...RendererBuilderOption) (Renderer, error) {
	r := newRenderer(options...)

	backend, err := newWGPURendererBackend(surfaceDescriptor, r.forceFallbackAdapter, r.sampleCount)
	if err != nil {
		return nil, fmt.Errorf("init webgpu: %w", err)
	}
	if err := r.attach(backend, width, height); err != nil {
		backend.Release()
		return nil, err
	}
	return r, nil
}

func newRenderer(options ...RendererBuilderOption) *renderer {
	r := &renderer{
		mu:           &sync.Mutex{},
		backendType:  BackendTypeWGPU,
		uniforms:     NewUniformBlock(),
		instances:    []mgl32.Mat4{mgl32.Ident4()},
		mesh:         CubeMesh(),
		presentMode:  PresentModeVSync,
		sampleCount:  MSAA4x,
		clearColor:   ClearColor{R: 0.05, G: 0.05, B: 0.05, A: 1.0},
		shaderSource: basicShaderSource,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// attach wires a backend and creates every GPU object the renderer draws with.
func (r *renderer) attach(backend RendererBackend, width, height int) error {
	r.backend = backend
	r.width, r.height = width, height

	backend.SetPresentMode(r.presentMode)
	backend.SetClearColor(r.clearColor)
	if err := backend.ConfigureSurface(width, height); err != nil {
		return fmt.Errorf("configure surface: %w", err)
	}
	if err := backend.CreatePipeline("Basic", r.shaderSource, uint64(r.uniforms.Size())); err != nil {
		return err
	}
	if err := backend.InitMesh(r.mesh.Label, r.mesh.Bytes(), r.mesh.VertexCount()); err != nil {
		return err
	}
	return r.uploadInstances()
}

func (r *renderer) SetMat4(name string, m mgl32.Mat4) error {
	return r.uniforms.SetMat4(name, m)
}

func (r *renderer) SetFloat3(name string, v mgl32.Vec3) error {
	return r.uniforms.SetFloat3(name, v)
}

func (r *renderer) SetFloat(name string, v float32) error {
	return r.uniforms.SetFloat(name, v)
}

func (r *renderer) SetBytes(name string, data []byte) error {
	return r.uniforms.SetBytes(name, data)
}

func (r *renderer) SetInstances(models []mgl32.Mat4) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.instances = append(r.instances[:0], models...)
	if err := r.uploadInstances(); err != nil {
		log.Printf("[Renderer] instance upload failed: %v", err)
	}
}

func (r *renderer) Draw() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.backend == nil {
		return errRendererReleased
	}
	if r.width <= 0 || r.height <= 0 {
		return nil
	}
	if data, changed := r.uniforms.Flush(); changed {
		if err := r.backend.WriteUniforms(data); err != nil {
			return fmt.Errorf("upload uniforms: %w", err)
		}
	}

	if err := r.backend.BeginFrame(); err != nil {
		return fmt.Errorf("begin frame: %w", err)
	}
	r.backend.Draw()
	if err := r.backend.EndFrame(); err != nil {
		return err
	}
	r.backend.Present()
	return nil
}

func (r *renderer) Resize(width, height int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if width == r.width && height == r.height {
		return nil
	}
	r.width, r.height = width, height
	if width <= 0 || height <= 0 || r.backend == nil {
		return nil
	}
	return r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetClearColor(c ClearColor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearColor = c
	if r.backend != nil {
		r.backend.SetClearColor(c)
	}
}

func (r *renderer) Uniforms() *UniformBlock {
	return r.uniforms
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.backend != nil {
		r.backend.Release()
		r.backend = nil
	}
}

// uploadInstances sends the instance matrices to the backend. Caller must hold the mutex
// (or be the constructor).
func (r *renderer) uploadInstances() error {
	if r.backend == nil {
		return errRendererReleased
	}
	return r.backend.WriteInstances(common.SliceToBytes(r.instances), len(r.instances))
}
