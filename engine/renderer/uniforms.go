package renderer

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrUnknownUniform is returned when a uniform name is not part of the block layout.
	ErrUnknownUniform = errors.New("unknown uniform")

	// ErrUniformType is returned when a uniform is written with the wrong kind or size.
	ErrUniformType = errors.New("uniform type mismatch")
)

// UniformKind identifies the WGSL type of a field in the uniform block.
type UniformKind int

const (
	UniformFloat UniformKind = iota
	UniformVec3
	UniformMat4
	UniformStruct
)

func (k UniformKind) String() string {
	switch k {
	case UniformFloat:
		return "f32"
	case UniformVec3:
		return "vec3<f32>"
	case UniformMat4:
		return "mat4x4<f32>"
	case UniformStruct:
		return "struct"
	default:
		return "unknown"
	}
}

// UniformField describes where a named uniform lives inside the block.
type UniformField struct {
	Name   string
	Kind   UniformKind
	Offset int
	Size   int
}

// uniformLayout mirrors the Uniforms struct in assets/basic.wgsl using WGSL
// uniform address space alignment rules.
var uniformLayout = []UniformField{
	{Name: "camera", Kind: UniformStruct, Offset: 0, Size: 80},
	{Name: "model", Kind: UniformMat4, Offset: 80, Size: 64},
	{Name: "lightPos", Kind: UniformVec3, Offset: 144, Size: 12},
	{Name: "time", Kind: UniformFloat, Offset: 156, Size: 4},
	{Name: "lightColor", Kind: UniformVec3, Offset: 160, Size: 12},
	{Name: "material.ambient", Kind: UniformVec3, Offset: 176, Size: 12},
	{Name: "material.shininess", Kind: UniformFloat, Offset: 188, Size: 4},
	{Name: "material.color", Kind: UniformVec3, Offset: 192, Size: 12},
}

// uniformBlockSize is the byte size of the Uniforms struct, rounded to its 16-byte alignment.
const uniformBlockSize = 208

// UniformBlock is the CPU-side staging copy of the shader's uniform buffer.
// Values are addressed by name and packed little-endian at their WGSL offsets.
// The block tracks whether it changed since the last upload.
type UniformBlock struct {
	mu     *sync.Mutex
	fields map[string]UniformField
	data   []byte
	dirty  bool
}

// NewUniformBlock creates a zeroed block with the viewer's uniform layout.
//
// Returns:
//   - *UniformBlock: the new block, marked dirty
func NewUniformBlock() *UniformBlock {
	fields := make(map[string]UniformField, len(uniformLayout))
	for _, f := range uniformLayout {
		fields[f.Name] = f
	}
	return &UniformBlock{
		mu:     &sync.Mutex{},
		fields: fields,
		data:   make([]byte, uniformBlockSize),
		dirty:  true,
	}
}

// Size returns the block size in bytes.
func (u *UniformBlock) Size() int {
	return len(u.data)
}

// Field looks up a uniform by name.
//
// Parameters:
//   - name: the uniform name (struct members use dotted names, e.g. "material.color")
//
// Returns:
//   - UniformField: the field description
//   - bool: false if the name is not in the layout
func (u *UniformBlock) Field(name string) (UniformField, bool) {
	f, ok := u.fields[name]
	return f, ok
}

// SetFloat writes an f32 uniform.
//
// Parameters:
//   - name: the uniform name
//   - v: the value
//
// Returns:
//   - error: ErrUnknownUniform or ErrUniformType on a bad name or kind
func (u *UniformBlock) SetFloat(name string, v float32) error {
	return u.put(name, UniformFloat, v)
}

// SetFloat3 writes a vec3<f32> uniform.
//
// Parameters:
//   - name: the uniform name
//   - v: the value
//
// Returns:
//   - error: ErrUnknownUniform or ErrUniformType on a bad name or kind
func (u *UniformBlock) SetFloat3(name string, v mgl32.Vec3) error {
	return u.put(name, UniformVec3, v[:]...)
}

// SetMat4 writes a column-major mat4x4<f32> uniform.
//
// Parameters:
//   - name: the uniform name
//   - m: the matrix
//
// Returns:
//   - error: ErrUnknownUniform or ErrUniformType on a bad name or kind
func (u *UniformBlock) SetMat4(name string, m mgl32.Mat4) error {
	return u.put(name, UniformMat4, m[:]...)
}

// SetBytes copies pre-packed data into a struct uniform. The data length must match the field size.
//
// Parameters:
//   - name: the uniform name
//   - data: the packed struct bytes
//
// Returns:
//   - error: ErrUnknownUniform or ErrUniformType on a bad name, kind or size
func (u *UniformBlock) SetBytes(name string, data []byte) error {
	f, err := u.lookup(name, UniformStruct)
	if err != nil {
		return err
	}
	if len(data) != f.Size {
		return fmt.Errorf("%w: %q expects %d bytes, got %d", ErrUniformType, name, f.Size, len(data))
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	copy(u.data[f.Offset:f.Offset+f.Size], data)
	u.dirty = true
	return nil
}

// Float reads back an f32 uniform.
//
// Parameters:
//   - name: the uniform name
//
// Returns:
//   - float32: the stored value
//   - error: ErrUnknownUniform or ErrUniformType on a bad name or kind
func (u *UniformBlock) Float(name string) (float32, error) {
	f, err := u.lookup(name, UniformFloat)
	if err != nil {
		return 0, err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	return math.Float32frombits(binary.LittleEndian.Uint32(u.data[f.Offset:])), nil
}

// Float3 reads back a vec3<f32> uniform.
//
// Parameters:
//   - name: the uniform name
//
// Returns:
//   - mgl32.Vec3: the stored value
//   - error: ErrUnknownUniform or ErrUniformType on a bad name or kind
func (u *UniformBlock) Float3(name string) (mgl32.Vec3, error) {
	f, err := u.lookup(name, UniformVec3)
	if err != nil {
		return mgl32.Vec3{}, err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	var v mgl32.Vec3
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(u.data[f.Offset+i*4:]))
	}
	return v, nil
}

// Bytes returns a copy of the packed block.
func (u *UniformBlock) Bytes() []byte {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]byte, len(u.data))
	copy(out, u.data)
	return out
}

// Flush returns a copy of the packed block and clears the dirty flag.
//
// Returns:
//   - []byte: the packed block
//   - bool: false if nothing changed since the previous Flush
func (u *UniformBlock) Flush() ([]byte, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if !u.dirty {
		return nil, false
	}
	u.dirty = false
	out := make([]byte, len(u.data))
	copy(out, u.data)
	return out, true
}

func (u *UniformBlock) lookup(name string, kind UniformKind) (UniformField, error) {
	f, ok := u.fields[name]
	if !ok {
		return UniformField{}, fmt.Errorf("%w: %q", ErrUnknownUniform, name)
	}
	if f.Kind != kind {
		return UniformField{}, fmt.Errorf("%w: %q is %s, not %s", ErrUniformType, name, f.Kind, kind)
	}
	return f, nil
}

func (u *UniformBlock) put(name string, kind UniformKind, values ...float32) error {
	f, err := u.lookup(name, kind)
	if err != nil {
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	for i, v := range values {
		binary.LittleEndian.PutUint32(u.data[f.Offset+i*4:], math.Float32bits(v))
	}
	u.dirty = true
	return nil
}
