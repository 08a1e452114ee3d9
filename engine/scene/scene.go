package scene

import (
	"slices"
	"sync"

	"github.com/Carmen-Shannon/oxy-viewer/engine/game_object"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type scene struct {
	mu      *sync.Mutex
	name    string
	nextID  uint64
	objects map[uint64]game_object.GameObject
}

// Scene is the registry of objects the renderer draws as mesh instances.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Add registers an object, assigning it a fresh ID if it has none.
	//
	// Parameters:
	//   - obj: the object to add
	//
	// Returns:
	//   - uint64: the object's ID
	Add(obj game_object.GameObject) uint64

	// Remove drops an object by ID.
	//
	// Parameters:
	//   - id: the object ID
	//
	// Returns:
	//   - bool: false if no object had that ID
	Remove(id uint64) bool

	// Get looks up an object by ID.
	//
	// Parameters:
	//   - id: the object ID
	//
	// Returns:
	//   - game_object.GameObject: the object, or nil
	//   - bool: false if not found
	Get(id uint64) (game_object.GameObject, bool)

	// Count returns the number of registered objects, enabled or not.
	Count() int

	// Objects returns the registered objects ordered by ID.
	Objects() []game_object.GameObject

	// InstanceMatrices returns the model matrix of every enabled object, ordered by ID.
	//
	// Parameters:
	//   - elapsed: seconds since the scene started
	//
	// Returns:
	//   - []mgl32.Mat4: one matrix per enabled object
	InstanceMatrices(elapsed float32) []mgl32.Mat4
}

var _ Scene = &scene{}

// NewScene creates an empty scene.
//
// Parameters:
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the new scene
func NewScene(options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:      &sync.Mutex{},
		name:    "Default Scene",
		nextID:  1,
		objects: make(map[uint64]game_object.GameObject),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// DemoCubes returns the classic seven-cube layout, each cube spinning around Y at sin(i)
// and around X at cos(i) radians per second.
//
// Returns:
//   - []game_object.GameObject: the cubes
func DemoCubes() []game_object.GameObject {
	positions := []mgl32.Vec3{
		{0, 0, -2},
		{2, 0, -1},
		{-2, 1, -2},
		{1, 3, -12},
		{-3, -4, -6},
		{4, -1, -6},
		{-5, 2, -8},
	}
	cubes := make([]game_object.GameObject, 0, len(positions))
	for i, p := range positions {
		fi := float32(i)
		cubes = append(cubes, game_object.NewGameObject(
			game_object.WithPosition(p),
			game_object.WithRotationSpeed(mgl32.Vec3{math32.Cos(fi), math32.Sin(fi), 0}),
		))
	}
	return cubes
}

func (s *scene) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(obj)
}

func (s *scene) Remove(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[id]; !ok {
		return false
	}
	delete(s.objects, id)
	return true
}

func (s *scene) Get(id uint64) (game_object.GameObject, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[id]
	return obj, ok
}

func (s *scene) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

func (s *scene) Objects() []game_object.GameObject {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sorted()
}

func (s *scene) InstanceMatrices(elapsed float32) []mgl32.Mat4 {
	s.mu.Lock()
	objects := s.sorted()
	s.mu.Unlock()

	out := make([]mgl32.Mat4, 0, len(objects))
	for _, obj := range objects {
		if obj.Enabled() {
			out = append(out, obj.ModelMatrix(elapsed))
		}
	}
	return out
}

// add registers obj. Caller must hold the mutex.
func (s *scene) add(obj game_object.GameObject) uint64 {
	id := obj.ID()
	if id == 0 {
		id = s.nextID
		obj.SetID(id)
	}
	if id >= s.nextID {
		s.nextID = id + 1
	}
	s.objects[id] = obj
	return id
}

// sorted returns the objects ordered by ID. Caller must hold the mutex.
func (s *scene) sorted() []game_object.GameObject {
	ids := make([]uint64, 0, len(s.objects))
	for id := range s.objects {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]game_object.GameObject, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.objects[id])
	}
	return out
}
