// Package container exposes a Docker Engine control surface as tools.
package container

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"mcpbridge/tools"
)

// ContainerSummary is the listing view of a container.
type ContainerSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Image  string `json:"image"`
	State  string `json:"state"`
	Status string `json:"status"`
}

// ContainerSpec describes a container to create. Ports maps container port to
// host port.
type ContainerSpec struct {
	Image   string
	Name    string
	Env     map[string]string
	Ports   map[string]string
	Volumes []string
	Command []string
}

// ImageSummary is the listing view of an image.
type ImageSummary struct {
	ID   string   `json:"id"`
	Tags []string `json:"tags"`
	Size int64    `json:"size"`
}

// NetworkSummary is the listing view of a network.
type NetworkSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Driver string `json:"driver"`
}

// VolumeSummary is the listing view of a volume.
type VolumeSummary struct {
	Name       string `json:"name"`
	Driver     string `json:"driver"`
	Mountpoint string `json:"mountpoint"`
}

// Engine is the external client handle behind the container tools. Each
// method is one engine API round trip; RunContainer is create followed by
// start, matching the engine's own run semantics.
type Engine interface {
	ListContainers(ctx context.Context, all bool) ([]ContainerSummary, error)
	CreateContainer(ctx context.Context, spec ContainerSpec) (string, error)
	RunContainer(ctx context.Context, spec ContainerSpec) (string, error)
	StartContainer(ctx context.Context, id string) error
	StopContainer(ctx context.Context, id string, timeoutSecs int) error
	RemoveContainer(ctx context.Context, id string, force bool) error
	ContainerLogs(ctx context.Context, id string, tail string) (string, error)

	PullImage(ctx context.Context, ref string) error
	PushImage(ctx context.Context, ref string) error
	BuildImage(ctx context.Context, contextDir, dockerfile, tag string) error
	ListImages(ctx context.Context) ([]ImageSummary, error)
	RemoveImage(ctx context.Context, ref string, force bool) error

	CreateNetwork(ctx context.Context, name, driver string) (string, error)
	ListNetworks(ctx context.Context) ([]NetworkSummary, error)
	RemoveNetwork(ctx context.Context, id string) error

	CreateVolume(ctx context.Context, name string) (VolumeSummary, error)
	ListVolumes(ctx context.Context) ([]VolumeSummary, error)
	RemoveVolume(ctx context.Context, name string, force bool) error
}

// FakeEngine is a simple in-memory implementation for testing.
type FakeEngine struct {
	mu sync.Mutex

	Containers []ContainerSummary
	Images     []ImageSummary
	Networks   []NetworkSummary
	Volumes    []VolumeSummary
	Logs       map[string]string

	// Unreachable makes every call fail like a daemon connection failure.
	Unreachable bool

	nextID int
}

func NewFakeEngine() *FakeEngine {
	return &FakeEngine{Logs: make(map[string]string)}
}

func (e *FakeEngine) check() error {
	if e.Unreachable {
		return tools.E(tools.KindEngineUnreachable, "cannot connect to the Docker daemon")
	}
	return nil
}

func (e *FakeEngine) genID(prefix string) string {
	e.nextID++
	return fmt.Sprintf("%s-%04d", prefix, e.nextID)
}

func (e *FakeEngine) ListContainers(ctx context.Context, all bool) ([]ContainerSummary, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(); err != nil {
		return nil, err
	}
	out := make([]ContainerSummary, 0, len(e.Containers))
	for _, c := range e.Containers {
		if !all && c.State != "running" {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (e *FakeEngine) CreateContainer(ctx context.Context, spec ContainerSpec) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(); err != nil {
		return "", err
	}
	id := e.genID("container")
	e.Containers = append(e.Containers, ContainerSummary{
		ID: id, Name: spec.Name, Image: spec.Image, State: "created", Status: "Created",
	})
	return id, nil
}

func (e *FakeEngine) RunContainer(ctx context.Context, spec ContainerSpec) (string, error) {
	id, err := e.CreateContainer(ctx, spec)
	if err != nil {
		return "", err
	}
	return id, e.StartContainer(ctx, id)
}

func (e *FakeEngine) StartContainer(ctx context.Context, id string) error {
	return e.setState(id, "running", "Up 1 second")
}

func (e *FakeEngine) StopContainer(ctx context.Context, id string, timeoutSecs int) error {
	return e.setState(id, "exited", "Exited (0)")
}

func (e *FakeEngine) setState(id, state, status string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(); err != nil {
		return err
	}
	for i := range e.Containers {
		if e.Containers[i].ID == id || e.Containers[i].Name == id {
			e.Containers[i].State = state
			e.Containers[i].Status = status
			return nil
		}
	}
	return tools.E(tools.KindResourceNotFound, "no such container: %s", id)
}

func (e *FakeEngine) RemoveContainer(ctx context.Context, id string, force bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(); err != nil {
		return err
	}
	for i := range e.Containers {
		if e.Containers[i].ID == id || e.Containers[i].Name == id {
			e.Containers = append(e.Containers[:i], e.Containers[i+1:]...)
			return nil
		}
	}
	return tools.E(tools.KindResourceNotFound, "no such container: %s", id)
}

func (e *FakeEngine) ContainerLogs(ctx context.Context, id string, tail string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(); err != nil {
		return "", err
	}
	logs, ok := e.Logs[id]
	if !ok {
		return "", tools.E(tools.KindResourceNotFound, "no such container: %s", id)
	}
	return logs, nil
}

func (e *FakeEngine) PullImage(ctx context.Context, ref string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(); err != nil {
		return err
	}
	e.Images = append(e.Images, ImageSummary{ID: e.genID("sha256"), Tags: []string{ref}})
	return nil
}

func (e *FakeEngine) PushImage(ctx context.Context, ref string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(); err != nil {
		return err
	}
	for _, img := range e.Images {
		for _, tag := range img.Tags {
			if tag == ref {
				return nil
			}
		}
	}
	return tools.E(tools.KindResourceNotFound, "no such image: %s", ref)
}

func (e *FakeEngine) BuildImage(ctx context.Context, contextDir, dockerfile, tag string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(); err != nil {
		return err
	}
	e.Images = append(e.Images, ImageSummary{ID: e.genID("sha256"), Tags: []string{tag}})
	return nil
}

func (e *FakeEngine) ListImages(ctx context.Context) ([]ImageSummary, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(); err != nil {
		return nil, err
	}
	return append([]ImageSummary(nil), e.Images...), nil
}

func (e *FakeEngine) RemoveImage(ctx context.Context, ref string, force bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(); err != nil {
		return err
	}
	for i, img := range e.Images {
		if img.ID == ref {
			e.Images = append(e.Images[:i], e.Images[i+1:]...)
			return nil
		}
		for _, tag := range img.Tags {
			if tag == ref {
				e.Images = append(e.Images[:i], e.Images[i+1:]...)
				return nil
			}
		}
	}
	return tools.E(tools.KindResourceNotFound, "no such image: %s", ref)
}

func (e *FakeEngine) CreateNetwork(ctx context.Context, name, driver string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(); err != nil {
		return "", err
	}
	id := e.genID("network")
	e.Networks = append(e.Networks, NetworkSummary{ID: id, Name: name, Driver: driver})
	return id, nil
}

func (e *FakeEngine) ListNetworks(ctx context.Context) ([]NetworkSummary, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(); err != nil {
		return nil, err
	}
	return append([]NetworkSummary(nil), e.Networks...), nil
}

func (e *FakeEngine) RemoveNetwork(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(); err != nil {
		return err
	}
	for i, n := range e.Networks {
		if n.ID == id || n.Name == id {
			e.Networks = append(e.Networks[:i], e.Networks[i+1:]...)
			return nil
		}
	}
	return tools.E(tools.KindResourceNotFound, "no such network: %s", id)
}

func (e *FakeEngine) CreateVolume(ctx context.Context, name string) (VolumeSummary, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(); err != nil {
		return VolumeSummary{}, err
	}
	v := VolumeSummary{Name: name, Driver: "local", Mountpoint: "/var/lib/docker/volumes/" + name + "/_data"}
	e.Volumes = append(e.Volumes, v)
	sort.Slice(e.Volumes, func(i, j int) bool { return e.Volumes[i].Name < e.Volumes[j].Name })
	return v, nil
}

func (e *FakeEngine) ListVolumes(ctx context.Context) ([]VolumeSummary, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(); err != nil {
		return nil, err
	}
	return append([]VolumeSummary(nil), e.Volumes...), nil
}

func (e *FakeEngine) RemoveVolume(ctx context.Context, name string, force bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(); err != nil {
		return err
	}
	for i, v := range e.Volumes {
		if v.Name == name {
			e.Volumes = append(e.Volumes[:i], e.Volumes[i+1:]...)
			return nil
		}
	}
	return tools.E(tools.KindResourceNotFound, "no such volume: %s", name)
}
