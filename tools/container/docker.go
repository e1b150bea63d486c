package container

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/docker/docker/api/types"
	containertypes "github.com/docker/docker/api/types/container"
	imagetypes "github.com/docker/docker/api/types/image"
	networktypes "github.com/docker/docker/api/types/network"
	volumetypes "github.com/docker/docker/api/types/volume"
	"github.com/docker/docker/client"
	"github.com/docker/docker/errdefs"
	"github.com/docker/docker/pkg/archive"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/docker/go-connections/nat"

	"mcpbridge/tools"
)

// DockerEngine implements Engine backed by the Docker Engine API client.
type DockerEngine struct {
	cli *client.Client
}

// NewDockerEngine connects using the standard DOCKER_HOST environment, with
// API version negotiation so the tools work against older daemons.
func NewDockerEngine() (*DockerEngine, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}
	return &DockerEngine{cli: cli}, nil
}

// Close releases the underlying HTTP client resources.
func (e *DockerEngine) Close() error {
	return e.cli.Close()
}

func (e *DockerEngine) ListContainers(ctx context.Context, all bool) ([]ContainerSummary, error) {
	list, err := e.cli.ContainerList(ctx, containertypes.ListOptions{All: all})
	if err != nil {
		return nil, mapEngineError(err, "failed to list containers")
	}

	out := make([]ContainerSummary, 0, len(list))
	for _, c := range list {
		name := ""
		if len(c.Names) > 0 {
			name = strings.TrimPrefix(c.Names[0], "/")
		}
		out = append(out, ContainerSummary{
			ID:     c.ID,
			Name:   name,
			Image:  c.Image,
			State:  c.State,
			Status: c.Status,
		})
	}
	return out, nil
}

func (e *DockerEngine) CreateContainer(ctx context.Context, spec ContainerSpec) (string, error) {
	cfg := &containertypes.Config{
		Image: spec.Image,
		Cmd:   spec.Command,
	}
	for k, v := range spec.Env {
		cfg.Env = append(cfg.Env, k+"="+v)
	}

	hostCfg := &containertypes.HostConfig{Binds: spec.Volumes}
	if len(spec.Ports) > 0 {
		cfg.ExposedPorts = nat.PortSet{}
		hostCfg.PortBindings = nat.PortMap{}
		for containerPort, hostPort := range spec.Ports {
			// Keys may be bare ("6379") or carry a protocol ("6379/udp").
			proto, portNo := "tcp", containerPort
			if i := strings.IndexByte(containerPort, '/'); i >= 0 {
				portNo, proto = containerPort[:i], containerPort[i+1:]
			}
			port, err := nat.NewPort(proto, portNo)
			if err != nil {
				return "", tools.InvalidArguments("ports")
			}
			cfg.ExposedPorts[port] = struct{}{}
			hostCfg.PortBindings[port] = []nat.PortBinding{{HostPort: hostPort}}
		}
	}

	resp, err := e.cli.ContainerCreate(ctx, cfg, hostCfg, nil, nil, spec.Name)
	if err != nil {
		return "", mapEngineError(err, fmt.Sprintf("failed to create container from image %s", spec.Image))
	}
	return resp.ID, nil
}

func (e *DockerEngine) RunContainer(ctx context.Context, spec ContainerSpec) (string, error) {
	id, err := e.CreateContainer(ctx, spec)
	if err != nil {
		return "", err
	}
	return id, e.StartContainer(ctx, id)
}

func (e *DockerEngine) StartContainer(ctx context.Context, id string) error {
	if err := e.cli.ContainerStart(ctx, id, containertypes.StartOptions{}); err != nil {
		return mapEngineError(err, fmt.Sprintf("failed to start container %s", id))
	}
	return nil
}

func (e *DockerEngine) StopContainer(ctx context.Context, id string, timeoutSecs int) error {
	opts := containertypes.StopOptions{}
	if timeoutSecs > 0 {
		opts.Timeout = &timeoutSecs
	}
	if err := e.cli.ContainerStop(ctx, id, opts); err != nil {
		return mapEngineError(err, fmt.Sprintf("failed to stop container %s", id))
	}
	return nil
}

func (e *DockerEngine) RemoveContainer(ctx context.Context, id string, force bool) error {
	if err := e.cli.ContainerRemove(ctx, id, containertypes.RemoveOptions{Force: force}); err != nil {
		return mapEngineError(err, fmt.Sprintf("failed to remove container %s", id))
	}
	return nil
}

func (e *DockerEngine) ContainerLogs(ctx context.Context, id string, tail string) (string, error) {
	inspect, err := e.cli.ContainerInspect(ctx, id)
	if err != nil {
		return "", mapEngineError(err, fmt.Sprintf("failed to inspect container %s", id))
	}
	tty := inspect.Config != nil && inspect.Config.Tty

	rc, err := e.cli.ContainerLogs(ctx, id, containertypes.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Tail:       tail,
	})
	if err != nil {
		return "", mapEngineError(err, fmt.Sprintf("failed to get logs for container %s", id))
	}
	defer rc.Close()

	out, err := decodeLogStream(rc, tty)
	if err != nil {
		return "", fmt.Errorf("failed to read logs for container %s: %w", id, err)
	}
	return out, nil
}

// decodeLogStream reads a container log stream. TTY containers emit a raw
// stream; all others multiplex stdout and stderr and need demuxing.
func decodeLogStream(r io.Reader, tty bool) (string, error) {
	var buf bytes.Buffer
	if tty {
		if _, err := io.Copy(&buf, r); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
	if _, err := stdcopy.StdCopy(&buf, &buf, r); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (e *DockerEngine) PullImage(ctx context.Context, ref string) error {
	rc, err := e.cli.ImagePull(ctx, ref, imagetypes.PullOptions{})
	if err != nil {
		return mapEngineError(err, fmt.Sprintf("failed to pull image %s", ref))
	}
	defer rc.Close()

	// The pull only completes once the progress stream is drained.
	if _, err := io.Copy(io.Discard, rc); err != nil {
		return fmt.Errorf("failed to pull image %s: %w", ref, err)
	}
	return nil
}

func (e *DockerEngine) PushImage(ctx context.Context, ref string) error {
	rc, err := e.cli.ImagePush(ctx, ref, imagetypes.PushOptions{RegistryAuth: "e30="})
	if err != nil {
		return mapEngineError(err, fmt.Sprintf("failed to push image %s", ref))
	}
	defer rc.Close()

	if _, err := io.Copy(io.Discard, rc); err != nil {
		return fmt.Errorf("failed to push image %s: %w", ref, err)
	}
	return nil
}

func (e *DockerEngine) BuildImage(ctx context.Context, contextDir, dockerfile, tag string) error {
	buildCtx, err := archive.TarWithOptions(contextDir, &archive.TarOptions{})
	if err != nil {
		return fmt.Errorf("failed to tar build context %s: %w", contextDir, err)
	}
	defer buildCtx.Close()

	if dockerfile == "" {
		dockerfile = "Dockerfile"
	}
	resp, err := e.cli.ImageBuild(ctx, buildCtx, types.ImageBuildOptions{
		Tags:       []string{tag},
		Dockerfile: dockerfile,
		Remove:     true,
	})
	if err != nil {
		return mapEngineError(err, fmt.Sprintf("failed to build image %s", tag))
	}
	defer resp.Body.Close()

	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return fmt.Errorf("failed to build image %s: %w", tag, err)
	}
	return nil
}

func (e *DockerEngine) ListImages(ctx context.Context) ([]ImageSummary, error) {
	list, err := e.cli.ImageList(ctx, imagetypes.ListOptions{})
	if err != nil {
		return nil, mapEngineError(err, "failed to list images")
	}

	out := make([]ImageSummary, 0, len(list))
	for _, img := range list {
		out = append(out, ImageSummary{ID: img.ID, Tags: img.RepoTags, Size: img.Size})
	}
	return out, nil
}

func (e *DockerEngine) RemoveImage(ctx context.Context, ref string, force bool) error {
	if _, err := e.cli.ImageRemove(ctx, ref, imagetypes.RemoveOptions{Force: force}); err != nil {
		return mapEngineError(err, fmt.Sprintf("failed to remove image %s", ref))
	}
	return nil
}

func (e *DockerEngine) CreateNetwork(ctx context.Context, name, driver string) (string, error) {
	opts := networktypes.CreateOptions{}
	if driver != "" {
		opts.Driver = driver
	}
	resp, err := e.cli.NetworkCreate(ctx, name, opts)
	if err != nil {
		return "", mapEngineError(err, fmt.Sprintf("failed to create network %s", name))
	}
	return resp.ID, nil
}

func (e *DockerEngine) ListNetworks(ctx context.Context) ([]NetworkSummary, error) {
	list, err := e.cli.NetworkList(ctx, networktypes.ListOptions{})
	if err != nil {
		return nil, mapEngineError(err, "failed to list networks")
	}

	out := make([]NetworkSummary, 0, len(list))
	for _, n := range list {
		out = append(out, NetworkSummary{ID: n.ID, Name: n.Name, Driver: n.Driver})
	}
	return out, nil
}

func (e *DockerEngine) RemoveNetwork(ctx context.Context, id string) error {
	if err := e.cli.NetworkRemove(ctx, id); err != nil {
		return mapEngineError(err, fmt.Sprintf("failed to remove network %s", id))
	}
	return nil
}

func (e *DockerEngine) CreateVolume(ctx context.Context, name string) (VolumeSummary, error) {
	vol, err := e.cli.VolumeCreate(ctx, volumetypes.CreateOptions{Name: name})
	if err != nil {
		return VolumeSummary{}, mapEngineError(err, fmt.Sprintf("failed to create volume %s", name))
	}
	return VolumeSummary{Name: vol.Name, Driver: vol.Driver, Mountpoint: vol.Mountpoint}, nil
}

func (e *DockerEngine) ListVolumes(ctx context.Context) ([]VolumeSummary, error) {
	resp, err := e.cli.VolumeList(ctx, volumetypes.ListOptions{})
	if err != nil {
		return nil, mapEngineError(err, "failed to list volumes")
	}

	out := make([]VolumeSummary, 0, len(resp.Volumes))
	for _, v := range resp.Volumes {
		out = append(out, VolumeSummary{Name: v.Name, Driver: v.Driver, Mountpoint: v.Mountpoint})
	}
	return out, nil
}

func (e *DockerEngine) RemoveVolume(ctx context.Context, name string, force bool) error {
	if err := e.cli.VolumeRemove(ctx, name, force); err != nil {
		return mapEngineError(err, fmt.Sprintf("failed to remove volume %s", name))
	}
	return nil
}

// mapEngineError folds the engine client's error shapes into the shared
// taxonomy, relaying the daemon's message as-is.
func mapEngineError(err error, msg string) error {
	switch {
	case client.IsErrConnectionFailed(err):
		return tools.E(tools.KindEngineUnreachable, "%s: %v", msg, err)
	case errdefs.IsNotFound(err):
		return tools.E(tools.KindResourceNotFound, "%s: %v", msg, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
