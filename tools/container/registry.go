package container

import "mcpbridge/tools"

// NewRegistry creates the tool registry for the docker server over one shared
// engine handle.
func NewRegistry(engine Engine, defaultLogTail string) (*tools.Registry, error) {
	return tools.NewRegistry(
		NewListContainers(engine),
		NewCreateContainer(engine),
		NewRunContainer(engine),
		NewStartContainer(engine),
		NewStopContainer(engine),
		NewRemoveContainer(engine),
		NewGetLogs(engine, defaultLogTail),
		NewPullImage(engine),
		NewPushImage(engine),
		NewBuildImage(engine),
		NewListImages(engine),
		NewRemoveImage(engine),
		NewCreateNetwork(engine),
		NewListNetworks(engine),
		NewRemoveNetwork(engine),
		NewCreateVolume(engine),
		NewListVolumes(engine),
		NewRemoveVolume(engine),
	)
}
