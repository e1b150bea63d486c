package vector

import "mcpbridge/tools"

// NewRegistry creates the tool registry for the qdrant server over one shared
// store handle.
func NewRegistry(store VectorStore) (*tools.Registry, error) {
	return tools.NewRegistry(
		NewCreateCollection(store),
		NewListCollections(store),
		NewDeleteCollection(store),
		NewUpsertPoints(store),
		NewGetPoints(store),
		NewQueryPoints(store),
	)
}
