package objectstore

import "mcpbridge/tools"

// NewRegistry creates the tool registry for the s3 server over one shared
// store handle.
func NewRegistry(store ObjectStore) (*tools.Registry, error) {
	return tools.NewRegistry(
		NewGetObject(store),
		NewPutObject(store),
		NewListObjects(store),
		NewDeleteObject(store),
		NewListBuckets(store),
		NewCreateBucket(store),
	)
}
