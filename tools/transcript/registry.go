package transcript

import "mcpbridge/tools"

// NewRegistry creates the tool registry for the transcript server over one
// shared caption client.
func NewRegistry(source CaptionSource, defaultLanguage string) (*tools.Registry, error) {
	return tools.NewRegistry(
		NewGetTranscript(source, defaultLanguage),
		NewListLanguages(source),
	)
}
