package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const deployStackSystem = "You are a container deployment specialist. Generate appropriate container configurations based on user requirements. For simple single-container deployments, use the create_container tool. For long-running services, use run_container. To inspect running services, use list_containers and then get_logs for a specific container."

// AddDeployStackPrompt registers a prompt that turns free-form deployment
// requirements into guided tool usage.
func (s *Server) AddDeployStackPrompt() {
	s.mcp.AddPrompt(&mcp.Prompt{
		Name:        "deploy-stack",
		Description: "Generate and deploy a container stack based on requirements",
		Arguments: []*mcp.PromptArgument{
			{Name: "requirements", Description: "Description of the desired stack", Required: true},
			{Name: "project_name", Description: "Name for the project", Required: true},
		},
	}, func(ctx context.Context, ss *mcp.ServerSession, params *mcp.GetPromptParams) (*mcp.GetPromptResult, error) {
		requirements := params.Arguments["requirements"]
		projectName := params.Arguments["project_name"]
		if requirements == "" || projectName == "" {
			return nil, fmt.Errorf("missing required arguments: requirements, project_name")
		}

		user := fmt.Sprintf(`Please help me deploy the following stack:
Requirements: %s
Project name: %s

Analyze whether this needs a single container or multiple containers, then use the container tools to create them. Name every container with the project name as a prefix.`, requirements, projectName)

		return &mcp.GetPromptResult{
			Description: "Generate and deploy a container stack",
			Messages: []*mcp.PromptMessage{
				{Role: "assistant", Content: &mcp.TextContent{Text: deployStackSystem}},
				{Role: "user", Content: &mcp.TextContent{Text: user}},
			},
		}, nil
	})
}
